package http

import (
	"net/http"

	domain "manhour-tracker/internal/domain/report"
	"manhour-tracker/internal/domain/request"
	"manhour-tracker/internal/usecase/dashboard"
	"manhour-tracker/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	uc        *report.Usecase
	dashboard *dashboard.Usecase
	files     *Files
}

func NewReportHandler(uc *report.Usecase, dash *dashboard.Usecase, files *Files) *ReportHandler {
	return &ReportHandler{uc: uc, dashboard: dash, files: files}
}

// reportQuery is the consolidated report filter; current_status repeats.
type reportQuery struct {
	RequestNo   string   `query:"request_no" validate:"max=64"`
	Department  string   `query:"department" validate:"max=128"`
	Category    string   `query:"category" validate:"max=128"`
	RequestDate string   `query:"request_date" validate:"max=32"`
	Statuses    []string `query:"current_status" validate:"dive,max=128"`
}

func (q reportQuery) filter() domain.Filter {
	return domain.Filter{
		RequestNo:   q.RequestNo,
		Department:  q.Department,
		Category:    q.Category,
		RequestDate: q.RequestDate,
		Statuses:    q.Statuses,
	}
}

type breakupQuery struct {
	Role string `query:"role" validate:"max=32"`
}

func (h *ReportHandler) Report(c echo.Context) error {
	var q reportQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	rows, err := h.uc.Report(c.Request().Context(), q.filter())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) Download(c echo.Context) error {
	var q reportQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	t, err := h.uc.Export(c.Request().Context(), q.filter())
	if err != nil {
		return writeError(c, err)
	}
	return h.files.Send(c, "consolidated_report.xlsx", t)
}

func (h *ReportHandler) Breakup(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return writeError(c, request.ErrNotFound)
	}
	var q breakupQuery
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	rows, err := h.uc.Breakup(c.Request().Context(), id, q.Role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) ManHours(c echo.Context) error {
	list, err := h.uc.ManHours(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ReportHandler) DownloadManHours(c echo.Context) error {
	t, err := h.uc.ExportManHours(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return h.files.Send(c, "actual_manhours_data.xlsx", t)
}

func (h *ReportHandler) Dashboard(c echo.Context) error {
	d, err := h.dashboard.Data(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}
