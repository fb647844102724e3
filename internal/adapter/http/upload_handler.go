package http

import (
	"context"
	"net/http"

	"manhour-tracker/internal/domain/sheet"
	"manhour-tracker/internal/usecase/ingest"

	"github.com/labstack/echo/v4"
)

// UploadHandler serves the three spreadsheet uploads and their templates.
type UploadHandler struct {
	engine *ingest.Engine
	files  *Files
}

func NewUploadHandler(engine *ingest.Engine, files *Files) *UploadHandler {
	return &UploadHandler{engine: engine, files: files}
}

type uploadResponse struct {
	Message    string   `json:"message"`
	FailedRows []string `json:"failed_rows,omitempty"`
}

// Partial failures still answer 200; the failed rows travel in the body.
func (h *UploadHandler) upload(c echo.Context, run func(context.Context, *sheet.Sheet) (*ingest.Result, error)) error {
	s, err := h.files.Read(c)
	if err != nil {
		return writeError(c, err)
	}
	res, err := run(c.Request().Context(), s)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, uploadResponse{Message: res.Message(), FailedRows: res.FailedRows()})
}

func (h *UploadHandler) Requests(c echo.Context) error { return h.upload(c, h.engine.UploadRequests) }
func (h *UploadHandler) Updates(c echo.Context) error  { return h.upload(c, h.engine.UploadUpdates) }
func (h *UploadHandler) ManHours(c echo.Context) error { return h.upload(c, h.engine.UploadManHours) }

func (h *UploadHandler) RequestTemplate(c echo.Context) error {
	return h.files.Send(c, "requests_template.xlsx", ingest.RequestTemplate())
}

func (h *UploadHandler) UpdateTemplate(c echo.Context) error {
	return h.files.Send(c, "update_request_template.xlsx", ingest.UpdateTemplate())
}

func (h *UploadHandler) ManHourTemplate(c echo.Context) error {
	return h.files.Send(c, "manhours_template.xlsx", ingest.ManHourTemplate())
}
