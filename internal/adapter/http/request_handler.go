package http

import (
	"net/http"

	domain "manhour-tracker/internal/domain/request"
	"manhour-tracker/internal/usecase/request"

	"github.com/labstack/echo/v4"
)

type RequestHandler struct {
	uc    *request.Usecase
	files *Files
}

func NewRequestHandler(uc *request.Usecase, files *Files) *RequestHandler {
	return &RequestHandler{uc: uc, files: files}
}

type createRequestReq struct {
	RequestNo    string `json:"request_no" validate:"max=64"`
	RequestedBy  string `json:"requested_by" validate:"max=128"`
	Department   string `json:"department" validate:"max=128"`
	Category     string `json:"category" validate:"max=128"`
	RequestDate  string `json:"request_date" validate:"max=32"`
	RequestTitle string `json:"request_title" validate:"max=255"`
	Description  string `json:"description"`
}

func (h *RequestHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *RequestHandler) Create(c echo.Context) error {
	var req createRequestReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	r, err := h.uc.Create(c.Request().Context(), request.CreateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "Request added successfully", ID: r.ID})
}

func (h *RequestHandler) Patch(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return writeError(c, domain.ErrNotFound)
	}
	fields, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.Patch(c.Request().Context(), id, fields); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Request updated successfully"})
}

func (h *RequestHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return writeError(c, domain.ErrNotFound)
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Request deleted successfully"})
}

func (h *RequestHandler) Details(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return writeError(c, domain.ErrNotFound)
	}
	dto, err := h.uc.Details(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RequestHandler) UpdateDetails(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return writeError(c, domain.ErrNotFound)
	}
	fields, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.UpdateDetails(c.Request().Context(), id, fields); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Request details updated successfully"})
}

func (h *RequestHandler) Download(c echo.Context) error {
	t, err := h.uc.ExportRequests(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return h.files.Send(c, "requests_data.xlsx", t)
}

func (h *RequestHandler) DownloadUpdates(c echo.Context) error {
	t, err := h.uc.ExportUpdates(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return h.files.Send(c, "request_updates_data.xlsx", t)
}
