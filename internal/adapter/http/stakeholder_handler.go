package http

import (
	"net/http"

	domain "manhour-tracker/internal/domain/stakeholder"
	"manhour-tracker/internal/usecase/stakeholder"

	"github.com/labstack/echo/v4"
)

type StakeholderHandler struct{ uc *stakeholder.Usecase }

func NewStakeholderHandler(uc *stakeholder.Usecase) *StakeholderHandler {
	return &StakeholderHandler{uc: uc}
}

type stakeholderReq struct {
	Name string `json:"name" validate:"max=128"`
	Role string `json:"role" validate:"max=32"`
}

func (h *StakeholderHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *StakeholderHandler) Create(c echo.Context) error {
	var req stakeholderReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	s, err := h.uc.Create(c.Request().Context(), stakeholder.Input(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "Stakeholder added successfully", ID: s.ID})
}

func (h *StakeholderHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return writeError(c, domain.ErrNotFound)
	}
	var req stakeholderReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	if err := h.uc.Update(c.Request().Context(), id, stakeholder.Input(req)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Stakeholder updated successfully"})
}

func (h *StakeholderHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return writeError(c, domain.ErrNotFound)
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Stakeholder deleted successfully"})
}
