package http

import (
	"net/http"

	"library-ops-backend/internal/usecase/inventory"

	"github.com/labstack/echo/v4"
)

type InventoryHandler struct{ uc *inventory.Usecase }

func NewInventoryHandler(uc *inventory.Usecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

type copiesReq struct {
	Count int `json:"count" validate:"required,gt=0"`
}

func (h *InventoryHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("title_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InventoryHandler) AddCopies(c echo.Context) error {
	var req copiesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.AddCopies(c.Request().Context(), c.Param("title_id"), req.Count)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InventoryHandler) RemoveCopies(c echo.Context) error {
	var req copiesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RemoveCopies(c.Request().Context(), c.Param("title_id"), req.Count)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
