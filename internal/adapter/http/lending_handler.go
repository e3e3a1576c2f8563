package http

import (
	"net/http"
	"strconv"

	"library-ops-backend/internal/usecase/lending"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type LendingHandler struct{ uc *lending.Usecase }

func NewLendingHandler(uc *lending.Usecase) *LendingHandler { return &LendingHandler{uc: uc} }

type borrowReq struct {
	TitleID  string `json:"title_id"  validate:"required,hex32"`
	MemberID string `json:"member_id" validate:"required,hex32"`
	IssuerID string `json:"issuer_id" validate:"required,hex32"`
	Notes    string `json:"notes"`
}

type returnReq struct {
	ReturnerID string `json:"returner_id" validate:"required,hex32"`
}

type extendReq struct {
	AdditionalDays int `json:"additional_days" validate:"required,gt=0"`
}

type markLostReq struct {
	ReplacementCost float64 `json:"replacement_cost" validate:"gte=0,dec2"`
}

func (h *LendingHandler) Borrow(c echo.Context) error {
	var req borrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Borrow(c.Request().Context(), lending.BorrowInput{
		TitleID:  req.TitleID,
		MemberID: req.MemberID,
		IssuerID: req.IssuerID,
		Notes:    req.Notes,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LendingHandler) Return(c echo.Context) error {
	var req returnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Return(c.Request().Context(), c.Param("loan_id"), req.ReturnerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LendingHandler) Extend(c echo.Context) error {
	var req extendReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Extend(c.Request().Context(), c.Param("loan_id"), req.AdditionalDays)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LendingHandler) MarkLost(c echo.Context) error {
	var req markLostReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.MarkLost(c.Request().Context(), c.Param("loan_id"), req.ReplacementCost)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LendingHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LendingHandler) List(c echo.Context) error {
	limit, offset := pageParams(c)
	dtos, err := h.uc.List(c.Request().Context(), limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LendingHandler) ListOverdue(c echo.Context) error {
	dtos, err := h.uc.ListOverdue(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LendingHandler) FinePreview(c echo.Context) error {
	dto, err := h.uc.FinePreview(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LendingHandler) ListByMember(c echo.Context) error {
	limit, offset := pageParams(c)
	dtos, err := h.uc.ListByMember(c.Request().Context(), c.Param("member_id"), limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LendingHandler) ListActiveByMember(c echo.Context) error {
	dtos, err := h.uc.ListActiveByMember(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LendingHandler) ListByTitle(c echo.Context) error {
	limit, offset := pageParams(c)
	dtos, err := h.uc.ListByTitle(c.Request().Context(), c.Param("title_id"), limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LendingHandler) MemberStats(c echo.Context) error {
	dto, err := h.uc.MemberStats(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LendingHandler) MemberCapacity(c echo.Context) error {
	dto, err := h.uc.Capacity(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func pageParams(c echo.Context) (limit, offset int) {
	limit = defaultPageLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
