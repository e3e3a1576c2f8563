package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	lendingDomain "library-ops-backend/internal/domain/lending"
	memberDomain "library-ops-backend/internal/domain/member"
	staffDomain "library-ops-backend/internal/domain/staff"
	titleDomain "library-ops-backend/internal/domain/title"
)

// writeDomainError maps the business-error taxonomy onto HTTP statuses.
// Ineligible and Unavailable are expected outcomes of a well-formed
// request; InvariantViolation means the counters were already broken and
// is logged as a server fault.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, lendingDomain.ErrNotFound),
		errors.Is(err, titleDomain.ErrNotFound),
		errors.Is(err, memberDomain.ErrNotFound),
		errors.Is(err, staffDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, lendingDomain.ErrValidation),
		errors.Is(err, titleDomain.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, lendingDomain.ErrIneligible):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})

	case errors.Is(err, titleDomain.ErrUnavailable),
		errors.Is(err, titleDomain.ErrConflict),
		errors.Is(err, lendingDomain.ErrInvalidState):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, titleDomain.ErrInvariantViolation):
		log.Printf("ALERT invariant violation: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "copy accounting invariant violated"})

	default:
		log.Printf("internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
