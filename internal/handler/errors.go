package handler

import (
	"errors"
	"log"
	"net/http"

	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP status classes. Unknown errors
// are logged and surfaced as a generic 500 without internal detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
	case errors.Is(err, repository.ErrAlreadyPaid),
		errors.Is(err, repository.ErrDuplicatePeriod),
		errors.Is(err, service.ErrSalaryNotIncreased):
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, model.NewErrorResponse(err.Error(), ""))
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountDisabled),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse(err.Error(), ""))
	default:
		log.Printf("[http] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("internal server error", ""))
	}
}
