package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marquesa/internal/domain"
)

// RespondDomainError maps typed domain errors to HTTP statuses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "error interno del servidor", err)
	}
}
