package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError translates service errors into HTTP responses.
// Validation failures and not-found conditions surface their own message;
// anything else is logged and hidden behind a generic 500.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Service call failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}
