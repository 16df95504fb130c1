package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/Tourment0412/gestion-perfil-micro/internal/domain/errors"
)

// errorResponse is the uniform error body returned for every 4xx/5xx.
// The errors map appears only for field-validation failures.
type errorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// Ordered mapping from domain error type to HTTP status. Evaluated in
// order; the first match wins.
var errorStatusRules = []struct {
	errType string
	status  int
}{
	{domainErrors.ErrTypePerfilNotFound, http.StatusNotFound},
	{domainErrors.ErrTypeStorageFailure, http.StatusInternalServerError},
}

// NewHTTPErrorHandler builds the central error handler that translates
// domain and validation errors into the uniform response body.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := errorResponse{
			Timestamp: time.Now(),
			Status:    http.StatusInternalServerError,
			Error:     http.StatusText(http.StatusInternalServerError),
			Message:   "Error interno del servidor",
		}

		var validationErr *ValidationError
		var perfilErr *domainErrors.PerfilError
		var echoErr *echo.HTTPError

		switch {
		case errors.As(err, &validationErr):
			body.Status = http.StatusBadRequest
			body.Error = http.StatusText(http.StatusBadRequest)
			body.Message = "Error de validación en los datos enviados"
			body.Errors = validationErr.Fields
			logger.Warn("Validation failed", zap.Any("errors", validationErr.Fields))

		case errors.As(err, &perfilErr):
			for _, rule := range errorStatusRules {
				if rule.errType == perfilErr.Type {
					body.Status = rule.status
					break
				}
			}
			body.Error = http.StatusText(body.Status)
			body.Message = perfilErr.Error()
			if body.Status >= 500 {
				logger.Error("Perfil operation failed", zap.String("error_type", perfilErr.Type), zap.Error(err))
			} else {
				logger.Warn("Perfil operation rejected", zap.String("error_type", perfilErr.Type), zap.String("message", perfilErr.Message))
			}

		case errors.As(err, &echoErr):
			body.Status = echoErr.Code
			body.Error = http.StatusText(echoErr.Code)
			if msg, ok := echoErr.Message.(string); ok {
				body.Message = msg
			}
			logger.Warn("HTTP error", zap.Int("status", echoErr.Code), zap.Error(err))

		default:
			// Unclassified faults keep the generic message; full detail
			// stays server-side.
			logger.Error("Unhandled error", zap.Error(err))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Status)
		} else {
			writeErr = c.JSON(body.Status, body)
		}
		if writeErr != nil {
			logger.Error("Failed to write error response", zap.Error(writeErr))
		}
	}
}
