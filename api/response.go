package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/happyfaces/facepaint/internal/validation"
)

// errMalformed marks a body that is not a JSON object.
var errMalformed = errors.New("invalid request body")

// envelope is the uniform response shape.
type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Fields  []validation.Violation `json:"fields,omitempty"`
	Data    any                    `json:"data,omitempty"`
}

func ok(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

func okData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, envelope{Success: false, Error: msg})
}

// fail maps err onto the envelope. Client errors are echoed; anything else
// is logged and replaced by fallback.
func fail(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	if verr, isValidation := validation.AsError(err); isValidation {
		c.JSON(http.StatusBadRequest, envelope{Success: false, Error: "validation failed", Fields: verr.Violations})
		return
	}
	if errors.Is(err, errMalformed) {
		badRequest(c, errMalformed.Error())
		return
	}

	logger.ErrorContext(c.Request.Context(), fallback,
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.Any("error", err))
	c.JSON(http.StatusInternalServerError, envelope{Success: false, Error: fallback})
}

// bindObject decodes the request body as a JSON object, ignoring the
// declared content type.
func bindObject(c *gin.Context) (map[string]any, error) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		return nil, errMalformed
	}
	if raw == nil {
		return nil, errMalformed
	}
	return raw, nil
}
