package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/survey-platform/internal/application"
	"github.com/linskybing/survey-platform/internal/config/logger"
	"github.com/linskybing/survey-platform/pkg/response"
	"github.com/linskybing/survey-platform/pkg/utils"
	"go.uber.org/zap"
)

// messages are the client-facing texts of one endpoint.
type messages struct {
	invalid  string
	internal string
}

func writeError(c *gin.Context, err error, msg messages) {
	switch {
	case errors.Is(err, application.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg.invalid})
	case errors.Is(err, application.ErrRequiredAnswerMissing):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrFormNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
	case errors.Is(err, application.ErrPasswordRequired):
		c.JSON(http.StatusUnauthorized, response.ProtectedErrorResponse{Error: "PASSWORD_REQUIRED", Protected: true})
	case errors.Is(err, application.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, response.ProtectedErrorResponse{Error: "INVALID_PASSWORD", Protected: true})
	case errors.Is(err, application.ErrPasswordRequiredOrInvalid):
		c.JSON(http.StatusUnauthorized, response.ProtectedErrorResponse{Error: "PASSWORD_REQUIRED_OR_INVALID", Protected: true})
	case errors.Is(err, application.ErrGenerationFailed):
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "AI_GENERATION_FAILED"})
	case errors.Is(err, application.ErrResponsesUnavailable):
		logger.Log.Error("responses unavailable", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch responses"})
	case errors.Is(err, application.ErrPublishingDisabled):
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Error(msg.internal, zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: msg.internal})
	}
}

// bindOptionalJSON binds the body when there is one. Protected endpoints take
// an optional password, so an empty body is not an error.
func bindOptionalJSON(c *gin.Context, v any) error {
	err := c.ShouldBindJSON(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func accessFrom(c *gin.Context, password string) application.Access {
	access := application.Access{Password: password}
	if formID, err := utils.GetFormIDFromContext(c); err == nil {
		access.TokenFormID = formID
	}
	return access
}
