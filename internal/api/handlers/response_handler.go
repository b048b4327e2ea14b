package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/survey-platform/internal/application"
	"github.com/linskybing/survey-platform/internal/domain/submission"
	"github.com/linskybing/survey-platform/pkg/response"
)

type ResponseHandler struct {
	service *application.ResponseService
}

func NewResponseHandler(service *application.ResponseService) *ResponseHandler {
	return &ResponseHandler{service: service}
}

// SubmitResponse godoc
// @Summary Submit answers to a form
// @Tags responses
// @Accept json
// @Produce json
// @Param input body submission.SubmitResponseInput true "Answers keyed by question id"
// @Success 200 {object} submission.SubmitResult
// @Failure 400 {object} response.ErrorResponse "Invalid"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/submitResponse [post]
func (h *ResponseHandler) SubmitResponse(c *gin.Context) {
	var input submission.SubmitResponseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid"})
		return
	}

	out, err := h.service.SubmitResponse(c.Request.Context(), input)
	if err != nil {
		writeError(c, err, messages{invalid: "Invalid", internal: "Failed to store response"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListResponses godoc
// @Summary List the responses of a form
// @Tags responses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param input body submission.ListResponsesInput false "Password"
// @Success 200 {object} submission.ResponseList
// @Failure 401 {object} response.ProtectedErrorResponse
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse "Failed to fetch responses"
// @Router /api/forms/{id}/responses [post]
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	var input submission.ListResponsesInput
	if err := bindOptionalJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	out, err := h.service.ListResponses(c.Request.Context(), c.Param("id"), accessFrom(c, input.Password))
	if err != nil {
		writeError(c, err, messages{invalid: "Invalid input", internal: "Failed to fetch responses"})
		return
	}
	c.JSON(http.StatusOK, out)
}
