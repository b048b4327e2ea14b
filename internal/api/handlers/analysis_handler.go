package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/survey-platform/internal/application"
	"github.com/linskybing/survey-platform/internal/domain/analysis"
	"github.com/linskybing/survey-platform/pkg/response"
)

type AnalysisHandler struct {
	service *application.AnalysisService
}

func NewAnalysisHandler(service *application.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// AnalyzeResponses godoc
// @Summary Analyze the stored responses of a form
// @Tags analysis
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body analysis.AnalyzeResponsesInput true "Form id and password"
// @Success 200 {object} analysis.Result
// @Failure 400 {object} response.ErrorResponse "Form ID is required"
// @Failure 401 {object} response.ProtectedErrorResponse "PASSWORD_REQUIRED_OR_INVALID"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse "Failed to analyze responses"
// @Router /api/analyzeResponses [post]
func (h *AnalysisHandler) AnalyzeResponses(c *gin.Context) {
	var input analysis.AnalyzeResponsesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Form ID is required"})
		return
	}

	out, err := h.service.AnalyzeResponses(c.Request.Context(), input.FormID, accessFrom(c, input.Password))
	if err != nil {
		writeError(c, err, messages{invalid: "Form ID is required", internal: "Failed to analyze responses"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Analyze godoc
// @Summary Analyze caller supplied responses
// @Description Returns the model's JSON, or {"raw": text} when it is not JSON.
// @Tags analysis
// @Accept json
// @Produce json
// @Param input body analysis.AdHocInput true "Responses"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var input analysis.AdHocInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	out, err := h.service.Analyze(c.Request.Context(), input)
	if err != nil {
		writeError(c, err, messages{invalid: "Invalid input", internal: "Failed to analyze responses"})
		return
	}
	c.JSON(http.StatusOK, out)
}
