package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/survey-platform/internal/application"
	"github.com/linskybing/survey-platform/internal/domain/form"
	"github.com/linskybing/survey-platform/pkg/response"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// GenerateForm godoc
// @Summary Generate a survey form from a prompt
// @Tags forms
// @Accept json
// @Produce json
// @Param input body form.GenerateFormInput true "Prompt"
// @Success 200 {object} form.GeneratedForm
// @Failure 400 {object} response.ErrorResponse "Prompt is required"
// @Failure 500 {object} response.ErrorResponse "AI_GENERATION_FAILED"
// @Router /api/generateForm [post]
func (h *FormHandler) GenerateForm(c *gin.Context) {
	var input form.GenerateFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Prompt is required"})
		return
	}

	out, err := h.service.GenerateForm(c.Request.Context(), input.Prompt)
	if err != nil {
		writeError(c, err, messages{invalid: "Prompt is required", internal: "AI_GENERATION_FAILED"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GenerateCounselingForm godoc
// @Summary Generate a career counseling form
// @Description Falls back to the built-in interview script when generation fails.
// @Tags forms
// @Accept json
// @Produce json
// @Param input body form.GenerateFormInput false "Additional requirements"
// @Success 200 {object} form.CounselingForm
// @Failure 500 {object} response.ErrorResponse
// @Router /api/generateCounselingForm [post]
func (h *FormHandler) GenerateCounselingForm(c *gin.Context) {
	var input form.GenerateFormInput
	if err := bindOptionalJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	out, err := h.service.GenerateCounselingForm(c.Request.Context(), input.Prompt)
	if err != nil {
		writeError(c, err, messages{invalid: "Invalid input", internal: "Failed to generate counseling form"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// SaveForm godoc
// @Summary Save a form
// @Description A non-empty password protects the form.
// @Tags forms
// @Accept json
// @Produce json
// @Param input body form.SaveFormInput true "Form"
// @Success 200 {object} form.SaveFormResult
// @Failure 400 {object} response.ErrorResponse "Title and fields are required"
// @Failure 500 {object} response.ErrorResponse "Failed to save form"
// @Router /api/saveForm [post]
func (h *FormHandler) SaveForm(c *gin.Context) {
	var input form.SaveFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Title and fields are required"})
		return
	}

	out, err := h.service.SaveForm(c.Request.Context(), input)
	if err != nil {
		writeError(c, err, messages{invalid: "Title and fields are required", internal: "Failed to save form"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetForm godoc
// @Summary Fetch a form
// @Description Protected forms need the password or an access token.
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param input body form.FetchFormInput false "Password"
// @Success 200 {object} form.FormView
// @Failure 401 {object} response.ProtectedErrorResponse "PASSWORD_REQUIRED or INVALID_PASSWORD"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse "Failed to fetch form"
// @Router /api/forms/{id} [post]
func (h *FormHandler) GetForm(c *gin.Context) {
	var input form.FetchFormInput
	if err := bindOptionalJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	out, err := h.service.GetForm(c.Request.Context(), c.Param("id"), accessFrom(c, input.Password))
	if err != nil {
		writeError(c, err, messages{invalid: "Invalid input", internal: "Failed to fetch form"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// PublishForm godoc
// @Summary Publish a form to Google Forms
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param input body form.PublishFormInput false "Password"
// @Success 200 {object} form.PublishResult
// @Failure 401 {object} response.ProtectedErrorResponse
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse "Failed to publish form"
// @Failure 503 {object} response.ErrorResponse "Publishing not configured"
// @Router /api/forms/{id}/publish [post]
func (h *FormHandler) PublishForm(c *gin.Context) {
	var input form.PublishFormInput
	if err := bindOptionalJSON(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	out, err := h.service.PublishToGoogleForms(c.Request.Context(), c.Param("id"), accessFrom(c, input.Password))
	if err != nil {
		writeError(c, err, messages{invalid: "Invalid input", internal: "Failed to publish form"})
		return
	}
	c.JSON(http.StatusOK, out)
}
