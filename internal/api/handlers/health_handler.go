package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/survey-platform/pkg/response"
)

// Healthz godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} response.StatusResponse
// @Router /healthz [get]
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusResponse{Status: "ok"})
}
