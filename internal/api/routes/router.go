package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/survey-platform/internal/api/handlers"
	"github.com/linskybing/survey-platform/internal/api/middleware"
	"github.com/linskybing/survey-platform/internal/application"
	"github.com/linskybing/survey-platform/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/linskybing/survey-platform/docs"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, deps application.Deps) {
	repos := repository.New(db)
	svc := application.New(repos, deps)
	Register(r, svc)
}

// Register mounts the HTTP surface on r. Paths under /api match the ones the
// web client already calls.
func Register(r *gin.Engine, svc *application.Services) {
	h := handlers.New(svc)

	r.GET("/healthz", handlers.Healthz)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.FormTokenMiddleware())
	{
		api.POST("/generateForm", h.Form.GenerateForm)
		api.POST("/generateCounselingForm", h.Form.GenerateCounselingForm)
		api.POST("/saveForm", h.Form.SaveForm)

		forms := api.Group("/forms")
		{
			forms.POST("/:id", h.Form.GetForm)
			forms.POST("/:id/responses", h.Response.ListResponses)
			forms.POST("/:id/publish", h.Form.PublishForm)
		}

		api.POST("/submitResponse", h.Response.SubmitResponse)
		api.POST("/analyzeResponses", h.Analysis.AnalyzeResponses)
		api.POST("/analyze", h.Analysis.Analyze)
	}
}
