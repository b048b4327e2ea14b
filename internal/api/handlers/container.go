package handlers

import (
	"github.com/linskybing/survey-platform/internal/application"
)

type Handlers struct {
	Form     *FormHandler
	Response *ResponseHandler
	Analysis *AnalysisHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Form:     NewFormHandler(svc.Form),
		Response: NewResponseHandler(svc.Response),
		Analysis: NewAnalysisHandler(svc.Analysis),
	}
}
