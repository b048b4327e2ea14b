package application

import (
	"time"

	"github.com/linskybing/survey-platform/internal/config"
	"github.com/linskybing/survey-platform/internal/llm"
	"github.com/linskybing/survey-platform/internal/publish"
	"github.com/linskybing/survey-platform/internal/repository"
	"github.com/linskybing/survey-platform/internal/storage"
)

// Deps are the optional collaborators of the services. A nil Generator fails
// every generation call, a nil Publisher disables Google Forms export and a
// nil Archive skips report snapshots.
type Deps struct {
	Generator llm.Generator
	Publisher publish.Publisher
	Archive   storage.ReportArchive
	Options   Options
}

type Options struct {
	AppURL          string
	GenerateTimeout time.Duration
	FormTokenTTL    time.Duration
}

// OptionsFromConfig reads the loaded configuration.
func OptionsFromConfig() Options {
	return Options{
		AppURL:          config.AppURL,
		GenerateTimeout: config.GenerateTimeout,
		FormTokenTTL:    config.FormTokenTTL,
	}
}

type Services struct {
	Form     *FormService
	Response *ResponseService
	Analysis *AnalysisService
}

func New(repos *repository.Repos, deps Deps) *Services {
	return &Services{
		Form:     NewFormService(repos, deps),
		Response: NewResponseService(repos),
		Analysis: NewAnalysisService(repos, deps),
	}
}
