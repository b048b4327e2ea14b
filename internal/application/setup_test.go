package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/survey-platform/internal/api/middleware"
	"github.com/linskybing/survey-platform/internal/domain/form"
	llmmock "github.com/linskybing/survey-platform/internal/llm/mock"
	"github.com/linskybing/survey-platform/internal/publish"
	"github.com/linskybing/survey-platform/internal/repository"
	"github.com/linskybing/survey-platform/internal/repository/mock"
	"github.com/linskybing/survey-platform/pkg/utils"
	"gorm.io/datatypes"
)

const testFormID = "0b7d3c2e-5f4a-4e1b-9c6d-8a2f1e3b4c5d"

type fakePublisher struct {
	got    []form.Question
	result *publish.Result
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, title, description string, questions []form.Question) (*publish.Result, error) {
	p.got = questions
	return p.result, p.err
}

type fakeArchive struct {
	stored any
	key    string
	err    error
}

func (a *fakeArchive) Store(ctx context.Context, formID string, report any) (string, error) {
	a.stored = report
	return a.key, a.err
}

type testEnv struct {
	svc       *Services
	forms     *mock.MockFormRepo
	responses *mock.MockResponseRepo
	gen       *llmmock.MockGenerator
}

func setupServices(t *testing.T, deps Deps) *testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	env := &testEnv{
		forms:     mock.NewMockFormRepo(ctrl),
		responses: mock.NewMockResponseRepo(ctrl),
		gen:       llmmock.NewMockGenerator(ctrl),
	}
	repos := &repository.Repos{
		Form:     env.forms,
		Response: env.responses,
	}

	deps.Generator = env.gen
	if deps.Options == (Options{}) {
		deps.Options = Options{
			AppURL:          "http://forms.test",
			GenerateTimeout: time.Second,
			FormTokenTTL:    time.Hour,
		}
	}
	env.svc = New(repos, deps)

	// override token issuing
	orig := middleware.GenerateFormToken
	middleware.GenerateFormToken = func(formID string, ttl time.Duration) (string, error) {
		return "token-for-" + formID, nil
	}
	t.Cleanup(func() { middleware.GenerateFormToken = orig })

	return env
}

func openForm(fields ...form.Question) *form.Form {
	return &form.Form{
		ID:          testFormID,
		Title:       "만족도 조사",
		Description: "서비스 만족도",
		Schema: datatypes.NewJSONType(form.Schema{
			Type:   form.KindGeneral,
			Fields: fields,
		}),
	}
}

func protectedForm(password string, fields ...form.Question) *form.Form {
	f := openForm(fields...)
	schema := f.Schema.Data()
	schema.Protected = true
	if password != "" {
		digest := utils.HashPassword(password)
		schema.PasswordHash = &digest
	}
	f.Schema = datatypes.NewJSONType(schema)
	return f
}
