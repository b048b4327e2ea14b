package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/survey-platform/internal/api/middleware"
	"github.com/linskybing/survey-platform/internal/config/logger"
	"github.com/linskybing/survey-platform/internal/domain/form"
	"github.com/linskybing/survey-platform/internal/llm"
	"github.com/linskybing/survey-platform/internal/publish"
	"github.com/linskybing/survey-platform/internal/repository"
	"github.com/linskybing/survey-platform/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const formCreatedMessage = "Form created successfully"

type FormService struct {
	Repos     *repository.Repos
	generator llm.Generator
	publisher publish.Publisher
	script    *CounselingScript
	opts      Options
}

func NewFormService(repos *repository.Repos, deps Deps) *FormService {
	return &FormService{
		Repos:     repos,
		generator: deps.Generator,
		publisher: deps.Publisher,
		script:    defaultCounselingScript,
		opts:      deps.Options,
	}
}

// generatedPayload accepts both "questions" and "fields" from the model.
type generatedPayload struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []map[string]any `json:"questions"`
	Fields      []map[string]any `json:"fields"`
}

func (p generatedPayload) questions() []form.Question {
	raw := p.Questions
	if raw == nil {
		raw = p.Fields
	}
	return form.NormalizeQuestions(raw)
}

func (s *FormService) generate(ctx context.Context, prompt string) (*generatedPayload, error) {
	if s.generator == nil {
		return nil, errors.New("text generator is not configured")
	}
	text, err := llm.GenerateWithTimeout(ctx, s.generator, s.opts.GenerateTimeout, prompt)
	if err != nil {
		return nil, err
	}
	var payload generatedPayload
	if err := llm.DecodeJSON(text, &payload); err != nil {
		return nil, err
	}
	if len(payload.Questions) == 0 && len(payload.Fields) == 0 {
		return nil, errors.New("model returned no questions")
	}
	return &payload, nil
}

func (s *FormService) GenerateForm(ctx context.Context, prompt string) (*form.GeneratedForm, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}

	payload, err := s.generate(ctx, buildGenerateFormPrompt(prompt))
	if err != nil {
		logger.Log.Error("form generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	return &form.GeneratedForm{
		Title:       payload.Title,
		Description: payload.Description,
		Questions:   payload.questions(),
	}, nil
}

// GenerateCounselingForm never fails: when the model cannot produce a usable
// form the script itself is turned into one.
func (s *FormService) GenerateCounselingForm(ctx context.Context, prompt string) (*form.CounselingForm, error) {
	payload, err := s.generate(ctx, buildCounselingPrompt(s.script, prompt))
	if err != nil {
		logger.Log.Warn("counseling form generation failed, using script fallback", zap.Error(err))
		return s.script.FallbackForm(), nil
	}

	out := &form.CounselingForm{
		Title:       payload.Title,
		Description: payload.Description,
		Fields:      payload.questions(),
	}
	if out.Title == "" {
		out.Title = s.script.Title
	}
	if out.Description == "" {
		out.Description = s.script.Description
	}
	return out, nil
}

func (s *FormService) SaveForm(ctx context.Context, input form.SaveFormInput) (*form.SaveFormResult, error) {
	if strings.TrimSpace(input.Title) == "" || input.Fields == nil {
		return nil, fmt.Errorf("%w: title and fields are required", ErrInvalidInput)
	}

	schema := form.Schema{
		Type:   form.KindGeneral,
		Fields: form.NormalizeQuestions(input.Fields),
	}
	if input.Type != "" {
		schema.Type = form.Kind(input.Type)
	}
	if input.Password != "" {
		digest := utils.HashPassword(input.Password)
		schema.Protected = true
		schema.PasswordHash = &digest
	}

	f := &form.Form{
		Title:       input.Title,
		Description: input.Description,
		Schema:      datatypes.NewJSONType(schema),
	}
	if err := s.Repos.Form.CreateForm(ctx, f); err != nil {
		return nil, fmt.Errorf("save form: %w", err)
	}

	logger.Log.Info("form saved",
		zap.String("form_id", f.ID),
		zap.Bool("protected", schema.Protected),
		zap.Int("fields", len(schema.Fields)))

	return &form.SaveFormResult{
		FormID:  f.ID,
		URL:     s.opts.AppURL + "/form/" + f.ID,
		Message: formCreatedMessage,
	}, nil
}

// GetForm returns the form without its password digest. Protected forms come
// back with a fresh access token the client can reuse instead of the password.
func (s *FormService) GetForm(ctx context.Context, id string, access Access) (*form.FormView, error) {
	f, err := findForm(ctx, s.Repos.Form, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(f, access); err != nil {
		return nil, err
	}

	schema := f.Schema.Data()
	view := &form.FormView{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Schema:      schema.View(),
		Protected:   schema.Protected,
	}
	if schema.Protected {
		token, err := middleware.GenerateFormToken(f.ID, s.opts.FormTokenTTL)
		if errors.Is(err, middleware.ErrTokensDisabled) {
			return view, nil
		}
		if err != nil {
			return nil, fmt.Errorf("issue access token: %w", err)
		}
		view.AccessToken = token
	}
	return view, nil
}

func (s *FormService) PublishToGoogleForms(ctx context.Context, id string, access Access) (*form.PublishResult, error) {
	if s.publisher == nil {
		return nil, ErrPublishingDisabled
	}
	f, err := findForm(ctx, s.Repos.Form, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(f, access); err != nil {
		return nil, err
	}

	res, err := s.publisher.Publish(ctx, f.Title, f.Description, f.Schema.Data().Fields)
	if err != nil {
		return nil, fmt.Errorf("publish form %s: %w", f.ID, err)
	}
	logger.Log.Info("form published to google forms",
		zap.String("form_id", f.ID),
		zap.String("google_form_id", res.FormID))

	return &form.PublishResult{
		GoogleFormID: res.FormID,
		ResponderURI: res.ResponderURI,
	}, nil
}

func findForm(ctx context.Context, repo repository.FormRepo, id string) (*form.Form, error) {
	f, err := repo.GetFormByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFormNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load form %s: %w", id, err)
	}
	return f, nil
}
