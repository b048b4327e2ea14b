package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/linskybing/survey-platform/internal/config/logger"
	"github.com/linskybing/survey-platform/internal/domain/form"
	"github.com/linskybing/survey-platform/internal/domain/submission"
	"github.com/linskybing/survey-platform/internal/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type ResponseService struct {
	Repos *repository.Repos
}

func NewResponseService(repos *repository.Repos) *ResponseService {
	return &ResponseService{
		Repos: repos,
	}
}

// SubmitResponse stores one set of answers. Answers are keyed by question id
// and every required question needs a non-empty answer.
func (s *ResponseService) SubmitResponse(ctx context.Context, input submission.SubmitResponseInput) (*submission.SubmitResult, error) {
	if strings.TrimSpace(input.FormID) == "" || input.Answers == nil {
		return nil, fmt.Errorf("%w: form_id and answers are required", ErrInvalidInput)
	}

	f, err := findForm(ctx, s.Repos.Form, input.FormID)
	if err != nil {
		return nil, err
	}
	if err := checkRequired(f.Schema.Data().Fields, input.Answers); err != nil {
		return nil, err
	}

	answers, err := json.Marshal(input.Answers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	resp := &submission.Response{
		FormID:  f.ID,
		Answers: datatypes.JSON(answers),
	}
	if err := s.Repos.Response.CreateResponse(ctx, resp); err != nil {
		return nil, fmt.Errorf("store response: %w", err)
	}

	logger.Log.Info("response submitted",
		zap.String("form_id", f.ID),
		zap.String("response_id", resp.ID))
	return &submission.SubmitResult{OK: true}, nil
}

func (s *ResponseService) ListResponses(ctx context.Context, formID string, access Access) (*submission.ResponseList, error) {
	f, err := findForm(ctx, s.Repos.Form, formID)
	if err != nil {
		return nil, err
	}
	if err := authorize(f, access); err != nil {
		return nil, err
	}

	responses, err := s.Repos.Response.ListResponsesByFormID(ctx, f.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponsesUnavailable, err)
	}
	if responses == nil {
		responses = []submission.Response{}
	}
	return &submission.ResponseList{
		FormID:    f.ID,
		Total:     len(responses),
		Responses: responses,
	}, nil
}

func checkRequired(fields []form.Question, answers map[string]any) error {
	for _, q := range fields {
		if q.Required && isBlank(answers[q.ID]) {
			return fmt.Errorf("%w: %s", ErrRequiredAnswerMissing, q.Label)
		}
	}
	return nil
}

func isBlank(v any) bool {
	switch a := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(a) == ""
	case []any:
		return len(a) == 0
	case map[string]any:
		return len(a) == 0
	}
	return false
}
