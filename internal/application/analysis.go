package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/linskybing/survey-platform/internal/config/logger"
	"github.com/linskybing/survey-platform/internal/domain/analysis"
	"github.com/linskybing/survey-platform/internal/llm"
	"github.com/linskybing/survey-platform/internal/repository"
	"github.com/linskybing/survey-platform/internal/storage"
	"go.uber.org/zap"
)

type AnalysisService struct {
	Repos     *repository.Repos
	generator llm.Generator
	archive   storage.ReportArchive
}

func NewAnalysisService(repos *repository.Repos, deps Deps) *AnalysisService {
	archive := deps.Archive
	if archive == nil {
		archive = storage.NopArchive{}
	}
	return &AnalysisService{
		Repos:     repos,
		generator: deps.Generator,
		archive:   archive,
	}
}

// AnalyzeResponses asks the model to summarise every stored response of a
// form. Any JSON object the model returns is passed through unchanged; other
// output is replaced by a count-only analysis.
func (s *AnalysisService) AnalyzeResponses(ctx context.Context, formID string, access Access) (*analysis.Result, error) {
	if strings.TrimSpace(formID) == "" {
		return nil, fmt.Errorf("%w: form id is required", ErrInvalidInput)
	}

	f, err := findForm(ctx, s.Repos.Form, formID)
	if err != nil {
		return nil, err
	}
	if err := authorizeStrict(f, access); err != nil {
		return nil, err
	}

	responses, err := s.Repos.Response.ListResponsesByFormID(ctx, f.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponsesUnavailable, err)
	}
	if len(responses) == 0 {
		empty := analysis.Empty()
		return &empty, nil
	}
	if s.generator == nil {
		return nil, fmt.Errorf("%w: text generator is not configured", ErrAnalysisFailed)
	}

	prompt, err := buildAnalysisPrompt(f.Title, f.Description, responses, len(responses))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Log.Error("analysis generation failed", zap.String("form_id", f.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	var result map[string]any
	if err := llm.DecodeJSON(text, &result); err != nil || result == nil {
		logger.Log.Warn("unparsable analysis output, using fallback",
			zap.String("form_id", f.ID), zap.Error(err))
		result = analysis.Fallback(len(responses)).Map()
	}

	out := &analysis.Result{
		Analysis:       result,
		TotalResponses: len(responses),
		FormTitle:      f.Title,
	}
	key, err := s.archive.Store(ctx, f.ID, out)
	if err != nil {
		logger.Log.Warn("analysis report not archived", zap.String("form_id", f.ID), zap.Error(err))
	} else {
		out.ReportKey = key
	}
	return out, nil
}

// Analyze summarises responses supplied by the caller. Output that is not
// valid JSON is handed back verbatim under "raw".
func (s *AnalysisService) Analyze(ctx context.Context, input analysis.AdHocInput) (map[string]any, error) {
	if input.FormTitle == nil || input.Responses == nil {
		return nil, fmt.Errorf("%w: formTitle and responses are required", ErrInvalidInput)
	}
	if s.generator == nil {
		return nil, fmt.Errorf("%w: text generator is not configured", ErrAnalysisFailed)
	}

	prompt, err := buildAdHocPrompt(*input.FormTitle, input.Responses, input.Instructions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	var out map[string]any
	if err := llm.DecodeJSON(text, &out); err != nil || out == nil {
		return map[string]any{"raw": text}, nil
	}
	return out, nil
}
