package application

import "errors"

var (
	ErrInvalidInput              = errors.New("invalid input")
	ErrFormNotFound              = errors.New("form not found")
	ErrPasswordRequired          = errors.New("password required")
	ErrInvalidPassword           = errors.New("invalid password")
	ErrPasswordRequiredOrInvalid = errors.New("password required or invalid")
	ErrRequiredAnswerMissing     = errors.New("required answer missing")
	ErrGenerationFailed          = errors.New("ai generation failed")
	ErrAnalysisFailed            = errors.New("analysis failed")
	ErrResponsesUnavailable      = errors.New("failed to fetch responses")
	ErrPublishingDisabled        = errors.New("google forms publishing is not configured")
)
