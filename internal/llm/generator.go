// Package llm wraps the text generation model used to draft and analyze surveys.
package llm

import (
	"context"
	"errors"
)

var (
	ErrTimeout     = errors.New("llm: generation timed out")
	ErrEmptyOutput = errors.New("llm: empty output")
)

//go:generate mockgen -destination=mock/generator.go -package=mock . Generator

// Generator produces a completion for a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
