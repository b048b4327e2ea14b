package llm

import (
	"context"
	"errors"
	"time"
)

// GenerateWithTimeout races g against a fixed timer. When the timer wins the
// call's context is cancelled and ErrTimeout is returned without waiting for g.
// A non-positive d disables the race.
func GenerateWithTimeout(ctx context.Context, g Generator, d time.Duration, prompt string) (string, error) {
	if d <= 0 {
		return g.Generate(ctx, prompt)
	}

	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := g.Generate(ctx, prompt)
		done <- result{text: text, err: err}
	}()

	select {
	case r := <-done:
		return r.text, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", ctx.Err()
	}
}
