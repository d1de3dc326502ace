package llm

import (
	"context"
	"time"

	"careersight/internal/llmclient"
)

// WithTimeout bounds each GenerateText call. The caller's context still
// applies; whichever deadline is earlier wins.
func WithTimeout(d time.Duration) Middleware {
	return func(next llmclient.TextGenerator) llmclient.TextGenerator {
		if d <= 0 {
			return next
		}
		return &timeout{next: next, d: d}
	}
}

type timeout struct {
	next llmclient.TextGenerator
	d    time.Duration
}

func (t *timeout) Name() string { return t.next.Name() }
func (t *timeout) Close() error { return t.next.Close() }

func (t *timeout) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.next.GenerateText(ctx, prompt)
}
