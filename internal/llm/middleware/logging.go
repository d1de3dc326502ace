package llm

import (
	"context"
	"log"
	"time"

	"careersight/internal/llmclient"
)

// WithLogging logs request size, latency and errors. Provide a custom
// logger or nil to use log.Default().
func WithLogging(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next llmclient.TextGenerator) llmclient.TextGenerator {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next llmclient.TextGenerator
	log  *log.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) GenerateText(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	l.log.Printf("LLM request (%s): %d bytes", l.next.Name(), len(prompt))
	out, err := l.next.GenerateText(ctx, prompt)
	if err != nil {
		l.log.Printf("LLM error (%s) after %s: %v", l.next.Name(), time.Since(start).Round(time.Millisecond), err)
		return out, err
	}
	l.log.Printf("LLM response (%s): %d bytes in %s", l.next.Name(), len(out), time.Since(start).Round(time.Millisecond))
	return out, nil
}
