package llmclient

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the provider answers without any
// usable candidate text.
var ErrEmptyResponse = errors.New("llmclient: empty response from model")

// TextGenerator is the interface for text-generation providers.
// Implementations issue exactly one outbound call per invocation and do
// not retry; cross-cutting concerns (logging, timeouts) are applied via
// middleware.
type TextGenerator interface {
	Name() string
	Close() error
	// GenerateText sends prompt and returns the provider's reply as
	// opaque text. The call is bounded by ctx.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
