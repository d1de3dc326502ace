package llm

import "careersight/internal/llmclient"

// Middleware wraps a TextGenerator with a cross-cutting concern.
type Middleware func(llmclient.TextGenerator) llmclient.TextGenerator

// Chain applies middlewares so that the first listed is the outermost.
func Chain(base llmclient.TextGenerator, mws ...Middleware) llmclient.TextGenerator {
	for i := len(mws) - 1; i >= 0; i-- {
		base = mws[i](base)
	}
	return base
}
