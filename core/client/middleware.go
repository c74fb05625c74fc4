package client

import (
	"context"

	"github.com/calcagent/calcagent/providers/ai"
)

// SendFunc is a function that sends a chat request to the LLM provider and
// returns the completed response. It is the base unit threaded through the
// send middleware chain.
type SendFunc func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)

// Middleware intercepts and optionally transforms LLM send requests and
// responses. Each Middleware receives the next SendFunc in the chain and
// returns a new SendFunc that wraps it. Middlewares are applied
// outermost-first: the first middleware in the slice is the outermost wrapper.
type Middleware func(next SendFunc) SendFunc

// MiddlewareConfig wraps a send middleware for installation via
// [WithMiddlewares]. The Send field is required; a nil Send causes [New] to
// return a descriptive error.
type MiddlewareConfig struct {
	// Send is the middleware applied to every SendMessage call.
	Send Middleware
}

// buildSendChain constructs the linear send middleware chain from the slice
// of MiddlewareConfig values. The base function calls the provider directly.
// Middlewares are applied in reverse order so that the first entry in the
// slice becomes the outermost wrapper, i.e. the first to execute on an
// incoming request.
func buildSendChain(provider ai.Provider, middlewares []MiddlewareConfig) SendFunc {
	// Base function: direct provider call.
	var chain SendFunc = func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
		return provider.SendMessage(ctx, request)
	}

	// Apply middlewares in reverse so that middlewares[0] is outermost.
	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i].Send(chain)
	}

	return chain
}
