package agent

import (
	"context"
	"log/slog"
	"strings"

	"github.com/calcagent/calcagent/core/client"
	"github.com/calcagent/calcagent/core/client/middleware"
	"github.com/calcagent/calcagent/providers/ai"
	"github.com/calcagent/calcagent/providers/ai/openai"
	"github.com/calcagent/calcagent/providers/tool/arithmetic"
)

// llmRuntime is the default [Runtime]: an OpenAI-backed tool-calling client
// configured with the four arithmetic tools and the fixed system prompt.
type llmRuntime struct {
	client *client.Client
}

// newLLMRuntime builds the tool-calling client for the given configuration.
// Logging middleware is always installed; the timeout middleware only when a
// positive timeout is configured, so the default behavior remains a single
// uncancelled outbound call.
func newLLMRuntime(config Config) (*llmRuntime, error) {
	middlewares := []client.MiddlewareConfig{
		middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard),
	}
	if config.Timeout > 0 {
		middlewares = append(middlewares, middleware.NewTimeoutMiddleware(config.Timeout))
	}

	c, err := client.New(openai.NewOpenAIProvider(),
		client.WithDefaultModel(config.Model),
		client.WithSystemPrompt(systemPrompt),
		client.WithGenerationConfig(ai.GenerationConfig{Temperature: config.Temperature}),
		client.WithMiddlewares(middlewares...),
	)
	if err != nil {
		return nil, err
	}

	c.AddTools(arithmetic.Tools()...)
	return &llmRuntime{client: c}, nil
}

// Invoke runs one tool-calling conversation and returns the model's final
// text, trimmed.
func (r *llmRuntime) Invoke(ctx context.Context, query string) (string, error) {
	response, err := r.client.SendMessage(ctx, query)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(response.Content), nil
}
