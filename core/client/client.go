package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/calcagent/calcagent/providers/ai"
	"github.com/calcagent/calcagent/providers/tool"
)

// ErrMaxToolIterations is returned by [Client.SendMessage] when the model
// keeps requesting tool calls past the configured iteration cap. Use
// [errors.Is] to detect it.
var ErrMaxToolIterations = errors.New("calcagent: maximum tool call iterations exceeded")

// defaultMaxToolCallIterations bounds the tool loop so a confused model
// cannot spin the conversation forever.
const defaultMaxToolCallIterations = 5

// Client drives a tool-calling conversation with an [ai.Provider]. Each call
// to [Client.SendMessage] is an independent conversation: the client keeps no
// state between queries beyond its read-only configuration.
type Client struct {
	provider              ai.Provider
	catalog               *tool.Catalog
	systemPrompt          string
	defaultModel          string
	generation            *ai.GenerationConfig
	maxToolCallIterations int
	sendChain             SendFunc
}

// ClientOptions holds the configuration applied by [New] option functions.
type ClientOptions struct {
	SystemPrompt          string
	DefaultModel          string
	Generation            *ai.GenerationConfig
	MaxToolCallIterations int
	Middlewares           []MiddlewareConfig
}

// WithSystemPrompt sets the system instruction sent with every request.
func WithSystemPrompt(prompt string) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.SystemPrompt = prompt
	}
}

// WithDefaultModel sets the model identifier used for every request.
func WithDefaultModel(model string) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.DefaultModel = model
	}
}

// WithGenerationConfig sets sampling parameters (temperature, max tokens)
// attached to every request.
func WithGenerationConfig(config ai.GenerationConfig) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Generation = &config
	}
}

// WithMaxToolCallIterations overrides the tool loop iteration cap.
func WithMaxToolCallIterations(max int) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.MaxToolCallIterations = max
	}
}

// WithMiddlewares installs the send middleware chain, outermost-first.
func WithMiddlewares(middlewares ...MiddlewareConfig) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Middlewares = append(o.Middlewares, middlewares...)
	}
}

// New constructs a [Client] around the given provider. Returns an error if
// the provider is nil or any middleware entry carries a nil Send function.
func New(provider ai.Provider, options ...func(*ClientOptions)) (*Client, error) {
	if provider == nil {
		return nil, errors.New("calcagent: provider must not be nil")
	}

	opts := &ClientOptions{
		MaxToolCallIterations: defaultMaxToolCallIterations,
	}
	for _, option := range options {
		option(opts)
	}

	for i, mw := range opts.Middlewares {
		if mw.Send == nil {
			return nil, fmt.Errorf("calcagent: middleware %d has a nil Send function", i)
		}
	}

	return &Client{
		provider:              provider,
		catalog:               tool.NewCatalog(),
		systemPrompt:          opts.SystemPrompt,
		defaultModel:          opts.DefaultModel,
		generation:            opts.Generation,
		maxToolCallIterations: opts.MaxToolCallIterations,
		sendChain:             buildSendChain(provider, opts.Middlewares),
	}, nil
}

// AddTools registers tools for dispatch and advertisement. Returns the client
// for chaining.
func (c *Client) AddTools(tools ...tool.GenericTool) *Client {
	c.catalog.AddTools(tools...)
	return c
}

// SendMessage runs one complete tool-calling conversation for content and
// returns the model's final response. Tool calls requested by the model are
// dispatched through the catalog and their results fed back until the
// provider signals a terminal completion or the iteration cap is hit.
func (c *Client) SendMessage(ctx context.Context, content string) (*ai.ChatResponse, error) {
	messages := []ai.Message{{Role: ai.RoleUser, Content: content}}

	for iteration := 0; iteration <= c.maxToolCallIterations; iteration++ {
		response, err := c.sendChain(ctx, ai.ChatRequest{
			Model:            c.defaultModel,
			SystemPrompt:     c.systemPrompt,
			Messages:         messages,
			Tools:            c.catalog.Descriptions(),
			GenerationConfig: c.generation,
		})
		if err != nil {
			return nil, err
		}

		messages = append(messages, ai.Message{
			Role:      ai.RoleAssistant,
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})

		if len(response.ToolCalls) == 0 {
			return response, nil
		}

		for _, call := range response.ToolCalls {
			messages = append(messages, c.dispatchToolCall(ctx, call))
		}

		if c.provider.IsStopMessage(response) {
			return response, nil
		}
	}

	return nil, ErrMaxToolIterations
}

// dispatchToolCall executes a single requested tool call and wraps the
// outcome in a standardized [ai.ToolResult] message. Failures are reported to
// the model rather than aborting the conversation, so it can recover or
// explain the problem to the user.
func (c *Client) dispatchToolCall(ctx context.Context, call ai.ToolCall) ai.Message {
	var result ai.ToolResult

	registered, found := c.catalog.Get(call.Function.Name)
	if !found {
		result = ai.NewToolResultError("tool_not_found", fmt.Sprintf("no tool named %q is registered", call.Function.Name))
	} else {
		output, err := registered.Call(ctx, call.Function.Arguments)
		if err != nil {
			result = ai.NewToolResultError("tool_execution_failed", err.Error())
		} else {
			result = ai.NewToolResultSuccess(output)
		}
	}

	content, err := result.ToJSON()
	if err != nil {
		content = `{"success":false,"error":"tool_result_encoding_failed"}`
	}

	return ai.Message{
		Role:       ai.RoleTool,
		Content:    content,
		ToolCallID: call.ID,
		Name:       call.Function.Name,
	}
}
