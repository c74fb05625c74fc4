package tool

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/calcagent/calcagent/core/parse"
	"github.com/calcagent/calcagent/internal/jsonschema"
	"github.com/calcagent/calcagent/providers/ai"
)

// Tool represents a typed, callable tool that can be registered with an AI
// provider. It binds a name and description to a strongly-typed Go function
// and automatically derives JSON schemas for both input (I) and output (O)
// via reflection. Use [NewTool] to construct a Tool; use [GenericTool] for
// provider-agnostic storage and dispatch.
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
}

// GenericTool is the provider-agnostic interface for all tools.
// It abstracts over the concrete generic type parameters of [Tool] so that
// tools can be stored, dispatched, and introspected without knowing their
// exact input/output types.
type GenericTool interface {
	// ToolInfo returns the metadata (name, description, parameter schema)
	// used to advertise this tool to an AI provider.
	ToolInfo() ai.ToolDescription

	// Call invokes the tool with a JSON-encoded input string and returns a
	// JSON-encoded output string. Returns an error if parsing or execution
	// fails.
	Call(ctx context.Context, inputJson string) (string, error)
}

// funcToolOptions holds optional configuration for a tool created via [NewTool].
type funcToolOptions struct {
	Description string
}

// WithDescription sets a human-readable description for the tool.
// Providers surface this description to the language model to help it decide
// when and how to invoke the tool.
func WithDescription(description string) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Description = description
	}
}

// NewTool constructs a new [Tool] with the given name and handler function.
// JSON schemas for the input type I and output type O are derived
// automatically via reflection.
//
// Example:
//
//	addTool := tool.NewTool("add", addFunc,
//	    tool.WithDescription("Add exactly two numbers."),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(tool *funcToolOptions)) *Tool[I, O] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: toolOptions.Description,
		Parameters:  jsonschema.GenerateJSONSchema[I](),
		Output:      jsonschema.GenerateJSONSchema[O](),
		Function:    function,
	}
}

// ToolInfo returns the [ai.ToolDescription] used to advertise this tool to an
// AI provider.
func (t *Tool[I, O]) ToolInfo() ai.ToolDescription {
	return ai.ToolDescription{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
	}
}

// Call invokes the tool's underlying function with the given JSON-encoded
// input. It deserializes inputJson into the tool's input type I, executes the
// function, and returns the result serialized as JSON. Returns an error if
// JSON parsing, function execution, or output marshaling fails.
func (t *Tool[I, O]) Call(ctx context.Context, inputJson string) (string, error) {
	start := time.Now()

	// Flexibly parse the LLM-supplied input JSON into the typed input.
	parsedInput, err := parse.ParseStringAs[I](inputJson)
	if err != nil {
		slog.DebugContext(ctx, "tool input rejected",
			slog.String("tool", t.Name),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	output, err := t.Function(ctx, parsedInput)
	duration := time.Since(start)

	if err != nil {
		slog.DebugContext(ctx, "tool execution failed",
			slog.String("tool", t.Name),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	outputBytes, err := json.Marshal(output)
	if err != nil {
		return "", err
	}

	slog.DebugContext(ctx, "tool executed",
		slog.String("tool", t.Name),
		slog.Duration("duration", duration),
	)

	return string(outputBytes), nil
}
