package agent

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/calcagent/calcagent/core/answer"
	"github.com/calcagent/calcagent/core/expr"
)

// ErrRuntimeUnavailable is returned by [New] when the LLM runtime cannot be
// constructed (typically a missing OPENAI_API_KEY). It is the only fatal
// error in the system; everything after construction degrades to one of the
// fixed user-facing messages.
var ErrRuntimeUnavailable = errors.New("calcagent: " + SetupMessage)

// defaultModel is used when no model override is configured.
const defaultModel = "gpt-4o-mini"

// Runtime is the single capability the agent needs from the model side:
// send one natural-language query, get back free-form text. The concrete
// implementation (provider, tools, middleware) is injected at construction so
// the orchestration policy is fully testable without a network dependency.
type Runtime interface {
	Invoke(ctx context.Context, query string) (string, error)
}

// Config holds the agent configuration. It is fixed at construction and
// never mutated afterwards; no other state is shared between queries.
type Config struct {
	// Model is the model identifier passed to the runtime.
	Model string

	// Temperature is the sampling temperature. The default of zero keeps the
	// calculator as deterministic as the provider allows.
	Temperature float32

	// DeterministicFallback enables the local expression evaluator when the
	// runtime fails. Disabled by default; the zero value follows the
	// DETERMINISTIC_FALLBACK environment variable.
	DeterministicFallback bool

	// Timeout bounds each runtime call when positive. Zero means no explicit
	// timeout, matching the historical behavior.
	Timeout time.Duration
}

// Agent answers arithmetic questions LLM-first with an optional deterministic
// safety-net fallback. Each call to [Agent.Ask] is independent; the agent
// keeps no conversation history.
type Agent struct {
	runtime  Runtime
	fallback bool
}

// Option configures [New].
type Option func(*options)

type options struct {
	config      Config
	fallbackSet bool
	runtime     Runtime
}

// WithModel overrides the model identifier (default "gpt-4o-mini").
func WithModel(model string) Option {
	return func(o *options) {
		if model != "" {
			o.config.Model = model
		}
	}
}

// WithTemperature overrides the sampling temperature (default 0).
func WithTemperature(temperature float32) Option {
	return func(o *options) {
		o.config.Temperature = temperature
	}
}

// WithDeterministicFallback explicitly enables or disables the deterministic
// fallback, overriding the DETERMINISTIC_FALLBACK environment default.
func WithDeterministicFallback(enabled bool) Option {
	return func(o *options) {
		o.config.DeterministicFallback = enabled
		o.fallbackSet = true
	}
}

// WithTimeout bounds each runtime call. Zero (the default) means no explicit
// timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.config.Timeout = timeout
	}
}

// WithRuntime injects a custom [Runtime], bypassing the default OpenAI-backed
// construction. Intended for tests and for embedding the agent behind other
// model runtimes.
func WithRuntime(runtime Runtime) Option {
	return func(o *options) {
		o.runtime = runtime
	}
}

// New constructs an [Agent]. Environment variables are loaded from a .env
// file when present. Unless a runtime is injected via [WithRuntime], the
// default OpenAI-backed runtime is built, which requires OPENAI_API_KEY;
// a missing key fails with [ErrRuntimeUnavailable].
func New(opts ...Option) (*Agent, error) {
	// Missing .env files are fine; the environment may be set directly.
	_ = godotenv.Load()

	o := &options{
		config: Config{Model: defaultModel},
	}
	for _, opt := range opts {
		opt(o)
	}

	if !o.fallbackSet {
		o.config.DeterministicFallback = isTruthyEnv(os.Getenv("DETERMINISTIC_FALLBACK"))
	}

	runtime := o.runtime
	if runtime == nil {
		if os.Getenv("OPENAI_API_KEY") == "" {
			return nil, ErrRuntimeUnavailable
		}

		built, err := newLLMRuntime(o.config)
		if err != nil {
			return nil, ErrRuntimeUnavailable
		}
		runtime = built
	}

	return &Agent{
		runtime:  runtime,
		fallback: o.config.DeterministicFallback,
	}, nil
}

// Ask processes one query and returns a single user-facing response. The
// response is always one of: a float-formatted number, the model's verbatim
// non-numeric text, or a fixed message. Raw error text never reaches the
// caller.
//
// The per-query state machine is terminal after one response:
// an empty query short-circuits to the out-of-scope message; otherwise the
// runtime is invoked and its output normalized; only if the runtime fails is
// the deterministic fallback considered, and only for strict expressions.
func (a *Agent) Ask(ctx context.Context, query string) string {
	cleanQuery := strings.TrimSpace(query)
	if cleanQuery == "" {
		return OutOfScopeMessage
	}

	// LLM is always first; the fallback exists for runtime failures only.
	output, err := a.runtime.Invoke(ctx, cleanQuery)
	if err == nil {
		if value, ok := answer.ExtractNumeric(output); ok {
			return answer.FormatNumeric(value)
		}
		if output != "" {
			return output
		}
		return ToolFailureMessage
	}

	return a.askFallback(cleanQuery)
}

// askFallback evaluates the query locally after a runtime failure. It never
// interprets natural language, only strings already composed exclusively of
// digits, whitespace, operators, parentheses, and decimal points.
func (a *Agent) askFallback(query string) string {
	if !a.fallback || !expr.IsStrictExpression(query) {
		return ToolFailureMessage
	}

	value, err := expr.Evaluate(query)
	if err != nil {
		return ToolFailureMessage
	}
	return answer.FormatNumeric(value)
}

// isTruthyEnv parses common truthy environment variable values.
func isTruthyEnv(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
