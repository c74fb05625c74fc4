package agent

// Fixed user-facing strings. Every recoverable failure surfaces as one of
// these three messages, never as raw error text.
const (
	// OutOfScopeMessage is returned for empty queries and echoed by the model
	// (via the system prompt) for non-arithmetic requests.
	OutOfScopeMessage = "I can only help with basic arithmetic (add/subtract/multiply/divide). " +
		"Please provide a math expression."

	// ToolFailureMessage is returned whenever a computation cannot be
	// completed: runtime failure without a usable fallback, invalid operands,
	// or division by zero.
	ToolFailureMessage = "I couldn't compute that due to invalid input " +
		"(e.g., division by zero or non-numeric values)."

	// SetupMessage is printed when the LLM runtime cannot be constructed.
	SetupMessage = "LLM runtime is unavailable. Set OPENAI_API_KEY and verify " +
		"network access to the model endpoint."
)

// systemPrompt is the fixed instruction describing the arithmetic scope and
// the expected answer shape. The out-of-scope refusal is embedded verbatim so
// the model's refusals match the agent's own.
const systemPrompt = "You are a strict arithmetic calculator agent. " +
	"Use tools to solve arithmetic. " +
	"You may interpret minor typos and spelled numbers when intent is clear. " +
	"If the request is out of arithmetic scope, respond exactly: " + OutOfScopeMessage + " " +
	"For successful calculations, return only the final numeric result."
