package arithmetic

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/calcagent/calcagent/providers/tool"
)

// ToFloat converts an LLM-supplied operand into a float64. Operands usually
// arrive as JSON numbers, but models occasionally send them as strings
// ("12", " 3.5 "), so both forms are accepted. Anything else fails with
// [ErrInvalidInput].
func ToFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidInput, v)
		}
		return parsed, nil
	case nil:
		return 0, fmt.Errorf("%w: missing operand", ErrInvalidInput)
	default:
		return 0, fmt.Errorf("%w: unsupported operand type %T", ErrInvalidInput, value)
	}
}

// Add returns a + b after coercing both operands.
func Add(a, b any) (float64, error) {
	left, right, err := coercePair(a, b)
	if err != nil {
		return 0, err
	}
	return left + right, nil
}

// Subtract returns a - b after coercing both operands.
func Subtract(a, b any) (float64, error) {
	left, right, err := coercePair(a, b)
	if err != nil {
		return 0, err
	}
	return left - right, nil
}

// Multiply returns a * b after coercing both operands.
func Multiply(a, b any) (float64, error) {
	left, right, err := coercePair(a, b)
	if err != nil {
		return 0, err
	}
	return left * right, nil
}

// Divide returns a / b after coercing both operands. A zero divisor fails
// with [ErrDivisionByZero] instead of producing an IEEE 754 infinity, so the
// failure can be surfaced as a controlled message rather than "+Inf".
func Divide(a, b any) (float64, error) {
	left, right, err := coercePair(a, b)
	if err != nil {
		return 0, err
	}
	if right == 0 {
		return 0, ErrDivisionByZero
	}
	return left / right, nil
}

func coercePair(a, b any) (float64, float64, error) {
	left, err := ToFloat(a)
	if err != nil {
		return 0, 0, err
	}
	right, err := ToFloat(b)
	if err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

// Input holds the two operands for a binary arithmetic tool call. Operands
// are declared as any so string-typed numbers from the model are coerced
// instead of rejected at the JSON layer.
type Input struct {
	A any `json:"a" jsonschema:"description=First operand,required"`
	B any `json:"b" jsonschema:"description=Second operand,required"`
}

// Output carries the single floating-point result of an arithmetic tool.
type Output struct {
	Result float64 `json:"result" jsonschema:"description=The numeric result of the operation"`
}

// NewAddTool returns the "add" tool.
func NewAddTool() *tool.Tool[Input, Output] {
	return tool.NewTool[Input, Output]("add",
		func(ctx context.Context, in Input) (Output, error) {
			result, err := Add(in.A, in.B)
			return Output{Result: result}, err
		},
		tool.WithDescription("Add exactly two numbers. Use this for operations phrased as plus/add."),
	)
}

// NewSubtractTool returns the "subtract" tool.
func NewSubtractTool() *tool.Tool[Input, Output] {
	return tool.NewTool[Input, Output]("subtract",
		func(ctx context.Context, in Input) (Output, error) {
			result, err := Subtract(in.A, in.B)
			return Output{Result: result}, err
		},
		tool.WithDescription("Subtract the second number from the first. Use this for minus/subtract."),
	)
}

// NewMultiplyTool returns the "multiply" tool.
func NewMultiplyTool() *tool.Tool[Input, Output] {
	return tool.NewTool[Input, Output]("multiply",
		func(ctx context.Context, in Input) (Output, error) {
			result, err := Multiply(in.A, in.B)
			return Output{Result: result}, err
		},
		tool.WithDescription("Multiply exactly two numbers. Use this for times/multiplied by."),
	)
}

// NewDivideTool returns the "divide" tool.
func NewDivideTool() *tool.Tool[Input, Output] {
	return tool.NewTool[Input, Output]("divide",
		func(ctx context.Context, in Input) (Output, error) {
			result, err := Divide(in.A, in.B)
			return Output{Result: result}, err
		},
		tool.WithDescription("Divide the first number by the second. Never call with zero as divisor."),
	)
}

// Tools returns the four arithmetic tools in a stable order so the model
// always sees the same catalog.
func Tools() []tool.GenericTool {
	return []tool.GenericTool{
		NewAddTool(),
		NewSubtractTool(),
		NewMultiplyTool(),
		NewDivideTool(),
	}
}
