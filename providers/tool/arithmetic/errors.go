package arithmetic

import "errors"

// ErrInvalidInput is returned when an operand cannot be coerced to a number.
// Use [errors.Is] to classify tool failures without string matching.
var ErrInvalidInput = errors.New("calcagent: non-numeric value received")

// ErrDivisionByZero is returned by [Divide] when the divisor equals zero.
var ErrDivisionByZero = errors.New("calcagent: division by zero is not allowed")
