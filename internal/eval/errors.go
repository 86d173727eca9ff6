package eval

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by / and MOD when the divisor is zero. The
// operands have already been consumed when it is detected.
var ErrDivisionByZero = errors.New("division by zero")

// UnknownWordError reports a token that is neither a number nor a
// dictionary entry. Malformed numbers are reported the same way; fifth does
// not distinguish them.
type UnknownWordError struct {
	Name string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word %q", e.Name)
}

// CompileError reports an unbalanced control structure or malformed
// definition, detected during resolution before anything from the offending
// structure executes.
type CompileError struct {
	Word   string // the offending word
	Line   int    // 1-based line, 0 when unknown
	Detail string
}

func (e *CompileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("compile error: %s (line %d)", e.Detail, e.Line)
	}
	return "compile error: " + e.Detail
}

// StepLimitError reports that the host-imposed execution bound was
// exceeded. The session remains usable afterward.
type StepLimitError struct {
	Limit int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("step limit of %d exceeded", e.Limit)
}
