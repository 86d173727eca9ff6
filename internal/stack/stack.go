// Package stack implements fifth's data stack.
package stack

import (
	"errors"

	"nickandperla.net/fifth/internal/word"
)

// ErrUnderflow is returned when an operation needs more cells than the
// stack holds. The stack is left unchanged by the failed operation.
var ErrUnderflow = errors.New("stack underflow")

// Stack is a LIFO sequence of cells, operated on at the top only. The last
// cell pushed is the first popped.
type Stack struct {
	cells []word.Cell
}

// New creates an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push appends a cell at the top.
func (s *Stack) Push(c word.Cell) {
	s.cells = append(s.cells, c)
}

// Pop removes and returns the top cell.
func (s *Stack) Pop() (word.Cell, error) {
	if len(s.cells) == 0 {
		return 0, ErrUnderflow
	}
	c := s.cells[len(s.cells)-1]
	s.cells = s.cells[:len(s.cells)-1]
	return c, nil
}

// Peek returns the cell depth positions below the top without removing it;
// Peek(0) is the top of stack.
func (s *Stack) Peek(depth int) (word.Cell, error) {
	i := len(s.cells) - 1 - depth
	if depth < 0 || i < 0 {
		return 0, ErrUnderflow
	}
	return s.cells[i], nil
}

// Depth returns the number of cells on the stack.
func (s *Stack) Depth() int {
	return len(s.cells)
}

// Cells returns a bottom-first copy of the stack contents.
func (s *Stack) Cells() []word.Cell {
	out := make([]word.Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.cells = s.cells[:0]
}
