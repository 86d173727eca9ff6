package stack

import (
	"errors"
	"testing"

	"nickandperla.net/fifth/internal/word"
)

func TestPushPopOrder(t *testing.T) {
	s := New()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	for _, want := range []word.Cell{3, 2, 1} {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("expected %d, got %d", want, got)
		}
	}
	if s.Depth() != 0 {
		t.Errorf("expected empty stack, depth %d", s.Depth())
	}
}

func TestPopUnderflow(t *testing.T) {
	s := New()
	if _, err := s.Pop(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
	// A failed pop must not disturb the stack.
	s.Push(7)
	s.Pop()
	if _, err := s.Pop(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
	if s.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", s.Depth())
	}
}

func TestPeek(t *testing.T) {
	s := New()
	s.Push(10)
	s.Push(20)

	top, err := s.Peek(0)
	if err != nil || top != 20 {
		t.Errorf("Peek(0): expected 20, got %d (%v)", top, err)
	}
	below, err := s.Peek(1)
	if err != nil || below != 10 {
		t.Errorf("Peek(1): expected 10, got %d (%v)", below, err)
	}
	if _, err := s.Peek(2); !errors.Is(err, ErrUnderflow) {
		t.Errorf("Peek(2): expected ErrUnderflow, got %v", err)
	}
	if s.Depth() != 2 {
		t.Errorf("peek must not consume; depth %d", s.Depth())
	}
}

func TestCellsIsBottomFirstCopy(t *testing.T) {
	s := New()
	s.Push(1)
	s.Push(2)

	cells := s.Cells()
	if len(cells) != 2 || cells[0] != 1 || cells[1] != 2 {
		t.Fatalf("expected [1 2], got %v", cells)
	}
	cells[0] = 99
	if v, _ := s.Peek(1); v != 1 {
		t.Errorf("Cells must copy; stack mutated to %d", v)
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.Push(1)
	s.Reset()
	if s.Depth() != 0 {
		t.Errorf("expected empty stack after reset, depth %d", s.Depth())
	}
}
