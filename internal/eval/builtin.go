package eval

import (
	"fmt"
	"strings"

	"nickandperla.net/fifth/internal/stack"
	"nickandperla.net/fifth/internal/token"
	"nickandperla.net/fifth/internal/word"
)

// primFunc is the native behavior behind a primitive word.
type primFunc func(e *Evaluator) error

// primTable dispatches primitive codes to their native behavior.
var primTable = [word.CodeMax]primFunc{
	word.CodeAdd:   primAdd,
	word.CodeSub:   primSub,
	word.CodeMul:   primMul,
	word.CodeDiv:   primDiv,
	word.CodeMod:   primMod,
	word.CodeEq:    primEq,
	word.CodeLt:    primLt,
	word.CodeGt:    primGt,
	word.CodeDup:   primDup,
	word.CodeDrop:  primDrop,
	word.CodeSwap:  primSwap,
	word.CodeOver:  primOver,
	word.CodeRot:   primRot,
	word.CodeDepth: primDepth,
	word.CodeDot:   primDot,
	word.CodeEmit:  primEmit,
	word.CodeCR:    primCR,
	word.CodeDotS:  primDotS,
	word.CodeWords: primWords,
}

// seedWords returns the primitive dictionary entries, in the order WORDS
// reports them.
func seedWords() []*word.Word {
	seeds := []struct {
		name string
		code word.Code
	}{
		{"+", word.CodeAdd},
		{"-", word.CodeSub},
		{"*", word.CodeMul},
		{"/", word.CodeDiv},
		{"MOD", word.CodeMod},
		{"DUP", word.CodeDup},
		{"DROP", word.CodeDrop},
		{"SWAP", word.CodeSwap},
		{"OVER", word.CodeOver},
		{"ROT", word.CodeRot},
		{"DEPTH", word.CodeDepth},
		{"=", word.CodeEq},
		{"<", word.CodeLt},
		{">", word.CodeGt},
		{".", word.CodeDot},
		{"EMIT", word.CodeEmit},
		{"CR", word.CodeCR},
		{".S", word.CodeDotS},
		{"WORDS", word.CodeWords},
		{token.Define, word.CodeMarker},
		{token.EndDefine, word.CodeMarker},
		{token.If, word.CodeMarker},
		{token.Else, word.CodeMarker},
		{token.Then, word.CodeMarker},
		{token.Begin, word.CodeMarker},
		{token.Until, word.CodeMarker},
		{token.Do, word.CodeMarker},
		{token.Loop, word.CodeMarker},
		{token.Index, word.CodeMarker},
	}

	words := make([]*word.Word, len(seeds))
	for i, s := range seeds {
		words[i] = &word.Word{Name: s.name, Code: s.code}
	}
	return words
}

// pop2 removes the top two cells, checking depth up front so an underflow
// leaves the stack unchanged. Returns a below b, b from the top.
func (e *Evaluator) pop2() (a, b word.Cell, err error) {
	if e.stack.Depth() < 2 {
		return 0, 0, stack.ErrUnderflow
	}
	b, _ = e.stack.Pop()
	a, _ = e.stack.Pop()
	return a, b, nil
}

// boolFlag is the canonical truth cell: -1 for true, 0 for false.
func boolFlag(v bool) word.Cell {
	if v {
		return -1
	}
	return 0
}

func primAdd(e *Evaluator) error {
	a, b, err := e.pop2()
	if err != nil {
		return err
	}
	e.stack.Push(a + b)
	return nil
}

func primSub(e *Evaluator) error {
	a, b, err := e.pop2()
	if err != nil {
		return err
	}
	e.stack.Push(a - b)
	return nil
}

func primMul(e *Evaluator) error {
	a, b, err := e.pop2()
	if err != nil {
		return err
	}
	e.stack.Push(a * b)
	return nil
}

func primDiv(e *Evaluator) error {
	a, b, err := e.pop2()
	if err != nil {
		return err
	}
	if b == 0 {
		return ErrDivisionByZero
	}
	e.stack.Push(a / b)
	return nil
}

func primMod(e *Evaluator) error {
	a, b, err := e.pop2()
	if err != nil {
		return err
	}
	if b == 0 {
		return ErrDivisionByZero
	}
	e.stack.Push(a % b)
	return nil
}

func primEq(e *Evaluator) error {
	a, b, err := e.pop2()
	if err != nil {
		return err
	}
	e.stack.Push(boolFlag(a == b))
	return nil
}

func primLt(e *Evaluator) error {
	a, b, err := e.pop2()
	if err != nil {
		return err
	}
	e.stack.Push(boolFlag(a < b))
	return nil
}

func primGt(e *Evaluator) error {
	a, b, err := e.pop2()
	if err != nil {
		return err
	}
	e.stack.Push(boolFlag(a > b))
	return nil
}

func primDup(e *Evaluator) error {
	v, err := e.stack.Peek(0)
	if err != nil {
		return err
	}
	e.stack.Push(v)
	return nil
}

func primDrop(e *Evaluator) error {
	_, err := e.stack.Pop()
	return err
}

func primSwap(e *Evaluator) error {
	a, b, err := e.pop2()
	if err != nil {
		return err
	}
	e.stack.Push(b)
	e.stack.Push(a)
	return nil
}

func primOver(e *Evaluator) error {
	v, err := e.stack.Peek(1)
	if err != nil {
		return err
	}
	e.stack.Push(v)
	return nil
}

func primRot(e *Evaluator) error {
	if e.stack.Depth() < 3 {
		return stack.ErrUnderflow
	}
	c, _ := e.stack.Pop()
	b, _ := e.stack.Pop()
	a, _ := e.stack.Pop()
	e.stack.Push(b)
	e.stack.Push(c)
	e.stack.Push(a)
	return nil
}

func primDepth(e *Evaluator) error {
	e.stack.Push(word.Cell(e.stack.Depth()))
	return nil
}

func primDot(e *Evaluator) error {
	v, err := e.stack.Pop()
	if err != nil {
		return err
	}
	return e.emit(fmt.Sprintf("%d ", v))
}

func primEmit(e *Evaluator) error {
	v, err := e.stack.Pop()
	if err != nil {
		return err
	}
	return e.emit(string(rune(v)))
}

func primCR(e *Evaluator) error {
	return e.emit("\n")
}

func primDotS(e *Evaluator) error {
	cells := e.stack.Cells()
	var sb strings.Builder
	fmt.Fprintf(&sb, "<%d> ", len(cells))
	for _, c := range cells {
		fmt.Fprintf(&sb, "%d ", c)
	}
	return e.emit(sb.String())
}

func primWords(e *Evaluator) error {
	return e.emit(strings.Join(e.dict.Names(), " ") + "\n")
}
