package eval

import (
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"nickandperla.net/fifth/internal/scanner"
	"nickandperla.net/fifth/internal/stack"
	"nickandperla.net/fifth/internal/token"
	"nickandperla.net/fifth/internal/word"
)

var log = commonlog.GetLogger("fifth.eval")

// OutputWriter receives sink output as it is produced, for hosts that want
// to stream it.
type OutputWriter func(text string) error

// Evaluator owns one session: its dictionary and data stack persist across
// Eval calls. It is synchronous and non-reentrant; one call must finish
// before the next begins against the same Evaluator.
type Evaluator struct {
	dict  *Dictionary
	stack *stack.Stack

	out          strings.Builder // per-call output sink
	outputWriter OutputWriter

	stepLimit int
	steps     int

	loops []loopFrame // active DO ... LOOP frames, innermost last
}

// loopFrame tracks one active DO ... LOOP.
type loopFrame struct {
	index, limit word.Cell
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithStepLimit bounds the work done per Eval call (0 = unlimited).
// Exceeding the bound aborts the call with a StepLimitError; the session
// survives.
func WithStepLimit(n int) Option {
	return func(e *Evaluator) { e.stepLimit = n }
}

// WithOutputWriter tees sink output to w as it is produced.
func WithOutputWriter(w OutputWriter) Option {
	return func(e *Evaluator) { e.outputWriter = w }
}

// New creates an Evaluator with the primitive set seeded and an empty data
// stack.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		dict:  NewDictionary(),
		stack: stack.New(),
	}
	for _, w := range seedWords() {
		e.dict.Define(w.Name, w)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stack exposes the session's data stack.
func (e *Evaluator) Stack() *stack.Stack { return e.stack }

// Dictionary exposes the session's dictionary.
func (e *Evaluator) Dictionary() *Dictionary { return e.dict }

// Eval evaluates fifth source, returning the output produced during the
// call. On error the partial output is returned alongside it; stack and
// dictionary mutations that happened before the error remain in effect.
func (e *Evaluator) Eval(input string) (string, error) {
	return e.EvalReader(strings.NewReader(input))
}

// EvalReader evaluates fifth source from a reader.
func (e *Evaluator) EvalReader(r io.Reader) (string, error) {
	e.out.Reset()
	e.steps = 0
	e.loops = e.loops[:0]
	err := e.evalStream(scanner.New(r))
	if err != nil {
		log.Debugf("eval aborted: %v", err)
	}
	return e.out.String(), err
}

// evalStream is the top-level token loop. Execution is strictly left to
// right: each token's side effects are visible before the next token runs.
func (e *Evaluator) evalStream(scan *scanner.Scanner) error {
	for {
		item, err := scan.Next()
		if err != nil {
			return err
		}
		if item == nil {
			return nil
		}
		if err := e.step(); err != nil {
			return err
		}

		// Number interpretation wins over word lookup, as in the
		// original tokenizer.
		if v, ok := parseLiteral(item.Text); ok {
			e.stack.Push(v)
			continue
		}

		name := token.Normalize(item.Text)
		switch {
		case name == token.Comment:
			if err := skipComment(scan, item.Line); err != nil {
				return err
			}

		case name == token.Define:
			if err := e.compileDefinition(scan, item.Line); err != nil {
				return err
			}

		case token.IsStructural(name):
			// A top-level control structure: resolve it in full, then run
			// it. Stray closers error out inside compileToken.
			r := &resolver{dict: e.dict, scan: scan}
			node, err := r.compileToken(item, name)
			if err != nil {
				return err
			}
			if err := e.exec([]word.Node{node}); err != nil {
				return err
			}

		default:
			w := e.dict.Lookup(name)
			if w == nil {
				return &UnknownWordError{Name: item.Text}
			}
			if err := e.call(w); err != nil {
				return err
			}
		}
	}
}

// exec walks resolved nodes strictly left to right.
func (e *Evaluator) exec(nodes []word.Node) error {
	for _, n := range nodes {
		if err := e.step(); err != nil {
			return err
		}

		switch n := n.(type) {
		case word.Push:
			e.stack.Push(n.Value)

		case word.Call:
			if err := e.call(n.Word); err != nil {
				return err
			}

		case word.If:
			flag, err := e.stack.Pop()
			if err != nil {
				return err
			}
			branch := n.Then
			if flag == 0 {
				branch = n.Else
			}
			if err := e.exec(branch); err != nil {
				return err
			}

		case word.Until:
			for {
				if err := e.step(); err != nil {
					return err
				}
				if err := e.exec(n.Body); err != nil {
					return err
				}
				flag, err := e.stack.Pop()
				if err != nil {
					return err
				}
				if flag != 0 {
					break
				}
			}

		case word.Loop:
			limit, err := e.stack.Pop()
			if err != nil {
				return err
			}
			start, err := e.stack.Pop()
			if err != nil {
				return err
			}
			e.loops = append(e.loops, loopFrame{index: start, limit: limit})
			fi := len(e.loops) - 1
			// Each iteration costs a step even when the body is empty, so
			// the limit still bounds a bare DO ... LOOP.
			for e.loops[fi].index < e.loops[fi].limit {
				if err := e.step(); err != nil {
					e.loops = e.loops[:fi]
					return err
				}
				if err := e.exec(n.Body); err != nil {
					e.loops = e.loops[:fi]
					return err
				}
				e.loops[fi].index++
			}
			e.loops = e.loops[:fi]

		case word.Index:
			// The resolver rejects I outside DO ... LOOP, so a frame is
			// always present here.
			if len(e.loops) == 0 {
				return &CompileError{Word: token.Index, Detail: "I outside DO ... LOOP"}
			}
			e.stack.Push(e.loops[len(e.loops)-1].index)
		}
	}
	return nil
}

// call executes one word: primitives natively, definitions by walking
// their resolved body against the same stack and dictionary.
func (e *Evaluator) call(w *word.Word) error {
	if !w.Primitive() {
		return e.exec(w.Body)
	}
	if w.Code == word.CodeMarker {
		return &CompileError{Word: w.Name, Detail: w.Name + " outside a control structure"}
	}
	return primTable[w.Code](e)
}

// step enforces the optional per-call execution bound.
func (e *Evaluator) step() error {
	if e.stepLimit <= 0 {
		return nil
	}
	e.steps++
	if e.steps > e.stepLimit {
		return &StepLimitError{Limit: e.stepLimit}
	}
	return nil
}

// emit appends text to the per-call output sink.
func (e *Evaluator) emit(text string) error {
	e.out.WriteString(text)
	if e.outputWriter != nil {
		return e.outputWriter(text)
	}
	return nil
}
