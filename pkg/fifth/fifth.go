package fifth

import (
	"io"
	"os"
	"strings"

	"nickandperla.net/fifth/internal/eval"
)

// Runtime is one fifth interpreter session. Its dictionary and data stack
// persist across Interpret calls, so definitions made in one call are
// usable in the next. Independent Runtimes share nothing.
type Runtime struct {
	evaluator *eval.Evaluator
	evalOpts  []eval.Option // retained so Reset rebuilds the same session
	prelude   string        // custom prelude source (if empty, uses DefaultPrelude)
	noPrelude bool          // if true, skip loading the prelude
}

// New creates a runtime with the primitive dictionary seeded and the
// prelude loaded (unless disabled). All configuration is fixed here;
// Interpret takes nothing but source text.
func New(opts ...Option) *Runtime {
	r := &Runtime{}
	for _, opt := range opts {
		opt(r)
	}
	r.evaluator = eval.New(r.evalOpts...)
	r.loadPrelude()
	return r
}

func (r *Runtime) loadPrelude() {
	if r.noPrelude {
		return
	}
	prelude := r.prelude
	if prelude == "" {
		prelude = DefaultPrelude
	}
	if prelude != "" {
		r.evaluator.Eval(prelude)
	}
}

// Interpret evaluates sourceText against the session and returns everything
// the output sink collected during the call. On failure the diagnostic is
// appended to the partial output as a final "error: ..." line; output and
// stack effects from before the failure are preserved, and the session
// remains usable.
func (r *Runtime) Interpret(sourceText string) string {
	out, err := r.evaluator.Eval(sourceText)
	if err != nil {
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		out += "error: " + err.Error() + "\n"
	}
	return out
}

// Eval evaluates a fifth string, keeping the error channel separate for
// hosts that want it.
func (r *Runtime) Eval(input string) (string, error) {
	return r.evaluator.Eval(input)
}

// EvalReader evaluates fifth source from a reader.
func (r *Runtime) EvalReader(reader io.Reader) (string, error) {
	return r.evaluator.EvalReader(reader)
}

// EvalFile evaluates a fifth file.
func (r *Runtime) EvalFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return r.EvalReader(f)
}

// Stack returns a bottom-first snapshot of the data stack.
func (r *Runtime) Stack() []int64 {
	cells := r.evaluator.Stack().Cells()
	out := make([]int64, len(cells))
	for i, c := range cells {
		out[i] = int64(c)
	}
	return out
}

// Depth returns the number of cells on the data stack.
func (r *Runtime) Depth() int {
	return r.evaluator.Stack().Depth()
}

// Words returns the dictionary names in definition order.
func (r *Runtime) Words() []string {
	return r.evaluator.Dictionary().Names()
}

// Reset discards the session and builds a fresh one with the same options.
func (r *Runtime) Reset() {
	r.evaluator = eval.New(r.evalOpts...)
	r.loadPrelude()
}
