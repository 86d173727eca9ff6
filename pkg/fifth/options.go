// Package fifth provides the public API for the fifth interpreter.
package fifth

import (
	"io"

	"nickandperla.net/fifth/internal/eval"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithPrelude sets a custom prelude source to be loaded on startup. If not
// set, DefaultPrelude is used.
func WithPrelude(source string) Option {
	return func(r *Runtime) { r.prelude = source }
}

// WithNoPrelude disables loading the prelude.
func WithNoPrelude() Option {
	return func(r *Runtime) { r.noPrelude = true }
}

// WithStepLimit bounds the work done per call (0 = unlimited). An exceeded
// limit surfaces as a recoverable error; the session survives.
func WithStepLimit(n int) Option {
	return func(r *Runtime) {
		r.evalOpts = append(r.evalOpts, eval.WithStepLimit(n))
	}
}

// WithOutputWriter tees sink output to writer as it is produced.
func WithOutputWriter(writer func(text string) error) Option {
	return func(r *Runtime) {
		r.evalOpts = append(r.evalOpts, eval.WithOutputWriter(eval.OutputWriter(writer)))
	}
}

// WithOutput tees sink output to an io.Writer.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) {
		r.evalOpts = append(r.evalOpts, eval.WithOutputWriter(func(text string) error {
			_, err := w.Write([]byte(text))
			return err
		}))
	}
}
