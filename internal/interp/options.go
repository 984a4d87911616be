// Package interp wires the lexer, parser, resolver, and evaluator into
// one embeddable Interpreter (spec §6). Grounded on the teacher's
// internal/interp/options.go: an Options struct plus functional
// Option values, which pkg/hetu re-exports.
package interp

import (
	"io"
	"os"
)

// Options is the configuration surface an Option mutates. Exported so
// that other packages (tests, pkg/hetu) can construct one without
// importing unexported fields.
type Options struct {
	WorkingDirectory string
	Debug            bool
	MaxCallDepth     int
	FileReader       func(path string) (string, error)
	AsyncFileReader  func(path string) (<-chan string, <-chan error)
	Output           io.Writer
}

// Option configures an Interpreter at construction time.
type Option func(*Options)

func WithWorkingDirectory(dir string) Option {
	return func(o *Options) { o.WorkingDirectory = dir }
}

func WithDebug(debug bool) Option {
	return func(o *Options) { o.Debug = debug }
}

func WithMaxCallDepth(n int) Option {
	return func(o *Options) { o.MaxCallDepth = n }
}

// WithFileReader installs the synchronous path->source callback spec §6
// requires every interpreter to have, for `import` and `eval_file`.
func WithFileReader(reader func(path string) (string, error)) Option {
	return func(o *Options) { o.FileReader = reader }
}

// WithAsyncFileReader installs the optional asynchronous variant (spec
// §5, "One embedding entry point (evalf) is asynchronous solely because
// it awaits the host's file-reader callback").
func WithAsyncFileReader(reader func(path string) (<-chan string, <-chan error)) Option {
	return func(o *Options) { o.AsyncFileReader = reader }
}

// WithOutput redirects where the `print` builtin writes (default
// os.Stdout), matching the teacher's interp.New(os.Stdout) constructor.
func WithOutput(w io.Writer) Option {
	return func(o *Options) { o.Output = w }
}

func defaultOptions() *Options {
	return &Options{MaxCallDepth: 1024, Output: os.Stdout}
}
