package evaluator

import "github.com/hetu-script/hetu-go/internal/interp/runtime"

// return/break/continue are non-local exits (spec §4.5, §9): internal
// signals that unwind the Go call stack via panic/recover, distinct from
// the error channel user-visible failures use. None of these types ever
// satisfies the error interface, so a signal can never leak to a host
// as an error by accident.
type returnSignal struct{ value runtime.Value }
type breakSignal struct{}
type continueSignal struct{}

// catchReturn recovers a returnSignal panicked from within body, the
// way a function activation catches `return` (spec §4.5, "call frames
// catch return"). Any other panic (a break/continue escaping a
// malformed loop, or a genuine Go panic) is re-raised.
func catchReturn(result *runtime.Value, err *error) {
	if r := recover(); r != nil {
		if sig, ok := r.(returnSignal); ok {
			*result = sig.value
			return
		}
		panic(r)
	}
}

// runLoopBody executes one iteration via run, catching break/continue.
// stop reports whether the enclosing loop should stop (break, or run
// returned an error); err carries any evaluation error.
func runLoopBody(run func() error) (stop bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case breakSignal:
				stop = true
			case continueSignal:
				// fall through: iteration ends, loop continues
			default:
				panic(r)
			}
		}
	}()
	if e := run(); e != nil {
		return true, e
	}
	return false, nil
}
