//go:build dscheck

// Package assert implements debug-only contract checks for the container
// packages.
//
// With the dscheck build tag the checks are live: a violated precondition
// panics immediately with the calling function, source location and the
// failed condition. Without the tag every check compiles to an empty
// function, so release builds pay nothing and a violated precondition is a
// caller bug with unspecified behavior (typically an index panic further
// down).
package assert

import (
	"fmt"
	"runtime"
)

// Enabled reports whether contract checks are compiled in.
const Enabled = true

// That panics if cond is false. cond describes a caller-side precondition,
// never a runtime condition.
func That(cond bool, condition string) {
	if cond {
		return
	}
	pc, file, line, _ := runtime.Caller(1)
	fn := "?"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}
	panic(fmt.Sprintf("dskit: assertion failed\nfunction:\t%s\nlocation:\t%s:%d\ncondition:\t%s", fn, file, line, condition))
}
