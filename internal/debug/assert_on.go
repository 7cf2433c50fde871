//go:build debug

package debug

import "runtime"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// Assert panics with an *AssertionError naming the caller's file and line
// when cond is false.
func Assert(cond bool, expr string) {
	if cond {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	panic(&AssertionError{File: file, Line: line, Expr: expr})
}
