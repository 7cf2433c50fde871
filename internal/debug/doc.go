// Package debug provides assertions that exist only in debug builds.
//
// Build with the debug tag to enable them:
//
//	go test -tags debug ./...
//
// In every other build Assert is an empty function and Enabled is the
// constant false, so guarded call sites compile away:
//
//	if debug.Enabled {
//	    debug.Assert(!shape.Ignore(ix), "!Ignore(ix)")
//	}
package debug

import "fmt"

// AssertionError is the panic value raised by a failed assertion.
type AssertionError struct {
	File string // Source file of the failing call site
	Line int    // Line of the failing call site
	Expr string // Text of the asserted condition
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s:%d: failed assertion `%s'", e.File, e.Line, e.Expr)
}
