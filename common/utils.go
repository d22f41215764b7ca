package common

import "fmt"

// Assert checks a condition and panics if it is false.
//
// Used for "impossible" conditions only: unhandled variants in switches
// over closed type sets, broken internal invariants. Anything that can
// legitimately happen at runtime (a bad user plan, a missing column)
// returns an ArrowDBError instead.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
