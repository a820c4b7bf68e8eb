//go:build !debug

package geometry

// DebugChecks reports whether invariant assertions are compiled in.
// Without the debug build tag every precondition is trusted: violating
// one is undefined behavior, not a recoverable error.
const DebugChecks = false

func assert(cond bool, msg string) {}
