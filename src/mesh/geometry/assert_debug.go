//go:build debug

package geometry

// DebugChecks reports whether invariant assertions are compiled in.
const DebugChecks = true

func assert(cond bool, msg string) {
	if !cond {
		panic("geometry: " + msg)
	}
}
