package flex

import "fmt"

// AssertionsEnabled gates the engine's internal contract checks. They
// default to on, matching a debug build; a release-minded embedder can
// set this to false once to compile the checks out of the hot path — Go
// has no preprocessor, so this boolean is the idiomatic stand-in.
var AssertionsEnabled = true

// assertf panics with a formatted message if cond is false and assertions
// are enabled. It implements the "assertions that abort the process"
// error-handling design used throughout the tree: insertion, reset,
// MarkDirty, baseline and SetMemoryFuncs contract violations all go
// through this helper.
func assertf(cond bool, format string, args ...any) {
	if !cond && AssertionsEnabled {
		panic(fmt.Sprintf(format, args...))
	}
}
