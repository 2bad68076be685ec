// Package render produces source-representation Go text from a recovered
// shape, closing the round trip.
package render

import (
	"fmt"

	"rrt/internal/reverse"
)

// RoundTrip renders a recovered condition/result triple as a minimal Go
// function definition fragment (no package clause; the verification engine
// evaluates it into an already-loaded module).
//
// Parameters are always exactly `a, b float64`, regardless of the original
// signature: the reverse extractors do not track parameter lists, so the
// original names and count are not recoverable. This is a known narrowing
// carried over from the translation design, not an oversight.
func RoundTrip(rec *reverse.Recovered) string {
	return fmt.Sprintf(`func %s(a, b float64) float64 {
	if %s {
		return %s
	} else {
		return %s
	}
}
`, rec.Name, rec.Cond, rec.True, rec.False)
}

// File renders the recovered function as a standalone Go source file in the
// named package. This is the on-disk artifact form; the in-memory round trip
// keeps using the bare RoundTrip fragment.
func File(pkg string, rec *reverse.Recovered) string {
	return fmt.Sprintf("package %s\n\n%s", pkg, RoundTrip(rec))
}
