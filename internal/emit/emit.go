// Package emit renders a FunctionShape into target surface text. Each
// target has one fixed template: a declaration carrying the shape's name and
// parameters, whose sole body is the if/return/else/return pair, wrapped in
// that target's idiomatic file skeleton. Emission is total over valid
// shapes and deterministic.
package emit

import "rrt/internal/shape"

// Target names for the two supported surface syntaxes.
const (
	TargetC    = "c"
	TargetJava = "java"
)

// Emitter renders a FunctionShape into one target's fixed template.
type Emitter interface {
	// Target identifies the surface syntax this emitter produces.
	Target() string
	// Emit renders the shape. It never fails for a well-formed shape.
	Emit(fn *shape.FunctionShape) string
}

// All returns the emitters in their fixed pipeline order.
func All() []Emitter {
	return []Emitter{CEmitter{}, JavaEmitter{}}
}

// paramList renders the parameter declarations with the fixed numeric type
// both targets share.
func paramList(params []string) string {
	out := ""
	for i, p := range params {
		if i > 0 {
			out += ", "
		}
		out += "double " + p
	}
	return out
}
