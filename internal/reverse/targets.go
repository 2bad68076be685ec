package reverse

import "rrt/internal/emit"

// CExtractor recovers a shape from C-style text produced by emit.CEmitter.
type CExtractor struct{}

func (CExtractor) Target() string { return emit.TargetC }

func (CExtractor) Extract(text, name string) (*Recovered, error) {
	return extract(emit.TargetC, text, name)
}

// JavaExtractor recovers a shape from Java-style text produced by
// emit.JavaEmitter. The two targets share the brace/statement conventions
// the template captures, so the same pattern serves both; keeping separate
// extractor types keeps each emitter paired with its own inverse.
type JavaExtractor struct{}

func (JavaExtractor) Target() string { return emit.TargetJava }

func (JavaExtractor) Extract(text, name string) (*Recovered, error) {
	return extract(emit.TargetJava, text, name)
}

// ForTarget returns the extractor paired with the named emitter target.
func ForTarget(target string) (Extractor, bool) {
	switch target {
	case emit.TargetC:
		return CExtractor{}, true
	case emit.TargetJava:
		return JavaExtractor{}, true
	default:
		return nil, false
	}
}
