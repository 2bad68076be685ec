// Package reverse recovers expression text from generated target code by
// matching it against the single fixed template the emitters produce. This
// is deliberately a regex-class matcher, not a parser: it is only
// guaranteed correct for text shaped like the paired emitter's output, and
// it tolerates surrounding whitespace but not nested braces, extra
// statements, or semicolons inside the captured expressions.
package reverse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrPatternNotMatched means the target text contains no occurrence of the
// fixed if/return template.
var ErrPatternNotMatched = errors.New("if/return template not found in target text")

// ifReturnPattern is the shared template both targets emit:
// if ( cond ) { return t; } else { return f; }
// The condition capture is lazy and may span lines; the branch captures
// exclude semicolons so a multi-statement branch never half-matches.
var ifReturnPattern = regexp.MustCompile(
	`(?s)if\s*\(\s*(.*?)\s*\)\s*\{\s*return\s+([^;]+);\s*\}\s*else\s*\{\s*return\s+([^;]+);\s*\}`)

// Recovered carries the condition and result expressions recovered from one
// target text. The expressions are opaque text, copied through verbatim by
// the round-trip renderer; they are not re-parsed into the shape model.
// Name is supplied by the caller, not re-derived from the target text.
type Recovered struct {
	Name  string
	Cond  string
	True  string
	False string
}

// Extractor recovers a Recovered shape from one target's generated text.
type Extractor interface {
	Target() string
	Extract(text, name string) (*Recovered, error)
}

// extract matches the first template occurrence in text.
func extract(target, text, name string) (*Recovered, error) {
	m := ifReturnPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%s: %w", target, ErrPatternNotMatched)
	}
	return &Recovered{
		Name:  name,
		Cond:  strings.TrimSpace(m[1]),
		True:  strings.TrimSpace(m[2]),
		False: strings.TrimSpace(m[3]),
	}, nil
}
