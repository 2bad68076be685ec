// Package shape defines the structural model shared by the extractor, the
// target emitters and the round-trip renderer: a small expression tree plus
// the FunctionShape that owns it. The model is syntax-neutral; the supported
// operator set is written identically in Go, C and Java.
package shape

import "strings"

// Op is a binary operator token in the shared subset.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpGt  Op = ">"
	OpGte Op = ">="
	OpLt  Op = "<"
	OpLte Op = "<="
	OpEq  Op = "=="
	OpNeq Op = "!="
)

// precedence levels: comparisons bind loosest, then additive, then
// multiplicative. Used to re-derive the minimal parenthesization when
// rendering.
const (
	precCompare = 1
	precAdd     = 2
	precMul     = 3
)

func (o Op) precedence() int {
	switch o {
	case OpMul, OpDiv:
		return precMul
	case OpAdd, OpSub:
		return precAdd
	default:
		return precCompare
	}
}

// Expr is a node in the expression tree. Nodes are immutable once built and
// owned exclusively by the FunctionShape that references them.
type Expr interface {
	render(b *strings.Builder)
	precedence() int
}

// Ident is a bare identifier reference.
type Ident struct {
	Name string
}

// Number is a numeric literal. Text carries the literal exactly as written
// in the source so that `1` and `1.0` round-trip byte-identically.
type Number struct {
	Text string
}

// Binary applies Op to two sub-expressions.
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (e *Ident) render(b *strings.Builder)  { b.WriteString(e.Name) }
func (e *Number) render(b *strings.Builder) { b.WriteString(e.Text) }

func (e *Ident) precedence() int  { return precMul + 1 }
func (e *Number) precedence() int { return precMul + 1 }

func (e *Binary) precedence() int { return e.Op.precedence() }

func (e *Binary) render(b *strings.Builder) {
	renderChild(b, e.Left, e, false)
	b.WriteByte(' ')
	b.WriteString(string(e.Op))
	b.WriteByte(' ')
	renderChild(b, e.Right, e, true)
}

// renderChild parenthesizes a sub-expression when its operator binds looser
// than the parent, or equally loose on the right of a non-commutative
// operator (a - (b - c), a / (b / c)).
func renderChild(b *strings.Builder, child Expr, parent *Binary, right bool) {
	need := child.precedence() < parent.precedence()
	if !need && right && child.precedence() == parent.precedence() {
		need = parent.Op == OpSub || parent.Op == OpDiv
	}
	if need {
		b.WriteByte('(')
		child.render(b)
		b.WriteByte(')')
		return
	}
	child.render(b)
}

// Render produces the expression in the shared surface syntax. The output is
// deterministic for a given tree.
func Render(e Expr) string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}
