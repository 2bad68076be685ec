package shape

// FunctionShape is the structural model of a supported function: a name, an
// ordered parameter list, and exactly one condition guarding exactly two
// result expressions. It is produced fresh by each extraction and consumed
// immediately by the emitters; it has no identity beyond a single run.
type FunctionShape struct {
	Name        string
	Params      []string
	Cond        Expr
	TrueResult  Expr
	FalseResult Expr
}
