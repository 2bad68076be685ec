// Package extract parses Go source text into the structural FunctionShape
// model. Only a narrow shape is supported: a package-level function whose
// entire body is a single if/else where each branch returns one expression
// from the shared arithmetic/comparison subset. Anything else is rejected
// with a specific sentinel error rather than silently narrowed.
package extract

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"rrt/internal/shape"
)

var (
	// ErrNotFound means a function name was requested but no function with
	// that name exists in the source.
	ErrNotFound = errors.New("function not found in source")

	// ErrNoFunctionFound means the source defines no functions at all.
	ErrNoFunctionFound = errors.New("no function found in source")

	// ErrUnsupportedBodyShape means the body is not a single if/else with
	// one return per branch.
	ErrUnsupportedBodyShape = errors.New("unsupported function body shape")

	// ErrUnsupportedSignature means the parameter list uses features the
	// shape model does not carry (variadic, unnamed parameters).
	ErrUnsupportedSignature = errors.New("unsupported function signature")

	// ErrUnsupportedExpression means an expression node falls outside the
	// shared arithmetic/comparison subset.
	ErrUnsupportedExpression = errors.New("unsupported expression")
)

// PackageName reports the package clause of a complete Go source file.
func PackageName(src string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "source.go", src, parser.PackageClauseOnly)
	if err != nil {
		return "", fmt.Errorf("parse source: %w", err)
	}
	return file.Name.Name, nil
}

// Function extracts the named function from src, or the first function when
// name is empty. src must be a complete Go source file.
func Function(src, name string) (*shape.FunctionShape, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "source.go", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}

	var decl *ast.FuncDecl
	for _, d := range file.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Recv != nil {
			continue
		}
		if name == "" || fd.Name.Name == name {
			decl = fd
			break
		}
	}

	if decl == nil {
		if !hasAnyFunction(file) {
			return nil, ErrNoFunctionFound
		}
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	params, err := extractParams(decl.Type)
	if err != nil {
		return nil, err
	}

	cond, trueRes, falseRes, err := extractBody(decl)
	if err != nil {
		return nil, err
	}

	return &shape.FunctionShape{
		Name:        decl.Name.Name,
		Params:      params,
		Cond:        cond,
		TrueResult:  trueRes,
		FalseResult: falseRes,
	}, nil
}

func hasAnyFunction(file *ast.File) bool {
	for _, d := range file.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok && fd.Recv == nil {
			return true
		}
	}
	return false
}

// extractParams collects parameter names positionally, in declaration
// order. Variadic and unnamed parameters have no place in the shape model.
func extractParams(ft *ast.FuncType) ([]string, error) {
	if ft.Params == nil {
		return nil, nil
	}
	var params []string
	for _, field := range ft.Params.List {
		if _, variadic := field.Type.(*ast.Ellipsis); variadic {
			return nil, fmt.Errorf("%w: variadic parameter", ErrUnsupportedSignature)
		}
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("%w: unnamed parameter", ErrUnsupportedSignature)
		}
		for _, n := range field.Names {
			params = append(params, n.Name)
		}
	}
	return params, nil
}

// extractBody enforces the single top-level conditional shape: exactly one
// if statement whose then and else blocks each contain exactly one
// single-value return.
func extractBody(decl *ast.FuncDecl) (cond, trueRes, falseRes shape.Expr, err error) {
	if decl.Body == nil || len(decl.Body.List) != 1 {
		return nil, nil, nil, fmt.Errorf("%w: body of %s must be a single if/else", ErrUnsupportedBodyShape, decl.Name.Name)
	}

	ifStmt, ok := decl.Body.List[0].(*ast.IfStmt)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: body of %s is not a conditional", ErrUnsupportedBodyShape, decl.Name.Name)
	}
	if ifStmt.Init != nil {
		return nil, nil, nil, fmt.Errorf("%w: if statement with init clause", ErrUnsupportedBodyShape)
	}
	elseBlock, ok := ifStmt.Else.(*ast.BlockStmt)
	if !ok {
		// covers both a missing else and an else-if chain
		return nil, nil, nil, fmt.Errorf("%w: %s needs a plain else branch", ErrUnsupportedBodyShape, decl.Name.Name)
	}

	trueExpr, err := branchReturn(ifStmt.Body)
	if err != nil {
		return nil, nil, nil, err
	}
	falseExpr, err := branchReturn(elseBlock)
	if err != nil {
		return nil, nil, nil, err
	}

	if cond, err = convertExpr(ifStmt.Cond); err != nil {
		return nil, nil, nil, err
	}
	if trueRes, err = convertExpr(trueExpr); err != nil {
		return nil, nil, nil, err
	}
	if falseRes, err = convertExpr(falseExpr); err != nil {
		return nil, nil, nil, err
	}
	return cond, trueRes, falseRes, nil
}

func branchReturn(block *ast.BlockStmt) (ast.Expr, error) {
	if len(block.List) != 1 {
		return nil, fmt.Errorf("%w: branch must contain exactly one return", ErrUnsupportedBodyShape)
	}
	ret, ok := block.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return nil, fmt.Errorf("%w: branch must return exactly one expression", ErrUnsupportedBodyShape)
	}
	return ret.Results[0], nil
}

var binaryOps = map[token.Token]shape.Op{
	token.ADD: shape.OpAdd,
	token.SUB: shape.OpSub,
	token.MUL: shape.OpMul,
	token.QUO: shape.OpDiv,
	token.GTR: shape.OpGt,
	token.GEQ: shape.OpGte,
	token.LSS: shape.OpLt,
	token.LEQ: shape.OpLte,
	token.EQL: shape.OpEq,
	token.NEQ: shape.OpNeq,
}

// convertExpr maps a go/ast expression into the shape model. The mapping is
// lossless over the supported subset; everything else is rejected.
func convertExpr(e ast.Expr) (shape.Expr, error) {
	switch v := e.(type) {
	case *ast.ParenExpr:
		// grouping is structural; the renderer re-derives parens
		return convertExpr(v.X)
	case *ast.Ident:
		return &shape.Ident{Name: v.Name}, nil
	case *ast.BasicLit:
		if v.Kind != token.INT && v.Kind != token.FLOAT {
			return nil, fmt.Errorf("%w: %s literal %q", ErrUnsupportedExpression, v.Kind, v.Value)
		}
		return &shape.Number{Text: v.Value}, nil
	case *ast.BinaryExpr:
		op, ok := binaryOps[v.Op]
		if !ok {
			return nil, fmt.Errorf("%w: operator %q", ErrUnsupportedExpression, v.Op)
		}
		left, err := convertExpr(v.X)
		if err != nil {
			return nil, err
		}
		right, err := convertExpr(v.Y)
		if err != nil {
			return nil, err
		}
		return &shape.Binary{Op: op, Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedExpression, e)
	}
}
