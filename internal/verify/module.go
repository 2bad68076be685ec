// Package verify checks that a round-tripped function is behaviorally
// indistinguishable from the original. The base module and the patched
// definition are evaluated in an embedded yaegi interpreter, which gives the
// "override exactly one named entry in a live member table" semantics the
// round trip needs without shelling out to a compiler.
package verify

import (
	"fmt"
	"go/parser"
	"go/token"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// Module is the live member table a verification run queries. The oracle
// only needs named two-parameter numeric callables.
type Module interface {
	// Func resolves a named function from the module. Resolution failure is
	// a behavioral outcome (the suite will report it), not a pipeline error.
	Func(name string) (func(float64, float64) float64, error)
}

// GoModule wraps a yaegi interpreter holding one evaluated Go module. Each
// verification run builds a fresh GoModule, so patches never leak between
// runs and sibling functions always start from the base definition.
type GoModule struct {
	interp *interp.Interpreter
	pkg    string
}

// Load evaluates a complete Go source file in a fresh interpreter. All
// sibling functions are live before any patch is applied.
func Load(src string) (*GoModule, error) {
	pkg, err := packageName(src)
	if err != nil {
		return nil, fmt.Errorf("load module: %w", err)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load module: stdlib symbols: %w", err)
	}
	if _, err := i.Eval(src); err != nil {
		return nil, fmt.Errorf("load module: %w", err)
	}

	return &GoModule{interp: i, pkg: pkg}, nil
}

// Patch evaluates a function definition into the loaded module, rebinding
// exactly that symbol. Every other member keeps its base definition. Bare
// fragments are wrapped in the module's package clause before evaluation.
func (m *GoModule) Patch(fnSrc string) error {
	src := fnSrc
	if !hasPackageClause(src) {
		src = fmt.Sprintf("package %s\n\n%s", m.pkg, fnSrc)
	}
	if _, err := m.interp.Eval(src); err != nil {
		return fmt.Errorf("patch module: %w", err)
	}
	return nil
}

// Func resolves a module-level function by name and asserts the fixed
// two-parameter numeric signature the translator works with.
func (m *GoModule) Func(name string) (func(float64, float64) float64, error) {
	v, err := m.interp.Eval(m.pkg + "." + name)
	if err != nil {
		return nil, fmt.Errorf("resolve %s.%s: %w", m.pkg, name, err)
	}
	fn, ok := v.Interface().(func(float64, float64) float64)
	if !ok {
		return nil, fmt.Errorf("%s.%s is not func(float64, float64) float64", m.pkg, name)
	}
	return fn, nil
}

func packageName(src string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "module.go", src, parser.PackageClauseOnly)
	if err != nil {
		return "", err
	}
	return file.Name.Name, nil
}

// hasPackageClause reports whether src parses as a Go file that starts with
// its own package clause. Mentions of the word "package" in comments or
// string literals do not count.
func hasPackageClause(src string) bool {
	_, err := packageName(src)
	return err == nil
}
