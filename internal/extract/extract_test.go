package extract

import (
	"errors"
	"testing"

	"rrt/internal/shape"
)

const sampleSrc = `package original

func AddMul(a, b float64) float64 {
	if a > b {
		return a*b + 1
	} else {
		return a + b
	}
}

func Clamp(x, hi float64) float64 {
	if x > hi {
		return hi
	} else {
		return x
	}
}
`

func TestPackageName(t *testing.T) {
	got, err := PackageName(sampleSrc)
	if err != nil {
		t.Fatalf("PackageName: %v", err)
	}
	if got != "original" {
		t.Fatalf("PackageName = %q, want %q", got, "original")
	}

	if _, err := PackageName("func Loose() {}"); err == nil {
		t.Fatal("PackageName accepted source without a package clause")
	}
}

func TestFunction_FirstAndNamed(t *testing.T) {
	t.Run("first_function_when_unnamed", func(t *testing.T) {
		fn, err := Function(sampleSrc, "")
		if err != nil {
			t.Fatalf("Function: %v", err)
		}
		if fn.Name != "AddMul" {
			t.Fatalf("Name = %q, want AddMul", fn.Name)
		}
		if len(fn.Params) != 2 || fn.Params[0] != "a" || fn.Params[1] != "b" {
			t.Fatalf("Params = %v", fn.Params)
		}
		if got := shape.Render(fn.Cond); got != "a > b" {
			t.Fatalf("Cond = %q", got)
		}
		if got := shape.Render(fn.TrueResult); got != "a * b + 1" {
			t.Fatalf("TrueResult = %q", got)
		}
		if got := shape.Render(fn.FalseResult); got != "a + b" {
			t.Fatalf("FalseResult = %q", got)
		}
	})

	t.Run("named_lookup", func(t *testing.T) {
		fn, err := Function(sampleSrc, "Clamp")
		if err != nil {
			t.Fatalf("Function: %v", err)
		}
		if fn.Name != "Clamp" {
			t.Fatalf("Name = %q, want Clamp", fn.Name)
		}
	})
}

func TestFunction_Errors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		fn      string
		wantErr error
	}{
		{
			name:    "named_function_missing",
			src:     sampleSrc,
			fn:      "DoesNotExist",
			wantErr: ErrNotFound,
		},
		{
			name:    "no_functions_at_all",
			src:     "package empty\n\nvar X = 1\n",
			wantErr: ErrNoFunctionFound,
		},
		{
			name: "sequential_returns_without_conditional",
			src: `package p
func F(a, b float64) float64 {
	return a
	return b
}
`,
			wantErr: ErrUnsupportedBodyShape,
		},
		{
			name: "missing_else",
			src: `package p
func F(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
`,
			wantErr: ErrUnsupportedBodyShape,
		},
		{
			name: "else_if_chain",
			src: `package p
func F(a, b float64) float64 {
	if a > b {
		return a
	} else if a < b {
		return b
	} else {
		return 0
	}
}
`,
			wantErr: ErrUnsupportedBodyShape,
		},
		{
			name: "extra_statement_in_branch",
			src: `package p
func F(a, b float64) float64 {
	if a > b {
		a = a + 1
		return a
	} else {
		return b
	}
}
`,
			wantErr: ErrUnsupportedBodyShape,
		},
		{
			name: "variadic_signature",
			src: `package p
func F(xs ...float64) float64 {
	if 1 > 0 {
		return 1
	} else {
		return 0
	}
}
`,
			wantErr: ErrUnsupportedSignature,
		},
		{
			name: "function_call_in_expression",
			src: `package p
func F(a, b float64) float64 {
	if a > b {
		return abs(a)
	} else {
		return b
	}
}
`,
			wantErr: ErrUnsupportedExpression,
		},
		{
			name: "modulo_operator",
			src: `package p
func F(a, b int) int {
	if a%2 == 0 {
		return 1
	} else {
		return 0
	}
}
`,
			wantErr: ErrUnsupportedExpression,
		},
		{
			name: "string_literal",
			src: `package p
func F(a, b float64) float64 {
	if a > "x" {
		return a
	} else {
		return b
	}
}
`,
			wantErr: ErrUnsupportedExpression,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Function(tc.src, tc.fn)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Function err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestFunction_ParensUnwrapped(t *testing.T) {
	src := `package p
func F(a, b float64) float64 {
	if (a + b) > 1 {
		return (a + b) * 2
	} else {
		return a
	}
}
`
	fn, err := Function(src, "")
	if err != nil {
		t.Fatalf("Function: %v", err)
	}
	if got := shape.Render(fn.Cond); got != "a + b > 1" {
		t.Fatalf("Cond = %q", got)
	}
	if got := shape.Render(fn.TrueResult); got != "(a + b) * 2" {
		t.Fatalf("TrueResult = %q", got)
	}
}
