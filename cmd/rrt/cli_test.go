package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSource = `package original

func AddMul(a, b float64) float64 {
	if a > b {
		return a*b + 1
	} else {
		return a + b
	}
}
`

const testSuite = `function: AddMul
cases:
  - args: [5, 2]
    want: 11
  - args: [2, 5]
    want: 7
`

func writeTestInputs(t *testing.T) (src, suites, out string) {
	t.Helper()
	dir := t.TempDir()
	src = filepath.Join(dir, "original.go")
	require.NoError(t, os.WriteFile(src, []byte(testSource), 0o644))
	suites = filepath.Join(dir, "suites")
	require.NoError(t, os.MkdirAll(suites, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(suites, "add_mul.yaml"), []byte(testSuite), 0o644))
	out = filepath.Join(dir, "build")
	return src, suites, out
}

func TestTranslateCommand_EndToEnd(t *testing.T) {
	src, suites, out := writeTestInputs(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{
		"translate",
		"--source", src,
		"--outdir", out,
		"--suites", suites,
		"--verify",
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
	})

	require.NoError(t, rootCmd.Execute())

	report := buf.String()
	require.Contains(t, report, "Translated AddMul")
	require.Contains(t, report, "PRESERVED")

	for _, name := range []string{"original.c", "Original.java", "original_from_c.go", "original_from_java.go"} {
		_, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err, "missing artifact %s", name)
	}
}

func TestTranslateCommand_MissingSource(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{
		"translate",
		"--source", filepath.Join(t.TempDir(), "nope.go"),
		"--outdir", t.TempDir(),
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
	})

	require.Error(t, rootCmd.Execute())
}
