package verify

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const goodPatch = `func AddMul(a, b float64) float64 {
	if a > b {
		return a * b + 1
	} else {
		return a + b
	}
}
`

const badPatch = `func AddMul(a, b float64) float64 {
	if a > b {
		return a - b
	} else {
		return a + b
	}
}
`

const isSumEvenSuite = `function: IsSumEven
cases:
  - args: [1, 1]
    want: 1
  - args: [1, 2]
    want: 0
  - args: [2, 2]
    want: 1
`

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	fs := suiteFS(t, map[string]string{
		"add_mul.yaml":     addMulSuite,
		"is_sum_even.yaml": isSumEvenSuite,
	})
	return NewEngine(NewScenarioOracle(fs, "suites", 1e-9, nil), nil)
}

func TestEngineVerify_AllPreserved(t *testing.T) {
	engine := newTestEngine(t)

	res, err := engine.Verify(context.Background(), baseSrc, map[string]string{
		"c":    goodPatch,
		"java": goodPatch,
	})
	require.NoError(t, err)
	require.True(t, res.Overall)
	require.Equal(t, map[string]bool{"c": true, "java": true}, res.PerTarget)
}

// Overall is the AND of the per-target verdicts: one bad round trip flips
// it even when the other target preserved behavior.
func TestEngineVerify_SingleFailureFlipsOverall(t *testing.T) {
	engine := newTestEngine(t)

	res, err := engine.Verify(context.Background(), baseSrc, map[string]string{
		"c":    goodPatch,
		"java": badPatch,
	})
	require.NoError(t, err)
	require.False(t, res.Overall)
	require.True(t, res.PerTarget["c"])
	require.False(t, res.PerTarget["java"])
}

// Each verification run starts from a fresh base module, so a patch applied
// for one target never bleeds into the next run: the sibling IsSumEven
// suite passes in both runs even when the first target's patch is broken.
func TestEngineVerify_PatchedModuleIsolation(t *testing.T) {
	engine := newTestEngine(t)

	res, err := engine.Verify(context.Background(), baseSrc, map[string]string{
		"c":    badPatch,
		"java": goodPatch,
	})
	require.NoError(t, err)
	require.False(t, res.PerTarget["c"])
	require.True(t, res.PerTarget["java"], "second run must see a clean base module")
}

func TestEngineVerify_OracleErrorPropagates(t *testing.T) {
	// oracle pointed at a directory that does not exist
	engine := NewEngine(NewScenarioOracle(afero.NewMemMapFs(), "missing", 1e-9, nil), nil)

	_, err := engine.Verify(context.Background(), baseSrc, map[string]string{"c": goodPatch})
	require.ErrorIs(t, err, ErrOracleInvocation)
}

func TestEngineVerifyOne_BadPatchSource(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.VerifyOne(context.Background(), baseSrc, "func broken(")
	require.Error(t, err)
}
