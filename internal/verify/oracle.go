package verify

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrOracleInvocation means the test oracle itself could not run (missing
// suites directory, unreadable suite file). This is distinct from a suite
// that runs and reports failures: the latter is a normal result, not an
// error.
var ErrOracleInvocation = errors.New("test oracle could not run")

// SuiteResult is the oracle's verdict for one module run. Details are
// human-readable per-case failure descriptions.
type SuiteResult struct {
	Success bool
	Cases   int
	Details []string
}

// Oracle runs a behavioral test suite against a module and reports whether
// it passed. Implementations are black boxes to the pipeline.
type Oracle interface {
	RunSuite(ctx context.Context, module Module) (*SuiteResult, error)
}

// ScenarioOracle discovers YAML scenario suites in a directory and runs
// them against the module. One suite file names a function and lists
// args/want pairs; results compare within Epsilon.
type ScenarioOracle struct {
	fs      afero.Fs
	dir     string
	epsilon float64
	logger  *zap.Logger
}

// NewScenarioOracle builds an oracle over the suites in dir.
func NewScenarioOracle(fs afero.Fs, dir string, epsilon float64, logger *zap.Logger) *ScenarioOracle {
	if epsilon <= 0 {
		epsilon = 1e-9
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScenarioOracle{fs: fs, dir: dir, epsilon: epsilon, logger: logger}
}

type suiteFile struct {
	Function string      `yaml:"function"`
	Cases    []suiteCase `yaml:"cases"`
}

type suiteCase struct {
	Args []float64 `yaml:"args"`
	Want float64   `yaml:"want"`
}

// RunSuite executes every suite in the directory, in name order, against
// the module. Discovery or decode failures abort with ErrOracleInvocation;
// behavioral mismatches accumulate into a failing SuiteResult.
func (o *ScenarioOracle) RunSuite(ctx context.Context, module Module) (*SuiteResult, error) {
	infos, err := afero.ReadDir(o.fs, o.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read suites dir %s: %v", ErrOracleInvocation, o.dir, err)
	}

	var names []string
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if ext := filepath.Ext(info.Name()); ext == ".yaml" || ext == ".yml" {
			names = append(names, info.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no suites in %s", ErrOracleInvocation, o.dir)
	}
	sort.Strings(names)

	result := &SuiteResult{Success: true}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOracleInvocation, err)
		}
		if err := o.runFile(name, module, result); err != nil {
			return nil, err
		}
	}

	o.logger.Debug("oracle suite complete",
		zap.Int("cases", result.Cases),
		zap.Bool("success", result.Success),
		zap.Int("failures", len(result.Details)))
	return result, nil
}

func (o *ScenarioOracle) runFile(name string, module Module, result *SuiteResult) error {
	data, err := afero.ReadFile(o.fs, filepath.Join(o.dir, name))
	if err != nil {
		return fmt.Errorf("%w: read suite %s: %v", ErrOracleInvocation, name, err)
	}

	var suite suiteFile
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return fmt.Errorf("%w: decode suite %s: %v", ErrOracleInvocation, name, err)
	}
	if suite.Function == "" || len(suite.Cases) == 0 {
		return fmt.Errorf("%w: suite %s names no function or cases", ErrOracleInvocation, name)
	}

	fn, err := module.Func(suite.Function)
	if err != nil {
		// the module is missing or mis-typed the function under test; the
		// suite reports that as behavioral failure, like a failing import
		result.Success = false
		result.Details = append(result.Details, fmt.Sprintf("%s: %v", name, err))
		return nil
	}

	for _, c := range suite.Cases {
		if len(c.Args) != 2 {
			return fmt.Errorf("%w: suite %s case has %d args, want 2", ErrOracleInvocation, name, len(c.Args))
		}
		result.Cases++
		got := fn(c.Args[0], c.Args[1])
		if math.Abs(got-c.Want) > o.epsilon {
			result.Success = false
			result.Details = append(result.Details,
				fmt.Sprintf("%s(%s) = %g, want %g", suite.Function, formatArgs(c.Args), got, c.Want))
		}
	}
	return nil
}

func formatArgs(args []float64) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%g", a)
	}
	return strings.Join(parts, ", ")
}
