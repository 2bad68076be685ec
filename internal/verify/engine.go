package verify

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// PreservationResult aggregates the per-target oracle verdicts for one
// pipeline run. Overall is the AND of every per-target verdict; there is no
// partial credit and no retry.
type PreservationResult struct {
	PerTarget map[string]bool
	Overall   bool
}

// Engine runs the verification step: load base module, override the target
// function with one round-tripped definition, hand the patched module to
// the oracle. A mutex serializes runs so a patched module is the only live
// binding during its own oracle run; the ordering constraint is a lock,
// not a side effect of shared globals.
type Engine struct {
	mu     sync.Mutex
	oracle Oracle
	logger *zap.Logger
}

// NewEngine builds a verification engine over the given oracle.
func NewEngine(oracle Oracle, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{oracle: oracle, logger: logger}
}

// VerifyOne patches one round-tripped definition over a fresh base module
// and runs the oracle against it. The base module is fully evaluated before
// the patch is applied, so sibling functions keep their original
// definitions. Oracle invocation errors propagate; a failing suite does
// not.
func (e *Engine) VerifyOne(ctx context.Context, baseSrc, patchSrc string) (*SuiteResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.verifyLocked(ctx, baseSrc, patchSrc)
}

func (e *Engine) verifyLocked(ctx context.Context, baseSrc, patchSrc string) (*SuiteResult, error) {
	mod, err := Load(baseSrc)
	if err != nil {
		return nil, err
	}
	if err := mod.Patch(patchSrc); err != nil {
		return nil, err
	}
	return e.oracle.RunSuite(ctx, mod)
}

// Verify runs one verification per target, strictly sequentially in target
// name order, and reduces the verdicts into a PreservationResult.
func (e *Engine) Verify(ctx context.Context, baseSrc string, patches map[string]string) (*PreservationResult, error) {
	targets := make([]string, 0, len(patches))
	for t := range patches {
		targets = append(targets, t)
	}
	sort.Strings(targets)

	e.mu.Lock()
	defer e.mu.Unlock()

	result := &PreservationResult{PerTarget: make(map[string]bool, len(targets)), Overall: true}
	for _, target := range targets {
		suite, err := e.verifyLocked(ctx, baseSrc, patches[target])
		if err != nil {
			return nil, fmt.Errorf("verify %s round trip: %w", target, err)
		}

		result.PerTarget[target] = suite.Success
		if !suite.Success {
			result.Overall = false
		}
		e.logger.Info("verification run complete",
			zap.String("target", target),
			zap.Bool("success", suite.Success),
			zap.Int("cases", suite.Cases),
			zap.Strings("failures", suite.Details))
	}
	return result, nil
}
