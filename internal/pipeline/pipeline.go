// Package pipeline wires the translation stages into one run: structural
// extraction, emission to both targets, reverse extraction, round-trip
// rendering, artifact writing, and the optional verification step. The run
// is strictly sequential; a failure at any stage aborts and surfaces
// immediately.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"rrt/internal/emit"
	"rrt/internal/extract"
	"rrt/internal/render"
	"rrt/internal/reverse"
	"rrt/internal/shape"
	"rrt/internal/verify"
)

// Options selects the inputs and outputs of one run.
type Options struct {
	Source    string // path to the Go source file to translate
	OutDir    string // directory for generated artifacts
	Func      string // function name; empty means first function
	Verify    bool   // run the behavioral verification step
	SuitesDir string // scenario suite directory consumed by the oracle
	Epsilon   float64
}

// Artifact is one generated file, tagged with the emitter that produced it.
type Artifact struct {
	Target string
	Path   string
}

// Result collects everything one run produced.
type Result struct {
	RunID        string
	Shape        *shape.FunctionShape
	Generated    []Artifact // target-language texts
	RoundTripped []Artifact // recovered Go source files
	Preservation *verify.PreservationResult // nil unless Options.Verify
}

// artifact file names per target, matching the layout of the original tool.
var (
	generatedNames = map[string]string{
		emit.TargetC:    "original.c",
		emit.TargetJava: emit.JavaClassName + ".java",
	}
	roundTripNames = map[string]string{
		emit.TargetC:    "original_from_c.go",
		emit.TargetJava: "original_from_java.go",
	}
)

// Pipeline runs translations. It holds no per-run state; Run may be called
// repeatedly.
type Pipeline struct {
	fs     afero.Fs
	logger *zap.Logger
}

// New builds a pipeline over the given filesystem.
func New(fs afero.Fs, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{fs: fs, logger: logger}
}

// Run executes the full translation (and optional verification) for one
// source function.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	runID := uuid.NewString()
	log := p.logger.With(zap.String("run_id", runID), zap.String("source", opts.Source))
	log.Info("pipeline run starting", zap.String("func", opts.Func))

	srcBytes, err := afero.ReadFile(p.fs, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("read source %s: %w", opts.Source, err)
	}
	src := string(srcBytes)

	pkgName, err := extract.PackageName(src)
	if err != nil {
		return nil, err
	}

	fn, err := extract.Function(src, opts.Func)
	if err != nil {
		return nil, err
	}
	log.Info("extracted function shape",
		zap.String("name", fn.Name),
		zap.Strings("params", fn.Params),
		zap.String("cond", shape.Render(fn.Cond)))

	result := &Result{RunID: runID, Shape: fn}
	patches := make(map[string]string)

	if err := p.fs.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir %s: %w", opts.OutDir, err)
	}

	for _, em := range emit.All() {
		target := em.Target()
		text := em.Emit(fn)

		genPath, err := p.writeArtifact(opts.OutDir, generatedNames[target], text)
		if err != nil {
			return nil, err
		}
		result.Generated = append(result.Generated, Artifact{Target: target, Path: genPath})

		ex, ok := reverse.ForTarget(target)
		if !ok {
			return nil, fmt.Errorf("no reverse extractor for target %q", target)
		}
		rec, err := ex.Extract(text, fn.Name)
		if err != nil {
			return nil, err
		}

		// The on-disk artifact carries a package clause so it parses as a
		// standalone file; the verification patch stays a bare fragment.
		rt := render.RoundTrip(rec)
		rtPath, err := p.writeArtifact(opts.OutDir, roundTripNames[target], render.File(pkgName, rec))
		if err != nil {
			return nil, err
		}
		result.RoundTripped = append(result.RoundTripped, Artifact{Target: target, Path: rtPath})
		patches[target] = rt

		log.Info("target round trip complete",
			zap.String("target", target),
			zap.String("generated", genPath),
			zap.String("round_tripped", rtPath))
	}

	if opts.Verify {
		oracle := verify.NewScenarioOracle(p.fs, opts.SuitesDir, opts.Epsilon, p.logger)
		engine := verify.NewEngine(oracle, p.logger)
		pres, err := engine.Verify(ctx, src, patches)
		if err != nil {
			return nil, err
		}
		result.Preservation = pres
		log.Info("verification complete", zap.Bool("preserved", pres.Overall))
	}

	return result, nil
}

func (p *Pipeline) writeArtifact(dir, name, text string) (string, error) {
	path := filepath.Join(dir, name)
	if err := afero.WriteFile(p.fs, path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", path, err)
	}
	return path, nil
}
