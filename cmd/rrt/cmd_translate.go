package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rrt/internal/config"
	"rrt/internal/pipeline"
)

// errNotPreserved signals the "tests ran, behavior differs" verdict. It is
// not a pipeline error; main maps it to exit status 2.
var errNotPreserved = errors.New("translations did not preserve behavior")

var (
	sourcePath string
	outDir     string
	funcName   string
	runVerify  bool
	suitesDir  string
)

// translateCmd runs the full translation pipeline on one source file
var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a function to C and Java and round-trip it back",
	Long: `Runs the full pipeline: extract the function's structural shape, emit
C-style and Java-style source, recover the shape from the generated text,
and render round-tripped Go fragments.

With --verify, each round-tripped fragment is patched over the original
module and the scenario suites run against the patched module. Exit status
is 0 when behavior is preserved, 2 when it is not.

Example:
  rrt translate --source original.go --outdir build --func AddMul --verify`,
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringVar(&sourcePath, "source", "original.go", "Go source file to translate")
	translateCmd.Flags().StringVar(&outDir, "outdir", "", "output directory for generated code (default from config)")
	translateCmd.Flags().StringVar(&funcName, "func", "", "function name to process (defaults to first function)")
	translateCmd.Flags().BoolVar(&runVerify, "verify", false, "run scenario suites against the round-tripped modules")
	translateCmd.Flags().StringVar(&suitesDir, "suites", "", "scenario suite directory (default from config)")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg := toolConfig
	if cfg == nil {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	// flags win over file and environment
	if outDir == "" {
		outDir = cfg.OutDir
	}
	if suitesDir == "" {
		suitesDir = cfg.SuitesDir
	}

	logger.Info("starting translation",
		zap.String("source", sourcePath),
		zap.String("outdir", outDir),
		zap.String("func", funcName),
		zap.Bool("verify", runVerify))

	p := pipeline.New(afero.NewOsFs(), logger)
	res, err := p.Run(cmd.Context(), pipeline.Options{
		Source:    sourcePath,
		OutDir:    outDir,
		Func:      funcName,
		Verify:    runVerify,
		SuitesDir: suitesDir,
		Epsilon:   cfg.Epsilon,
	})
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), res)

	if res.Preservation != nil && !res.Preservation.Overall {
		return errNotPreserved
	}
	return nil
}

// printReport writes the human-readable run summary.
func printReport(w io.Writer, res *pipeline.Result) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Translated %s", res.Shape.Name)))

	fmt.Fprintln(w, sectionStyle.Render("Generated:"))
	for _, a := range res.Generated {
		fmt.Fprintf(w, "  - %s\n", pathStyle.Render(a.Path))
	}
	fmt.Fprintln(w, sectionStyle.Render("Round-tripped Go:"))
	for _, a := range res.RoundTripped {
		fmt.Fprintf(w, "  - %s\n", pathStyle.Render(a.Path))
	}

	if res.Preservation == nil {
		return
	}
	fmt.Fprintln(w, sectionStyle.Render("Verification:"))
	targets := make([]string, 0, len(res.Preservation.PerTarget))
	for target := range res.Preservation.PerTarget {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	for _, target := range targets {
		fmt.Fprintf(w, "  - %s: %s\n", target, verdict(res.Preservation.PerTarget[target]))
	}
	if res.Preservation.Overall {
		fmt.Fprintln(w, successStyle.Render("Result: translations PRESERVED behavior (suites passed)."))
	} else {
		fmt.Fprintln(w, failureStyle.Render("Result: translations did NOT preserve behavior (suites failed)."))
	}
}

func verdict(ok bool) string {
	if ok {
		return successStyle.Render("pass")
	}
	return failureStyle.Render("FAIL")
}
