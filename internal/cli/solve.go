package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lindqvist/cubesolve/internal/facelet"
	"github.com/lindqvist/cubesolve/internal/notation"
	"github.com/lindqvist/cubesolve/internal/prune"
	"github.com/lindqvist/cubesolve/internal/runid"
	"github.com/lindqvist/cubesolve/internal/search"
)

var (
	deadlineFlag time.Duration
	maxDepthFlag int
	verboseFlag  bool
)

func init() {
	rootCmd.Args = cobra.ExactArgs(2)
	rootCmd.RunE = runSolve
	rootCmd.Flags().DurationVar(&deadlineFlag, "deadline", search.DefaultDeadline, "wall-clock budget for the search")
	rootCmd.Flags().IntVar(&maxDepthFlag, "max-depth", search.DefaultMaxTotal, "outer iterative-deepening ceiling")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "print run correlation ID and timing diagnostics to stderr")
}

func runSolve(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]
	run := runid.New()

	if verboseFlag {
		fmt.Fprintln(os.Stderr, titleStyle.Render("cubesolve"))
		fmt.Fprintln(os.Stderr, statusStyle.Render(fmt.Sprintf("[%s] reading %s", run, inputPath)))
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	cube, err := facelet.Parse(in)
	if err != nil {
		return err
	}
	if err := facelet.Validate(cube); err != nil {
		return err
	}

	tables, report, err := prune.Build()
	if err != nil {
		return fmt.Errorf("building pruning tables: %w", err)
	}
	if verboseFlag {
		fmt.Fprintln(os.Stderr, statusStyle.Render(fmt.Sprintf("[%s] tables built in %s (max depths: CO=%d EO=%d SL=%d J1=%d CP=%d UD8=%d)",
			run, report.Elapsed, report.MaxDepthCO, report.MaxDepthEO, report.MaxDepthSL, report.MaxDepthJ1, report.MaxDepthCP, report.MaxDepthUD8)))
	}

	solver := &search.Solver{Tables: tables, Deadline: deadlineFlag, MaxTotal: maxDepthFlag}

	solveStart := time.Now()
	moves, err := solver.Solve(cube)
	var solution string
	switch {
	case err == nil:
		solution = notation.Expand(moves)
	case err == search.ErrTimedOut, err == search.ErrBoundExceeded:
		if verboseFlag {
			fmt.Fprintln(os.Stderr, statusStyle.Render(fmt.Sprintf("[%s] %s", run, err)))
		}
		solution = ""
	default:
		return fmt.Errorf("internal error: %w", err)
	}

	if verboseFlag {
		fmt.Fprintln(os.Stderr, statusStyle.Render(fmt.Sprintf("[%s] search finished in %s, %d characters", run, time.Since(solveStart), len(solution))))
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()
	if _, err := fmt.Fprintln(out, solution); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
