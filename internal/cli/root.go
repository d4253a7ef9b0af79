// Package cli implements the solve command: argument handling, styled
// stderr diagnostics, and wiring the facelet parser, pruning-table
// builder, and search orchestrator together.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

var rootCmd = &cobra.Command{
	Use:     "solve",
	Short:   "Two-phase cubie-level Rubik's cube solver",
	Long:    `solve reads a 9-line facelet net, runs a two-phase IDA* search, and writes the quarter-turn solution to an output file.`,
	Version: version,
}

// Execute runs the root command, reporting any argument, input, table-build
// or internal error on stderr with a non-zero exit. Timeouts and an
// exhausted depth bound are handled inside runSolve itself, which writes an
// empty solution for them.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
