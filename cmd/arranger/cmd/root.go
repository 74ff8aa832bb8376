package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pengelbrecht/arranger/internal/arrange"
)

// Version is set at build time.
var Version = "dev"

const (
	exitSuccess = 0
	exitFailure = 1
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var (
		solve   bool
		gap     int
		boxed   bool
		asJSON  bool
		verbose bool
	)

	c := &cobra.Command{
		Use:   "arranger [problem...]",
		Short: "Arrange arithmetic problems vertically",
		Long: `Arrange arithmetic problems vertically and side by side.

Each argument is one problem of the form "x op y", where x and y are
non-negative integers of at most four digits and op is + or -.
At most five problems are arranged at once. Input errors are printed
in place of the arrangement.

Examples:
  # Arrange two problems
  arranger "32 + 698" "3801 - 2"

  # Include the answers
  arranger --solve "45 + 43" "123 + 49"

  # Output as JSON
  arranger --json "3 + 855"`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if gap < 1 {
				return fmt.Errorf("gap must be at least 1, got %d", gap)
			}

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			if verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			a := arrange.New(
				arrange.WithLogger(logger),
				arrange.WithOptions(arrange.Options{
					Solve: solve,
					Gap:   strings.Repeat(" ", gap),
				}),
			)
			rows, err := a.Lines(args)
			return writeResult(cmd.OutOrStdout(), rows, err, asJSON, boxed)
		},
	}

	c.Flags().BoolVarP(&solve, "solve", "s", false, "include the answer row")
	c.Flags().IntVar(&gap, "gap", len(arrange.DefaultGap), "spaces between problems")
	c.Flags().BoolVar(&boxed, "boxed", false, "draw a border around the arrangement")
	c.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	c.AddCommand(newVersionCmd())
	return c
}

// writeResult prints the arrangement, or the input error in its place.
// Input errors are output, not command failures.
func writeResult(w io.Writer, rows []string, arrangeErr error, asJSON, boxed bool) error {
	if asJSON {
		payload := map[string]any{"lines": rows}
		if arrangeErr != nil {
			payload = map[string]any{"error": arrangeErr.Error()}
		} else if rows == nil {
			payload["lines"] = []string{}
		}
		enc := json.NewEncoder(w)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	out := strings.Join(rows, "\n")
	if arrangeErr != nil {
		out = arrangeErr.Error()
	} else if boxed && len(rows) > 0 {
		out = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Render(out)
	}

	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}
	return exitSuccess
}
