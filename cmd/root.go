package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/pastediff/internal/capture"
	"github.com/fakeyudi/pastediff/internal/compare"
	"github.com/fakeyudi/pastediff/internal/config"
	"github.com/fakeyudi/pastediff/internal/logging"
	"github.com/fakeyudi/pastediff/internal/session"
)

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

// stdinIsTerminal reports whether the process is attached to an interactive terminal.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(os.Stdin.Fd())
}

// captureFunc reads one side of the comparison.
var captureFunc = capture.Run

var rootCmd = &cobra.Command{
	Use:   "pastediff",
	Short: "Paste two blocks of text and view their diff",
	Long: `pastediff asks for two blocks of text, one after the other. Paste each
block (several pastes are joined), press Enter to confirm it, or Ctrl-C to quit.
Both blocks are then handed to the configured diff viewer (delta by default).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		global, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("loading global config: %w", err)
		}
		project, err := config.LoadProject()
		if err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		cfg = config.ApplyEnv(config.Merge(global, project))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Piped input has no paste events to wait for.
		if !stdinIsTerminal() {
			return capture.ErrNotTerminal
		}

		log, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel, uuid.New().String())
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		defer closeLog()

		in, out := cmd.InOrStdin(), cmd.OutOrStdout()
		d := &session.Driver{
			Capture: func(ctx context.Context, prompt string) (string, error) {
				return captureFunc(ctx, prompt, capture.Options{Input: in, Output: out, Logger: log})
			},
			Comparer: &compare.Tool{
				Name:   cfg.DiffTool,
				Args:   cfg.DiffArgs,
				Stdout: out,
				Stderr: cmd.ErrOrStderr(),
			},
			ScratchDir: cfg.ScratchDir,
			Out:        out,
			Log:        log,
		}

		log.Info("session started", "diff_tool", cfg.DiffTool)
		return d.Run(cmd.Context())
	},
}

// Execute runs the root command and exits with the resulting status.
func Execute() {
	os.Exit(exitCode(rootCmd.Execute(), os.Stderr))
}

// exitCode maps the command's outcome to a process exit status. A user abort
// is a success; the diff viewer's own status is passed through unchanged.
func exitCode(err error, stderr io.Writer) int {
	var exitErr *compare.ExitError
	switch {
	case err == nil, errors.Is(err, capture.ErrAborted):
		return 0
	case errors.As(err, &exitErr):
		return exitErr.Code
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}
