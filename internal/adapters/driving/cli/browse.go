package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ordo/internal/adapters/driving/tui"
)

var errNotTerminal = errors.New("browse needs an interactive terminal")

// browseCmd launches the interactive runs browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse similarity runs in a terminal UI",
	Long: `Launch the interactive terminal browser for persisted similarity runs.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Open run scores
  /        - Filter adjectives
  s        - Cycle score ordering
  d        - Delete run
  Esc      - Back
  ?        - Help
  q        - Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) (err error) {
	if runService == nil {
		return errors.New("run service not configured")
	}
	if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
		return errNotTerminal
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("browse panicked: %v", r)
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(runService, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
