package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive inspector",
	Long: `Launch the interactive terminal UI.

The inspector reads a file's envelope and reports its dialect, routing key
and whether a structured conversion is registered for it. The history view
lists recorded conversions.

Controls:
  Enter    - Inspect / Open record
  Tab      - Switch between inspector and history
  ↑/k, ↓/j - Navigate history
  r        - Reload history
  Esc      - Back
  Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if conversionService == nil {
		return errConversionNotConfigured
	}

	app, err := tui.NewApp(&tui.Ports{
		Conversion: conversionService,
		Catalog:    capabilityCatalog,
		History:    historyService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
