package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/logger"
)

// stdinDesignator is the input argument meaning standard input.
const stdinDesignator = "-"

// readInput acquires the complete input before any conversion stage runs.
func readInput(cmd *cobra.Command, name string) (domain.Input, error) {
	if name == stdinDesignator {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			logger.Notice("reading from standard input, end with Ctrl-D")
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return domain.Input{}, fmt.Errorf("reading standard input: %w", err)
		}
		return domain.Input{Name: name, Content: data}, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return domain.Input{}, fmt.Errorf("reading input: %w", err)
	}
	return domain.Input{Name: name, Content: data}, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var errConversionNotConfigured = errors.New("conversion service not configured")
