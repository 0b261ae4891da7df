package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// outputStyles renders command output with the TUI theme. Without a
// terminal every style is the identity, so piped output stays plain text.
type outputStyles struct {
	styled bool
	theme  *styles.Styles

	Key     lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

func newOutputStyles(w io.Writer) *outputStyles {
	if !isTerminal(w) {
		return &outputStyles{}
	}

	s := styles.DefaultStyles()
	return &outputStyles{
		styled:  true,
		theme:   s,
		Key:     s.Normal,
		Muted:   s.Muted,
		Success: s.Success,
		Error:   s.Error,
	}
}

// render applies style when output is styled.
func (o *outputStyles) render(style lipgloss.Style, text string) string {
	if !o.styled {
		return text
	}
	return style.Render(text)
}

// dialect renders a dialect tag in its colour.
func (o *outputStyles) dialect(d domain.Dialect) string {
	if !o.styled {
		return d.String()
	}
	return o.theme.Dialect(d).Render(d.String())
}
