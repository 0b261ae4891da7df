// Package record provides the single conversion record view for the TUI.
package record

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// View shows the terminal state of one conversion.
type View struct {
	styles *styles.Styles
	record *domain.ConversionRecord
	width  int
	height int
}

// NewView creates a record view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s}
}

// SetRecord sets the record to display.
func (v *View) SetRecord(r domain.ConversionRecord) {
	v.record = &r
}

// Update handles messages for the record view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHistory}
		}
	}
	return v, nil
}

// View renders the record.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Conversion"))
	b.WriteString("\n\n")

	if v.record == nil {
		b.WriteString(v.styles.Muted.Render("No record selected"))
		return b.String()
	}

	r := v.record
	b.WriteString(v.field("ID", r.ID))
	b.WriteString(v.field("Command", string(r.Command)))
	b.WriteString(v.field("Input", r.Input))
	b.WriteString(v.field("Dialect", r.Dialect.String()))
	if r.Version != "" || r.MessageType != "" {
		b.WriteString(v.field("Key", r.Key().String()))
	}
	if r.Charset != "" {
		b.WriteString(v.field("Charset", string(r.Charset)))
	}
	b.WriteString(v.field("Stage", string(r.Stage)))
	b.WriteString(v.field("Created", r.CreatedAt.Local().Format(time.DateTime)))
	b.WriteString("\n")

	if r.Success {
		b.WriteString(v.styles.Success.Render("Succeeded"))
	} else {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Failed: %s", r.Error)))
	}

	return b.String()
}

func (v *View) field(label, value string) string {
	return v.styles.Subtitle.Render(fmt.Sprintf("%-9s", label+":")) + " " + v.styles.Normal.Render(value) + "\n"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Record returns the displayed record.
func (v *View) Record() *domain.ConversionRecord {
	return v.record
}
