// Package inspect provides the file inspector view for the TUI.
package inspect

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driving"
)

// View classifies a file and reports its dialect and routing key.
type View struct {
	styles  *styles.Styles
	conv    driving.ConversionService
	catalog driving.CapabilityCatalog
	ctx     context.Context

	input  *input.PathInput
	report *messages.Report
	width  int
	height int
}

// NewView creates a new inspector view. catalog may be nil.
func NewView(s *styles.Styles, conv driving.ConversionService, catalog driving.CapabilityCatalog) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		conv:    conv,
		catalog: catalog,
		ctx:     context.Background(),
		input:   input.NewPathInput(s),
	}
}

// SetContext sets the context used for inspections.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init starts the cursor blink.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the inspector.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			path := strings.TrimSpace(v.input.Value())
			if path == "" {
				return v, nil
			}
			return v, v.inspect(path)
		}

	case messages.InspectCompleted:
		report := msg.Report
		v.report = &report
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// inspect returns a command that classifies the file at path.
func (v *View) inspect(path string) tea.Cmd {
	ctx, conv, catalog := v.ctx, v.conv, v.catalog
	return func() tea.Msg {
		return messages.InspectCompleted{Report: Inspect(ctx, conv, catalog, path)}
	}
}

// Inspect reads path and classifies it.
func Inspect(
	ctx context.Context, conv driving.ConversionService, catalog driving.CapabilityCatalog, path string,
) messages.Report {
	report := messages.Report{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		report.Err = fmt.Errorf("reading %s: %w", path, err)
		return report
	}
	in := domain.Input{Name: path, Content: content}

	report.Dialect = conv.Encoding(ctx, in)
	if !report.Dialect.IsKnown() {
		report.Err = domain.ErrDialectUnknown
		return report
	}

	report.Key, report.Err = conv.Type(ctx, in)
	if report.Err == nil && catalog != nil {
		report.Supported = catalog.Supports(report.Key)
	}
	return report
}

// View renders the inspector.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Inspect"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	if v.report == nil {
		b.WriteString(v.styles.Muted.Render("Enter a file path to read its envelope."))
		return b.String()
	}

	r := v.report
	b.WriteString(v.field("File", r.Path))
	if r.Dialect != "" {
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%-10s", "Dialect:")))
		b.WriteString(" " + v.styles.Dialect(r.Dialect).Render(r.Dialect.String()) + "\n")
	}
	if !r.Key.IsZero() {
		b.WriteString(v.field("Key", r.Key.String()))
		converts := v.styles.Error.Render("no")
		if r.Supported {
			converts = v.styles.Success.Render("yes")
		}
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%-10s", "Converts:")))
		b.WriteString(" " + converts + "\n")
	}
	if r.Err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", r.Err)))
	}

	return b.String()
}

func (v *View) field(label, value string) string {
	return v.styles.Subtitle.Render(fmt.Sprintf("%-10s", label+":")) + " " + v.styles.Normal.Render(value) + "\n"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
}

// Report returns the last inspection, if any.
func (v *View) Report() *messages.Report {
	return v.report
}

// Input returns the path input.
func (v *View) Input() *input.PathInput {
	return v.input
}
