// Package history provides the conversion history list for the TUI.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driving"
)

// listLimit is the number of records loaded.
const listLimit = 100

// ErrHistoryDisabled is shown when no history service is configured.
var ErrHistoryDisabled = errors.New("history is disabled")

// View lists recorded conversions, newest first.
type View struct {
	styles  *styles.Styles
	history driving.HistoryService
	ctx     context.Context

	records  []domain.ConversionRecord
	selected int
	offset   int
	width    int
	height   int
	err      error
}

// NewView creates a history view. history may be nil.
func NewView(s *styles.Styles, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		history: history,
		ctx:     context.Background(),
	}
}

// SetContext sets the context used for loading.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Load returns a command that loads the records.
func (v *View) Load() tea.Cmd {
	if v.history == nil {
		return func() tea.Msg {
			return messages.HistoryLoaded{Err: ErrHistoryDisabled}
		}
	}
	ctx, history := v.ctx, v.history
	return func() tea.Msg {
		records, err := history.List(ctx, listLimit)
		return messages.HistoryLoaded{Records: records, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.HistoryLoaded:
		v.records = msg.Records
		v.err = msg.Err
		v.selected = 0
		v.offset = 0
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		if v.selected < v.offset {
			v.offset = v.selected
		}
	case "down", "j":
		if v.selected < len(v.records)-1 {
			v.selected++
		}
		if v.selected >= v.offset+v.visibleRows() {
			v.offset = v.selected - v.visibleRows() + 1
		}
	case "enter":
		if len(v.records) == 0 {
			return v, nil
		}
		record := v.records[v.selected]
		return v, func() tea.Msg {
			return messages.RecordSelected{Record: record}
		}
	case "r":
		return v, v.Load()
	}
	return v, nil
}

// visibleRows returns the number of rows that fit.
func (v *View) visibleRows() int {
	// Title, header, separator and status bar
	rows := v.height - 6
	if rows < 1 {
		rows = 10
	}
	return rows
}

// View renders the history list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err)))
		return b.String()
	}
	if len(v.records) == 0 {
		b.WriteString(v.styles.Muted.Render("No conversions recorded."))
		return b.String()
	}

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%-19s  %-8s  %-12s  %-7s  %s", "Time", "Command", "Key", "Result", "Input")))
	b.WriteString("\n")

	end := v.offset + v.visibleRows()
	if end > len(v.records) {
		end = len(v.records)
	}
	for i := v.offset; i < end; i++ {
		line := v.formatRow(&v.records[i])
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) formatRow(r *domain.ConversionRecord) string {
	key := "-"
	if r.Version != "" || r.MessageType != "" {
		key = r.Key().String()
	}
	result := "ok"
	if !r.Success {
		result = "failed"
	}
	return fmt.Sprintf("%-19s  %-8s  %-12s  %-7s  %s",
		r.CreatedAt.Local().Format(time.DateTime), r.Command, key, result, r.Input)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Records returns the loaded records.
func (v *View) Records() []domain.ConversionRecord {
	return v.records
}

// Selected returns the highlighted index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
