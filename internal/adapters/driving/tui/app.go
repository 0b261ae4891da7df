package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/views/inspect"
	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/views/record"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	inspectView *inspect.View
	historyView *history.View
	recordView  *record.View
	statusBar   *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	app := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      keymap.DefaultKeyMap(),
		inspectView: inspect.NewView(s, ports.Conversion, ports.Catalog),
		historyView: history.NewView(s, ports.History),
		recordView:  record.NewView(s),
		statusBar:   status.NewBar(s),
		currentView: messages.ViewInspect,
	}
	app.syncStatusBindings()
	return app, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.inspectView.SetContext(ctx)
	a.historyView.SetContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("edi"),
		a.inspectView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}
		if keymap.Matches(msg.String(), a.keymap.Switch) && a.currentView != messages.ViewRecord {
			return a, a.switchView()
		}

		switch a.currentView {
		case messages.ViewInspect:
			a.inspectView, cmd = a.inspectView.Update(msg)
		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
		case messages.ViewRecord:
			a.recordView, cmd = a.recordView.Update(msg)
		}
		return a, cmd

	case messages.InspectCompleted:
		a.inspectView, cmd = a.inspectView.Update(msg)
		a.reportStatus(msg.Report.Err, "")
		return a, cmd

	case messages.HistoryLoaded:
		a.historyView, cmd = a.historyView.Update(msg)
		a.reportStatus(msg.Err, fmt.Sprintf("%d records", len(msg.Records)))
		return a, cmd

	case messages.RecordSelected:
		a.recordView.SetRecord(msg.Record)
		a.setView(messages.ViewRecord)
		return a, nil

	case messages.ViewChanged:
		a.setView(msg.View)
		if msg.View == messages.ViewHistory {
			return a, a.historyView.Load()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.reportStatus(msg.Err, "")
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blink and other input messages
	if a.currentView == messages.ViewInspect {
		a.inspectView, cmd = a.inspectView.Update(msg)
	}
	return a, cmd
}

// switchView toggles between the inspector and the history.
func (a *App) switchView() tea.Cmd {
	if a.currentView == messages.ViewInspect {
		a.setView(messages.ViewHistory)
		return a.historyView.Load()
	}
	a.setView(messages.ViewInspect)
	return nil
}

func (a *App) setView(view messages.ViewType) {
	a.currentView = view
	a.statusBar.Clear()
	a.syncStatusBindings()
}

func (a *App) syncStatusBindings() {
	switch a.currentView {
	case messages.ViewInspect:
		a.statusBar.SetBindings(a.keymap.InspectHelp())
	case messages.ViewHistory:
		a.statusBar.SetBindings(a.keymap.HistoryHelp())
	case messages.ViewRecord:
		a.statusBar.SetBindings(a.keymap.RecordHelp())
	}
}

func (a *App) reportStatus(err error, message string) {
	a.err = err
	if err != nil {
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(err.Error())
		return
	}
	a.statusBar.SetState(status.StateReady)
	a.statusBar.SetMessage(message)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewHistory:
		body = a.historyView.View()
	case messages.ViewRecord:
		body = a.recordView.View()
	default:
		body = a.inspectView.View()
	}

	// Pin the status bar to the bottom line
	gap := a.height - strings.Count(body, "\n") - 2
	if gap < 1 {
		gap = 1
	}
	return body + strings.Repeat("\n", gap) + a.statusBar.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.inspectView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
	a.recordView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
