package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritam/preptrail/internal/router"
	"github.com/ritam/preptrail/internal/screen"
	"github.com/ritam/preptrail/internal/screens/home"
	"github.com/ritam/preptrail/internal/topics"
	"github.com/ritam/preptrail/internal/tracker"
	"github.com/ritam/preptrail/internal/ui/layout"
)

// Options carries the wired services into the TUI. Nil fields degrade to
// placeholder behavior so the app still boots without credentials or a
// database.
type Options struct {
	Controller *tracker.Controller
	Topics     *topics.Service
	UserLevel  string
}

// refreshedMsg reports that the background state reload finished; the
// router then tells the active screen.
type refreshedMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Controller, opts.Topics, opts.UserLevel)
	return AppModel{
		opts:   opts,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.FocusMsg:
		// The terminal regained focus: silently re-read persisted state to
		// catch changes made elsewhere (e.g. a headless generate). No
		// spinner; the active screen refreshes when the reload lands.
		if m.opts.Controller == nil {
			return m, nil
		}
		ctrl := m.opts.Controller
		return m, func() tea.Msg {
			_ = ctrl.LoadExisting(context.Background())
			ctrl.RefreshStatus(context.Background())
			return refreshedMsg{}
		}

	case refreshedMsg:
		cmd := m.router.Update(screen.StateRefreshedMsg{})
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	// Ask the terminal for focus events; tea.FocusMsg drives the silent
	// background reload.
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render composes the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerCompletion(), m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// headerCompletion returns the overall completion for the header readout,
// or -1 to hide it when no roadmap exists.
func (m AppModel) headerCompletion() int {
	if m.opts.Controller == nil {
		return -1
	}
	st := m.opts.Controller.Snapshot()
	if st.Roadmap == nil {
		return -1
	}
	return st.AverageCompletion()
}

// footerHints asks the active screen first, falling back to stack defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
