package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritam/preptrail/internal/router"
	"github.com/ritam/preptrail/internal/screen"
	"github.com/ritam/preptrail/internal/screens/placeholder"
	"github.com/ritam/preptrail/internal/screens/roadmapview"
	"github.com/ritam/preptrail/internal/topics"
	"github.com/ritam/preptrail/internal/tracker"
	"github.com/ritam/preptrail/internal/ui/components"
	"github.com/ritam/preptrail/internal/ui/layout"
	"github.com/ritam/preptrail/internal/ui/theme"
)

// resetDoneMsg is sent when a confirmed reset finishes.
type resetDoneMsg struct {
	Err error
}

// HomeScreen is the entry menu: a phase-aware summary of the roadmap plus
// navigation into the trail.
type HomeScreen struct {
	ctrl      *tracker.Controller
	topicsSvc *topics.Service
	userLevel string

	menu         components.Menu
	st           tracker.State
	confirmReset bool
	errMsg       string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. A nil controller falls back to a placeholder
// so the UI still boots without a database.
func New(ctrl *tracker.Controller, topicsSvc *topics.Service, userLevel string) *HomeScreen {
	h := &HomeScreen{
		ctrl:      ctrl,
		topicsSvc: topicsSvc,
		userLevel: userLevel,
	}

	items := []components.MenuItem{
		{Label: "CLIMB THE TRAIL", Action: func() tea.Cmd {
			if ctrl == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Roadmap")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: roadmapview.New(ctrl, topicsSvc, userLevel)}
			}
		}},
		{Label: "RESET PROGRESS", Action: func() tea.Cmd {
			if ctrl == nil {
				return nil
			}
			h.confirmReset = true
			return nil
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Wipe everything"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resetDoneMsg:
		if msg.Err != nil {
			h.errMsg = "Reset failed: " + msg.Err.Error()
		} else {
			h.errMsg = ""
		}
		h.refresh()
		return h, nil

	case screen.StateRefreshedMsg:
		h.refresh()
		return h, nil

	case tea.KeyMsg:
		if h.confirmReset {
			switch msg.String() {
			case "y", "Y":
				h.confirmReset = false
				return h, h.resetCmd()
			case "n", "N", "esc", "q":
				h.confirmReset = false
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) resetCmd() tea.Cmd {
	return func() tea.Msg {
		return resetDoneMsg{Err: h.ctrl.Reset(context.Background())}
	}
}

// refresh re-reads the controller snapshot for the summary card.
func (h *HomeScreen) refresh() {
	if h.ctrl == nil {
		return
	}
	h.st = h.ctrl.Snapshot()
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	// The block art is wider than the card width; center it on the frame.
	titleWidth := cw
	if !compact && width-6 > titleWidth {
		titleWidth = width - 6
	}
	sections = append(sections, renderTitle(titleWidth, compact))
	if !compact {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(RenderSummit(h.summitVariant())))
	}
	sections = append(sections, h.renderSummary(cw))

	if h.confirmReset {
		sections = append(sections, renderResetConfirm(cw))
	} else {
		sections = append(sections, components.SectionCard(h.menu.View(), cw))
	}

	if h.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(h.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return components.CenterFrame(content, width, height)
}

// summitVariant picks the banner art from overall progress.
func (h *HomeScreen) summitVariant() SummitVariant {
	if h.st.Roadmap == nil {
		return SummitIdle
	}
	avg := h.st.AverageCompletion()
	switch {
	case avg >= 100:
		return SummitReached
	case avg > 0:
		return SummitClimbing
	default:
		return SummitIdle
	}
}

// renderSummary is the phase-aware status card under the title.
func (h *HomeScreen) renderSummary(cw int) string {
	var line string
	switch h.st.Phase() {
	case tracker.PhaseActive, tracker.PhaseRegenerating:
		week := h.st.CurrentStep() + 1
		total := len(h.st.Roadmap.Weeks)
		avg := h.st.AverageCompletion()
		line = fmt.Sprintf("%s  %s",
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
				Render(fmt.Sprintf("⛰ Week %d of %d", week, total)),
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("%d%% complete", avg)),
		)
		line += "\n" + components.NewProgressBar("", float64(avg)/100, false, cw-6).View()
	case tracker.PhaseGenerating:
		line = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Generating your roadmap...")
	case tracker.PhaseReady:
		line = lipgloss.NewStyle().Foreground(theme.Text).
			Render("Ready to chart your internship-prep trail")
	default:
		reason := h.st.StatusReason
		if reason == "" {
			reason = "Set up your profile to get started"
		}
		line = lipgloss.NewStyle().Foreground(theme.TextDim).Render(reason)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

func renderResetConfirm(cw int) string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		components.NewButton("Y  wipe everything", true, nil).View(),
		"  ",
		components.NewButton("N  keep it", false, nil).View(),
	)
	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Delete the roadmap and all progress?") + "\n\n" + buttons
	return components.SectionCard(body, cw)
}

// Block-letter title, with a compact fallback for small terminals.
const titleFull = ` ██████╗ ██████╗ ███████╗██████╗ ████████╗██████╗  █████╗ ██╗██╗
 ██╔══██╗██╔══██╗██╔════╝██╔══██╗╚══██╔══╝██╔══██╗██╔══██╗██║██║
 ██████╔╝██████╔╝█████╗  ██████╔╝   ██║   ██████╔╝███████║██║██║
 ██╔═══╝ ██╔══██╗██╔══╝  ██╔═══╝    ██║   ██╔══██╗██╔══██║██║██║
 ██║     ██║  ██║███████╗██║        ██║   ██║  ██║██║  ██║██║███████╗
 ╚═╝     ╚═╝  ╚═╝╚══════╝╚═╝        ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚══════╝`

const titleCompact = "P · R · E · P · T · R · A · I · L"

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(titleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(titleFull))
}
