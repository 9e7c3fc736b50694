package roadmapview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ritam/preptrail/internal/roadmap"
	"github.com/ritam/preptrail/internal/tracker"
	"github.com/ritam/preptrail/internal/ui/components"
	"github.com/ritam/preptrail/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.st.Roadmap == nil {
		return s.renderEmpty(width, height)
	}
	if s.confirmRegen {
		return s.renderConfirm(width, height)
	}

	statusHeight := 2
	if s.banner.Visible() {
		statusHeight += 3
	}
	vh := height - statusHeight
	if vh < 1 {
		vh = 1
	}

	s.adjustViewport(width, vh)

	scene := renderScene(
		s.st.Roadmap, s.st.Records, s.st.Statuses(), s.checked,
		s.layout, s.selected, s.tasks.Cursor, s.focusTasks,
	)
	view := clipViewport(scene, s.offsetX, s.offsetY, width, vh)

	// Pad so the status bar sits at the bottom.
	rendered := strings.Count(view, "\n") + 1
	if rendered < vh {
		view += strings.Repeat("\n", vh-rendered)
	}

	return view + "\n" + s.renderStatusBar(width)
}

// adjustViewport recenters on the current-step node when the current step
// changes (once per distinct value), then scrolls a moved selection into
// view. Called from View because only View knows the viewport size; it is
// scroll bookkeeping, not layout work.
func (s *Screen) adjustViewport(vw, vh int) {
	step := s.st.CurrentStep()
	if step != s.focusedStep && step >= 0 && step < len(s.layout.Nodes) {
		s.focusedStep = step
		n := s.layout.Nodes[step]
		s.offsetX = n.X + n.Width/2 - vw/2
		s.offsetY = n.Y + n.Height/2 - vh/2
	}

	if s.pendingReveal && s.selected >= 0 && s.selected < len(s.layout.Nodes) {
		s.pendingReveal = false
		n := s.layout.Nodes[s.selected]
		if n.X < s.offsetX {
			s.offsetX = n.X
		}
		if n.X+n.Width > s.offsetX+vw {
			s.offsetX = n.X + n.Width - vw
		}
		if n.Y < s.offsetY {
			s.offsetY = n.Y
		}
		if n.Y+n.Height > s.offsetY+vh {
			s.offsetY = n.Y + n.Height - vh
		}
	}

	s.offsetX = clamp(s.offsetX, 0, max(0, s.layout.Width-vw))
	s.offsetY = clamp(s.offsetY, 0, max(0, s.layout.Height-vh))
}

// renderStatusBar shows the selected week summary on the left and transient
// activity on the right, with the banner above when visible.
func (s *Screen) renderStatusBar(width int) string {
	w := s.st.Roadmap.Weeks[s.selected]
	rec, _ := s.st.RecordByWeek(w.WeekNumber)

	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Week %d", w.WeekNumber))
	left += lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d tasks · %d%%",
			len(rec.CompletedTasks), rec.TotalTasks, roadmap.ComputeCompletion(rec)))

	right := ""
	if s.genInFlight {
		right = s.spin.View() + "  "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right

	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-2)))

	if s.banner.Visible() {
		return s.banner.View(width-4) + "\n" + rule + "\n" + bar
	}
	return rule + "\n" + bar
}

// renderEmpty covers every phase without a roadmap: first generation in
// flight, ready to generate, or onboarding prerequisites missing.
func (s *Screen) renderEmpty(width, height int) string {
	var body string
	switch s.st.Phase() {
	case tracker.PhaseGenerating:
		body = s.spin.View() + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("Building your week-by-week plan.\nThis usually takes under a minute.")
	case tracker.PhaseReady:
		body = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("No roadmap yet") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("Press G to generate a personalized\ninternship-prep roadmap.")
	default:
		reason := s.st.StatusReason
		if reason == "" {
			reason = "Generation is not available yet."
		}
		body = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Almost there") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(reason)
	}

	if s.genInFlight && s.st.Phase() != tracker.PhaseGenerating {
		body = s.spin.View()
	}

	card := components.SectionCard(body, components.ContentWidth(width))
	out := components.CenterFrame(card, width, height-1)
	if s.banner.Visible() {
		out += "\n" + s.banner.View(width - 4)
	}
	return out
}

// renderConfirm is the regeneration confirmation dialog. The progress-loss
// warning uses the client-computed average; it is advisory copy only.
func (s *Screen) renderConfirm(width, height int) string {
	avg := s.st.AverageCompletion()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Generate a new roadmap?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).
		Render(fmt.Sprintf("You're %d%% of the way through this one.", avg)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("A new roadmap replaces it and resets all progress."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("[Y] Yes, start fresh"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, keep climbing"))

	card := components.SectionCard(b.String(), components.ContentWidth(width))
	return components.CenterFrame(card, width, height)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
