package topicdetail

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ritam/preptrail/internal/ui/components"
	"github.com/ritam/preptrail/internal/ui/theme"
)

// renderDetail lays out explanation, subtasks and resources as stacked
// cards, scrollable by whole lines.
func (s *Screen) renderDetail(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.detail.Topic)
	if s.detail.Cached {
		title += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  (cached)")
	}
	sections = append(sections, title)

	body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(s.detail.Explanation)
	sections = append(sections, components.SectionCard(body, cw))

	if len(s.detail.Subtasks) > 0 {
		sections = append(sections, s.renderList("Break it down", s.detail.Subtasks, "▸", theme.Secondary, cw))
	}
	if len(s.detail.Resources) > 0 {
		sections = append(sections, s.renderList("Resources", s.detail.Resources, "•", theme.Accent, cw))
	}

	content := strings.Join(sections, "\n\n")
	lines := strings.Split(content, "\n")

	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	if s.scroll < len(lines) {
		lines = lines[s.scroll:]
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	view := strings.Join(lines, "\n")
	return lipgloss.NewStyle().PaddingLeft(2).Render(view)
}

func (s *Screen) renderList(heading string, items []string, bullet string, c color.Color, cw int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(heading))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(bullet))
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 8).Render(item))
		b.WriteString("\n")
	}
	return components.SectionCard(strings.TrimRight(b.String(), "\n"), cw)
}
