package components

import (
	"charm.land/lipgloss/v2"

	"github.com/ritam/preptrail/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections,
// so boxes on a screen visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CenterFrame centers content within the given dimensions.
func CenterFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// SectionCard wraps content in a rounded-border card at the given width.
func SectionCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}
