package components

import (
	"charm.land/lipgloss/v2"

	"github.com/ritam/preptrail/internal/ui/theme"
)

// Banner is a dismissible one-line notice, used for transient errors like
// a failed progress write.
type Banner struct {
	message string
	isError bool
}

// ShowError sets an error message.
func (b *Banner) ShowError(msg string) {
	b.message = msg
	b.isError = true
}

// ShowNotice sets an informational message.
func (b *Banner) ShowNotice(msg string) {
	b.message = msg
	b.isError = false
}

// Dismiss clears the banner.
func (b *Banner) Dismiss() {
	b.message = ""
}

// Visible reports whether there is anything to render.
func (b Banner) Visible() bool {
	return b.message != ""
}

// View renders the banner at the given width, or nothing when dismissed.
func (b Banner) View(width int) string {
	if b.message == "" {
		return ""
	}
	color := theme.Secondary
	if b.isError {
		color = theme.Error
	}
	return lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Render(b.message + "  (x to dismiss)")
}
