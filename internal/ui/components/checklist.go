package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritam/preptrail/internal/ui/theme"
)

// ChecklistItem is one toggleable entry in a Checklist.
type ChecklistItem struct {
	Label   string
	Checked bool
}

// Checklist is a vertical list of checkboxes with a cursor. When ReadOnly
// is set the cursor still moves but toggles are ignored (locked weeks).
type Checklist struct {
	Items    []ChecklistItem
	Cursor   int
	ReadOnly bool

	// OnToggle fires when the user toggles an item, with the item index
	// and the new checked state. The local state is already flipped when
	// it runs (optimistic display).
	OnToggle func(index int, checked bool) tea.Cmd
}

// NewChecklist creates a checklist from labels and a set of checked indexes.
func NewChecklist(labels []string, checked map[int]bool) Checklist {
	items := make([]ChecklistItem, len(labels))
	for i, l := range labels {
		items[i] = ChecklistItem{Label: l, Checked: checked[i]}
	}
	return Checklist{Items: items}
}

// SetChecked overwrites the checked state for an index, used to revert a
// failed optimistic toggle.
func (c *Checklist) SetChecked(index int, checked bool) {
	if index >= 0 && index < len(c.Items) {
		c.Items[index].Checked = checked
	}
}

// Update handles cursor movement and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case " ", "space", "enter":
		if c.ReadOnly || c.Cursor < 0 || c.Cursor >= len(c.Items) {
			return c, nil
		}
		c.Items[c.Cursor].Checked = !c.Items[c.Cursor].Checked
		if c.OnToggle != nil {
			return c, c.OnToggle(c.Cursor, c.Items[c.Cursor].Checked)
		}
	}

	return c, nil
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}
		cursor := "  "
		if i == c.Cursor && !c.ReadOnly {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", cursor, box, item.Label)
		switch {
		case c.ReadOnly:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case item.Checked:
			s += lipgloss.NewStyle().Foreground(theme.Success).Render(line) + "\n"
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// CheckedCount returns how many items are checked.
func (c Checklist) CheckedCount() int {
	n := 0
	for _, item := range c.Items {
		if item.Checked {
			n++
		}
	}
	return n
}
