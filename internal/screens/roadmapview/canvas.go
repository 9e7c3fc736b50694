package roadmapview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ritam/preptrail/internal/roadmap"
	"github.com/ritam/preptrail/internal/trail"
	"github.com/ritam/preptrail/internal/ui/components"
	"github.com/ritam/preptrail/internal/ui/theme"
)

// renderScene draws the full staircase at its natural size, one string per
// terminal row. The caller clips the result to the viewport. Nodes are drawn
// left to right so each row is appended in column order; edges go first
// because they only occupy the empty rows between boxes.
func renderScene(rm *roadmap.Roadmap, recs []roadmap.ProgressRecord, statuses []roadmap.WeekStatus, checked map[int]map[int]bool, l trail.Layout, selected, taskCursor int, focusTasks bool) []string {
	lines := make([]string, l.Height)
	cols := make([]int, l.Height) // visible width consumed per row

	put := func(row, col int, text string) {
		if row < 0 || row >= len(lines) {
			return
		}
		pad := col - cols[row]
		if pad < 0 {
			pad = 1
		}
		lines[row] += strings.Repeat(" ", pad) + text
		cols[row] += pad + lipgloss.Width(text)
	}

	edgeStyle := lipgloss.NewStyle().Foreground(theme.Border)
	for _, e := range l.Edges {
		from := l.NodeFor(e.FromWeek)
		to := l.NodeFor(e.ToWeek)
		if from == nil || to == nil {
			continue
		}
		drawEdge(put, edgeStyle, *from, *to)
	}

	for i, n := range l.Nodes {
		rec := roadmap.ProgressRecord{WeekNumber: n.WeekNumber, TotalTasks: len(rm.Weeks[i].Tasks)}
		for _, r := range recs {
			if r.WeekNumber == n.WeekNumber {
				rec = r
				break
			}
		}
		box := renderNode(rm.Weeks[i], rec, statuses[i], checked[n.WeekNumber], n, i == selected, taskCursor, focusTasks)
		for j, boxLine := range strings.Split(box, "\n") {
			put(n.Y+j, n.X, boxLine)
		}
	}
	return lines
}

// drawEdge draws a diagonal connector climbing from the top of the earlier
// (lower-left) node toward the bottom of the later one.
func drawEdge(put func(row, col int, text string), style lipgloss.Style, from, to trail.Node) {
	top := to.Y + to.Height // first row below the upper box
	bottom := from.Y - 1    // last row above the lower box
	if top > bottom {
		return
	}
	startCol := from.X + from.Width - 4
	endCol := to.X + 4
	span := bottom - top + 1
	ch := style.Render("╱")
	for row := top; row <= bottom; row++ {
		col := startCol
		if span > 1 {
			col = startCol + (endCol-startCol)*(bottom-row)/(span-1)
		}
		put(row, col, ch)
	}
}

// renderNode draws one week box at its layout size. The border style encodes
// the unlock tag; the selected node gets a bold title and a cursor marker.
func renderNode(w roadmap.Week, rec roadmap.ProgressRecord, status roadmap.WeekStatus, checked map[int]bool, n trail.Node, selected bool, taskCursor int, focusTasks bool) string {
	inner := n.Width - 2

	boxStyle := theme.NodeNormal
	switch status.Tag() {
	case "locked":
		boxStyle = theme.NodeLocked
	case "current":
		boxStyle = theme.NodeCurrent
	case "final":
		boxStyle = theme.NodeFinal
	}

	title := fmt.Sprintf("Week %d", w.WeekNumber)
	if selected {
		title = "▸ " + title
	}
	tag := ""
	switch {
	case status.Locked:
		tag = "LOCKED"
	case status.Current:
		tag = "NOW"
	case status.Final:
		tag = "FINAL"
	}
	pct := fmt.Sprintf("%d%%", roadmap.ComputeCompletion(rec))
	if status.Locked {
		pct = ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		titleStyle = titleStyle.Bold(true).Foreground(theme.Primary)
	}
	if status.Locked {
		titleStyle = titleStyle.Foreground(theme.TextDim)
	}

	var b strings.Builder
	b.WriteString(headerLine(titleStyle.Render(title), tag, pct, inner))
	b.WriteString("\n")
	b.WriteString(truncate(w.Theme, inner))

	if n.Expanded {
		b.WriteString("\n")
		b.WriteString(taskList(w, checked, status, selected, taskCursor, focusTasks))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("≈ %.0fh · %s", w.EstimatedHours, truncate(w.FocusArea, inner-10))))
		if len(w.Deliverables) > 0 {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
				Render(truncate("→ "+w.Deliverables[0], inner)))
		}
	}

	return boxStyle.Width(inner).Height(n.Height - 2).Render(b.String())
}

// taskList renders the checkbox rows of an expanded node. Only the selected
// node in task mode shows a live cursor; everything else renders read-only.
func taskList(w roadmap.Week, checked map[int]bool, status roadmap.WeekStatus, selected bool, taskCursor int, focusTasks bool) string {
	labels := make([]string, len(w.Tasks))
	for i, t := range w.Tasks {
		labels[i] = truncate(t, trail.ExpandedWidth-8) // room for cursor + box
	}
	list := components.NewChecklist(labels, checked)
	list.ReadOnly = !status.Interactive()
	if selected && focusTasks && status.Interactive() {
		list.Cursor = taskCursor
	} else {
		list.Cursor = -1
	}
	return list.View()
}

// resolveChecked maps each week's stored task ids to checklist indexes,
// covering both historical id schemes. Done once per state load; renders
// index into the result instead of re-parsing ids every frame. Ids in
// neither scheme stay in the stored set but mark nothing.
func resolveChecked(weeks []roadmap.Week, recs []roadmap.ProgressRecord) map[int]map[int]bool {
	byWeek := make(map[int]roadmap.Week, len(weeks))
	for _, w := range weeks {
		byWeek[w.WeekNumber] = w
	}
	out := make(map[int]map[int]bool, len(recs))
	for _, rec := range recs {
		w, found := byWeek[rec.WeekNumber]
		if !found {
			continue
		}
		checked := make(map[int]bool, len(rec.CompletedTasks))
		for _, id := range rec.CompletedTasks {
			ref, ok := roadmap.ParseTaskRef(id)
			if !ok {
				continue
			}
			if ref.Index >= 0 && ref.Index < len(w.Tasks) {
				checked[ref.Index] = true
			}
		}
		out[rec.WeekNumber] = checked
	}
	return out
}

// headerLine lays out "title ... tag pct" within the given width.
func headerLine(title, tag, pct string, width int) string {
	right := pct
	if tag != "" {
		tagStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		if tag == "LOCKED" {
			tagStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		right = tagStyle.Render(tag)
		if pct != "" {
			right += " " + pct
		}
	}
	gap := width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

// truncate shortens s to at most width visible columns.
func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

// clipViewport cuts the scene down to the viewport rectangle. Rows are
// sliced whole; columns are cut with cutColumns so styling survives.
func clipViewport(lines []string, offX, offY, width, height int) string {
	var out []string
	for row := offY; row < offY+height && row < len(lines); row++ {
		if row < 0 {
			continue
		}
		out = append(out, cutColumns(lines[row], offX, width))
	}
	return strings.Join(out, "\n")
}

// cutColumns keeps the visible columns [from, from+width) of a styled line.
// Escape sequences are passed through unchanged so runs keep their colors;
// only printable runes are counted and dropped.
func cutColumns(s string, from, width int) string {
	var b strings.Builder
	col := 0
	inEsc := false
	for _, r := range s {
		if inEsc {
			b.WriteRune(r)
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
			continue
		}
		if r == 0x1b {
			inEsc = true
			b.WriteRune(r)
			continue
		}
		if col >= from && col < from+width {
			b.WriteRune(r)
		}
		col++
	}
	return b.String()
}
