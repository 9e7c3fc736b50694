// Package trail positions roadmap weeks on a 2-D staircase: each week sits
// up and to the right of its predecessor, joined by forward edges. The
// layout is a pure function of the week sequence and the expand state; it
// is recomputed on explicit "plan changed" or "node toggled" events, never
// as a render side effect, and it never reads progress.
package trail

import "github.com/ritam/preptrail/internal/roadmap"

// Step constants are a presentation detail; the contract is strict
// monotonicity (x ascending, y descending as week numbers rise).
const (
	StepX = 30
	StepY = 5

	CollapsedWidth  = 26
	CollapsedHeight = 4
	ExpandedWidth   = 34
)

// Node is one positioned week. Y grows downward (terminal rows), so later
// weeks have smaller Y: the staircase climbs toward the top-right.
type Node struct {
	WeekNumber int
	X          int
	Y          int
	Width      int
	Height     int
	Expanded   bool
}

// Edge joins two consecutive weeks, directed from the earlier week.
type Edge struct {
	FromWeek int
	ToWeek   int
}

// Layout is the positioned graph plus pass-through annotation of the
// current step.
type Layout struct {
	Nodes       []Node
	Edges       []Edge
	CurrentStep int
	Width       int
	Height      int
}

// ExpandedHeight returns the rows an expanded node for the week occupies:
// header, progress line, one row per task, and a deliverables summary row.
func ExpandedHeight(w roadmap.Week) int {
	h := CollapsedHeight + len(w.Tasks) + 1
	if len(w.Deliverables) > 0 {
		h++
	}
	return h
}

// Build lays out the weeks left-to-right, bottom-to-top. expanded holds the
// week numbers currently open; their extra height widens the vertical gap
// below them so boxes never overlap. currentStep is carried through
// unchanged. Empty input yields an empty layout, not an error.
func Build(weeks []roadmap.Week, currentStep int, expanded map[int]bool) Layout {
	l := Layout{CurrentStep: currentStep}
	if len(weeks) == 0 {
		return l
	}

	heights := make([]int, len(weeks))
	for i, w := range weeks {
		if expanded[w.WeekNumber] {
			heights[i] = ExpandedHeight(w)
		} else {
			heights[i] = CollapsedHeight
		}
	}

	// First pass in abstract coordinates with y decreasing per step. The
	// step shrinks by at least one row per node height so a tall expanded
	// node cannot collide with its successor.
	l.Nodes = make([]Node, len(weeks))
	y := 0
	for i, w := range weeks {
		width := CollapsedWidth
		if expanded[w.WeekNumber] {
			width = ExpandedWidth
		}
		l.Nodes[i] = Node{
			WeekNumber: w.WeekNumber,
			X:          i * StepX,
			Y:          y,
			Width:      width,
			Height:     heights[i],
			Expanded:   expanded[w.WeekNumber],
		}
		step := StepY
		if heights[i] >= StepY {
			step = heights[i] + 1
		}
		y -= step
	}

	// Shift so the top-most node starts at row 0.
	minY := l.Nodes[len(l.Nodes)-1].Y
	maxBottom := 0
	maxRight := 0
	for i := range l.Nodes {
		l.Nodes[i].Y -= minY
		if bottom := l.Nodes[i].Y + l.Nodes[i].Height; bottom > maxBottom {
			maxBottom = bottom
		}
		if right := l.Nodes[i].X + l.Nodes[i].Width; right > maxRight {
			maxRight = right
		}
	}
	l.Width = maxRight
	l.Height = maxBottom

	for i := 0; i+1 < len(weeks); i++ {
		l.Edges = append(l.Edges, Edge{FromWeek: weeks[i].WeekNumber, ToWeek: weeks[i+1].WeekNumber})
	}
	return l
}

// NodeFor returns the positioned node for a week number, or nil.
func (l Layout) NodeFor(weekNumber int) *Node {
	for i := range l.Nodes {
		if l.Nodes[i].WeekNumber == weekNumber {
			return &l.Nodes[i]
		}
	}
	return nil
}
