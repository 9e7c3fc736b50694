package trail

import (
	"testing"

	"github.com/ritam/preptrail/internal/roadmap"
)

func planWeeks(n int) []roadmap.Week {
	weeks := make([]roadmap.Week, n)
	for i := range weeks {
		weeks[i] = roadmap.Week{
			WeekNumber: i + 1,
			Theme:      "theme",
			Tasks:      []string{"a", "b", "c"},
		}
	}
	return weeks
}

func TestBuild_Monotonic(t *testing.T) {
	for n := 1; n <= 10; n++ {
		l := Build(planWeeks(n), 0, nil)
		if len(l.Nodes) != n {
			t.Fatalf("n=%d: got %d nodes", n, len(l.Nodes))
		}
		for i := 1; i < n; i++ {
			if l.Nodes[i].X <= l.Nodes[i-1].X {
				t.Errorf("n=%d: x not ascending at %d", n, i)
			}
			if l.Nodes[i].Y >= l.Nodes[i-1].Y {
				t.Errorf("n=%d: y not descending at %d (%d >= %d)", n, i, l.Nodes[i].Y, l.Nodes[i-1].Y)
			}
		}
	}
}

func TestBuild_EdgeCount(t *testing.T) {
	for n := 1; n <= 6; n++ {
		l := Build(planWeeks(n), 0, nil)
		if len(l.Edges) != n-1 {
			t.Errorf("n=%d: got %d edges, want %d", n, len(l.Edges), n-1)
		}
		for i, e := range l.Edges {
			if e.FromWeek != i+1 || e.ToWeek != i+2 {
				t.Errorf("edge %d: %d->%d, want %d->%d", i, e.FromWeek, e.ToWeek, i+1, i+2)
			}
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	l := Build(nil, 0, nil)
	if len(l.Nodes) != 0 || len(l.Edges) != 0 || l.Width != 0 || l.Height != 0 {
		t.Errorf("empty input should yield empty layout, got %+v", l)
	}
}

func TestBuild_CurrentStepPassThrough(t *testing.T) {
	l := Build(planWeeks(5), 3, nil)
	if l.CurrentStep != 3 {
		t.Errorf("got current step %d, want 3", l.CurrentStep)
	}
}

func TestBuild_ExpandedNodesDoNotOverlap(t *testing.T) {
	weeks := planWeeks(4)
	expanded := map[int]bool{2: true, 3: true}
	l := Build(weeks, 0, expanded)

	for i := 1; i < len(l.Nodes); i++ {
		above := l.Nodes[i]
		below := l.Nodes[i-1]
		if above.Y+above.Height > below.Y {
			t.Errorf("node %d (bottom %d) overlaps node %d (top %d)",
				above.WeekNumber, above.Y+above.Height, below.WeekNumber, below.Y)
		}
	}

	if n := l.NodeFor(2); n == nil || !n.Expanded || n.Width != ExpandedWidth {
		t.Errorf("week 2 should be expanded at width %d, got %+v", ExpandedWidth, n)
	}
	if n := l.NodeFor(1); n == nil || n.Expanded || n.Width != CollapsedWidth {
		t.Errorf("week 1 should be collapsed, got %+v", n)
	}
}

func TestBuild_TopNodeAtRowZero(t *testing.T) {
	l := Build(planWeeks(3), 0, nil)
	last := l.Nodes[len(l.Nodes)-1]
	if last.Y != 0 {
		t.Errorf("latest week should sit at the top row, got y=%d", last.Y)
	}
	first := l.Nodes[0]
	if first.Y+first.Height != l.Height {
		t.Errorf("layout height %d does not reach the first week's bottom %d", l.Height, first.Y+first.Height)
	}
}

func TestExpandedHeight(t *testing.T) {
	w := roadmap.Week{Tasks: []string{"a", "b"}, Deliverables: []string{"d"}}
	want := CollapsedHeight + 2 + 1 + 1
	if got := ExpandedHeight(w); got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}
