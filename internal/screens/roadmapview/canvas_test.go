package roadmapview

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/ritam/preptrail/internal/roadmap"
	"github.com/ritam/preptrail/internal/trail"
)

func TestCutColumns(t *testing.T) {
	if got := cutColumns("abcdef", 2, 3); got != "cde" {
		t.Errorf("cutColumns plain = %q, want %q", got, "cde")
	}
	if got := cutColumns("abc", 5, 3); got != "" {
		t.Errorf("cutColumns past end = %q, want empty", got)
	}

	styled := "\x1b[31mabcdef\x1b[0m"
	got := cutColumns(styled, 2, 3)
	if !strings.Contains(got, "cde") {
		t.Errorf("cutColumns styled lost text: %q", got)
	}
	if !strings.Contains(got, "\x1b[31m") || !strings.Contains(got, "\x1b[0m") {
		t.Errorf("cutColumns styled dropped escapes: %q", got)
	}
	if strings.ContainsAny(stripEscapes(got), "abf") {
		t.Errorf("cutColumns kept out-of-window runes: %q", got)
	}
}

func stripEscapes(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		if inEsc {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
			continue
		}
		if r == 0x1b {
			inEsc = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestResolveChecked_BothSchemesResolveOnce(t *testing.T) {
	weeks := []roadmap.Week{
		{WeekNumber: 1, Tasks: []string{"a", "b", "c"}},
		{WeekNumber: 2, Tasks: []string{"a"}},
	}
	recs := []roadmap.ProgressRecord{
		{WeekNumber: 1, TotalTasks: 3, CompletedTasks: []string{"task-0", "subtopic-2", "weird-id", "task-9"}},
		{WeekNumber: 2, TotalTasks: 1},
	}

	checked := resolveChecked(weeks, recs)

	got := checked[1]
	if !got[0] || !got[2] {
		t.Errorf("expected both schemes resolved, got %v", got)
	}
	if got[1] {
		t.Errorf("task-1 should not be checked: %v", got)
	}
	if len(got) != 2 {
		t.Errorf("foreign or out-of-range ids must mark nothing, got %v", got)
	}
	if len(checked[2]) != 0 {
		t.Errorf("week 2 has no completions, got %v", checked[2])
	}
}

func TestRenderScene_SizeMatchesLayout(t *testing.T) {
	rm := testPlan()
	recs := rm.SeedProgress(rm.GeneratedAt)
	statuses := roadmap.WeekStatuses(rm.Weeks, recs)
	l := trail.Build(rm.Weeks, 0, nil)

	lines := renderScene(rm, recs, statuses, resolveChecked(rm.Weeks, recs), l, 0, 0, false)
	if len(lines) != l.Height {
		t.Fatalf("scene rows = %d, want %d", len(lines), l.Height)
	}
	for i, line := range lines {
		if lipgloss.Width(line) > l.Width {
			t.Errorf("row %d wider than layout: %d > %d", i, lipgloss.Width(line), l.Width)
		}
	}
}

func TestRenderScene_TagsVisible(t *testing.T) {
	rm := testPlan()
	recs := rm.SeedProgress(rm.GeneratedAt)
	statuses := roadmap.WeekStatuses(rm.Weeks, recs)
	l := trail.Build(rm.Weeks, 0, nil)

	scene := strings.Join(renderScene(rm, recs, statuses, resolveChecked(rm.Weeks, recs), l, 0, 0, false), "\n")
	for _, want := range []string{"Week 1", "Week 2", "Week 3", "NOW", "LOCKED", "Foundations"} {
		if !strings.Contains(scene, want) {
			t.Errorf("scene missing %q", want)
		}
	}
}

func TestRenderScene_ExpandedShowsTasks(t *testing.T) {
	rm := testPlan()
	recs := rm.SeedProgress(rm.GeneratedAt)
	recs[0] = roadmap.ToggleTask(recs[0], "task-0", true, rm.GeneratedAt)
	statuses := roadmap.WeekStatuses(rm.Weeks, recs)
	l := trail.Build(rm.Weeks, 0, map[int]bool{1: true})

	scene := strings.Join(renderScene(rm, recs, statuses, resolveChecked(rm.Weeks, recs), l, 0, 0, false), "\n")
	if !strings.Contains(scene, "[x]") {
		t.Error("expected a checked task in expanded node")
	}
	if !strings.Contains(scene, "[ ]") {
		t.Error("expected an unchecked task in expanded node")
	}
}
