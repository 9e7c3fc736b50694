package roadmap

import (
	"reflect"
	"testing"
	"time"
)

func week(n int, tasks ...string) Week {
	return Week{WeekNumber: n, Theme: "theme", Tasks: tasks}
}

func recordWith(n, total int, done ...string) ProgressRecord {
	rec := ProgressRecord{WeekNumber: n, TotalTasks: total, CompletedTasks: done}
	rec.CompletionPercentage = ComputeCompletion(rec)
	return rec
}

func TestComputeCompletion(t *testing.T) {
	tests := []struct {
		name  string
		total int
		done  []string
		want  int
	}{
		{"empty", 3, nil, 0},
		{"one of three", 3, []string{"task-0"}, 33},
		{"two of three", 3, []string{"task-0", "task-1"}, 67},
		{"all", 3, []string{"task-0", "task-1", "task-2"}, 100},
		{"zero total", 0, []string{"task-0"}, 0},
		{"negative total", -1, nil, 0},
		{"overfull clamps", 2, []string{"task-0", "task-1", "subtopic-0"}, 100},
	}
	for _, tt := range tests {
		got := ComputeCompletion(ProgressRecord{TotalTasks: tt.total, CompletedTasks: tt.done})
		if got != tt.want {
			t.Errorf("%s: got %d%%, want %d%%", tt.name, got, tt.want)
		}
	}
}

func TestFindCurrentStep(t *testing.T) {
	weeks := []Week{week(1, "a", "b"), week(2, "a", "b"), week(3, "a", "b")}

	if got := FindCurrentStep(nil, nil); got != 0 {
		t.Errorf("empty plan: got %d, want 0", got)
	}
	if got := FindCurrentStep(weeks, nil); got != 0 {
		t.Errorf("no records: got %d, want 0", got)
	}

	records := []ProgressRecord{
		recordWith(1, 2, "task-0", "task-1"),
		recordWith(2, 2, "task-0"),
		recordWith(3, 2),
	}
	if got := FindCurrentStep(weeks, records); got != 1 {
		t.Errorf("partial: got %d, want 1", got)
	}

	allDone := []ProgressRecord{
		recordWith(1, 2, "task-0", "task-1"),
		recordWith(2, 2, "task-0", "task-1"),
		recordWith(3, 2, "task-0", "task-1"),
	}
	if got := FindCurrentStep(weeks, allDone); got != 2 {
		t.Errorf("all complete: got %d, want last index 2", got)
	}
}

func TestFindCurrentStep_MissingRecordIsZeroProgress(t *testing.T) {
	weeks := []Week{week(1, "a"), week(2, "a")}
	records := []ProgressRecord{recordWith(1, 1, "task-0")}
	if got := FindCurrentStep(weeks, records); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestToggleTask_Complete(t *testing.T) {
	now := time.Now()
	rec := recordWith(1, 3)
	got := ToggleTask(rec, "task-0", true, now)
	if !got.HasTask("task-0") {
		t.Fatal("task-0 should be completed")
	}
	if got.CompletionPercentage != 33 {
		t.Errorf("got %d%%, want 33%%", got.CompletionPercentage)
	}
	if !got.LastUpdated.Equal(now) {
		t.Errorf("LastUpdated = %v, want the supplied time", got.LastUpdated)
	}
	// Original is untouched.
	if rec.HasTask("task-0") {
		t.Error("ToggleTask must not mutate its input")
	}
}

func TestToggleTask_Idempotent(t *testing.T) {
	now := time.Now()
	rec := recordWith(1, 3)
	once := ToggleTask(rec, "task-1", true, now)
	twice := ToggleTask(once, "task-1", true, now)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("double complete changed the record: %+v vs %+v", once, twice)
	}

	cleared := ToggleTask(rec, "task-2", false, now)
	if len(cleared.CompletedTasks) != 0 {
		t.Errorf("clearing an absent id should be a no-op, got %v", cleared.CompletedTasks)
	}
}

func TestToggleTask_Uncomplete(t *testing.T) {
	rec := recordWith(1, 2, "task-0", "task-1")
	got := ToggleTask(rec, "task-0", false, time.Now())
	if got.HasTask("task-0") {
		t.Error("task-0 should be cleared")
	}
	if got.CompletionPercentage != 50 {
		t.Errorf("got %d%%, want 50%%", got.CompletionPercentage)
	}
}

func TestToggleTask_PreservesForeignSchemeIDs(t *testing.T) {
	rec := recordWith(1, 3, "subtopic-0", "weird-id")
	got := ToggleTask(rec, "task-2", true, time.Now())
	if !got.HasTask("subtopic-0") || !got.HasTask("weird-id") {
		t.Errorf("existing ids lost: %v", got.CompletedTasks)
	}
}

func TestParseTaskRef(t *testing.T) {
	tests := []struct {
		id   string
		want TaskRef
		ok   bool
	}{
		{"task-0", TaskRef{SchemeTask, 0}, true},
		{"task-12", TaskRef{SchemeTask, 12}, true},
		{"subtopic-3", TaskRef{SchemeSubtopic, 3}, true},
		{"task--1", TaskRef{}, false},
		{"task-x", TaskRef{}, false},
		{"lesson-1", TaskRef{}, false},
		{"", TaskRef{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseTaskRef(tt.id)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseTaskRef(%q) = %v, %v; want %v, %v", tt.id, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTaskRefRoundTrip(t *testing.T) {
	for _, id := range []string{"task-4", "subtopic-0"} {
		ref, ok := ParseTaskRef(id)
		if !ok {
			t.Fatalf("parse %q failed", id)
		}
		if ref.String() != id {
			t.Errorf("round-trip %q -> %q", id, ref.String())
		}
	}
}

func TestSeedProgress(t *testing.T) {
	plan := &Roadmap{Weeks: []Week{
		week(1, "a", "b", "c"),
		week(2, "a"),
		week(3),
	}}
	records := plan.SeedProgress(time.Now())
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, rec := range records {
		if rec.WeekNumber != plan.Weeks[i].WeekNumber {
			t.Errorf("record %d has week %d", i, rec.WeekNumber)
		}
		if rec.TotalTasks != len(plan.Weeks[i].Tasks) {
			t.Errorf("week %d: total %d, want %d", rec.WeekNumber, rec.TotalTasks, len(plan.Weeks[i].Tasks))
		}
		if rec.CompletionPercentage != 0 {
			t.Errorf("week %d seeded at %d%%", rec.WeekNumber, rec.CompletionPercentage)
		}
	}
}

func TestAveragePercentage(t *testing.T) {
	if got := AveragePercentage(nil); got != 0 {
		t.Errorf("empty: got %d", got)
	}
	records := []ProgressRecord{
		recordWith(1, 2, "task-0", "task-1"),
		recordWith(2, 2),
	}
	if got := AveragePercentage(records); got != 50 {
		t.Errorf("got %d, want 50", got)
	}
}

func TestNormalizeRecomputesDrift(t *testing.T) {
	rec := ProgressRecord{WeekNumber: 1, TotalTasks: 2, CompletedTasks: []string{"task-0"}, CompletionPercentage: 90}
	got := Normalize(rec)
	if got.CompletionPercentage != 50 {
		t.Errorf("got %d%%, want recomputed 50%%", got.CompletionPercentage)
	}
}
