package roadmap

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TaskScheme identifies which historical identifier scheme a task id uses.
// Both schemes coexist in stored progress: "task-<i>" is current, and
// "subtopic-<i>" survives from plans generated before tasks replaced
// subtopics.
type TaskScheme string

const (
	SchemeTask     TaskScheme = "task"
	SchemeSubtopic TaskScheme = "subtopic"
)

// TaskRef is a parsed task identifier. Identifiers are resolved to this
// tagged form once at load time rather than re-sniffed on every access.
type TaskRef struct {
	Scheme TaskScheme
	Index  int
}

// String renders the canonical wire form, e.g. "task-3".
func (t TaskRef) String() string {
	return fmt.Sprintf("%s-%d", t.Scheme, t.Index)
}

// ParseTaskRef parses "task-<i>" or "subtopic-<i>". Returns false for
// identifiers in neither scheme; callers must retain such ids verbatim so a
// checked item is never lost to an unrecognized scheme.
func ParseTaskRef(id string) (TaskRef, bool) {
	for _, scheme := range []TaskScheme{SchemeTask, SchemeSubtopic} {
		prefix := string(scheme) + "-"
		if rest, ok := strings.CutPrefix(id, prefix); ok {
			i, err := strconv.Atoi(rest)
			if err != nil || i < 0 {
				return TaskRef{}, false
			}
			return TaskRef{Scheme: scheme, Index: i}, true
		}
	}
	return TaskRef{}, false
}

// ProgressRecord is the per-week completion state: the set of completed task
// ids plus the derived percentage. CompletionPercentage is always recomputed
// from the set, never stored independently.
type ProgressRecord struct {
	WeekNumber           int       `json:"week_number"`
	CompletedTasks       []string  `json:"completed_tasks"`
	TotalTasks           int       `json:"total_tasks"`
	CompletionPercentage int       `json:"completion_percentage"`
	LastUpdated          time.Time `json:"last_updated"`
}

// NewProgressRecord creates a zero-progress record for a week.
func NewProgressRecord(weekNumber, totalTasks int, now time.Time) ProgressRecord {
	return ProgressRecord{
		WeekNumber:     weekNumber,
		CompletedTasks: []string{},
		TotalTasks:     totalTasks,
		LastUpdated:    now,
	}
}

// ComputeCompletion derives the completion percentage from the completed set.
// A zero task total yields 0, never a division by zero.
func ComputeCompletion(rec ProgressRecord) int {
	if rec.TotalTasks <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(len(rec.CompletedTasks)) / float64(rec.TotalTasks)))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// HasTask reports whether the record's completed set contains the id.
func (r ProgressRecord) HasTask(id string) bool {
	for _, t := range r.CompletedTasks {
		if t == id {
			return true
		}
	}
	return false
}

// Complete reports whether every task in the week is done.
func (r ProgressRecord) Complete() bool {
	return ComputeCompletion(r) >= 100
}

// ToggleTask returns a copy of rec with taskID added to or removed from the
// completed set, with the percentage recomputed and LastUpdated set to now.
// Idempotent: applying the same toggle twice with the same now yields the
// same record.
func ToggleTask(rec ProgressRecord, taskID string, completed bool, now time.Time) ProgressRecord {
	out := rec
	out.CompletedTasks = make([]string, 0, len(rec.CompletedTasks)+1)
	for _, t := range rec.CompletedTasks {
		if t != taskID {
			out.CompletedTasks = append(out.CompletedTasks, t)
		}
	}
	if completed {
		out.CompletedTasks = append(out.CompletedTasks, taskID)
		sort.Strings(out.CompletedTasks)
	}
	out.CompletionPercentage = ComputeCompletion(out)
	out.LastUpdated = now
	return out
}

// Normalize recomputes the derived percentage on a loaded record. Stored
// percentages are advisory; the completed set is the source of truth.
func Normalize(rec ProgressRecord) ProgressRecord {
	if rec.CompletedTasks == nil {
		rec.CompletedTasks = []string{}
	}
	rec.CompletionPercentage = ComputeCompletion(rec)
	return rec
}

// FindCurrentStep returns the index of the first week whose record is below
// 100%, the last index when every week is complete, and 0 for an empty plan.
// Records are matched to weeks by week number; a missing record counts as
// zero progress.
func FindCurrentStep(weeks []Week, records []ProgressRecord) int {
	if len(weeks) == 0 {
		return 0
	}
	byWeek := make(map[int]ProgressRecord, len(records))
	for _, rec := range records {
		byWeek[rec.WeekNumber] = rec
	}
	for i, w := range weeks {
		rec, ok := byWeek[w.WeekNumber]
		if !ok || !rec.Complete() {
			return i
		}
	}
	return len(weeks) - 1
}

// RecordFor returns the record for a week number, creating a lazy
// zero-progress record when absent (exactly one record per week invariant).
func RecordFor(records []ProgressRecord, week Week, now time.Time) ProgressRecord {
	for _, rec := range records {
		if rec.WeekNumber == week.WeekNumber {
			return rec
		}
	}
	return NewProgressRecord(week.WeekNumber, len(week.Tasks), now)
}

// AveragePercentage is the mean completion across records, used by the
// regeneration confirmation copy. Zero when there are no records.
func AveragePercentage(records []ProgressRecord) int {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range records {
		sum += ComputeCompletion(rec)
	}
	return int(math.Round(float64(sum) / float64(len(records))))
}
