package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ritam/preptrail/internal/roadmap"
)

// Toggle is one optimistic task mutation. ToggleTask applies it to the
// in-memory state immediately and returns this handle; FinishToggle later
// commits or rolls back exactly this mutation. Before/After pin the rollback
// to the specific record this toggle produced, so a failure cannot clobber
// a later toggle on the same week.
type Toggle struct {
	ID         string
	WeekNumber int
	TaskID     string
	Completed  bool

	epoch  int
	seq    int
	before roadmap.ProgressRecord
	after  roadmap.ProgressRecord
}

// ToggleTask validates and applies a task toggle locally. Toggles on locked
// weeks are rejected with ErrWeekLocked before any state change or network
// call. The returned Toggle must be passed to FinishToggle to persist.
func (c *Controller) ToggleTask(weekNumber int, taskID string, completed bool) (*Toggle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rm == nil {
		return nil, ErrNoRoadmap
	}

	idx := -1
	for i, w := range c.rm.Weeks {
		if w.WeekNumber == weekNumber {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWeek, weekNumber)
	}

	statuses := roadmap.WeekStatuses(c.rm.Weeks, c.records)
	if !statuses[idx].Interactive() {
		return nil, ErrWeekLocked
	}

	now := time.Now()
	before := roadmap.RecordFor(c.records, c.rm.Weeks[idx], now)
	after := roadmap.ToggleTask(before, taskID, completed, now)
	c.setRecordLocked(after)
	c.mutSeq++

	return &Toggle{
		ID:         uuid.NewString(),
		WeekNumber: weekNumber,
		TaskID:     taskID,
		Completed:  completed,
		epoch:      c.epoch,
		seq:        c.mutSeq,
		before:     before,
		after:      after,
	}, nil
}

// FinishToggle persists an applied toggle. Three outcomes:
//
//   - The roadmap was replaced while the toggle was in flight: the result
//     is discarded entirely, nothing is persisted or rolled back.
//   - Persistence fails: the one record this toggle produced is rolled back
//     to its pre-toggle snapshot (unless a later toggle already replaced
//     it), and the error surfaces for the banner.
//   - Persistence succeeds: canonical progress is re-fetched to absorb any
//     server-side derivation differences, applied only if no newer local
//     mutation has happened meanwhile.
func (c *Controller) FinishToggle(ctx context.Context, t *Toggle) error {
	// The persist payload is captured at persist time, not toggle time:
	// a slower-resolving earlier toggle must not write a snapshot that
	// predates a faster later one.
	c.mu.Lock()
	if c.epoch != t.epoch {
		c.mu.Unlock()
		return nil
	}
	payload := copyRecords(c.records)
	c.mu.Unlock()

	if err := c.progress.SaveAll(ctx, payload); err != nil {
		c.rollback(t)
		return fmt.Errorf("persist progress: %w", err)
	}

	canonical, err := c.progress.LoadAll(ctx)
	if err != nil {
		// The optimistic state stands; the write itself succeeded.
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != t.epoch || c.mutSeq != t.seq {
		return nil
	}
	c.records = reconcile(c.rm, canonical, time.Now())
	return nil
}

// rollback restores the pre-toggle record, but only when the week still
// holds exactly the record this toggle wrote. If a later toggle has moved
// the week on, last-applied wins and the failed toggle is dropped.
func (c *Controller) rollback(t *Toggle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != t.epoch {
		return
	}
	for i, rec := range c.records {
		if rec.WeekNumber != t.WeekNumber {
			continue
		}
		if sameCompletion(rec, t.after) {
			c.records[i] = t.before
		}
		return
	}
}

// setRecordLocked replaces the record for a week in place. Caller holds mu.
func (c *Controller) setRecordLocked(rec roadmap.ProgressRecord) {
	for i := range c.records {
		if c.records[i].WeekNumber == rec.WeekNumber {
			c.records[i] = rec
			return
		}
	}
	c.records = append(c.records, rec)
}

// sameCompletion compares the mutation-relevant fields of two records,
// ignoring timestamps.
func sameCompletion(a, b roadmap.ProgressRecord) bool {
	if a.WeekNumber != b.WeekNumber || a.TotalTasks != b.TotalTasks {
		return false
	}
	if len(a.CompletedTasks) != len(b.CompletedTasks) {
		return false
	}
	for i := range a.CompletedTasks {
		if a.CompletedTasks[i] != b.CompletedTasks[i] {
			return false
		}
	}
	return true
}
