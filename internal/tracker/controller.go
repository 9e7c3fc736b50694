package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ritam/preptrail/internal/pipeline"
	"github.com/ritam/preptrail/internal/roadmap"
	"github.com/ritam/preptrail/internal/store"
)

var (
	// ErrNoRoadmap means an operation needs a loaded roadmap and none exists.
	ErrNoRoadmap = errors.New("no roadmap loaded")

	// ErrUnknownWeek means the week number is not in the current roadmap.
	ErrUnknownWeek = errors.New("unknown week")

	// ErrWeekLocked means the target week is locked; the operation is
	// rejected before any persistence call is issued.
	ErrWeekLocked = errors.New("week is locked")

	// ErrGenerationBlocked means generation preconditions are not met.
	// Recoverable guidance, not a failure.
	ErrGenerationBlocked = errors.New("generation preconditions not met")

	// ErrGenerationInFlight means a generation is already running.
	ErrGenerationInFlight = errors.New("generation already in progress")
)

// Pipeline is the generation collaborator. Satisfied by *pipeline.Service.
type Pipeline interface {
	Status(ctx context.Context) pipeline.Status
	Generate(ctx context.Context, resumeText string) (*roadmap.Roadmap, error)
}

// Controller owns the canonical in-memory roadmap and progress state and
// mediates every mutation against the persistence and generation services.
// Methods are safe to call from command goroutines; the epoch counter ties
// each in-flight operation to the roadmap it was issued against, so results
// that land after a regeneration are discarded instead of applied.
type Controller struct {
	pipe     Pipeline
	plans    store.PlanRepo
	progress store.ProgressRepo

	mu           sync.Mutex
	rm           *roadmap.Roadmap
	records      []roadmap.ProgressRecord
	loading      bool
	canRun       bool
	statusReason string
	epoch        int
	mutSeq       int
}

// New creates a controller. State starts empty; call RefreshStatus and
// LoadExisting to populate it.
func New(pipe Pipeline, plans store.PlanRepo, progress store.ProgressRepo) *Controller {
	return &Controller{pipe: pipe, plans: plans, progress: progress}
}

// Snapshot returns a copy of the current state for rendering.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Roadmap:      c.rm,
		Records:      copyRecords(c.records),
		Loading:      c.loading,
		CanRun:       c.canRun,
		StatusReason: c.statusReason,
		Epoch:        c.epoch,
	}
}

// RefreshStatus queries generation preconditions and records the result.
// Status checks are advisory: failures degrade to CanRun=false inside the
// pipeline service, so this never returns an error.
func (c *Controller) RefreshStatus(ctx context.Context) pipeline.Status {
	st := c.pipe.Status(ctx)
	c.mu.Lock()
	c.canRun = st.CanRun
	c.statusReason = st.Reason
	c.mu.Unlock()
	return st
}

// LoadExisting fetches any already-generated roadmap and progress. Absence
// of a roadmap is not an error and leaves state untouched; only a failed
// request surfaces. Used both for initial load and for silent refresh when
// the terminal regains focus.
func (c *Controller) LoadExisting(ctx context.Context) error {
	rm, err := c.plans.Load(ctx)
	if err != nil {
		return fmt.Errorf("load roadmap: %w", err)
	}
	if rm == nil {
		return nil
	}

	recs, err := c.progress.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rm == nil || c.rm.ID != rm.ID {
		// A different plan invalidates anything still in flight.
		c.epoch++
	}
	c.rm = rm
	c.records = reconcile(rm, recs, time.Now())
	c.mutSeq++
	return nil
}

// Generate runs the pipeline and, on success, replaces the roadmap
// wholesale with freshly seeded zero-progress records. On failure the prior
// state is left untouched. The loading flag is set for the duration either
// way; generation can take tens of seconds.
func (c *Controller) Generate(ctx context.Context, resumeText string) error {
	c.mu.Lock()
	if !c.canRun {
		c.mu.Unlock()
		return ErrGenerationBlocked
	}
	if c.loading {
		c.mu.Unlock()
		return ErrGenerationInFlight
	}
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	rm, err := c.pipe.Generate(ctx, resumeText)
	if err != nil {
		return fmt.Errorf("generate roadmap: %w", err)
	}

	seeded := rm.SeedProgress(time.Now())
	if err := c.plans.Save(ctx, rm); err != nil {
		return fmt.Errorf("save roadmap: %w", err)
	}
	if err := c.progress.SaveAll(ctx, seeded); err != nil {
		return fmt.Errorf("seed progress: %w", err)
	}

	c.mu.Lock()
	c.rm = rm
	c.records = seeded
	c.epoch++
	c.mutSeq++
	c.mu.Unlock()
	return nil
}

// Reset deletes the stored roadmap and progress and clears in-memory state.
func (c *Controller) Reset(ctx context.Context) error {
	if err := c.progress.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	if err := c.plans.Delete(ctx); err != nil {
		return fmt.Errorf("delete roadmap: %w", err)
	}

	c.mu.Lock()
	c.rm = nil
	c.records = nil
	c.epoch++
	c.mutSeq++
	c.mu.Unlock()
	return nil
}

// reconcile pairs the loaded records with the plan's weeks: exactly one
// record per week, lazily zero-filled, in week order. Records for weeks no
// longer in the plan are dropped (they belong to a replaced plan).
func reconcile(rm *roadmap.Roadmap, recs []roadmap.ProgressRecord, now time.Time) []roadmap.ProgressRecord {
	out := make([]roadmap.ProgressRecord, len(rm.Weeks))
	for i, w := range rm.Weeks {
		out[i] = roadmap.Normalize(roadmap.RecordFor(recs, w, now))
	}
	return out
}

func copyRecords(recs []roadmap.ProgressRecord) []roadmap.ProgressRecord {
	out := make([]roadmap.ProgressRecord, len(recs))
	copy(out, recs)
	return out
}
