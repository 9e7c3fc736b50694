package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ritam/preptrail/internal/pipeline"
	"github.com/ritam/preptrail/internal/roadmap"
)

// fakePipeline returns scripted status and generation results.
type fakePipeline struct {
	status  pipeline.Status
	rm      *roadmap.Roadmap
	err     error
	genCall int
}

func (f *fakePipeline) Status(context.Context) pipeline.Status { return f.status }
func (f *fakePipeline) Generate(context.Context, string) (*roadmap.Roadmap, error) {
	f.genCall++
	return f.rm, f.err
}

// fakePlanRepo holds one plan in memory.
type fakePlanRepo struct {
	rm      *roadmap.Roadmap
	loadErr error
	saveErr error
}

func (f *fakePlanRepo) Save(_ context.Context, rm *roadmap.Roadmap) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rm = rm
	return nil
}
func (f *fakePlanRepo) Load(context.Context) (*roadmap.Roadmap, error) {
	return f.rm, f.loadErr
}
func (f *fakePlanRepo) Delete(context.Context) error { f.rm = nil; return nil }

// fakeProgressRepo records SaveAll calls and serves LoadAll from memory.
type fakeProgressRepo struct {
	records   []roadmap.ProgressRecord
	saveCalls int
	saveErr   error
	loadErr   error

	// afterSave runs after a successful SaveAll, letting tests simulate
	// server-side derivation on the stored records.
	afterSave func(f *fakeProgressRepo)
}

func (f *fakeProgressRepo) SaveAll(_ context.Context, recs []roadmap.ProgressRecord) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = append([]roadmap.ProgressRecord(nil), recs...)
	if f.afterSave != nil {
		f.afterSave(f)
	}
	return nil
}
func (f *fakeProgressRepo) LoadAll(context.Context) ([]roadmap.ProgressRecord, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]roadmap.ProgressRecord(nil), f.records...), nil
}
func (f *fakeProgressRepo) DeleteAll(context.Context) error { f.records = nil; return nil }

func plan(weekTasks ...int) *roadmap.Roadmap {
	rm := &roadmap.Roadmap{ID: "plan-1", RoadmapType: "internship-prep", GeneratedAt: time.Now()}
	for i, n := range weekTasks {
		w := roadmap.Week{WeekNumber: i + 1, Theme: "Week"}
		for t := 0; t < n; t++ {
			w.Tasks = append(w.Tasks, "task")
		}
		rm.Weeks = append(rm.Weeks, w)
	}
	return rm
}

func readyController(rm *roadmap.Roadmap) (*Controller, *fakePlanRepo, *fakeProgressRepo) {
	plans := &fakePlanRepo{rm: rm}
	progress := &fakeProgressRepo{records: rm.SeedProgress(time.Now())}
	c := New(&fakePipeline{status: pipeline.Status{CanRun: true}}, plans, progress)
	if err := c.LoadExisting(context.Background()); err != nil {
		panic(err)
	}
	return c, plans, progress
}

func TestPhaseDecisionTable(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Phase
	}{
		{"empty, blocked", State{}, PhaseOnboarding},
		{"empty, can run", State{CanRun: true}, PhaseReady},
		{"first generation", State{Loading: true}, PhaseGenerating},
		{"regeneration keeps old plan", State{Roadmap: plan(3), Loading: true}, PhaseRegenerating},
		{"active", State{Roadmap: plan(3)}, PhaseActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Phase(); got != tt.want {
				t.Fatalf("Phase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadExisting_AbsenceIsNotAnError(t *testing.T) {
	c := New(&fakePipeline{}, &fakePlanRepo{}, &fakeProgressRepo{})
	if err := c.LoadExisting(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Snapshot().Roadmap != nil {
		t.Fatal("expected no roadmap")
	}
}

func TestLoadExisting_TransportFailureSurfaces(t *testing.T) {
	c := New(&fakePipeline{}, &fakePlanRepo{loadErr: errors.New("connection refused")}, &fakeProgressRepo{})
	if err := c.LoadExisting(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadExisting_FillsMissingRecords(t *testing.T) {
	rm := plan(3, 4)
	plans := &fakePlanRepo{rm: rm}
	// Only week 1 has a stored record; week 2's must be lazily zero-filled.
	progress := &fakeProgressRepo{records: []roadmap.ProgressRecord{
		{WeekNumber: 1, CompletedTasks: []string{"task-0"}, TotalTasks: 3},
	}}
	c := New(&fakePipeline{}, plans, progress)

	if err := c.LoadExisting(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := c.Snapshot()
	if len(st.Records) != 2 {
		t.Fatalf("expected one record per week, got %d", len(st.Records))
	}
	if st.Records[1].WeekNumber != 2 || st.Records[1].TotalTasks != 4 || st.Records[1].CompletionPercentage != 0 {
		t.Fatalf("unexpected lazy record: %+v", st.Records[1])
	}
}

func TestGenerate_SeedsZeroProgress(t *testing.T) {
	rm := plan(3, 4, 5)
	pipe := &fakePipeline{status: pipeline.Status{CanRun: true}, rm: rm}
	plans := &fakePlanRepo{}
	progress := &fakeProgressRepo{}
	c := New(pipe, plans, progress)
	c.RefreshStatus(context.Background())

	if err := c.Generate(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := c.Snapshot()
	if st.Roadmap == nil || len(st.Records) != 3 {
		t.Fatalf("expected 3 seeded records, got %d", len(st.Records))
	}
	for _, rec := range st.Records {
		if rec.CompletionPercentage != 0 || len(rec.CompletedTasks) != 0 {
			t.Fatalf("expected zero progress, got %+v", rec)
		}
	}
	if plans.rm == nil {
		t.Fatal("expected plan persisted")
	}
	if st.Loading {
		t.Fatal("loading flag must clear after generation")
	}
}

func TestGenerate_BlockedWithoutPreconditions(t *testing.T) {
	pipe := &fakePipeline{status: pipeline.Status{Reason: "no profile"}}
	c := New(pipe, &fakePlanRepo{}, &fakeProgressRepo{})
	c.RefreshStatus(context.Background())

	err := c.Generate(context.Background(), "")
	if !errors.Is(err, ErrGenerationBlocked) {
		t.Fatalf("expected ErrGenerationBlocked, got: %v", err)
	}
	if pipe.genCall != 0 {
		t.Fatal("blocked generation must not reach the pipeline")
	}
}

func TestGenerate_FailureLeavesPriorStateUntouched(t *testing.T) {
	old := plan(3)
	c, _, _ := readyController(old)
	c.RefreshStatus(context.Background())

	// Swap the pipeline result to a failure.
	c.pipe = &fakePipeline{status: pipeline.Status{CanRun: true}, err: errors.New("llm down")}

	if err := c.Generate(context.Background(), ""); err == nil {
		t.Fatal("expected error")
	}

	st := c.Snapshot()
	if st.Roadmap == nil || st.Roadmap.ID != old.ID {
		t.Fatal("prior roadmap must survive a failed regeneration")
	}
	if st.Loading {
		t.Fatal("loading flag must clear on failure")
	}
}

func TestToggleTask_OptimisticApply(t *testing.T) {
	c, _, progress := readyController(plan(3, 3))

	tog, err := c.ToggleTask(1, "task-0", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Applied locally before any persistence happened.
	if progress.saveCalls != 0 {
		t.Fatal("optimistic apply must not persist yet")
	}
	rec, _ := c.Snapshot().RecordByWeek(1)
	if !rec.HasTask("task-0") || rec.CompletionPercentage != 33 {
		t.Fatalf("unexpected optimistic record: %+v", rec)
	}

	if err := c.FinishToggle(context.Background(), tog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if progress.saveCalls != 1 {
		t.Fatalf("expected 1 persist call, got %d", progress.saveCalls)
	}
}

func TestToggleTask_LockedWeekRejected(t *testing.T) {
	// Week 1 incomplete, so week 2 is locked.
	c, _, progress := readyController(plan(3, 3))

	before, _ := c.Snapshot().RecordByWeek(2)
	_, err := c.ToggleTask(2, "task-0", true)
	if !errors.Is(err, ErrWeekLocked) {
		t.Fatalf("expected ErrWeekLocked, got: %v", err)
	}

	after, _ := c.Snapshot().RecordByWeek(2)
	if !sameCompletion(before, after) {
		t.Fatal("rejected toggle must not change the record")
	}
	if progress.saveCalls != 0 {
		t.Fatal("rejected toggle must not issue a persistence call")
	}
}

func TestFinishToggle_PersistFailureRollsBack(t *testing.T) {
	c, _, progress := readyController(plan(3))
	progress.saveErr = errors.New("write failed")

	tog, err := c.ToggleTask(1, "task-0", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.FinishToggle(context.Background(), tog); err == nil {
		t.Fatal("expected persist error to surface")
	}

	rec, _ := c.Snapshot().RecordByWeek(1)
	if rec.HasTask("task-0") {
		t.Fatal("failed toggle must revert to the pre-toggle set")
	}
}

func TestFinishToggle_RollbackDoesNotClobberLaterToggle(t *testing.T) {
	c, _, progress := readyController(plan(3))
	progress.saveErr = errors.New("write failed")

	first, err := c.ToggleTask(1, "task-0", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A second toggle lands on the same week before the first resolves.
	if _, err := c.ToggleTask(1, "task-1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_ = c.FinishToggle(context.Background(), first)

	// The week has moved past the first toggle's result; last-applied wins
	// and the failed toggle's rollback is dropped.
	rec, _ := c.Snapshot().RecordByWeek(1)
	if !rec.HasTask("task-1") {
		t.Fatal("later toggle must survive the earlier rollback")
	}
}

func TestFinishToggle_OutOfOrderResolutionKeepsBothMutations(t *testing.T) {
	c, _, progress := readyController(plan(1, 3))

	// Complete week 1 so week 2 unlocks.
	setup, err := c.ToggleTask(1, "task-0", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.FinishToggle(context.Background(), setup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := c.ToggleTask(2, "task-0", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.ToggleTask(1, "task-0", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The later toggle's persist resolves before the earlier one's.
	if err := c.FinishToggle(context.Background(), second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.FinishToggle(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The store must carry both mutations, not the earlier toggle's
	// point-in-time view of the other weeks.
	for _, rec := range progress.records {
		if rec.WeekNumber == 1 && rec.HasTask("task-0") {
			t.Fatal("slow earlier persist overwrote the later uncheck")
		}
		if rec.WeekNumber == 2 && !rec.HasTask("task-0") {
			t.Fatal("expected the week 2 toggle persisted")
		}
	}

	// A subsequent reload from the store must not revert the uncheck.
	if err := c.LoadExisting(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, _ := c.Snapshot().RecordByWeek(1)
	if rec.HasTask("task-0") {
		t.Fatal("reload reverted the uncheck")
	}
}

func TestFinishToggle_DiscardedAfterRegeneration(t *testing.T) {
	c, _, progress := readyController(plan(3))

	tog, err := c.ToggleTask(1, "task-0", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Regeneration completes while the toggle is in flight.
	newPlan := plan(2, 2)
	newPlan.ID = "plan-2"
	c.pipe = &fakePipeline{status: pipeline.Status{CanRun: true}, rm: newPlan}
	c.RefreshStatus(context.Background())
	if err := c.Generate(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	savesAfterGen := progress.saveCalls

	if err := c.FinishToggle(context.Background(), tog); err != nil {
		t.Fatalf("discarded toggle must not surface an error, got: %v", err)
	}

	if progress.saveCalls != savesAfterGen {
		t.Fatal("stale toggle must not persist against the new plan")
	}
	st := c.Snapshot()
	if st.Roadmap.ID != "plan-2" {
		t.Fatal("expected the new plan")
	}
	for _, rec := range st.Records {
		if rec.CompletionPercentage != 0 {
			t.Fatalf("expected zero-progress state after regeneration, got %+v", rec)
		}
	}
}

func TestFinishToggle_CanonicalRefetchAbsorbed(t *testing.T) {
	c, _, progress := readyController(plan(3))

	tog, err := c.ToggleTask(1, "task-0", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The remote store derives a different total; the post-persist refetch
	// must absorb it into the in-memory records.
	progress.afterSave = func(f *fakeProgressRepo) {
		f.records[0].TotalTasks = 6
	}
	if err := c.FinishToggle(context.Background(), tog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, _ := c.Snapshot().RecordByWeek(1)
	if rec.TotalTasks != 6 {
		t.Fatalf("expected canonical total absorbed, got %+v", rec)
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	c, plans, progress := readyController(plan(3))

	if err := c.Reset(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plans.rm != nil || progress.records != nil {
		t.Fatal("expected stores wiped")
	}
	if st := c.Snapshot(); st.Roadmap != nil || len(st.Records) != 0 {
		t.Fatal("expected in-memory state cleared")
	}
}

func TestScenarioE_AllCompleteCurrentAndFinal(t *testing.T) {
	rm := plan(1, 1)
	c, _, _ := readyController(rm)

	if _, err := c.ToggleTask(1, "task-0", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.ToggleTask(2, "task-0", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := c.Snapshot()
	if st.CurrentStep() != 1 {
		t.Fatalf("expected current step at last week, got %d", st.CurrentStep())
	}
	statuses := st.Statuses()
	last := statuses[len(statuses)-1]
	if !last.Current || !last.Final {
		t.Fatalf("expected last week current and final, got %+v", last)
	}
}
