package roadmapview

import (
	"context"
	"strings"
	"testing"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/ritam/preptrail/internal/pipeline"
	"github.com/ritam/preptrail/internal/roadmap"
	"github.com/ritam/preptrail/internal/screen"
	"github.com/ritam/preptrail/internal/tracker"
)

// fakePipe implements tracker.Pipeline for testing.
type fakePipe struct {
	status pipeline.Status
	plan   *roadmap.Roadmap
	err    error
}

func (f *fakePipe) Status(_ context.Context) pipeline.Status { return f.status }
func (f *fakePipe) Generate(_ context.Context, _ string) (*roadmap.Roadmap, error) {
	return f.plan, f.err
}

// fakePlans implements store.PlanRepo.
type fakePlans struct {
	plan *roadmap.Roadmap
}

func (f *fakePlans) Save(_ context.Context, rm *roadmap.Roadmap) error {
	f.plan = rm
	return nil
}
func (f *fakePlans) Load(_ context.Context) (*roadmap.Roadmap, error) { return f.plan, nil }
func (f *fakePlans) Delete(_ context.Context) error                   { f.plan = nil; return nil }

// fakeProgress implements store.ProgressRepo.
type fakeProgress struct {
	records []roadmap.ProgressRecord
	saveErr error
}

func (f *fakeProgress) SaveAll(_ context.Context, recs []roadmap.ProgressRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = append([]roadmap.ProgressRecord(nil), recs...)
	return nil
}
func (f *fakeProgress) LoadAll(_ context.Context) ([]roadmap.ProgressRecord, error) {
	return append([]roadmap.ProgressRecord(nil), f.records...), nil
}
func (f *fakeProgress) DeleteAll(_ context.Context) error { f.records = nil; return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPlan() *roadmap.Roadmap {
	return &roadmap.Roadmap{
		ID:          "plan-1",
		RoadmapType: "internship-prep",
		GeneratedAt: time.Now(),
		Weeks: []roadmap.Week{
			{WeekNumber: 1, Theme: "Foundations", FocusArea: "CS basics", Tasks: []string{"a", "b"}, EstimatedHours: 8},
			{WeekNumber: 2, Theme: "Projects", FocusArea: "Portfolio", Tasks: []string{"c", "d", "e"}, EstimatedHours: 10},
			{WeekNumber: 3, Theme: "Interviews", FocusArea: "DSA", Tasks: []string{"f"}, EstimatedHours: 6},
		},
	}
}

// testScreen builds a screen over a controller with a loaded plan.
func testScreen(t *testing.T) (*Screen, *tracker.Controller, *fakeProgress) {
	t.Helper()
	regen := testPlan()
	regen.ID = "plan-2"
	pipe := &fakePipe{status: pipeline.Status{CanRun: true}, plan: regen}
	plans := &fakePlans{plan: testPlan()}
	progress := &fakeProgress{}
	ctrl := tracker.New(pipe, plans, progress)
	if err := ctrl.LoadExisting(context.Background()); err != nil {
		t.Fatalf("LoadExisting: %v", err)
	}
	ctrl.RefreshStatus(context.Background())

	s := New(ctrl, nil, "beginner")
	s.Init()
	return s, ctrl, progress
}

// drain runs a command tree and feeds every produced message back into the
// screen, following the pattern the runtime would.
func drain(t *testing.T, s screen.Screen, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		return s
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			s = drain(t, s, tea.Cmd(c))
		}
		return s
	}
	if msg == nil {
		return s
	}
	if _, ok := msg.(spinner.TickMsg); ok {
		// Animation frames tick forever; drop them.
		return s
	}
	s, next := s.Update(msg)
	return drain(t, s, next)
}

func TestView_EmptyReadyPromptsGenerate(t *testing.T) {
	pipe := &fakePipe{status: pipeline.Status{CanRun: true}, plan: testPlan()}
	ctrl := tracker.New(pipe, &fakePlans{}, &fakeProgress{})
	_ = ctrl.LoadExisting(context.Background())
	ctrl.RefreshStatus(context.Background())

	s := New(ctrl, nil, "")
	s.Init()

	view := s.View(100, 30)
	if !strings.Contains(view, "Press G") {
		t.Errorf("expected generate prompt, got:\n%s", view)
	}
}

func TestView_EmptyOnboardingShowsReason(t *testing.T) {
	pipe := &fakePipe{status: pipeline.Status{CanRun: false, Reason: "set up your profile first"}}
	ctrl := tracker.New(pipe, &fakePlans{}, &fakeProgress{})
	ctrl.RefreshStatus(context.Background())

	s := New(ctrl, nil, "")
	s.Init()

	view := s.View(100, 30)
	if !strings.Contains(view, "set up your profile first") {
		t.Errorf("expected onboarding reason in view, got:\n%s", view)
	}
}

func TestGenerateKey_ProducesRoadmap(t *testing.T) {
	pipe := &fakePipe{status: pipeline.Status{CanRun: true}, plan: testPlan()}
	ctrl := tracker.New(pipe, &fakePlans{}, &fakeProgress{})
	ctrl.RefreshStatus(context.Background())

	s := New(ctrl, nil, "")
	s.Init()

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('g'))
	scr = drain(t, scr, cmd)

	ss := scr.(*Screen)
	if ss.st.Roadmap == nil {
		t.Fatal("expected roadmap after generation")
	}
	if ss.st.Phase() != tracker.PhaseActive {
		t.Errorf("phase = %q, want active", ss.st.Phase())
	}
}

func TestExpandAndToggleTask(t *testing.T) {
	s, ctrl, progress := testScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // expand week 1
	ss := scr.(*Screen)
	if !ss.expanded[1] {
		t.Fatal("expected week 1 expanded")
	}
	if !ss.focusTasks {
		t.Fatal("expected task focus on unlocked expanded week")
	}

	scr, cmd := scr.Update(keyPress(' '))
	ss = scr.(*Screen)

	// Optimistic: local state shows the task done before persistence ran.
	rec, _ := ss.st.RecordByWeek(1)
	if !rec.HasTask("task-0") {
		t.Fatal("expected optimistic completion of task-0")
	}
	if len(progress.records) != 0 {
		t.Fatal("persistence ran synchronously")
	}

	scr = drain(t, scr, cmd)
	if len(progress.records) == 0 {
		t.Fatal("expected records persisted after command ran")
	}
	rec, _ = ctrl.Snapshot().RecordByWeek(1)
	if roadmap.ComputeCompletion(rec) != 50 {
		t.Errorf("completion = %d, want 50", roadmap.ComputeCompletion(rec))
	}
}

func TestRefreshState_ResolvesLegacyIDs(t *testing.T) {
	pipe := &fakePipe{status: pipeline.Status{CanRun: true}}
	plans := &fakePlans{plan: testPlan()}
	progress := &fakeProgress{records: []roadmap.ProgressRecord{
		{WeekNumber: 1, TotalTasks: 2, CompletedTasks: []string{"subtopic-1"}},
	}}
	ctrl := tracker.New(pipe, plans, progress)
	if err := ctrl.LoadExisting(context.Background()); err != nil {
		t.Fatalf("LoadExisting: %v", err)
	}

	s := New(ctrl, nil, "")
	s.Init()

	if !s.checked[1][1] {
		t.Fatal("expected the stored legacy id resolved when state loaded")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // expand week 1
	ss := scr.(*Screen)
	if len(ss.tasks.Items) != 2 || !ss.tasks.Items[1].Checked {
		t.Error("expected the checklist built from the resolved set")
	}
}

func TestToggleFailure_ShowsBannerAndRollsBack(t *testing.T) {
	s, ctrl, progress := testScreen(t)
	progress.saveErr = context.DeadlineExceeded

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, cmd := scr.Update(keyPress(' '))
	scr = drain(t, scr, cmd)

	ss := scr.(*Screen)
	if !ss.banner.Visible() {
		t.Error("expected error banner after failed persist")
	}
	rec, _ := ctrl.Snapshot().RecordByWeek(1)
	if len(rec.CompletedTasks) != 0 {
		t.Errorf("expected rollback, still has %v", rec.CompletedTasks)
	}
	if len(ss.tasks.Items) == 0 || ss.tasks.Items[0].Checked {
		t.Error("expected checklist reverted after rollback")
	}
}

func TestLockedWeek_ExplainRejected(t *testing.T) {
	s, _, _ := testScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('l')) // move to week 2 (locked)
	scr, cmd := scr.Update(keyPress('t'))

	ss := scr.(*Screen)
	if cmd != nil {
		t.Error("expected no command for locked week detail request")
	}
	if !ss.banner.Visible() {
		t.Error("expected notice banner for locked week")
	}
}

func TestLockedWeek_NoTaskFocusOnExpand(t *testing.T) {
	s, _, _ := testScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('l'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	ss := scr.(*Screen)
	if ss.focusTasks {
		t.Error("expected no task focus on a locked week")
	}
	if cmd := ss.toggleTask(); cmd != nil {
		t.Error("expected toggle to be inert on locked week")
	}
}

func TestFocusOnce_DoesNotRecenterOnRerender(t *testing.T) {
	s, _, _ := testScreen(t)

	s.View(100, 30)
	if s.focusedStep != 0 {
		t.Fatalf("focusedStep = %d, want 0", s.focusedStep)
	}

	s.offsetX, s.offsetY = 5, 3
	s.View(100, 30)
	if s.offsetX != 5 || s.offsetY != 3 {
		t.Errorf("viewport recentered on re-render: offsets (%d,%d)", s.offsetX, s.offsetY)
	}
}

func TestFocusOnce_RecentersWhenStepAdvances(t *testing.T) {
	s, ctrl, _ := testScreen(t)
	s.View(100, 30)
	s.offsetX = 999 // scroll far away

	// Complete all of week 1 directly through the controller.
	for _, id := range []string{"task-0", "task-1"} {
		op, err := ctrl.ToggleTask(1, id, true)
		if err != nil {
			t.Fatalf("ToggleTask: %v", err)
		}
		if err := ctrl.FinishToggle(context.Background(), op); err != nil {
			t.Fatalf("FinishToggle: %v", err)
		}
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(screen.StateRefreshedMsg{})
	ss := scr.(*Screen)
	ss.View(100, 30)

	if ss.focusedStep != 1 {
		t.Errorf("focusedStep = %d, want 1", ss.focusedStep)
	}
	if ss.offsetX == 999 {
		t.Error("expected viewport recentered on new current step")
	}
}

func TestRegenConfirm_ShowsAverageAndCancels(t *testing.T) {
	s, ctrl, _ := testScreen(t)

	op, _ := ctrl.ToggleTask(1, "task-0", true)
	_ = ctrl.FinishToggle(context.Background(), op)

	var scr screen.Screen = s
	scr, _ = scr.Update(screen.StateRefreshedMsg{})
	scr, _ = scr.Update(keyPress('r'))
	ss := scr.(*Screen)
	if !ss.confirmRegen {
		t.Fatal("expected confirmation dialog")
	}

	view := ss.View(100, 30)
	if !strings.Contains(view, "%") || !strings.Contains(view, "resets all progress") {
		t.Errorf("expected progress-loss warning, got:\n%s", view)
	}

	scr, _ = scr.Update(keyPress('n'))
	ss = scr.(*Screen)
	if ss.confirmRegen {
		t.Error("expected dialog dismissed")
	}
	if ss.st.Roadmap == nil || ss.st.Roadmap.ID != "plan-1" {
		t.Error("expected original plan kept after cancel")
	}
}

func TestRegenConfirm_YesReplacesPlanAndResetsViewState(t *testing.T) {
	s, _, _ := testScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // expand week 1
	scr, _ = scr.Update(keyPress('r'))
	scr, cmd := scr.Update(keyPress('y'))
	scr = drain(t, scr, cmd)

	ss := scr.(*Screen)
	if ss.st.Roadmap == nil {
		t.Fatal("expected replacement roadmap")
	}
	if len(ss.expanded) != 0 {
		t.Error("expected expand state reset for new plan")
	}
	if ss.focusedStep != -1 && ss.focusedStep != 0 {
		t.Errorf("focusedStep = %d, want reset", ss.focusedStep)
	}
}

func TestStatusBar_ShowsSelectedWeek(t *testing.T) {
	s, _, _ := testScreen(t)
	view := s.View(100, 30)
	if !strings.Contains(view, "Week 1") {
		t.Errorf("expected selected week in status bar, got:\n%s", view)
	}
}

func TestKeyHints_FollowMode(t *testing.T) {
	s, _, _ := testScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Fatal("expected hints")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('r'))
	hints := scr.(*Screen).KeyHints()
	if len(hints) != 2 {
		t.Errorf("confirm mode hints = %d, want 2", len(hints))
	}
}
