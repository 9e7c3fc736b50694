package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ritam/preptrail/internal/pipeline"
	"github.com/ritam/preptrail/internal/roadmap"
	"github.com/ritam/preptrail/internal/router"
	"github.com/ritam/preptrail/internal/screen"
	"github.com/ritam/preptrail/internal/tracker"
)

type fakePipe struct {
	status pipeline.Status
}

func (f *fakePipe) Status(_ context.Context) pipeline.Status { return f.status }
func (f *fakePipe) Generate(_ context.Context, _ string) (*roadmap.Roadmap, error) {
	return nil, nil
}

type fakePlans struct {
	plan *roadmap.Roadmap
}

func (f *fakePlans) Save(_ context.Context, rm *roadmap.Roadmap) error { f.plan = rm; return nil }
func (f *fakePlans) Load(_ context.Context) (*roadmap.Roadmap, error) { return f.plan, nil }
func (f *fakePlans) Delete(_ context.Context) error                   { f.plan = nil; return nil }

type fakeProgress struct {
	records []roadmap.ProgressRecord
}

func (f *fakeProgress) SaveAll(_ context.Context, recs []roadmap.ProgressRecord) error {
	f.records = recs
	return nil
}
func (f *fakeProgress) LoadAll(_ context.Context) ([]roadmap.ProgressRecord, error) {
	return f.records, nil
}
func (f *fakeProgress) DeleteAll(_ context.Context) error { f.records = nil; return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func activeController(t *testing.T) (*tracker.Controller, *fakePlans) {
	t.Helper()
	plans := &fakePlans{plan: &roadmap.Roadmap{
		ID:          "plan-1",
		GeneratedAt: time.Now(),
		Weeks: []roadmap.Week{
			{WeekNumber: 1, Theme: "Foundations", Tasks: []string{"a", "b"}},
			{WeekNumber: 2, Theme: "Projects", Tasks: []string{"c"}},
		},
	}}
	ctrl := tracker.New(&fakePipe{status: pipeline.Status{CanRun: true}}, plans, &fakeProgress{})
	if err := ctrl.LoadExisting(context.Background()); err != nil {
		t.Fatalf("LoadExisting: %v", err)
	}
	return ctrl, plans
}

func TestHome_Title(t *testing.T) {
	h := New(nil, nil, "")
	if h.Title() != "Home" {
		t.Errorf("Title = %q", h.Title())
	}
}

func TestHome_SummaryShowsCurrentWeek(t *testing.T) {
	ctrl, _ := activeController(t)
	h := New(ctrl, nil, "")
	h.Init()

	view := h.View(110, 35)
	if !strings.Contains(view, "Week 1 of 2") {
		t.Errorf("expected week summary, got:\n%s", view)
	}
}

func TestHome_OnboardingReasonShown(t *testing.T) {
	ctrl := tracker.New(&fakePipe{status: pipeline.Status{CanRun: false, Reason: "no API key configured"}}, &fakePlans{}, &fakeProgress{})
	ctrl.RefreshStatus(context.Background())

	h := New(ctrl, nil, "")
	h.Init()

	if !strings.Contains(h.View(110, 35), "no API key configured") {
		t.Error("expected onboarding reason in summary")
	}
}

func TestHome_EnterPushesRoadmap(t *testing.T) {
	ctrl, _ := activeController(t)
	h := New(ctrl, nil, "")
	h.Init()

	var scr screen.Screen = h
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg from first menu item")
	}
}

func TestHome_ResetConfirmAndWipe(t *testing.T) {
	ctrl, plans := activeController(t)
	h := New(ctrl, nil, "")
	h.Init()

	var scr screen.Screen = h
	scr, _ = scr.Update(keyPress('j')) // move to RESET PROGRESS
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	hh := scr.(*HomeScreen)
	if !hh.confirmReset {
		t.Fatal("expected reset confirmation")
	}
	if !strings.Contains(hh.View(110, 35), "wipe everything") {
		t.Error("expected confirmation copy")
	}

	scr, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected reset command")
	}
	scr, _ = scr.Update(cmd())
	hh = scr.(*HomeScreen)

	if plans.plan != nil {
		t.Error("expected plan deleted")
	}
	if hh.st.Roadmap != nil {
		t.Error("expected snapshot cleared after reset")
	}
}

func TestHome_ResetCancel(t *testing.T) {
	ctrl, plans := activeController(t)
	h := New(ctrl, nil, "")
	h.Init()

	var scr screen.Screen = h
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scr, _ = scr.Update(keyPress('n'))
	hh := scr.(*HomeScreen)

	if hh.confirmReset {
		t.Error("expected confirmation dismissed")
	}
	if plans.plan == nil {
		t.Error("expected plan untouched after cancel")
	}
}

func TestHome_NilControllerStillRenders(t *testing.T) {
	h := New(nil, nil, "")
	h.Init()
	if h.View(110, 35) == "" {
		t.Error("expected non-empty view without controller")
	}
}
