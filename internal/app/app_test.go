package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ritam/preptrail/internal/pipeline"
	"github.com/ritam/preptrail/internal/roadmap"
	"github.com/ritam/preptrail/internal/tracker"
)

type fakePipe struct{}

func (fakePipe) Status(_ context.Context) pipeline.Status { return pipeline.Status{CanRun: true} }
func (fakePipe) Generate(_ context.Context, _ string) (*roadmap.Roadmap, error) {
	return nil, nil
}

type fakePlans struct{ plan *roadmap.Roadmap }

func (f *fakePlans) Save(_ context.Context, rm *roadmap.Roadmap) error { f.plan = rm; return nil }
func (f *fakePlans) Load(_ context.Context) (*roadmap.Roadmap, error) { return f.plan, nil }
func (f *fakePlans) Delete(_ context.Context) error                   { f.plan = nil; return nil }

type fakeProgress struct{ records []roadmap.ProgressRecord }

func (f *fakeProgress) SaveAll(_ context.Context, recs []roadmap.ProgressRecord) error {
	f.records = recs
	return nil
}
func (f *fakeProgress) LoadAll(_ context.Context) ([]roadmap.ProgressRecord, error) {
	return f.records, nil
}
func (f *fakeProgress) DeleteAll(_ context.Context) error { f.records = nil; return nil }

func TestAppModel_BootsWithoutServices(t *testing.T) {
	m := newAppModel(Options{})

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if model.(AppModel).render() == "" {
		t.Error("expected non-empty view")
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m := newAppModel(Options{})
	model, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(model.(AppModel).render(), "Terminal too small") {
		t.Error("expected min-size message")
	}
}

func TestAppModel_HeaderShowsCompletion(t *testing.T) {
	plans := &fakePlans{plan: &roadmap.Roadmap{
		ID:          "plan-1",
		GeneratedAt: time.Now(),
		Weeks:       []roadmap.Week{{WeekNumber: 1, Theme: "t", Tasks: []string{"a"}}},
	}}
	ctrl := tracker.New(fakePipe{}, plans, &fakeProgress{})
	if err := ctrl.LoadExisting(context.Background()); err != nil {
		t.Fatal(err)
	}

	m := newAppModel(Options{Controller: ctrl})
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if !strings.Contains(model.(AppModel).render(), "% complete") {
		t.Error("expected completion readout in header")
	}
}

func TestAppModel_ViewRequestsFocusReporting(t *testing.T) {
	m := newAppModel(Options{})
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	v := model.(AppModel).View()
	if !v.ReportFocus {
		t.Error("expected the view to request terminal focus events")
	}
	if !v.AltScreen {
		t.Error("expected alt-screen rendering")
	}
}

func TestAppModel_FocusTriggersSilentRefresh(t *testing.T) {
	ctrl := tracker.New(fakePipe{}, &fakePlans{}, &fakeProgress{})
	m := newAppModel(Options{Controller: ctrl})

	_, cmd := m.Update(tea.FocusMsg{})
	if cmd == nil {
		t.Fatal("expected refresh command on focus")
	}
	if _, ok := cmd().(refreshedMsg); !ok {
		t.Error("expected refreshedMsg from focus reload")
	}
}

func TestAppModel_FocusWithoutControllerIsNoop(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.FocusMsg{})
	if cmd != nil {
		t.Error("expected no command without a controller")
	}
}
