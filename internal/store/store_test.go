package store

import (
	"context"
	"testing"
	"time"

	"github.com/ritam/preptrail/internal/roadmap"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testRoadmap(id string) *roadmap.Roadmap {
	return &roadmap.Roadmap{
		ID:                     id,
		RoadmapType:            "internship-prep",
		PersonalizationFactors: []string{"strong Python background"},
		GeneratedAt:            time.Now().UTC().Truncate(time.Second),
		Weeks: []roadmap.Week{
			{WeekNumber: 1, Theme: "Foundations", FocusArea: "math", Tasks: []string{"a", "b"}, EstimatedHours: 8},
			{WeekNumber: 2, Theme: "Projects", FocusArea: "ml", Tasks: []string{"c"}, EstimatedHours: 10},
		},
	}
}

func TestPlanSaveLoadRoundtrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	// Empty store: absence, not error.
	rm, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if rm != nil {
		t.Fatal("expected nil roadmap when none stored")
	}

	if err := repo.Save(ctx, testRoadmap("plan-1")); err != nil {
		t.Fatalf("save: %v", err)
	}

	rm, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rm == nil {
		t.Fatal("expected stored roadmap")
	}
	if rm.ID != "plan-1" {
		t.Errorf("ID = %q, want plan-1", rm.ID)
	}
	if len(rm.Weeks) != 2 {
		t.Fatalf("weeks = %d, want 2", len(rm.Weeks))
	}
	if rm.Weeks[1].Theme != "Projects" {
		t.Errorf("week 2 theme = %q", rm.Weeks[1].Theme)
	}
	if rm.Weeks[0].EstimatedHours != 8 {
		t.Errorf("week 1 hours = %v, want 8", rm.Weeks[0].EstimatedHours)
	}
}

func TestPlanSaveReplacesPrior(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testRoadmap("plan-1")); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	if err := repo.Save(ctx, testRoadmap("plan-2")); err != nil {
		t.Fatalf("save 2: %v", err)
	}

	count, err := s.Client().Plan.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("stored plans = %d, want 1", count)
	}

	rm, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rm.ID != "plan-2" {
		t.Errorf("ID = %q, want plan-2", rm.ID)
	}
}

func TestPlanDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	// Deleting with nothing stored is a no-op.
	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("delete (empty): %v", err)
	}

	if err := repo.Save(ctx, testRoadmap("plan-1")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rm, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rm != nil {
		t.Error("expected nil roadmap after delete")
	}
}

func TestProgressSaveAllReplacesAndOrders(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	first := []roadmap.ProgressRecord{
		{WeekNumber: 1, CompletedTasks: []string{"task-0"}, TotalTasks: 2, LastUpdated: now},
	}
	if err := repo.SaveAll(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	// Full replace, saved out of order.
	second := []roadmap.ProgressRecord{
		{WeekNumber: 2, CompletedTasks: []string{}, TotalTasks: 1, LastUpdated: now},
		{WeekNumber: 1, CompletedTasks: []string{"task-0", "task-1"}, TotalTasks: 2, LastUpdated: now},
	}
	if err := repo.SaveAll(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	recs, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	if recs[0].WeekNumber != 1 || recs[1].WeekNumber != 2 {
		t.Errorf("records out of week order: %v", recs)
	}
	if got := recs[0].CompletionPercentage; got != 100 {
		t.Errorf("week 1 completion = %d, want 100 (recomputed on load)", got)
	}
}

func TestProgressLoadAllEmpty(t *testing.T) {
	s := openTestStore(t)
	recs, err := s.ProgressRepo().LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("records = %d, want 0", len(recs))
	}
}

func TestProfileSaveLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile when none stored")
	}

	want := &Profile{
		TargetRole:      "ML engineering intern",
		ExperienceLevel: "intermediate",
		Interests:       []string{"NLP", "robotics"},
		ResumeText:      "three semesters of coursework",
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	p, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.TargetRole != want.TargetRole || p.ExperienceLevel != want.ExperienceLevel {
		t.Errorf("profile = %+v", p)
	}
	if len(p.Interests) != 2 {
		t.Errorf("interests = %v", p.Interests)
	}

	// Saving again replaces rather than accumulates.
	want.ExperienceLevel = "advanced"
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	count, err := s.Client().Profile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("stored profiles = %d, want 1", count)
	}
}

func appendTestEvent(t *testing.T, repo EventRepo, purpose, model string, in, out int, latency int64) {
	t.Helper()
	err := repo.AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:     "anthropic",
		Model:        model,
		Purpose:      purpose,
		InputTokens:  in,
		OutputTokens: out,
		LatencyMs:    latency,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendTestEvent(t, repo, "roadmap-gen", "model-a", 100, 50, 900)
	appendTestEvent(t, repo, "topic-detail", "model-a", 20, 10, 300)
	appendTestEvent(t, repo, "topic-detail", "model-b", 30, 15, 500)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	// Newest first.
	if events[0].Model != "model-b" {
		t.Errorf("events[0].Model = %q, want model-b", events[0].Model)
	}
	if events[0].Sequence <= events[2].Sequence {
		t.Error("expected descending sequence order")
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "topic-detail"})
	if err != nil {
		t.Fatalf("filtered query: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("filtered events = %d, want 2", len(filtered))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("limited query: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited events = %d, want 1", len(limited))
	}
}

func TestEventGetByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendTestEvent(t, repo, "roadmap-gen", "model-a", 100, 50, 900)
	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Purpose != "roadmap-gen" {
		t.Errorf("event = %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestEventUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendTestEvent(t, repo, "roadmap-gen", "model-a", 100, 50, 1000)
	appendTestEvent(t, repo, "roadmap-gen", "model-a", 200, 100, 2000)
	appendTestEvent(t, repo, "topic-detail", "model-b", 30, 15, 500)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	stats := make(map[string]UsageStat, len(byPurpose))
	for _, st := range byPurpose {
		stats[st.Purpose] = st
	}
	gen, ok := stats["roadmap-gen"]
	if !ok {
		t.Fatal("missing roadmap-gen aggregate")
	}
	if gen.Calls != 2 || gen.InputTokens != 300 || gen.OutputTokens != 150 {
		t.Errorf("roadmap-gen aggregate = %+v", gen)
	}
	if gen.AvgLatencyMs != 1500 {
		t.Errorf("avg latency = %d, want 1500", gen.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Errorf("model groups = %d, want 2", len(byModel))
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"plans", "progress_records", "profiles", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
