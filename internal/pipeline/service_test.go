package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ritam/preptrail/internal/llm"
	"github.com/ritam/preptrail/internal/store"
)

type fakeProfileRepo struct {
	profile *store.Profile
	err     error
}

func (f *fakeProfileRepo) Save(_ context.Context, p *store.Profile) error { f.profile = p; return nil }
func (f *fakeProfileRepo) Load(_ context.Context) (*store.Profile, error) {
	return f.profile, f.err
}

func testProfile() *store.Profile {
	return &store.Profile{
		TargetRole:      "Backend Engineering Intern",
		ExperienceLevel: "beginner",
		Interests:       []string{"distributed systems", "databases"},
	}
}

const roadmapJSON = `{
	"personalization_factors": ["beginner-friendly pacing", "backend focus"],
	"weeks": [
		{"week_number": 2, "theme": "Projects", "focus_area": "building", "tasks": ["Build an API", "Deploy it"], "estimated_hours": 10, "deliverables": ["Deployed API"], "resources": ["Go docs"]},
		{"week_number": 1, "theme": "Foundations", "focus_area": "fundamentals", "tasks": ["Review data structures", "Solve 10 problems"], "estimated_hours": 8, "deliverables": ["Problem log"], "resources": ["LeetCode"]}
	]
}`

func TestService_Generate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(roadmapJSON)},
	)
	svc := New(mock, &fakeProfileRepo{profile: testProfile()}, DefaultConfig())

	rm, err := svc.Generate(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rm.ID == "" {
		t.Fatal("expected a generated roadmap ID")
	}
	if rm.RoadmapType != RoadmapType {
		t.Fatalf("expected roadmap type %q, got %q", RoadmapType, rm.RoadmapType)
	}
	if len(rm.Weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(rm.Weeks))
	}
	// Weeks arrive out of order in the canned response; Generate sorts them.
	if rm.Weeks[0].WeekNumber != 1 || rm.Weeks[1].WeekNumber != 2 {
		t.Fatalf("expected weeks sorted ascending, got %d then %d", rm.Weeks[0].WeekNumber, rm.Weeks[1].WeekNumber)
	}
	if rm.Weeks[0].Theme != "Foundations" {
		t.Fatalf("expected first week theme 'Foundations', got %q", rm.Weeks[0].Theme)
	}
	if len(rm.PersonalizationFactors) != 2 {
		t.Fatalf("expected 2 personalization factors, got %d", len(rm.PersonalizationFactors))
	}

	if mock.Calls[0].Schema != RoadmapSchema {
		t.Fatal("expected the roadmap schema to be attached to the request")
	}
}

func TestService_GenerateUsesProvidedResume(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(roadmapJSON)},
	)
	profile := testProfile()
	profile.ResumeText = "stored resume"
	svc := New(mock, &fakeProfileRepo{profile: profile}, DefaultConfig())

	if _, err := svc.Generate(context.Background(), "fresh resume"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "fresh resume") {
		t.Fatal("expected explicit resume text in prompt")
	}
	if strings.Contains(prompt, "stored resume") {
		t.Fatal("stored resume should be ignored when resume text is passed")
	}
}

func TestService_GenerateNoProfile(t *testing.T) {
	svc := New(llm.NewMockProvider(), &fakeProfileRepo{}, DefaultConfig())
	_, err := svc.Generate(context.Background(), "")
	if !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got: %v", err)
	}
}

func TestService_GenerateNilProvider(t *testing.T) {
	svc := New(nil, &fakeProfileRepo{profile: testProfile()}, DefaultConfig())
	_, err := svc.Generate(context.Background(), "")
	if !errors.Is(err, llm.ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got: %v", err)
	}
}

func TestService_GenerateProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := New(mock, &fakeProfileRepo{profile: testProfile()}, DefaultConfig())

	_, err := svc.Generate(context.Background(), "")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestService_GenerateEmptyWeeksRejected(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"personalization_factors":[],"weeks":[]}`)},
	)
	svc := New(mock, &fakeProfileRepo{profile: testProfile()}, DefaultConfig())

	if _, err := svc.Generate(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty week list")
	}
}

func TestService_Status(t *testing.T) {
	tests := []struct {
		name     string
		provider llm.Provider
		repo     *fakeProfileRepo
		canRun   bool
	}{
		{"ready", llm.NewMockProvider(), &fakeProfileRepo{profile: testProfile()}, true},
		{"no provider", nil, &fakeProfileRepo{profile: testProfile()}, false},
		{"no profile", llm.NewMockProvider(), &fakeProfileRepo{}, false},
		{"profile load fails", llm.NewMockProvider(), &fakeProfileRepo{err: errors.New("db locked")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(tt.provider, tt.repo, DefaultConfig())
			st := svc.Status(context.Background())
			if st.CanRun != tt.canRun {
				t.Fatalf("CanRun = %v, want %v (reason: %q)", st.CanRun, tt.canRun, st.Reason)
			}
			if !tt.canRun && st.Reason == "" {
				t.Fatal("expected a diagnostic reason when generation is blocked")
			}
		})
	}
}
