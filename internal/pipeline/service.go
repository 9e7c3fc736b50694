package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ritam/preptrail/internal/llm"
	"github.com/ritam/preptrail/internal/roadmap"
	"github.com/ritam/preptrail/internal/store"
)

// RoadmapType labels every plan this service produces.
const RoadmapType = "internship-prep"

// ErrNoProfile indicates generation was attempted before a profile exists.
var ErrNoProfile = errors.New("no student profile found")

// Service generates roadmaps through the LLM provider.
type Service struct {
	provider llm.Provider
	profiles store.ProfileRepo
	cfg      Config
}

// New creates a roadmap generation service. The provider may be nil when
// no API key is configured; Status reports that and Generate fails fast.
func New(provider llm.Provider, profiles store.ProfileRepo, cfg Config) *Service {
	return &Service{provider: provider, profiles: profiles, cfg: cfg}
}

// Status describes whether generation can run right now. Reason is a
// human-readable explanation when CanRun is false.
type Status struct {
	CanRun bool
	Reason string
}

// Status checks generation preconditions. It never returns an error:
// any failure degrades to CanRun=false with a diagnostic reason.
func (s *Service) Status(ctx context.Context) Status {
	if s.provider == nil {
		return Status{Reason: "no LLM API key configured (set PREPTRAIL_ANTHROPIC_API_KEY, PREPTRAIL_OPENAI_API_KEY, or PREPTRAIL_GEMINI_API_KEY)"}
	}

	profile, err := s.profiles.Load(ctx)
	if err != nil {
		return Status{Reason: fmt.Sprintf("profile check failed: %v", err)}
	}
	if profile == nil {
		return Status{Reason: "no profile found; run 'preptrail profile' first"}
	}

	return Status{CanRun: true}
}

// roadmapOutput is the raw LLM response before conversion.
type roadmapOutput struct {
	PersonalizationFactors []string     `json:"personalization_factors"`
	Weeks                  []weekOutput `json:"weeks"`
}

type weekOutput struct {
	WeekNumber     int      `json:"week_number"`
	Theme          string   `json:"theme"`
	FocusArea      string   `json:"focus_area"`
	Tasks          []string `json:"tasks"`
	EstimatedHours float64  `json:"estimated_hours"`
	Deliverables   []string `json:"deliverables"`
	Resources      []string `json:"resources"`
}

// Generate produces a new roadmap for the stored profile. When resumeText
// is empty the profile's stored resume is used instead.
func (s *Service) Generate(ctx context.Context, resumeText string) (*roadmap.Roadmap, error) {
	if s.provider == nil {
		return nil, llm.ErrNoCredentials
	}

	profile, err := s.profiles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNoProfile
	}
	if resumeText == "" {
		resumeText = profile.ResumeText
	}

	ctx = llm.WithPurpose(ctx, "roadmap-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(*profile, resumeText, s.cfg)},
		},
		Schema:      RoadmapSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation: %w", err)
	}

	var out roadmapOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse roadmap response: %w", err)
	}
	if len(out.Weeks) == 0 {
		return nil, fmt.Errorf("roadmap response contained no weeks")
	}

	weeks := make([]roadmap.Week, len(out.Weeks))
	for i, w := range out.Weeks {
		weeks[i] = roadmap.Week{
			WeekNumber:     w.WeekNumber,
			Theme:          w.Theme,
			FocusArea:      w.FocusArea,
			Tasks:          w.Tasks,
			EstimatedHours: w.EstimatedHours,
			Deliverables:   w.Deliverables,
			Resources:      w.Resources,
		}
	}
	// Week order must ascend; the schema asks for it but don't trust it.
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekNumber < weeks[j].WeekNumber
	})

	return &roadmap.Roadmap{
		ID:                     uuid.NewString(),
		RoadmapType:            RoadmapType,
		PersonalizationFactors: out.PersonalizationFactors,
		GeneratedAt:            time.Now(),
		Weeks:                  weeks,
	}, nil
}
