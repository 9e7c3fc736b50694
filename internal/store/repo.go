package store

import (
	"context"
	"time"

	"github.com/ritam/preptrail/internal/roadmap"
)

// PlanRepo persists the generated roadmap. Only one plan is live at a
// time; Save replaces any prior plan.
type PlanRepo interface {
	// Save stores the roadmap, replacing the previous one.
	Save(ctx context.Context, r *roadmap.Roadmap) error

	// Load returns the live roadmap, or (nil, nil) when none has been
	// generated yet. Absence is not an error.
	Load(ctx context.Context) (*roadmap.Roadmap, error)

	// Delete removes the live roadmap. No-op when none exists.
	Delete(ctx context.Context) error
}

// ProgressRepo persists per-week completion records. The full record array
// is the unit of write, matching the remote persist contract.
type ProgressRepo interface {
	// SaveAll replaces all stored records with the given set.
	SaveAll(ctx context.Context, records []roadmap.ProgressRecord) error

	// LoadAll returns all stored records ordered by week number.
	// An empty store yields an empty slice, not an error.
	LoadAll(ctx context.Context) ([]roadmap.ProgressRecord, error)

	// DeleteAll removes every record.
	DeleteAll(ctx context.Context) error
}

// Profile is the student's onboarding record, the precondition for
// running the generation pipeline.
type Profile struct {
	TargetRole      string
	ExperienceLevel string
	Interests       []string
	ResumeText      string
}

// ProfileRepo manages the single student profile.
type ProfileRepo interface {
	// Save stores the profile, replacing any existing one.
	Save(ctx context.Context, p *Profile) error

	// Load returns the profile, or (nil, nil) when none exists.
	Load(ctx context.Context) (*Profile, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM call record.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label ("" = all)
}

// UsageStat is an aggregate over LLM calls, grouped by purpose or model.
// Only the grouping key's field is populated.
type UsageStat struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded LLM calls, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single call by ID, or (nil, nil) when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]UsageStat, error)
}
