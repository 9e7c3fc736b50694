package tracker

import "github.com/ritam/preptrail/internal/roadmap"

// Phase summarizes what the UI should show for a given controller state.
type Phase string

const (
	// PhaseOnboarding means no roadmap exists and generation is blocked;
	// the user needs to finish prerequisites first.
	PhaseOnboarding Phase = "onboarding"

	// PhaseReady means no roadmap exists and generation can run.
	PhaseReady Phase = "ready"

	// PhaseGenerating means the first generation is in flight.
	PhaseGenerating Phase = "generating"

	// PhaseRegenerating means a replacement plan is in flight; the old
	// roadmap stays visible and interactive until it lands.
	PhaseRegenerating Phase = "regenerating"

	// PhaseActive means a roadmap is loaded and idle.
	PhaseActive Phase = "active"
)

// State is a point-in-time snapshot of the controller, safe to render from.
// The roadmap pointer is shared but immutable; the record slice is a copy.
type State struct {
	Roadmap      *roadmap.Roadmap
	Records      []roadmap.ProgressRecord
	Loading      bool
	CanRun       bool
	StatusReason string
	Epoch        int
}

// Phase derives the UI phase from the snapshot.
func (s State) Phase() Phase {
	switch {
	case s.Roadmap == nil && s.Loading:
		return PhaseGenerating
	case s.Roadmap == nil && s.CanRun:
		return PhaseReady
	case s.Roadmap == nil:
		return PhaseOnboarding
	case s.Loading:
		return PhaseRegenerating
	default:
		return PhaseActive
	}
}

// CurrentStep is the index of the week the user should be working on.
func (s State) CurrentStep() int {
	if s.Roadmap == nil {
		return 0
	}
	return roadmap.FindCurrentStep(s.Roadmap.Weeks, s.Records)
}

// Statuses derives the per-week unlock tags.
func (s State) Statuses() []roadmap.WeekStatus {
	if s.Roadmap == nil {
		return nil
	}
	return roadmap.WeekStatuses(s.Roadmap.Weeks, s.Records)
}

// AverageCompletion is the mean completion across weeks, shown in the
// regeneration confirmation copy.
func (s State) AverageCompletion() int {
	return roadmap.AveragePercentage(s.Records)
}

// RecordByWeek returns the record for a week number, if present.
func (s State) RecordByWeek(weekNumber int) (roadmap.ProgressRecord, bool) {
	for _, rec := range s.Records {
		if rec.WeekNumber == weekNumber {
			return rec, true
		}
	}
	return roadmap.ProgressRecord{}, false
}
