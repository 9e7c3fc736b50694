package roadmap

// WeekStatus holds the derived unlock tags for a single week. Tags are
// computed from progress, never stored. Current and Final can coexist on
// the last week once everything before it is complete.
type WeekStatus struct {
	Locked  bool
	Current bool
	Final   bool
}

// Tag collapses the status to a single display state. Precedence:
// locked, then current, then final, then normal.
func (s WeekStatus) Tag() string {
	switch {
	case s.Locked:
		return "locked"
	case s.Current:
		return "current"
	case s.Final:
		return "final"
	default:
		return "normal"
	}
}

// Interactive reports whether task toggles and detail requests are allowed.
// Locked weeks are inert: no mutation and no network call may be issued for
// them.
func (s WeekStatus) Interactive() bool {
	return !s.Locked
}

// WeekStatuses derives the per-week status vector for the plan.
//
// A week is locked iff it is not the first week and the immediately
// preceding week is below 100%. The final tag goes to the last week. The
// current tag goes to the current-step week unless it is locked (it never
// is under the lock rule, since every week before the current step is
// complete by definition, but the guard keeps the invariant explicit).
func WeekStatuses(weeks []Week, records []ProgressRecord) []WeekStatus {
	statuses := make([]WeekStatus, len(weeks))
	if len(weeks) == 0 {
		return statuses
	}

	byWeek := make(map[int]ProgressRecord, len(records))
	for _, rec := range records {
		byWeek[rec.WeekNumber] = rec
	}
	pct := func(i int) int {
		rec, ok := byWeek[weeks[i].WeekNumber]
		if !ok {
			return 0
		}
		return ComputeCompletion(rec)
	}

	current := FindCurrentStep(weeks, records)
	for i := range weeks {
		statuses[i].Locked = i > 0 && pct(i-1) < 100
		statuses[i].Final = i == len(weeks)-1
		statuses[i].Current = i == current && !statuses[i].Locked
	}
	return statuses
}
