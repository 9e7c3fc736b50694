package roadmap

import "time"

// Week is one unit of the generated plan, identified by an ascending number.
// Weeks are immutable once generated; a regeneration replaces the whole plan.
type Week struct {
	WeekNumber     int      `json:"week_number"`
	Theme          string   `json:"theme"`
	FocusArea      string   `json:"focus_area"`
	Tasks          []string `json:"tasks"`
	EstimatedHours float64  `json:"estimated_hours"`
	Deliverables   []string `json:"deliverables"`
	Resources      []string `json:"resources"`
}

// Roadmap is the full generated plan. It is owned by the tracker controller
// and read-only to everything above it.
type Roadmap struct {
	ID                     string    `json:"id"`
	RoadmapType            string    `json:"roadmap_type"`
	PersonalizationFactors []string  `json:"personalization_factors"`
	GeneratedAt            time.Time `json:"generated_at"`
	Weeks                  []Week    `json:"weeks"`
}

// WeekByNumber returns the week with the given number, or nil.
func (r *Roadmap) WeekByNumber(n int) *Week {
	for i := range r.Weeks {
		if r.Weeks[i].WeekNumber == n {
			return &r.Weeks[i]
		}
	}
	return nil
}

// SeedProgress creates one zero-progress record per week, in week order.
func (r *Roadmap) SeedProgress(now time.Time) []ProgressRecord {
	records := make([]ProgressRecord, len(r.Weeks))
	for i, w := range r.Weeks {
		records[i] = NewProgressRecord(w.WeekNumber, len(w.Tasks), now)
	}
	return records
}
