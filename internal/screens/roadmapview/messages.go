package roadmapview

import "github.com/ritam/preptrail/internal/tracker"

// generateDoneMsg is sent when a roadmap generation (first run or
// regeneration) finishes.
type generateDoneMsg struct {
	Err error
}

// toggleSavedMsg is sent when the persistence of one optimistic task toggle
// settles. The controller has already committed or rolled back by the time
// this arrives; the screen only re-reads state and surfaces the error.
type toggleSavedMsg struct {
	Op  *tracker.Toggle
	Err error
}
