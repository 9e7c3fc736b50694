package home

import (
	"charm.land/lipgloss/v2"

	"github.com/ritam/preptrail/internal/ui/theme"
)

// SummitVariant selects which banner art to display.
type SummitVariant int

const (
	SummitIdle     SummitVariant = iota // default, no roadmap or early weeks
	SummitClimbing                      // mid-plan, flag partway up
	SummitReached                       // every week complete
)

const summitIdle = `        ▲
       ╱ ╲
      ╱   ╲
  ▲  ╱     ╲
 ╱ ╲╱  · ·  ╲
╱             ╲`

const summitClimbing = `        ▲
       ╱ ╲
      ╱ ⚑ ╲
  ▲  ╱     ╲
 ╱ ╲╱  · ·  ╲
╱             ╲`

const summitReached = `        ⚑
       ╱ ╲
      ╱   ╲
  ▲  ╱     ╲
 ╱ ╲╱  ★ ★  ╲
╱             ╲`

// RenderSummit returns the banner art for the given variant.
func RenderSummit(variant ...SummitVariant) string {
	v := SummitIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	fg := theme.Primary

	switch v {
	case SummitClimbing:
		art = summitClimbing
		fg = theme.Secondary
	case SummitReached:
		art = summitReached
		fg = theme.Accent
	default:
		art = summitIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
