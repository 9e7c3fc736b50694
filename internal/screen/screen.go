package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ritam/preptrail/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StateRefreshedMsg is sent to the active screen after a background reload
// of shared state (e.g. the terminal regained focus and the roadmap was
// silently re-read), so the screen can re-derive what it renders.
type StateRefreshedMsg struct{}
