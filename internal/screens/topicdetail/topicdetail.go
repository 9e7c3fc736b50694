package topicdetail

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritam/preptrail/internal/router"
	"github.com/ritam/preptrail/internal/screen"
	"github.com/ritam/preptrail/internal/topics"
	"github.com/ritam/preptrail/internal/ui/components"
	"github.com/ritam/preptrail/internal/ui/layout"
	"github.com/ritam/preptrail/internal/ui/theme"
)

// detailReadyMsg is sent when the explanation lookup settles.
type detailReadyMsg struct {
	Detail *topics.Detail
	Err    error
}

// Screen shows an on-demand explanation for one roadmap topic. The lookup
// has its own loading flag so a slow response only blocks this screen.
type Screen struct {
	svc *topics.Service
	req topics.Request

	loading bool
	detail  *topics.Detail
	errMsg  string
	spin    components.Spinner
	scroll  int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a detail screen that fetches on Init.
func New(svc *topics.Service, req topics.Request) *Screen {
	return &Screen{
		svc:  svc,
		req:  req,
		spin: components.NewSpinner("Asking your mentor about " + req.Topic + "..."),
	}
}

func (s *Screen) Init() tea.Cmd {
	s.loading = true
	fetch := func() tea.Msg {
		d, err := s.svc.Explain(context.Background(), s.req)
		return detailReadyMsg{Detail: d, Err: err}
	}
	return tea.Batch(s.spin.Init(), fetch)
}

func (s *Screen) Title() string {
	return s.req.Topic
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailReadyMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.detail = msg.Detail
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.loading {
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.loading {
		return components.CenterFrame(s.spin.View(), width, height)
	}
	if s.errMsg != "" {
		body := lipgloss.NewStyle().Foreground(theme.Error).
			Render("Couldn't fetch details") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.errMsg)
		return components.CenterFrame(components.SectionCard(body, components.ContentWidth(width)), width, height)
	}
	if s.detail == nil {
		return ""
	}
	return s.renderDetail(width, height)
}
