package roadmapview

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/ritam/preptrail/internal/roadmap"
	"github.com/ritam/preptrail/internal/router"
	"github.com/ritam/preptrail/internal/screen"
	"github.com/ritam/preptrail/internal/screens/topicdetail"
	"github.com/ritam/preptrail/internal/topics"
	"github.com/ritam/preptrail/internal/tracker"
	"github.com/ritam/preptrail/internal/trail"
	"github.com/ritam/preptrail/internal/ui/components"
	"github.com/ritam/preptrail/internal/ui/layout"
)

// Screen renders the roadmap as a climbable staircase and forwards task
// toggles, topic lookups and regeneration requests to the controller.
//
// The layout is rebuilt only on explicit events (plan changed, node
// expanded, task toggled), never as a render side effect. The viewport
// centers on the current-step node once per distinct current-step value,
// so rapid progress updates cannot thrash the scroll position.
type Screen struct {
	ctrl      *tracker.Controller
	topicsSvc *topics.Service
	userLevel string

	st       tracker.State
	layout   trail.Layout
	expanded map[int]bool
	checked  map[int]map[int]bool // week number -> task index -> done

	selected   int // index into Weeks
	focusTasks bool
	tasks      components.Checklist

	offsetX, offsetY int
	focusedStep      int
	pendingReveal    bool

	confirmRegen bool
	genInFlight  bool
	spin         components.Spinner
	banner       components.Banner
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the roadmap screen. userLevel seeds topic-detail requests.
func New(ctrl *tracker.Controller, topicsSvc *topics.Service, userLevel string) *Screen {
	return &Screen{
		ctrl:        ctrl,
		topicsSvc:   topicsSvc,
		userLevel:   userLevel,
		expanded:    make(map[int]bool),
		focusedStep: -1,
		spin:        components.NewSpinner("Charting your trail..."),
	}
}

func (s *Screen) Init() tea.Cmd {
	s.refreshState()
	return nil
}

func (s *Screen) Title() string {
	return "Roadmap"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmRegen {
		return []layout.KeyHint{
			{Key: "Y", Description: "Regenerate"},
			{Key: "N", Description: "Keep current"},
		}
	}
	if s.st.Roadmap == nil {
		return []layout.KeyHint{
			{Key: "G", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Week"},
		{Key: "Enter", Description: "Open/close"},
	}
	if s.focusTasks {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Task"},
			layout.KeyHint{Key: "Space", Description: "Toggle"},
		)
	} else {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Pan"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "T", Description: "Explain"},
		layout.KeyHint{Key: "R", Description: "Regenerate"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generateDoneMsg:
		s.genInFlight = false
		if msg.Err != nil {
			if errors.Is(msg.Err, tracker.ErrGenerationBlocked) {
				s.banner.ShowNotice(s.ctrl.Snapshot().StatusReason)
			} else {
				s.banner.ShowError("Generation failed: " + msg.Err.Error())
			}
		}
		s.refreshState()
		return s, nil

	case toggleSavedMsg:
		// The controller already committed, rolled back, or discarded the
		// toggle; re-reading state picks up whichever happened.
		if msg.Err != nil {
			s.banner.ShowError("Couldn't save progress: " + msg.Err.Error())
		}
		s.refreshState()
		return s, nil

	case screen.StateRefreshedMsg:
		s.refreshState()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.genInFlight {
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmRegen {
		switch key {
		case "y", "Y":
			s.confirmRegen = false
			return s, s.startGeneration()
		case "n", "N", "esc", "q":
			s.confirmRegen = false
		}
		return s, nil
	}

	if key == "x" && s.banner.Visible() {
		s.banner.Dismiss()
		return s, nil
	}

	if s.st.Roadmap == nil {
		switch key {
		case "g", "G":
			if s.genInFlight {
				return s, nil
			}
			if !s.st.CanRun {
				s.banner.ShowNotice(s.st.StatusReason)
				return s, nil
			}
			return s, s.startGeneration()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch key {
	case "left", "h":
		s.moveSelection(-1)
	case "right", "l":
		s.moveSelection(1)
	case "enter", "e":
		s.toggleExpand()
	case "up", "k", "down", "j":
		if s.focusTasks {
			var cmd tea.Cmd
			s.tasks, cmd = s.tasks.Update(msg)
			return s, cmd
		}
		if key == "up" || key == "k" {
			s.offsetY--
		} else {
			s.offsetY++
		}
		s.clampOffsets()
	case " ", "space":
		return s, s.toggleTask()
	case "t", "T":
		return s, s.explainTopic()
	case "r", "R":
		if !s.genInFlight {
			s.confirmRegen = true
		}
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// moveSelection shifts the week cursor, leaving task mode.
func (s *Screen) moveSelection(delta int) {
	next := s.selected + delta
	if next < 0 || next >= len(s.st.Roadmap.Weeks) {
		return
	}
	s.selected = next
	s.focusTasks = false
	s.syncTasks()
	s.ensureSelectedVisible()
}

// toggleExpand flips the selected node open or closed and rebuilds the
// layout; opening an unlocked node enters task mode.
func (s *Screen) toggleExpand() {
	w := s.st.Roadmap.Weeks[s.selected]
	open := !s.expanded[w.WeekNumber]
	s.expanded[w.WeekNumber] = open
	s.rebuild()
	s.focusTasks = open && s.st.Statuses()[s.selected].Interactive()
	s.syncTasks()
	s.ensureSelectedVisible()
}

// toggleTask applies an optimistic toggle for the task under the cursor and
// returns the command that persists it.
func (s *Screen) toggleTask() tea.Cmd {
	if !s.focusTasks || len(s.tasks.Items) == 0 {
		return nil
	}
	statuses := s.st.Statuses()
	if !statuses[s.selected].Interactive() {
		s.banner.ShowNotice("Complete the previous week to unlock this one.")
		return nil
	}

	w := s.st.Roadmap.Weeks[s.selected]
	idx := s.tasks.Cursor
	completed := !s.tasks.Items[idx].Checked

	rec, _ := s.st.RecordByWeek(w.WeekNumber)
	taskID := roadmap.TaskRef{Scheme: roadmap.SchemeTask, Index: idx}.String()
	if !completed {
		// Unchecking must remove whichever historical id is stored.
		legacy := roadmap.TaskRef{Scheme: roadmap.SchemeSubtopic, Index: idx}.String()
		if !rec.HasTask(taskID) && rec.HasTask(legacy) {
			taskID = legacy
		}
	}

	op, err := s.ctrl.ToggleTask(w.WeekNumber, taskID, completed)
	if err != nil {
		if errors.Is(err, tracker.ErrWeekLocked) {
			s.banner.ShowNotice("Complete the previous week to unlock this one.")
		} else {
			s.banner.ShowError(err.Error())
		}
		return nil
	}

	s.tasks.SetChecked(idx, completed)
	s.refreshState()
	return func() tea.Msg {
		return toggleSavedMsg{Op: op, Err: s.ctrl.FinishToggle(context.Background(), op)}
	}
}

// explainTopic pushes the topic-detail screen for the selected week. Locked
// weeks are inert: no request may be issued for them.
func (s *Screen) explainTopic() tea.Cmd {
	if !s.st.Statuses()[s.selected].Interactive() {
		s.banner.ShowNotice("Unlock this week before requesting details.")
		return nil
	}
	w := s.st.Roadmap.Weeks[s.selected]
	detail := topicdetail.New(s.topicsSvc, topics.Request{
		Topic:     w.Theme,
		Context:   w.FocusArea,
		UserLevel: s.userLevel,
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

// startGeneration kicks off generation (or regeneration) in the background.
func (s *Screen) startGeneration() tea.Cmd {
	s.genInFlight = true
	gen := func() tea.Msg {
		return generateDoneMsg{Err: s.ctrl.Generate(context.Background(), "")}
	}
	return tea.Batch(s.spin.Init(), gen)
}

// refreshState re-reads the controller snapshot. A new roadmap id resets all
// per-plan view state so nothing from the old plan leaks through.
func (s *Screen) refreshState() {
	prevID := ""
	if s.st.Roadmap != nil {
		prevID = s.st.Roadmap.ID
	}
	s.st = s.ctrl.Snapshot()
	newID := ""
	if s.st.Roadmap != nil {
		newID = s.st.Roadmap.ID
	}
	if newID != prevID {
		s.expanded = make(map[int]bool)
		s.focusTasks = false
		s.focusedStep = -1
		s.offsetX, s.offsetY = 0, 0
		s.selected = s.st.CurrentStep()
	}
	if s.st.Roadmap != nil && s.selected >= len(s.st.Roadmap.Weeks) {
		s.selected = len(s.st.Roadmap.Weeks) - 1
	}
	// Task ids are resolved to checklist indexes here, once per snapshot,
	// so renders never re-parse them.
	s.checked = nil
	if s.st.Roadmap != nil {
		s.checked = resolveChecked(s.st.Roadmap.Weeks, s.st.Records)
	}
	s.rebuild()
	s.syncTasks()
}

// rebuild recomputes the staircase layout from the current week set and
// expand state.
func (s *Screen) rebuild() {
	if s.st.Roadmap == nil {
		s.layout = trail.Layout{}
		return
	}
	s.layout = trail.Build(s.st.Roadmap.Weeks, s.st.CurrentStep(), s.expanded)
}

// syncTasks rebuilds the live checklist for the selected node from canonical
// state, preserving the cursor.
func (s *Screen) syncTasks() {
	cursor := s.tasks.Cursor
	s.tasks = components.Checklist{}
	if s.st.Roadmap == nil {
		return
	}
	w := s.st.Roadmap.Weeks[s.selected]
	if !s.expanded[w.WeekNumber] {
		s.focusTasks = false
		return
	}
	labels := make([]string, len(w.Tasks))
	for i, t := range w.Tasks {
		labels[i] = truncate(t, trail.ExpandedWidth-8)
	}
	s.tasks = components.NewChecklist(labels, s.checked[w.WeekNumber])
	s.tasks.ReadOnly = !s.st.Statuses()[s.selected].Interactive()
	if cursor >= len(s.tasks.Items) {
		cursor = len(s.tasks.Items) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	s.tasks.Cursor = cursor
}

func (s *Screen) clampOffsets() {
	s.offsetX = clamp(s.offsetX, 0, s.layout.Width)
	s.offsetY = clamp(s.offsetY, 0, s.layout.Height)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ensureSelectedVisible flags that the selection moved; the next render
// scrolls it into view (only View knows the real viewport size).
func (s *Screen) ensureSelectedVisible() {
	s.pendingReveal = true
}
