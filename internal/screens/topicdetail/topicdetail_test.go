package topicdetail

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ritam/preptrail/internal/llm"
	"github.com/ritam/preptrail/internal/screen"
	"github.com/ritam/preptrail/internal/topics"
)

const detailJSON = `{
	"explanation": "Hash maps trade memory for constant-time lookup.",
	"resources": ["CLRS chapter 11"],
	"subtasks": ["Implement one from scratch"]
}`

func testDetailScreen(responses ...llm.MockResponse) *Screen {
	svc := topics.NewService(llm.NewMockProvider(responses...), topics.DefaultConfig())
	return New(svc, topics.Request{Topic: "Hash maps", Context: "DSA week", UserLevel: "beginner"})
}

// settle runs Init and feeds the fetch result back into the screen.
func settle(t *testing.T, s *Screen) screen.Screen {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected fetch command from Init")
	}
	var scr screen.Screen = s
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m := c()
			if _, isReady := m.(detailReadyMsg); isReady {
				scr, _ = scr.Update(m)
			}
		}
		return scr
	}
	scr, _ = scr.Update(msg)
	return scr
}

func TestDetail_RendersSections(t *testing.T) {
	s := testDetailScreen(llm.MockResponse{Content: json.RawMessage(detailJSON)})
	scr := settle(t, s)

	view := scr.View(100, 40)
	for _, want := range []string{"Hash maps", "constant-time lookup", "CLRS chapter 11", "Implement one from scratch"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "(cached)") {
		t.Error("first fetch must not be marked cached")
	}
}

func TestDetail_CachedMarker(t *testing.T) {
	svc := topics.NewService(llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(detailJSON)},
	), topics.DefaultConfig())
	req := topics.Request{Topic: "Hash maps", UserLevel: "beginner"}

	first := New(svc, req)
	settle(t, first)

	second := New(svc, req)
	scr := settle(t, second)
	if !strings.Contains(scr.View(100, 40), "(cached)") {
		t.Error("expected cached marker on repeat lookup")
	}
}

func TestDetail_ErrorShown(t *testing.T) {
	s := testDetailScreen() // empty queue yields provider unavailable
	scr := settle(t, s)

	view := scr.View(100, 40)
	if !strings.Contains(view, "Couldn't fetch details") {
		t.Errorf("expected error view, got:\n%s", view)
	}
}

func TestDetail_LoadingBeforeSettle(t *testing.T) {
	s := testDetailScreen(llm.MockResponse{Content: json.RawMessage(detailJSON)})
	s.Init()
	view := s.View(100, 40)
	if !strings.Contains(view, "Hash maps") {
		t.Errorf("expected spinner label naming the topic, got:\n%s", view)
	}
}
