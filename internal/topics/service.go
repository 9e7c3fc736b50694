package topics

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ritam/preptrail/internal/llm"
)

// Request identifies the topic to explain.
type Request struct {
	Topic     string
	Context   string // surrounding plan context, e.g. the week's theme
	UserLevel string // "beginner", "intermediate", "advanced"
}

// Detail is an on-demand topic explanation.
type Detail struct {
	Topic       string
	Explanation string
	Resources   []string
	Subtasks    []string

	// Cached is true when the detail was served from the in-memory cache
	// rather than a fresh LLM call.
	Cached bool
}

// Service fetches topic explanations, caching per topic and level for the
// lifetime of the process. Lookups are independent of roadmap state.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu    sync.Mutex
	cache map[string]*Detail
}

// NewService creates a topic explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg,
		cache:    make(map[string]*Detail),
	}
}

type topicOutput struct {
	Explanation string   `json:"explanation"`
	Resources   []string `json:"resources"`
	Subtasks    []string `json:"subtasks"`
}

// Explain returns the detail for a topic, from cache when available.
// Failed lookups are not cached.
func (s *Service) Explain(ctx context.Context, req Request) (*Detail, error) {
	if s.provider == nil {
		return nil, llm.ErrNoCredentials
	}

	key := cacheKey(req)

	s.mu.Lock()
	if d, ok := s.cache[key]; ok {
		s.mu.Unlock()
		hit := *d
		hit.Cached = true
		return &hit, nil
	}
	s.mu.Unlock()

	ctx = llm.WithPurpose(ctx, "topic-detail")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: topicSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTopicUserMessage(req)},
		},
		Schema:      TopicSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("topic detail: %w", err)
	}

	var out topicOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse topic response: %w", err)
	}

	detail := &Detail{
		Topic:       req.Topic,
		Explanation: out.Explanation,
		Resources:   out.Resources,
		Subtasks:    out.Subtasks,
	}

	s.mu.Lock()
	s.cache[key] = detail
	s.mu.Unlock()

	return detail, nil
}

func cacheKey(req Request) string {
	return req.Topic + "\x00" + req.UserLevel
}
