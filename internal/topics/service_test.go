package topics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ritam/preptrail/internal/llm"
)

const topicJSON = `{
	"explanation": "Hash maps store key-value pairs with O(1) average lookup.",
	"resources": ["CLRS chapter 11", "NeetCode hash map playlist"],
	"subtasks": ["Implement a hash map from scratch", "Solve two-sum without sorting"]
}`

func TestService_Explain(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(topicJSON)},
	)
	svc := NewService(mock, DefaultConfig())

	d, err := svc.Explain(context.Background(), Request{Topic: "hash maps", Context: "Data Structures Foundations", UserLevel: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Cached {
		t.Fatal("first lookup should not be cached")
	}
	if d.Topic != "hash maps" {
		t.Fatalf("expected topic 'hash maps', got %q", d.Topic)
	}
	if d.Explanation == "" || len(d.Resources) != 2 || len(d.Subtasks) != 2 {
		t.Fatalf("unexpected detail: %+v", d)
	}
	if mock.Calls[0].Schema != TopicSchema {
		t.Fatal("expected the topic schema to be attached to the request")
	}
}

func TestService_ExplainCacheHit(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(topicJSON)},
	)
	svc := NewService(mock, DefaultConfig())
	req := Request{Topic: "hash maps", UserLevel: "beginner"}

	if _, err := svc.Explain(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, err := svc.Explain(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Cached {
		t.Fatal("second lookup should be served from cache")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestService_ExplainLevelsCachedSeparately(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(topicJSON)},
		llm.MockResponse{Content: json.RawMessage(topicJSON)},
	)
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Explain(context.Background(), Request{Topic: "hash maps", UserLevel: "beginner"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Explain(context.Background(), Request{Topic: "hash maps", UserLevel: "advanced"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls for distinct levels, got %d", mock.CallCount())
	}
}

func TestService_ExplainErrorNotCached(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Content: json.RawMessage(topicJSON)},
	)
	svc := NewService(mock, DefaultConfig())
	req := Request{Topic: "hash maps", UserLevel: "beginner"}

	if _, err := svc.Explain(context.Background(), req); err == nil {
		t.Fatal("expected error")
	}

	d, err := svc.Explain(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if d.Cached {
		t.Fatal("retry after failure should be a fresh lookup")
	}
}

func TestService_ExplainNilProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	_, err := svc.Explain(context.Background(), Request{Topic: "hash maps"})
	if !errors.Is(err, llm.ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got: %v", err)
	}
}
