package topics

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"tldw/internal/messages"
)

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeGenerator) Model() string { return "fake" }

func conversation() []messages.Message {
	return []messages.Message{
		fallbackMsg("1", "alice", "we should move the cache to redis soon"),
		fallbackMsg("2", "bob", "redis cache eviction needs tuning first"),
		fallbackMsg("3", "carol", "agreed, the redis cache config is a mess"),
		fallbackMsg("4", "dave", "what about lunch today everyone"),
		fallbackMsg("5", "alice", "the cache redis migration can wait a week"),
	}
}

func TestIdentify_ValidatesModelTopics(t *testing.T) {
	gen := &fakeGenerator{response: `[
		{"name": "Redis cache", "description": "Cache migration", "message_count": 4, "keywords": ["redis", "cache"]},
		{"name": "Hallucinated", "description": "Not really discussed", "message_count": 9, "keywords": ["kubernetes", "istio"]}
	]`}
	a := NewAnalyzer(gen, zerolog.Nop())

	topics := a.Identify(context.Background(), conversation(), 5)
	if len(topics) != 1 {
		t.Fatalf("expected hallucinated topic dropped, got %+v", topics)
	}
	got := topics[0]
	if got.Name != "Redis cache" {
		t.Fatalf("unexpected topic %q", got.Name)
	}
	if got.MessageCount != 4 {
		t.Fatalf("expected recomputed count 4, got %d", got.MessageCount)
	}
	if len(got.RelatedMessageIDs) != 4 {
		t.Fatalf("expected related ids recomputed, got %v", got.RelatedMessageIDs)
	}
	if len(got.KeyUsers) != 3 {
		t.Fatalf("expected participants capped at 3, got %v", got.KeyUsers)
	}
}

func TestIdentify_FallsBackOnModelError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	a := NewAnalyzer(gen, zerolog.Nop())

	topics := a.Identify(context.Background(), conversation(), 5)
	if len(topics) == 0 {
		t.Fatalf("expected keyword fallback topics")
	}
	for _, topic := range topics {
		name := strings.ToLower(topic.Name)
		if name == "redis" || name == "cache" {
			return
		}
	}
	t.Fatalf("expected a redis or cache fallback topic, got %+v", topics)
}

func TestIdentify_FallsBackOnGarbageResponse(t *testing.T) {
	gen := &fakeGenerator{response: "I couldn't find any topics, sorry!"}
	a := NewAnalyzer(gen, zerolog.Nop())

	if topics := a.Identify(context.Background(), conversation(), 5); len(topics) == 0 {
		t.Fatalf("expected fallback topics for garbage response")
	}
}

func TestIdentify_TinyTranscript(t *testing.T) {
	gen := &fakeGenerator{}
	a := NewAnalyzer(gen, zerolog.Nop())

	msgs := []messages.Message{fallbackMsg("1", "alice", "hi")}
	if topics := a.Identify(context.Background(), msgs, 5); topics != nil {
		t.Fatalf("expected nil for tiny transcript, got %+v", topics)
	}
	if gen.calls != 0 {
		t.Fatalf("expected no model call for tiny transcript")
	}
}

func TestSummarizeTopic(t *testing.T) {
	gen := &fakeGenerator{response: "  They agreed to migrate the cache to redis.  "}
	a := NewAnalyzer(gen, zerolog.Nop())

	topic := Topic{Name: "Redis cache"}
	got := a.SummarizeTopic(context.Background(), topic, conversation()[:3])
	if got != "They agreed to migrate the cache to redis." {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestSummarizeTopic_FallbackOnError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	a := NewAnalyzer(gen, zerolog.Nop())

	got := a.SummarizeTopic(context.Background(), Topic{Name: "Redis"}, conversation()[:3])
	if !strings.Contains(got, "messages") {
		t.Fatalf("expected fallback summary, got %q", got)
	}
}

func TestSummarizeTopic_NoMessages(t *testing.T) {
	a := NewAnalyzer(&fakeGenerator{}, zerolog.Nop())
	if got := a.SummarizeTopic(context.Background(), Topic{Name: "X"}, nil); got != "No messages found for this topic." {
		t.Fatalf("unexpected result %q", got)
	}
}
