package topics

import "testing"

func TestParseTopicsResponse_PlainArray(t *testing.T) {
	resp := `[{"name": "Deployment", "description": "Rolling out the new service", "message_count": 4, "keywords": ["deploy", "rollout"]}]`

	topics := ParseTopicsResponse(resp)
	if len(topics) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(topics))
	}
	if topics[0].Name != "Deployment" {
		t.Fatalf("unexpected name %q", topics[0].Name)
	}
	if len(topics[0].Keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %v", topics[0].Keywords)
	}
}

func TestParseTopicsResponse_CodeFenced(t *testing.T) {
	resp := "```json\n[{\"name\": \"Testing\", \"message_count\": 3}]\n```"

	topics := ParseTopicsResponse(resp)
	if len(topics) != 1 || topics[0].Name != "Testing" {
		t.Fatalf("expected fenced JSON to parse, got %+v", topics)
	}
}

func TestParseTopicsResponse_EmbeddedArray(t *testing.T) {
	resp := `Here are the topics I found:
[{"name": "Caching", "message_count": 5}]
Let me know if you need more detail.`

	topics := ParseTopicsResponse(resp)
	if len(topics) != 1 || topics[0].Name != "Caching" {
		t.Fatalf("expected embedded array to parse, got %+v", topics)
	}
}

func TestParseTopicsResponse_Garbage(t *testing.T) {
	for _, resp := range []string{"", "no json here", "[not valid json]", "{\"name\": \"obj not array\"}"} {
		if topics := ParseTopicsResponse(resp); len(topics) != 0 {
			t.Fatalf("expected no topics for %q, got %+v", resp, topics)
		}
	}
}

func TestParseTopicsResponse_DropsUnnamedAndModelIDs(t *testing.T) {
	resp := `[{"name": "", "message_count": 4}, {"name": "Real", "message_count": 4, "related_message_ids": ["99", "100"]}]`

	topics := ParseTopicsResponse(resp)
	if len(topics) != 1 {
		t.Fatalf("expected nameless topic dropped, got %+v", topics)
	}
	if topics[0].RelatedMessageIDs != nil {
		t.Fatalf("expected model-supplied ids discarded, got %v", topics[0].RelatedMessageIDs)
	}
}
