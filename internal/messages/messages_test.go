package messages

import (
	"strings"
	"testing"
	"time"
)

func analysisMsg(content string, bot bool) Message {
	return Message{
		ID:        "1",
		Content:   content,
		Author:    Author{ID: "u1", Name: "alice", Bot: bot},
		CreatedAt: time.Now(),
		ChannelID: "c1",
	}
}

func TestRelevantForAnalysis(t *testing.T) {
	urlOnly := func(s string) bool { return strings.Contains(s, "http") }

	cases := []struct {
		name string
		m    Message
		want bool
	}{
		{"normal message", analysisMsg("let's discuss the deployment plan", false), true},
		{"bot author", analysisMsg("let's discuss the deployment plan", true), false},
		{"too short", analysisMsg("hey", false), false},
		{"slash command", analysisMsg("/summary 50", false), false},
		{"bang command", analysisMsg("!tldr", false), false},
		{"bare link", analysisMsg("http://example.com/a", false), false},
		{"link with discussion", analysisMsg("check http://example.com - it explains the whole migration approach we talked about, including the rollback steps", false), true},
		{"emoji only", analysisMsg("🎉🎉 🚀", false), false},
	}
	for _, tc := range cases {
		if got := RelevantForAnalysis(tc.m, urlOnly); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFilterByRelevance(t *testing.T) {
	msgs := []Message{
		analysisMsg("this is a substantial message about databases", false),
		analysisMsg("short", false),
		analysisMsg("!!!???!!!???", false), // mostly punctuation
	}

	got := FilterByRelevance(msgs, 10)
	if len(got) != 1 {
		t.Fatalf("expected 1 surviving message, got %d", len(got))
	}
}

func TestStats(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	msgs := []Message{
		{ID: "1", Content: "aaaa", Author: Author{ID: "u1", Name: "alice"}, CreatedAt: base},
		{ID: "2", Content: "bbbbbb", Author: Author{ID: "u1", Name: "alice"}, CreatedAt: base.Add(30 * time.Minute)},
		{ID: "3", Content: "cc", Author: Author{ID: "u2", Name: "bob"}, CreatedAt: base.Add(time.Hour)},
	}

	stats := Stats(msgs)
	if stats.TotalMessages != 3 {
		t.Fatalf("expected 3 messages, got %d", stats.TotalMessages)
	}
	if stats.UniqueUsers != 2 {
		t.Fatalf("expected 2 users, got %d", stats.UniqueUsers)
	}
	if stats.TotalCharacters != 12 {
		t.Fatalf("expected 12 characters, got %d", stats.TotalCharacters)
	}
	if stats.TimeRangeHours != 1 {
		t.Fatalf("expected 1 hour range, got %v", stats.TimeRangeHours)
	}
	if len(stats.MostActiveUsers) == 0 || stats.MostActiveUsers[0].Name != "alice" {
		t.Fatalf("expected alice as most active, got %+v", stats.MostActiveUsers)
	}
}

func TestStats_Empty(t *testing.T) {
	stats := Stats(nil)
	if stats.TotalMessages != 0 || stats.UniqueUsers != 0 {
		t.Fatalf("expected zero stats for empty input, got %+v", stats)
	}
}
