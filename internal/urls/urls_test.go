package urls

import (
	"errors"
	"testing"
)

func TestIsValid(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://example.com/path?q=1",
		"www.example.com",
		"example.com",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"example.com:8080/page",
	}
	for _, u := range valid {
		if !IsValid(u) {
			t.Fatalf("expected %q to be valid", u)
		}
	}

	invalid := []string{
		"",
		"not a url",
		"http://",
		"just-text",
		"https://nodot",
	}
	for _, u := range invalid {
		if IsValid(u) {
			t.Fatalf("expected %q to be invalid", u)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		url  string
		want Kind
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", KindYouTube},
		{"https://youtu.be/dQw4w9WgXcQ", KindYouTube},
		{"youtube.com/watch?v=abc", KindYouTube},
		{"https://x.com/user/status/123", KindThread},
		{"https://twitter.com/user/status/123", KindThread},
		{"https://example.com/article", KindWeb},
		// Hostname match, not substring: these are ordinary web pages.
		{"https://netflix.com/title/1", KindWeb},
		{"https://myyoutube.com/fake", KindWeb},
	}
	for _, tc := range cases {
		got, err := Classify(tc.url)
		if err != nil {
			t.Fatalf("Classify(%q): unexpected error %v", tc.url, err)
		}
		if got != tc.want {
			t.Fatalf("Classify(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}

	if _, err := Classify("not a url"); !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL, got %v", err)
	}
}

func TestExtractFromText(t *testing.T) {
	got := ExtractFromText("check out example.com/page and https://youtu.be/abc here")
	want := []string{"https://example.com/page", "https://youtu.be/abc"}
	if len(got) != len(want) {
		t.Fatalf("expected %d URLs, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("url %d: got %q, want %q", i, got[i], want[i])
		}
	}

	if urls := ExtractFromText("nothing to see here"); len(urls) != 0 {
		t.Fatalf("expected no URLs, got %v", urls)
	}
}

func TestContainsURL(t *testing.T) {
	if !ContainsURL("see https://example.com") {
		t.Fatalf("expected URL to be detected")
	}
	if ContainsURL("plain sentence with no links") {
		t.Fatalf("expected no URL detected")
	}
}
