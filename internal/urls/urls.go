// Package urls validates URLs and classifies them by content kind.
package urls

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// Kind is the category of content behind a URL, which decides how it is
// extracted and which command should handle it.
type Kind int

const (
	KindWeb Kind = iota
	KindYouTube
	KindThread // X/Twitter thread
)

func (k Kind) String() string {
	switch k {
	case KindYouTube:
		return "youtube"
	case KindThread:
		return "thread"
	default:
		return "web"
	}
}

// Label returns the user-facing name for content of this kind.
func (k Kind) Label() string {
	switch k {
	case KindYouTube:
		return "YouTube video"
	case KindThread:
		return "thread"
	default:
		return "web page"
	}
}

// ErrInvalidURL is returned for strings that do not parse as a URL.
var ErrInvalidURL = errors.New("invalid URL")

var validURLPattern = regexp.MustCompile(
	`^(https?://)?(www\.)?[a-zA-Z0-9][-a-zA-Z0-9]{0,62}(\.[a-zA-Z0-9][-a-zA-Z0-9]{0,62})+(:\d+)?(/\S*)?$`)

// extractPattern matches URL-shaped substrings in free text: explicit
// http(s), www-prefixed, or bare domain.tld forms.
var extractPattern = regexp.MustCompile(
	`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+|www\.[^\s<>"{}|\\^` + "`" + `\[\]]+|[a-zA-Z0-9][-a-zA-Z0-9]{0,62}\.[a-zA-Z]{2,6}[^\s<>"{}|\\^` + "`" + `\[\]]*`)

// IsValid reports whether s looks like a URL.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	return validURLPattern.MatchString(s)
}

// Classify determines the content kind behind a URL.
func Classify(rawURL string) (Kind, error) {
	if !IsValid(rawURL) {
		return KindWeb, ErrInvalidURL
	}
	withScheme := rawURL
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		withScheme = "https://" + rawURL
	}
	parsed, err := url.Parse(withScheme)
	if err != nil {
		return KindWeb, ErrInvalidURL
	}
	host := strings.ToLower(parsed.Hostname())
	switch {
	case hostIs(host, "youtube.com") || hostIs(host, "youtu.be"):
		return KindYouTube, nil
	case hostIs(host, "twitter.com") || hostIs(host, "x.com"):
		return KindThread, nil
	default:
		return KindWeb, nil
	}
}

func hostIs(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// ExtractFromText returns all valid URLs found in free text, with a https
// scheme filled in where the author omitted it.
func ExtractFromText(text string) []string {
	var found []string
	for _, candidate := range extractPattern.FindAllString(text, -1) {
		withScheme := candidate
		if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
			withScheme = "https://" + candidate
		}
		if IsValid(withScheme) {
			found = append(found, withScheme)
		}
	}
	return found
}

// ContainsURL reports whether text has at least one valid URL in it.
func ContainsURL(text string) bool {
	return len(ExtractFromText(text)) > 0
}
