package commands

import "strings"

// maxMessageLen is the per-message size ceiling of the conversation
// surface. Longer responses are split at line boundaries.
const maxMessageLen = 2000

// respond sends text through cc, splitting it into multiple sequential
// messages when it exceeds the size ceiling.
func respond(cc Context, text string) error {
	for _, part := range splitResponse(text, maxMessageLen) {
		if err := cc.Send(part); err != nil {
			return err
		}
	}
	return nil
}

// splitResponse breaks text into chunks no longer than max, preferring line
// boundaries. A single line exceeding max on its own is hard-truncated with
// a continuation marker.
func splitResponse(text string, max int) []string {
	if len(text) <= max {
		return []string{text}
	}

	var parts []string
	var current strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if current.Len()+len(line)+1 > max {
			if current.Len() > 0 {
				parts = append(parts, strings.TrimSpace(current.String()))
				current.Reset()
			}
			if len(line) > max {
				parts = append(parts, line[:max-3]+"...")
				continue
			}
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if current.Len() > 0 {
		parts = append(parts, strings.TrimSpace(current.String()))
	}
	return parts
}
