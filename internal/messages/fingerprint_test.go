package messages

import (
	"testing"
	"time"
)

func msg(id, channel string) Message {
	return Message{
		ID:        id,
		Content:   "content of " + id,
		Author:    Author{ID: "u1", Name: "alice"},
		CreatedAt: time.Now(),
		ChannelID: channel,
	}
}

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := []Message{msg("3", "c1"), msg("1", "c1"), msg("2", "c1")}
	b := []Message{msg("1", "c1"), msg("2", "c1"), msg("3", "c1")}

	if Fingerprint(a) != Fingerprint(b) {
		t.Fatalf("fingerprint must not depend on message order")
	}
}

func TestFingerprint_SensitiveToMembership(t *testing.T) {
	base := []Message{msg("1", "c1"), msg("2", "c1"), msg("3", "c1")}
	oneChanged := []Message{msg("1", "c1"), msg("2", "c1"), msg("4", "c1")}
	oneMore := []Message{msg("1", "c1"), msg("2", "c1"), msg("3", "c1"), msg("4", "c1")}
	otherChannel := []Message{msg("1", "c2"), msg("2", "c2"), msg("3", "c2")}

	fp := Fingerprint(base)
	if Fingerprint(oneChanged) == fp {
		t.Fatalf("changing one id must change the fingerprint")
	}
	if Fingerprint(oneMore) == fp {
		t.Fatalf("changing the count must change the fingerprint")
	}
	if Fingerprint(otherChannel) == fp {
		t.Fatalf("changing the channel must change the fingerprint")
	}
}

func TestFingerprint_Empty(t *testing.T) {
	first := Fingerprint(nil)
	second := Fingerprint([]Message{})
	if first != second {
		t.Fatalf("empty input must hash to a fixed constant, got %q and %q", first, second)
	}
	if len(first) != fingerprintLen {
		t.Fatalf("expected %d hex chars, got %d", fingerprintLen, len(first))
	}
}

func TestFingerprint_Length(t *testing.T) {
	fp := Fingerprint([]Message{msg("1", "c1")})
	if len(fp) != fingerprintLen {
		t.Fatalf("expected %d hex chars, got %d (%q)", fingerprintLen, len(fp), fp)
	}
}
