package messages

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 16

// Fingerprint derives a short stable identity for a set of messages, used
// as the conversation-summary cache key. Message ids are sorted before
// hashing, so the result is independent of fetch order but changes with any
// difference in membership or count.
func Fingerprint(msgs []Message) string {
	if len(msgs) == 0 {
		sum := sha256.Sum256(nil)
		return hex.EncodeToString(sum[:])[:fingerprintLen]
	}

	ids := make([]string, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(strings.Join(ids, "|"))
	fmt.Fprintf(&b, "|channel:%s|count:%d", msgs[0].ChannelID, len(msgs))

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}
