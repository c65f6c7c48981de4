package telegram

import (
	"sync"

	"tldw/internal/messages"
)

// maxRecorded bounds how many messages are kept per chat.
const maxRecorded = 300

// Recorder keeps a rolling window of recent messages per chat. The Bot API
// offers no way to read a chat's history after the fact, so the bot
// remembers what it sees as updates arrive and serves history from that.
type Recorder struct {
	mu    sync.RWMutex
	chats map[string][]messages.Message
}

func NewRecorder() *Recorder {
	return &Recorder{chats: make(map[string][]messages.Message)}
}

// Record appends a message to its chat's window.
func (r *Recorder) Record(m messages.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	window := append(r.chats[m.ChannelID], m)
	if len(window) > maxRecorded {
		window = window[len(window)-maxRecorded:]
	}
	r.chats[m.ChannelID] = window
}

// History returns up to limit messages for a chat, newest first. seen is
// false when the recorder has never observed the chat at all, which callers
// treat as "history not readable" rather than "no messages".
func (r *Recorder) History(chatID string, limit int) (history []messages.Message, seen bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	window, ok := r.chats[chatID]
	if !ok {
		return nil, false
	}
	n := len(window)
	if limit > n {
		limit = n
	}
	history = make([]messages.Message, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		history = append(history, window[i])
	}
	return history, true
}
