package telegram

import (
	"context"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"

	"tldw/internal/commands"
	"tldw/internal/messages"
)

// chatContext is the shared commands.Context implementation over a telebot
// update. slashContext and legacyContext differ only in how the command
// arguments were parsed out of the message.
type chatContext struct {
	tc       tele.Context
	recorder *Recorder
}

func (c *chatContext) Send(text string) error {
	return c.tc.Send(text)
}

func (c *chatContext) AuthorID() string {
	return strconv.FormatInt(c.tc.Sender().ID, 10)
}

func (c *chatContext) ChannelID() string {
	return strconv.FormatInt(c.tc.Chat().ID, 10)
}

func (c *chatContext) History(_ context.Context, limit int) ([]messages.Message, error) {
	history, seen := c.recorder.History(c.ChannelID(), limit)
	if !seen {
		// The bot has observed nothing in this chat. With group privacy
		// mode on it never will, which is indistinguishable here from a
		// chat it just joined; either way history is not readable.
		return nil, commands.ErrPermissionDenied
	}
	return history, nil
}

// slashContext adapts a native /command invocation. Arguments come from the
// payload after the command.
type slashContext struct {
	chatContext
	args []string
}

func newSlashContext(tc tele.Context, recorder *Recorder) *slashContext {
	return &slashContext{
		chatContext: chatContext{tc: tc, recorder: recorder},
		args:        strings.Fields(tc.Message().Payload),
	}
}

// legacyContext adapts the bang-prefixed text form ("!tldw <url>") kept for
// users used to the old bot. The whole text is re-split, dropping the
// command word itself.
type legacyContext struct {
	chatContext
	args []string
}

func newLegacyContext(tc tele.Context, recorder *Recorder) *legacyContext {
	fields := strings.Fields(tc.Text())
	var args []string
	if len(fields) > 1 {
		args = fields[1:]
	}
	return &legacyContext{
		chatContext: chatContext{tc: tc, recorder: recorder},
		args:        args,
	}
}
