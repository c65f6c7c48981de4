package commands

import (
	"context"

	"tldw/internal/urls"
)

// TldrCommand summarizes web pages and social threads.
type TldrCommand struct {
	flow urlFlow
}

func NewTldr(deps *Deps) *TldrCommand {
	return &TldrCommand{flow: urlFlow{
		deps:     deps,
		accepts:  func(k urls.Kind) bool { return k != urls.KindYouTube },
		redirect: "tldw",
		hint:     "web page or thread",
	}}
}

func (c *TldrCommand) Name() string { return "tldr" }

func (c *TldrCommand) Description() string {
	return "Generate a summary of a web page or thread"
}

func (c *TldrCommand) Execute(ctx context.Context, cc Context, args []string) error {
	url := ""
	if len(args) > 0 {
		url = args[0]
	}
	return c.flow.run(ctx, cc, url)
}
