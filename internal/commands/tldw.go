package commands

import (
	"context"

	"tldw/internal/urls"
)

// TldwCommand summarizes YouTube videos from their transcripts.
type TldwCommand struct {
	flow urlFlow
}

func NewTldw(deps *Deps) *TldwCommand {
	return &TldwCommand{flow: urlFlow{
		deps:     deps,
		accepts:  func(k urls.Kind) bool { return k == urls.KindYouTube },
		redirect: "tldr",
		hint:     "YouTube",
	}}
}

func (c *TldwCommand) Name() string { return "tldw" }

func (c *TldwCommand) Description() string {
	return "Generate a summary of a YouTube video"
}

func (c *TldwCommand) Execute(ctx context.Context, cc Context, args []string) error {
	url := ""
	if len(args) > 0 {
		url = args[0]
	}
	return c.flow.run(ctx, cc, url)
}
