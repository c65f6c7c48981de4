package commands

import (
	"context"
	"fmt"
	"strings"
)

// HelpCommand lists the registered commands.
type HelpCommand struct {
	registry *Registry
}

func NewHelp(registry *Registry) *HelpCommand {
	return &HelpCommand{registry: registry}
}

func (c *HelpCommand) Name() string { return "help" }

func (c *HelpCommand) Description() string {
	return "List available commands"
}

func (c *HelpCommand) Execute(_ context.Context, cc Context, _ []string) error {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, cmd := range c.registry.All() {
		fmt.Fprintf(&b, "/%s - %s\n", cmd.Name(), cmd.Description())
	}
	return cc.Send(strings.TrimSpace(b.String()))
}
