package main

import (
	"github.com/mitchellh/cli"

	"github.com/marouaneMJH/faker/core"
)

type localesCommand struct {
	ui cli.Ui
}

func newLocalesCommand(ui cli.Ui) cli.Command {
	return &localesCommand{ui: ui}
}

func (c *localesCommand) Run(args []string) int {
	for _, code := range core.Locales() {
		c.ui.Output(code)
	}
	return 0
}

func (c *localesCommand) Synopsis() string {
	return "List the supported locales"
}

func (c *localesCommand) Help() string {
	return "Usage: faker locales\n\nList the supported locale codes, one per line."
}
