package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

const version = "0.1.0"

func main() {
	ui := &cli.BasicUi{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Reader:      os.Stdin,
	}

	app := cli.NewCLI("faker", version)
	app.Args = os.Args[1:]
	app.Commands = map[string]cli.CommandFactory{
		"generate": func() (cli.Command, error) {
			return newGenerateCommand(ui), nil
		},
		"locales": func() (cli.Command, error) {
			return newLocalesCommand(ui), nil
		},
	}

	exitStatus, err := app.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitStatus)
}
