package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"planpilot/internal/cmd"
	"planpilot/internal/version"
)

func main() {
	// Container is created in CLI.AfterApply() after config and logging
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("planpilot"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	err := ctx.Run()
	_ = cli.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
