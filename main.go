package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"proot/internal/cmd"
	"proot/internal/config"
	"proot/version"
)

func main() {
	// Load settings from ~/.proot/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("proot"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	if err := ctx.Run(); err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
