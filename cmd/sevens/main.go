package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play Sevens at the console (default)"`
	Simulate SimulateCmd      `cmd:"" help:"Play computer-only games and summarise the results"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sevens"),
		kong.Description("Sevens (Сім), the 36-card shedding game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
