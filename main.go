package main

import (
	"os"

	"github.com/mersenne-sister/chordy/subcmd"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	app := cli.NewApp()
	//app.EnableBashCompletion = true
	app.Name = "chordy"
	app.Version = version
	app.Usage = "Spells notes, intervals, scales and chords"
	app.Authors = []cli.Author{
		{
			Name:  "but80",
			Email: "mersenne.sister@gmail.com",
		},
	}
	app.HelpName = "chordy"

	app.Commands = []cli.Command{
		subcmd.Note,
		subcmd.Interval,
		subcmd.Transpose,
		subcmd.Scale,
		subcmd.Chord,
		subcmd.Export,
		subcmd.Play,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}
