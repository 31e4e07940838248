package subcmd

import (
	"fmt"
	"os"

	"github.com/mersenne-sister/chordy/theory/interval"
	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/urfave/cli"
)

var Interval = cli.Command{
	Name:      "interval",
	Aliases:   []string{"i"},
	Usage:     "Describes an interval, by shorthand or between two notes",
	ArgsUsage: "<shorthand> | <note> <note>",
	Flags:     verbosityFlags,
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "interval")
			os.Exit(1)
		}
		applyVerbosity(ctx)

		var iv interval.Interval
		var err error
		if ctx.NArg() == 1 {
			iv, err = interval.Parse(ctx.Args()[0])
		} else {
			var from, to note.NoteName
			if from, err = note.Parse(ctx.Args()[0]); err == nil {
				if to, err = note.Parse(ctx.Args()[1]); err == nil {
					iv, err = from.IntervalTo(to)
				}
			}
		}
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		fmt.Printf("interval:  %s\n", iv)
		fmt.Printf("quality:   %s\n", iv.Quality())
		fmt.Printf("size:      %d\n", iv.GenericSize())
		fmt.Printf("semitones: %d\n", iv.Semitones())
		fmt.Printf("inversion: %s\n", iv.Invert())
		return nil
	},
}
