package subcmd

import (
	"fmt"
	"os"

	"github.com/mersenne-sister/chordy/theory/interval"
	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/mersenne-sister/chordy/theory/transpose"
	"github.com/urfave/cli"
)

var Transpose = cli.Command{
	Name:      "transpose",
	Aliases:   []string{"t"},
	Usage:     "Transposes a pitch by an interval, or by raw semitones",
	ArgsUsage: "<pitch> <interval>",
	Flags: append([]cli.Flag{
		unicodeFlag,
		cli.IntFlag{
			Name:  "semitones, s",
			Usage: `Transpose by this many semitones instead of a named interval`,
		},
	}, verbosityFlags...),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "transpose")
			os.Exit(1)
		}
		applyVerbosity(ctx)
		p, err := note.ParsePitch(ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		var result note.Pitch
		if ctx.IsSet("semitones") {
			result = transpose.BySemitones(p, ctx.Int("semitones"))
		} else {
			if ctx.NArg() < 2 {
				cli.ShowCommandHelp(ctx, "transpose")
				os.Exit(1)
			}
			iv, err := interval.Parse(ctx.Args()[1])
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			if result, err = p.Transpose(iv); err != nil {
				return cli.NewExitError(err, 1)
			}
		}
		if ctx.Bool("unicode") {
			fmt.Println(result.Symbol())
		} else {
			fmt.Println(result)
		}
		return nil
	},
}
