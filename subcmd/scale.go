package subcmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mersenne-sister/chordy/theory/chord"
	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/mersenne-sister/chordy/theory/scale"
	"github.com/urfave/cli"
)

var Scale = cli.Command{
	Name:      "scale",
	Aliases:   []string{"s"},
	Usage:     "Spells a scale, optionally with its degree triads or seventh chords",
	ArgsUsage: "<root> <name>",
	Flags: append([]cli.Flag{
		unicodeFlag,
		cli.BoolFlag{
			Name:  "triads, t",
			Usage: `Also derive the seven degree triads`,
		},
		cli.BoolFlag{
			Name:  "sevenths, 7",
			Usage: `Also derive the seven degree seventh chords`,
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Dumps in JSON format`,
		},
	}, verbosityFlags...),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 2 {
			cli.ShowCommandHelp(ctx, "scale")
			os.Exit(1)
		}
		applyVerbosity(ctx)
		root, err := note.Parse(ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		def, err := scale.LookupDefinition(ctx.Args()[1])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		s := scale.New(root, def)
		notes, err := s.Notes()
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		if ctx.Bool("json") {
			j, err := json.MarshalIndent(map[string]interface{}{
				"scale": s.String(),
				"notes": notes,
			}, "", "  ")
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Println(string(j))
			return nil
		}

		fmt.Printf("%s: %s\n", s, renderAll(notes, ctx.Bool("unicode")))
		if ctx.Bool("triads") || ctx.Bool("sevenths") {
			for degree := 1; degree <= 7; degree++ {
				var c chord.Chord
				if ctx.Bool("sevenths") {
					c, err = chord.SeventhAtDegree(s, degree)
				} else {
					c, err = chord.TriadAtDegree(s, degree)
				}
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				members, err := c.Notes()
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				quality, _ := c.Quality()
				fmt.Printf("  %d: %-6s %-12s %s\n",
					degree, c.AbbreviatedName(), quality, renderAll(members, ctx.Bool("unicode")))
			}
		}
		return nil
	},
}
