package subcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mersenne-sister/chordy/theory/chord"
	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/mersenne-sister/chordy/theory/scale"
	"github.com/urfave/cli"
)

func chordByName(root note.NoteName, name string) (chord.Chord, error) {
	switch strings.ToLower(name) {
	case "major", "maj", "":
		return chord.Major(root), nil
	case "minor", "min", "m":
		return chord.Minor(root), nil
	case "diminished", "dim":
		return chord.Diminished(root), nil
	case "augmented", "aug":
		return chord.Augmented(root), nil
	case "7", "dom7":
		return chord.Dominant7th(root), nil
	case "maj7":
		return chord.Major7th(root), nil
	case "m7", "min7":
		return chord.Minor7th(root), nil
	case "mmaj7":
		return chord.MinorMajor7th(root), nil
	case "m7b5":
		return chord.HalfDiminished7th(root), nil
	case "dim7":
		return chord.Diminished7th(root), nil
	}
	return chord.Chord{}, fmt.Errorf("unknown chord quality %q", name)
}

var Chord = cli.Command{
	Name:      "chord",
	Aliases:   []string{"c"},
	Usage:     "Builds a chord from a root and quality, or from a scale degree",
	ArgsUsage: "<root> [quality]",
	Flags: append([]cli.Flag{
		unicodeFlag,
		cli.IntFlag{
			Name:  "degree, D",
			Usage: `Build the triad on this degree (1..7) of a scale instead`,
		},
		cli.StringFlag{
			Name:  "scale, S",
			Usage: `Scale name used with --degree`,
			Value: "major",
		},
		cli.IntFlag{
			Name:  "invert, i",
			Usage: `Show the nth inversion`,
		},
		cli.BoolFlag{
			Name:  "function, f",
			Usage: `Show the harmonic function within --scale`,
		},
	}, verbosityFlags...),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "chord")
			os.Exit(1)
		}
		applyVerbosity(ctx)
		root, err := note.Parse(ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		def, err := scale.LookupDefinition(ctx.String("scale"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		s := scale.New(root, def)

		var c chord.Chord
		if ctx.IsSet("degree") {
			c, err = chord.TriadAtDegree(s, ctx.Int("degree"))
		} else {
			c, err = chordByName(root, ctx.Args().Get(1))
		}
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if ctx.IsSet("invert") {
			if c, err = c.Inverted(ctx.Int("invert")); err != nil {
				return cli.NewExitError(err, 1)
			}
		}

		members, err := c.Notes()
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		quality, _ := c.Quality()
		fmt.Printf("chord:   %s\n", c.AbbreviatedName())
		fmt.Printf("notes:   %s\n", renderAll(members, ctx.Bool("unicode")))
		fmt.Printf("quality: %s\n", quality)
		if ctx.Bool("function") {
			if hf, ok := chord.HarmonicFunctionOf(s, c); ok {
				fmt.Printf("function in %s: %s\n", s, hf)
			} else {
				fmt.Printf("function in %s: none\n", s)
			}
		}
		return nil
	},
}
