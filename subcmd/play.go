package subcmd

import (
	"os"

	"github.com/mersenne-sister/chordy/player"
	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/mersenne-sister/chordy/theory/scale"
	"github.com/urfave/cli"
)

var Play = cli.Command{
	Name:      "play",
	Aliases:   []string{"p"},
	Usage:     "Plays a scale through an OSC receiver",
	ArgsUsage: "<root> <scale>",
	Flags: append([]cli.Flag{
		cli.StringFlag{
			Name:  "addr, a",
			Usage: `OSC receiver address`,
			Value: "127.0.0.1:8765",
		},
		cli.IntFlag{
			Name:  "octave, o",
			Usage: `Octave of the root note`,
			Value: 4,
		},
		cli.IntFlag{
			Name:  "instrument, i",
			Usage: `Instrument number passed to the receiver`,
		},
		cli.IntFlag{
			Name:  "bpm, b",
			Usage: `Tempo in beats per minute`,
			Value: 120,
		},
		cli.IntFlag{
			Name:  "loop, l",
			Usage: `Number of repeats (0: infinite)`,
			Value: 1,
		},
		cli.BoolFlag{
			Name:  "chord, c",
			Usage: `Sound all notes at once`,
		},
		cli.BoolFlag{
			Name:  "state, s",
			Usage: `Show playing state`,
		},
	}, verbosityFlags...),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 2 || ctx.Int("loop") < 0 || ctx.Int("bpm") <= 0 {
			cli.ShowCommandHelp(ctx, "play")
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
		pitches, err := scale.New(root, def).Pitches(ctx.Int("octave"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		q := &player.Player{
			Addr:      ctx.String("addr"),
			ShowState: ctx.Bool("state"),
		}
		err = q.Play(pitches, &player.PlayerOptions{
			Instrument: ctx.Int("instrument"),
			BPM:        ctx.Int("bpm"),
			Loop:       ctx.Int("loop"),
			Chord:      ctx.Bool("chord"),
		})
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	},
}
