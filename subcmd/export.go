package subcmd

import (
	"os"
	"strings"

	"github.com/mersenne-sister/chordy/export"
	"github.com/mersenne-sister/chordy/theory/log"
	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/mersenne-sister/chordy/theory/scale"
	"github.com/urfave/cli"
)

var Export = cli.Command{
	Name:      "export",
	Aliases:   []string{"e"},
	Usage:     "Exports a scale to a MIDI (.mid) or WAV (.wav) file",
	ArgsUsage: "<root> <scale> <filename>",
	Flags: append([]cli.Flag{
		cli.IntFlag{
			Name:  "octave, o",
			Usage: `Octave of the root note`,
			Value: 4,
		},
		cli.Float64Flag{
			Name:  "beats, b",
			Usage: `Beats per note`,
			Value: 1,
		},
		cli.BoolFlag{
			Name:  "chord, c",
			Usage: `Sound all notes at once (MIDI only)`,
		},
	}, verbosityFlags...),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 3 {
			cli.ShowCommandHelp(ctx, "export")
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

		filename := ctx.Args()[2]
		f, err := os.Create(filename)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer f.Close()

		opts := &export.Options{
			BeatsPerNote: ctx.Float64("beats"),
			Chord:        ctx.Bool("chord"),
		}
		switch {
		case strings.HasSuffix(strings.ToLower(filename), ".wav"):
			err = export.WriteWAV(f, pitches, opts)
		default:
			err = export.WriteSMF(f, pitches, opts)
		}
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Infof("wrote %s", filename)
		return nil
	},
}
