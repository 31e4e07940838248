package subcmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/urfave/cli"
)

var Note = cli.Command{
	Name:      "note",
	Aliases:   []string{"n"},
	Usage:     "Shows a note name's spelling, pitch class and enharmonic equivalents",
	ArgsUsage: "<note>",
	Flags: append([]cli.Flag{
		unicodeFlag,
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Dumps in JSON format`,
		},
	}, verbosityFlags...),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "note")
			os.Exit(1)
		}
		applyVerbosity(ctx)
		n, err := note.Parse(ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		var enharmonics []note.NoteName
		for _, l := range note.AllLetters() {
			for _, a := range note.AllAccidentals() {
				other := note.New(l, a)
				if other != n && other.IsEnharmonicWith(n) {
					enharmonics = append(enharmonics, other)
				}
			}
		}

		if ctx.Bool("json") {
			j, err := json.MarshalIndent(map[string]interface{}{
				"note":        n,
				"pitchClass":  n.PitchClass(),
				"enharmonics": enharmonics,
			}, "", "  ")
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Println(string(j))
			return nil
		}
		fmt.Printf("note:        %s\n", render(n, ctx.Bool("unicode")))
		fmt.Printf("pitch class: %d\n", n.PitchClass())
		fmt.Printf("enharmonics: %s\n", renderAll(enharmonics, ctx.Bool("unicode")))
		return nil
	},
}
