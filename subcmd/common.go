// Package subcmd holds the CLI commands. Each command is a thin
// collaborator: it parses argument strings into theory values, calls the
// core, and prints the results.
package subcmd

import (
	"strings"

	"github.com/mersenne-sister/chordy/theory/log"
	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/urfave/cli"
)

var verbosityFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
}

var unicodeFlag = cli.BoolFlag{
	Name:  "unicode, u",
	Usage: `Render accidentals as Unicode glyphs`,
}

func applyVerbosity(ctx *cli.Context) {
	log.SetVerbosity(ctx.Bool("debug"), ctx.Bool("quiet"), ctx.Bool("silent"))
}

// render picks between ASCII and Unicode accidental spellings.
func render(n note.NoteName, unicode bool) string {
	if unicode {
		return n.Symbol()
	}
	return n.String()
}

func renderAll(notes []note.NoteName, unicode bool) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = render(n, unicode)
	}
	return strings.Join(parts, " ")
}
