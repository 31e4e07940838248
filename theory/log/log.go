// Package log is the small leveled stderr logger shared by the CLI and
// the player.
package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

type LogLevel int

const (
	LogLevel_None LogLevel = iota
	LogLevel_Warn
	LogLevel_Info
	LogLevel_Debug
)

var Level = LogLevel_Info

var red = color.New(color.FgRed)
var yellow = color.New(color.FgYellow)
var cyan = color.New(color.FgCyan)

func Errorf(f string, args ...interface{}) {
	red.Fprintf(os.Stderr, "[ERROR] "+f+"\n", args...)
}

func Warnf(f string, args ...interface{}) {
	if LogLevel_Warn <= Level {
		yellow.Fprintf(os.Stderr, "[WARNING] "+f+"\n", args...)
	}
}

func Infof(f string, args ...interface{}) {
	if LogLevel_Info <= Level {
		fmt.Fprintf(os.Stderr, f+"\n", args...)
	}
}

var indent = 0

func Debugf(f string, args ...interface{}) {
	if LogLevel_Debug <= Level {
		cyan.Fprintf(os.Stderr, strings.Repeat("  ", indent)+f+"\n", args...)
	}
}

func Enter() {
	indent++
}

func Leave() {
	indent--
}

// SetVerbosity maps the usual CLI flags onto a level: debug wins over
// silent wins over quiet.
func SetVerbosity(debug, quiet, silent bool) {
	switch {
	case debug:
		Level = LogLevel_Debug
	case silent:
		Level = LogLevel_None
	case quiet:
		Level = LogLevel_Warn
	}
}
