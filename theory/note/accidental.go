package note

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Accidental is a pitch-class modifier. Its integer value is the semitone
// offset it applies, so the enum is backed by -2..+2 directly.
type Accidental int

const (
	Accidental_DoubleFlat Accidental = iota - 2
	Accidental_Flat
	Accidental_Natural
	Accidental_Sharp
	Accidental_DoubleSharp
)

// AllAccidentals returns the five accidentals from double-flat to double-sharp.
func AllAccidentals() [5]Accidental {
	return [5]Accidental{
		Accidental_DoubleFlat,
		Accidental_Flat,
		Accidental_Natural,
		Accidental_Sharp,
		Accidental_DoubleSharp,
	}
}

// Offset returns the semitone shift this accidental applies (-2..+2).
func (a Accidental) Offset() int {
	return int(a)
}

// IsSharp reports whether the accidental raises the pitch.
func (a Accidental) IsSharp() bool {
	return 0 < a
}

// IsFlat reports whether the accidental lowers the pitch.
func (a Accidental) IsFlat() bool {
	return a < 0
}

// Penalty is the spelling cost used by the chromatic transposer when
// ranking candidate spellings. Naturals are free, double accidentals
// expensive.
func (a Accidental) Penalty() int {
	switch a {
	case Accidental_Natural:
		return 0
	case Accidental_Sharp, Accidental_Flat:
		return 1
	default:
		return 3
	}
}

// String renders the ASCII form. Naturals render empty so that plain note
// names come out as "C" rather than "Cn".
func (a Accidental) String() string {
	switch a {
	case Accidental_DoubleFlat:
		return "bb"
	case Accidental_Flat:
		return "b"
	case Accidental_Natural:
		return ""
	case Accidental_Sharp:
		return "#"
	case Accidental_DoubleSharp:
		return "##"
	}
	return fmt.Sprintf("undefined(%d)", int(a))
}

// Symbol renders the Unicode glyph form.
func (a Accidental) Symbol() string {
	switch a {
	case Accidental_DoubleFlat:
		return "\U0001d12b" // 𝄫
	case Accidental_Flat:
		return "♭"
	case Accidental_Natural:
		return ""
	case Accidental_Sharp:
		return "♯"
	case Accidental_DoubleSharp:
		return "\U0001d12a" // 𝄪
	}
	return fmt.Sprintf("undefined(%d)", int(a))
}

func (a Accidental) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// ParseAccidental accepts ASCII and Unicode accidental spellings. The
// empty string and the explicit natural signs mean Natural.
func ParseAccidental(s string) (Accidental, error) {
	switch s {
	case "":
		return Accidental_Natural, nil
	case "n", "♮":
		return Accidental_Natural, nil
	case "b", "♭":
		return Accidental_Flat, nil
	case "#", "♯":
		return Accidental_Sharp, nil
	case "bb", "♭♭", "\U0001d12b":
		return Accidental_DoubleFlat, nil
	case "##", "x", "♯♯", "\U0001d12a":
		return Accidental_DoubleSharp, nil
	}
	return 0, errors.Errorf("invalid accidental %q", s)
}
