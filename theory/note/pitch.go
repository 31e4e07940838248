package note

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mersenne-sister/chordy/theory/interval"
	"github.com/pkg/errors"
)

// midiOctaveOffset fixes the octave numbering convention for the whole
// system: MIDI note 0 is C-2, so C4 = 72 and Eb4 = 75.
const midiOctaveOffset = 2

// Pitch is a spelled pitch class bound to an octave register.
type Pitch struct {
	Name   NoteName
	Octave int
}

// NewPitch builds a Pitch from its parts.
func NewPitch(name NoteName, octave int) Pitch {
	return Pitch{Name: name, Octave: octave}
}

// MIDINumber returns the absolute note number under the C-2 = 0
// convention. Spellings outside the 0..127 range still get a consistent
// number; range clamping is the exporter's concern.
func (p Pitch) MIDINumber() int {
	return p.Name.Letter.PitchClass() + p.Name.Accidental.Offset() + 12*(p.Octave+midiOctaveOffset)
}

// IsEnharmonicWith reports whether both pitches sound the same note.
func (p Pitch) IsEnharmonicWith(other Pitch) bool {
	return p.MIDINumber() == other.MIDINumber()
}

// Transpose moves the pitch up by the interval, keeping the theoretically
// correct spelling. The octave advances whenever the letter cycle wraps
// past B back to C.
func (p Pitch) Transpose(iv interval.Interval) (Pitch, error) {
	name, err := Spell(p.Name, iv.GenericSteps(), iv.Semitones())
	if err != nil {
		return Pitch{}, errors.Wrapf(err, "transposing %s by %s", p, iv)
	}
	wraps := (int(p.Name.Letter) + iv.GenericSteps()) / 7
	return NewPitch(name, p.Octave+wraps), nil
}

// String renders scientific pitch notation, e.g. "C4", "Eb3", "F#-1".
func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", p.Name, p.Octave)
}

// Symbol renders scientific pitch notation with Unicode accidentals.
func (p Pitch) Symbol() string {
	return fmt.Sprintf("%s%d", p.Name.Symbol(), p.Octave)
}

func (p Pitch) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// ParsePitch reads scientific pitch notation: a note name followed by a
// possibly negative octave number, e.g. "C4", "Bb-1", "F##6".
func ParsePitch(s string) (Pitch, error) {
	split := len(s)
	for i := 1; i < len(s); i++ {
		if s[i] == '-' || '0' <= s[i] && s[i] <= '9' {
			split = i
			break
		}
	}
	if split == len(s) {
		return Pitch{}, errors.Errorf("invalid pitch %q: missing octave", s)
	}
	name, err := Parse(s[:split])
	if err != nil {
		return Pitch{}, errors.Wrapf(err, "invalid pitch %q", s)
	}
	octave, err := strconv.Atoi(s[split:])
	if err != nil {
		return Pitch{}, errors.Errorf("invalid pitch %q: bad octave", s)
	}
	return NewPitch(name, octave), nil
}

// MustParsePitch is ParsePitch for literal pitches; it panics on
// malformed input.
func MustParsePitch(s string) Pitch {
	p, err := ParsePitch(s)
	if err != nil {
		panic(err)
	}
	return p
}
