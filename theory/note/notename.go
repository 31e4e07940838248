package note

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// NoteName is a spelled pitch class: a letter plus an accidental. It is a
// pure value type; two NoteNames are equal only when both fields match,
// while enharmonic equivalence compares pitch classes alone.
type NoteName struct {
	Letter     Letter
	Accidental Accidental
}

// New builds a NoteName from its parts.
func New(l Letter, a Accidental) NoteName {
	return NoteName{Letter: l, Accidental: a}
}

// PitchClass returns the note's position within the octave, 0..11.
func (n NoteName) PitchClass() int {
	return ((n.Letter.PitchClass()+n.Accidental.Offset())%12 + 12) % 12
}

// IsEnharmonicWith reports whether both spellings denote the same pitch
// class, regardless of letter and accidental.
func (n NoteName) IsEnharmonicWith(other NoteName) bool {
	return n.PitchClass() == other.PitchClass()
}

// String renders the ASCII spelling: "C", "F#", "Bb", "Gbb".
func (n NoteName) String() string {
	return n.Letter.String() + n.Accidental.String()
}

// Symbol renders the Unicode spelling: "C", "F♯", "B♭", "G𝄫".
func (n NoteName) Symbol() string {
	return n.Letter.String() + n.Accidental.Symbol()
}

func (n NoteName) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// Parse reads a note name: one letter followed by an optional accidental,
// e.g. "C", "f#", "Bbb", "E♭".
func Parse(s string) (NoteName, error) {
	if len(s) == 0 {
		return NoteName{}, errors.Errorf("invalid note name %q", s)
	}
	letter, err := ParseLetter(s[0])
	if err != nil {
		return NoteName{}, errors.Wrapf(err, "invalid note name %q", s)
	}
	accidental, err := ParseAccidental(s[1:])
	if err != nil {
		return NoteName{}, errors.Wrapf(err, "invalid note name %q", s)
	}
	return New(letter, accidental), nil
}

// MustParse is Parse for compile-time-known note literals; it panics on
// malformed input.
func MustParse(s string) NoteName {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}
