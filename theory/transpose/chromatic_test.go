package transpose

import (
	"testing"

	"github.com/mersenne-sister/chordy/theory/note"
)

func TestBySemitones(t *testing.T) {
	cases := []struct {
		in        string
		semitones int
		want      string
	}{
		// Zero is the identity, spelling untouched.
		{"C4", 0, "C4"},
		{"Fb3", 0, "Fb3"},
		// Ascending motion prefers sharpward spellings.
		{"C4", 1, "C#4"},
		{"C4", 3, "D#4"},
		{"C4", 4, "E4"},
		{"E4", 1, "F4"},
		{"G4", 2, "A4"},
		// Descending motion prefers flatward spellings.
		{"C4", -1, "B3"},
		{"C4", -4, "Ab3"},
		{"D4", -2, "C4"},
		{"A4", -1, "Ab4"},
		{"F4", -1, "E4"},
		// A note that already leans one way keeps leaning that way.
		{"F#4", -1, "F4"},
		{"Bb3", 2, "C4"},
		{"Eb4", -2, "Db4"},
		// Octave boundaries.
		{"B3", 1, "C4"},
		{"C4", -12, "C3"},
		{"A4", 12, "A5"},
		{"G4", 7, "D5"},
	}
	for _, c := range cases {
		got := BySemitones(note.MustParsePitch(c.in), c.semitones)
		if got != note.MustParsePitch(c.want) {
			t.Errorf("%s %+d semitones = %s, want %s", c.in, c.semitones, got, c.want)
		}
	}
}

func TestBySemitonesRoundTrip(t *testing.T) {
	// Moving up and back down always returns to the same sounding pitch.
	starts := []string{"C4", "F#3", "Bb5", "E2", "Ab4"}
	for _, s := range starts {
		p := note.MustParsePitch(s)
		for semitones := -12; semitones <= 12; semitones++ {
			there := BySemitones(p, semitones)
			if there.MIDINumber() != p.MIDINumber()+semitones {
				t.Errorf("%s %+d = %s, off pitch", s, semitones, there)
				continue
			}
			back := BySemitones(there, -semitones)
			if back.MIDINumber() != p.MIDINumber() {
				t.Errorf("%s %+d then %+d = %s, off pitch", s, semitones, -semitones, back)
			}
		}
	}
}

func TestExpectedLetter(t *testing.T) {
	cases := []struct {
		from      note.Letter
		semitones int
		want      note.Letter
	}{
		{note.Letter_C, 1, note.Letter_D},
		{note.Letter_C, 4, note.Letter_E},
		{note.Letter_C, 5, note.Letter_F},
		{note.Letter_C, 7, note.Letter_G},
		{note.Letter_C, 12, note.Letter_C},
		{note.Letter_C, -1, note.Letter_B},
		{note.Letter_C, -5, note.Letter_G},
		{note.Letter_A, 3, note.Letter_C},
	}
	for _, c := range cases {
		if got := expectedLetter(c.from, c.semitones); got != c.want {
			t.Errorf("expectedLetter(%s, %d) = %s, want %s", c.from, c.semitones, got, c.want)
		}
	}
}
