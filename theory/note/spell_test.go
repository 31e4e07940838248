package note

import (
	"testing"

	"github.com/pkg/errors"
)

func TestSpell(t *testing.T) {
	cases := []struct {
		start     string
		steps     int
		semitones int
		want      string
	}{
		// A major third always lands two letters up, never on an
		// enharmonic substitute.
		{"C", 2, 4, "E"},
		{"C#", 2, 4, "E#"},
		{"Db", 2, 4, "F"},
		{"C", 2, 3, "Eb"},
		{"C#", 2, 3, "E"},
		// Semitone steps keep their letter identity.
		{"C", 1, 1, "Db"},
		{"C", 0, 1, "C#"},
		{"B", 1, 1, "C"},
		{"E", 1, 1, "F"},
		// Double accidentals are the edge of the representable range.
		{"C", 1, 0, "Dbb"},
		{"C", 1, 4, "D##"},
		{"F#", 3, 6, "B#"},
		// Downward spelling works the same way.
		{"C", -1, -1, "B"},
		{"C", -2, -3, "A"},
		{"D", -1, -2, "C"},
	}
	for _, c := range cases {
		got, err := Spell(MustParse(c.start), c.steps, c.semitones)
		if err != nil {
			t.Errorf("Spell(%s, %d, %d): %v", c.start, c.steps, c.semitones, err)
			continue
		}
		if got != MustParse(c.want) {
			t.Errorf("Spell(%s, %d, %d) = %s, want %s", c.start, c.steps, c.semitones, got, c.want)
		}
	}
}

func TestSpellUnrepresentable(t *testing.T) {
	cases := []struct {
		start     string
		steps     int
		semitones int
	}{
		{"Dbb", 1, 1}, // would need Ebbb
		{"C", 1, 5},   // would need D###
		{"Db", 1, 0},  // would need Ebbb
		{"A##", 1, 6}, // would need B####
	}
	for _, c := range cases {
		_, err := Spell(MustParse(c.start), c.steps, c.semitones)
		if err == nil {
			t.Errorf("Spell(%s, %d, %d) succeeded, want error", c.start, c.steps, c.semitones)
			continue
		}
		if errors.Cause(err) != ErrUnrepresentableAccidental {
			t.Errorf("Spell(%s, %d, %d): cause = %v, want ErrUnrepresentableAccidental", c.start, c.steps, c.semitones, err)
		}
	}
}

func TestSpellNeverRespells(t *testing.T) {
	// The letter is fixed by the generic distance for every start and step.
	for _, start := range AllLetters() {
		for steps := -7; steps <= 14; steps++ {
			// A semitone count close to the diatonic norm keeps the
			// accidental in range for every natural start.
			semitones := steps * 12 / 7
			if steps > 0 {
				semitones++
			}
			n, err := Spell(New(start, Accidental_Natural), steps, semitones)
			if err != nil {
				t.Errorf("Spell(%s, %d, %d): %v", start, steps, semitones, err)
				continue
			}
			if want := start.Step(steps); n.Letter != want {
				t.Errorf("Spell(%s, %d, ...) landed on letter %s, want %s", start, steps, n.Letter, want)
			}
		}
	}
}
