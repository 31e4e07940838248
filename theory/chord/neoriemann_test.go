package chord

import (
	"testing"

	"github.com/mersenne-sister/chordy/theory/note"
)

func TestTransforms(t *testing.T) {
	cases := []struct {
		name      string
		transform func(Chord) (Chord, error)
		in        Chord
		root      string
		quality   Quality
	}{
		{"P", TransformP, Major(note.MustParse("C")), "C", Quality_Minor},
		{"P", TransformP, Minor(note.MustParse("F#")), "F#", Quality_Major},
		{"R", TransformR, Major(note.MustParse("C")), "A", Quality_Minor},
		{"R", TransformR, Minor(note.MustParse("A")), "C", Quality_Major},
		{"L", TransformL, Major(note.MustParse("C")), "E", Quality_Minor},
		{"L", TransformL, Minor(note.MustParse("E")), "C", Quality_Major},
		{"R", TransformR, Major(note.MustParse("Eb")), "C", Quality_Minor},
		{"L", TransformL, Major(note.MustParse("Ab")), "C", Quality_Minor},
	}
	for _, c := range cases {
		got, err := c.transform(c.in)
		if err != nil {
			t.Errorf("%s(%s): %v", c.name, c.in, err)
			continue
		}
		if got.Root != note.MustParse(c.root) {
			t.Errorf("%s(%s) root = %s, want %s", c.name, c.in, got.Root, c.root)
		}
		q, ok := got.Quality()
		if !ok || q != c.quality {
			t.Errorf("%s(%s) quality = %s,%v, want %s", c.name, c.in, q, ok, c.quality)
		}
	}
}

func TestTransformsAreInvolutions(t *testing.T) {
	transforms := map[string]func(Chord) (Chord, error){
		"P": TransformP,
		"R": TransformR,
		"L": TransformL,
	}
	roots := []string{"C", "G", "D", "A", "E", "F", "Bb", "Eb", "F#"}
	for name, transform := range transforms {
		for _, r := range roots {
			for _, start := range []Chord{Major(note.MustParse(r)), Minor(note.MustParse(r))} {
				once, err := transform(start)
				if err != nil {
					t.Errorf("%s(%s): %v", name, start, err)
					continue
				}
				twice, err := transform(once)
				if err != nil {
					t.Errorf("%s(%s(%s)): %v", name, name, start, err)
					continue
				}
				if twice.Root != start.Root {
					t.Errorf("%s applied twice to %s landed on %s", name, start, twice.Root)
				}
				q1, _ := start.Quality()
				q2, _ := twice.Quality()
				if q1 != q2 {
					t.Errorf("%s applied twice to %s changed quality to %s", name, start, q2)
				}
			}
		}
	}
}

func TestTransformRejectsNonTriads(t *testing.T) {
	dim := Diminished(note.MustParse("B"))
	for name, transform := range map[string]func(Chord) (Chord, error){
		"P": TransformP, "R": TransformR, "L": TransformL,
	} {
		if _, err := transform(dim); err == nil {
			t.Errorf("%s accepted a diminished triad", name)
		}
	}
}
