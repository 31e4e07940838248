// Package scale builds correctly spelled heptatonic scales: seven degree
// notes, one per letter, derived from the spelling engine one letter step
// at a time.
package scale

import (
	"fmt"

	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/pkg/errors"
)

// Scale is a shape rooted at a tonic. It is a value; Notes derives the
// degree spellings on demand.
type Scale struct {
	Root note.NoteName
	Def  Definition
}

// New roots a shape at a tonic.
func New(root note.NoteName, def Definition) Scale {
	return Scale{Root: root, Def: def}
}

// FromSteps builds an ad-hoc scale from seven semitone steps. The steps
// must close the octave (sum to 12).
func FromSteps(root note.NoteName, steps [7]int) (Scale, error) {
	sum := 0
	for _, s := range steps {
		sum += s
	}
	if sum != 12 {
		return Scale{}, errors.Errorf("scale steps %v sum to %d, want 12", steps, sum)
	}
	d := Definition{Name: fmt.Sprintf("custom%v", steps)}
	semitones := 0
	for i := 0; i < 7; i++ {
		// Degree i+1 sits i letter steps and the accumulated semitones up.
		target, err := note.Spell(root, i, semitones)
		if err != nil {
			return Scale{}, errors.Wrapf(err, "degree %d of custom scale on %s", i+1, root)
		}
		iv, err := root.IntervalTo(target)
		if err != nil {
			return Scale{}, errors.Wrapf(err, "degree %d of custom scale on %s", i+1, root)
		}
		d.Intervals[i] = iv
		semitones += steps[i]
	}
	return New(root, d), nil
}

// Notes returns the seven degree spellings, each letter used exactly
// once, starting at the root's letter. Shapes that would need a triple
// accidental on this root are reported as unspellable, never respelled.
func (s Scale) Notes() ([]note.NoteName, error) {
	steps := s.Def.Steps()
	notes := make([]note.NoteName, 7)
	notes[0] = s.Root
	current := s.Root
	for i := 1; i < 7; i++ {
		next, err := note.Spell(current, 1, steps[i-1])
		if err != nil {
			return nil, errors.Wrapf(err, "%s %s is not spellable", s.Root, s.Def.Name)
		}
		notes[i] = next
		current = next
	}
	return notes, nil
}

// Pitches returns the degrees bound to a register, the root in the given
// octave and the octave advancing as the letter cycle wraps past B.
func (s Scale) Pitches(octave int) ([]note.Pitch, error) {
	names, err := s.Notes()
	if err != nil {
		return nil, err
	}
	pitches := make([]note.Pitch, len(names))
	for i, n := range names {
		pitches[i] = note.NewPitch(n, octave+(int(s.Root.Letter)+i)/7)
	}
	return pitches, nil
}

// DegreeOf returns the 1-based degree of the note in the scale, matching
// exact spellings first, then enharmonic equivalents.
func (s Scale) DegreeOf(n note.NoteName) (int, bool) {
	names, err := s.Notes()
	if err != nil {
		return 0, false
	}
	for i, sn := range names {
		if sn == n {
			return i + 1, true
		}
	}
	for i, sn := range names {
		if sn.IsEnharmonicWith(n) {
			return i + 1, true
		}
	}
	return 0, false
}

// ChromaticDegree locates an out-of-scale note as an alteration of a
// degree: the degree number plus the semitone adjustment (-2..+2).
// In-scale notes report an adjustment of 0.
func (s Scale) ChromaticDegree(n note.NoteName) (degree, alteration int, ok bool) {
	if d, found := s.DegreeOf(n); found {
		return d, 0, true
	}
	names, err := s.Notes()
	if err != nil {
		return 0, 0, false
	}
	for i, sn := range names {
		diff := ((n.PitchClass()-sn.PitchClass())%12 + 12) % 12
		switch diff {
		case 1:
			return i + 1, 1, true
		case 11:
			return i + 1, -1, true
		case 2:
			return i + 1, 2, true
		case 10:
			return i + 1, -2, true
		}
	}
	return 0, 0, false
}

// Contains reports whether the note's pitch class occurs in the scale.
func (s Scale) Contains(n note.NoteName) bool {
	rel := ((n.PitchClass()-s.Root.PitchClass())%12 + 12) % 12
	return s.Def.Mask().Contains(rel)
}

func (s Scale) String() string {
	return fmt.Sprintf("%s %s", s.Root, s.Def.Name)
}
