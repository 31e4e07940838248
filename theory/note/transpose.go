package note

import (
	"github.com/mersenne-sister/chordy/theory/interval"
	"github.com/pkg/errors"
)

// Transpose moves the note name up by the interval within the octave
// cycle. Register is not tracked here; use Pitch.Transpose for that.
func (n NoteName) Transpose(iv interval.Interval) (NoteName, error) {
	result, err := Spell(n, iv.GenericSteps(), iv.Semitones())
	if err != nil {
		return NoteName{}, errors.Wrapf(err, "transposing %s by %s", n, iv)
	}
	return result, nil
}

// IntervalTo measures the ascending interval from n to other, taking the
// shortest upward letter distance. The pairing can be unrepresentable for
// pathological spellings (e.g. C## up to Dbb), which is reported.
func (n NoteName) IntervalTo(other NoteName) (interval.Interval, error) {
	steps := ((int(other.Letter)-int(n.Letter))%7 + 7) % 7
	semitones := ((other.PitchClass()-n.PitchClass())%12 + 12) % 12
	iv, err := interval.New(steps+1, semitones)
	if err != nil {
		// The mod-12 distance can understate seventh-class intervals that
		// cross the octave in pitch (C up to B# is an augmented seventh of
		// 12 semitones, not 0).
		if iv2, err2 := interval.New(steps+1, semitones+12); err2 == nil {
			return iv2, nil
		}
		return interval.Interval{}, errors.Wrapf(err, "interval from %s to %s", n, other)
	}
	return iv, nil
}
