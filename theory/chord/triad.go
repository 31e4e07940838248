package chord

import (
	"github.com/mersenne-sister/chordy/theory/interval"
	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/mersenne-sister/chordy/theory/scale"
	"github.com/pkg/errors"
)

// TriadAtDegree stacks the scale notes at degree, degree+2 and degree+4
// (wrapping through the seven degrees) into a triad rooted on the degree
// note. Quality follows from the measured gaps, so every rotation of
// every mode classifies itself.
func TriadAtDegree(s scale.Scale, degree int) (Chord, error) {
	return stackAtDegree(s, degree, 2)
}

// SeventhAtDegree extends the degree triad with the note four scale
// positions above the fifth, giving the diatonic seventh chord.
func SeventhAtDegree(s scale.Scale, degree int) (Chord, error) {
	return stackAtDegree(s, degree, 3)
}

func stackAtDegree(s scale.Scale, degree, thirds int) (Chord, error) {
	if degree < 1 || 7 < degree {
		return Chord{}, errors.Errorf("scale degree %d out of range 1..7", degree)
	}
	names, err := s.Notes()
	if err != nil {
		return Chord{}, errors.Wrapf(err, "degree %d chord of %s", degree, s)
	}
	root := names[degree-1]
	intervals := make([]interval.Interval, 0, thirds+1)
	intervals = append(intervals, interval.PerfectUnison)
	for i := 1; i <= thirds; i++ {
		member := names[(degree-1+2*i)%7]
		iv, err := root.IntervalTo(member)
		if err != nil {
			return Chord{}, errors.Wrapf(err, "degree %d chord of %s", degree, s)
		}
		intervals = append(intervals, iv)
	}
	return Chord{Root: root, Intervals: intervals}, nil
}

// Triads returns the seven degree triads of the scale in order.
func Triads(s scale.Scale) ([]Chord, error) {
	triads := make([]Chord, 7)
	for degree := 1; degree <= 7; degree++ {
		c, err := TriadAtDegree(s, degree)
		if err != nil {
			return nil, err
		}
		triads[degree-1] = c
	}
	return triads, nil
}

// FromNotes infers a chord from unordered notes: the note whose interval
// set against the others scores the most fifths and thirds becomes the
// root, ties broken toward the lower pitch class.
func FromNotes(notes ...note.NoteName) (Chord, error) {
	if len(notes) == 0 {
		return Chord{}, errors.New("no notes to build a chord from")
	}
	best := notes[0]
	bestScore := -1
	for _, candidate := range notes {
		score := 0
		for _, other := range notes {
			if other == candidate {
				continue
			}
			iv, err := candidate.IntervalTo(other)
			if err != nil {
				continue
			}
			if iv.IsFifth() {
				score += 5
			} else if iv.IsThird() {
				score += 3
			}
		}
		if score > bestScore || score == bestScore && candidate.PitchClass() < best.PitchClass() {
			best = candidate
			bestScore = score
		}
	}
	return FromNotesAndRoot(best, notes...)
}

// FromNotesAndRoot measures each note against a known root.
func FromNotesAndRoot(root note.NoteName, notes ...note.NoteName) (Chord, error) {
	intervals := make([]interval.Interval, len(notes))
	for i, n := range notes {
		iv, err := root.IntervalTo(n)
		if err != nil {
			return Chord{}, errors.Wrapf(err, "chord on %s", root)
		}
		intervals[i] = iv
	}
	return Chord{Root: root, Intervals: intervals}, nil
}
