// Package chord derives chords from interval stacks and scale degrees.
// Member notes are always spelled through the spelling engine, so a triad
// on any degree of any mode comes out with the letters theory demands.
package chord

import (
	"fmt"
	"strings"

	"github.com/mersenne-sister/chordy/theory/interval"
	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/pkg/errors"
)

// Chord is a root note plus the ascending intervals of its members, the
// root itself included as a perfect unison.
type Chord struct {
	Root      note.NoteName
	Intervals []interval.Interval
}

// New builds a chord from a root and its interval stack.
func New(root note.NoteName, intervals ...interval.Interval) Chord {
	return Chord{Root: root, Intervals: intervals}
}

// Major returns the major triad on root.
func Major(root note.NoteName) Chord {
	return New(root, interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth)
}

// Minor returns the minor triad on root.
func Minor(root note.NoteName) Chord {
	return New(root, interval.PerfectUnison, interval.MinorThird, interval.PerfectFifth)
}

// Diminished returns the diminished triad on root.
func Diminished(root note.NoteName) Chord {
	return New(root, interval.PerfectUnison, interval.MinorThird, interval.DiminishedFifth)
}

// Augmented returns the augmented triad on root.
func Augmented(root note.NoteName) Chord {
	return New(root, interval.PerfectUnison, interval.MajorThird, interval.AugmentedFifth)
}

// Dominant7th returns the dominant seventh chord on root.
func Dominant7th(root note.NoteName) Chord {
	return New(root, interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh)
}

// Major7th returns the major seventh chord on root.
func Major7th(root note.NoteName) Chord {
	return New(root, interval.PerfectUnison, interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh)
}

// Minor7th returns the minor seventh chord on root.
func Minor7th(root note.NoteName) Chord {
	return New(root, interval.PerfectUnison, interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh)
}

// MinorMajor7th returns the minor-major seventh chord on root.
func MinorMajor7th(root note.NoteName) Chord {
	return New(root, interval.PerfectUnison, interval.MinorThird, interval.PerfectFifth, interval.MajorSeventh)
}

// HalfDiminished7th returns the minor seventh flat five chord on root.
func HalfDiminished7th(root note.NoteName) Chord {
	return New(root, interval.PerfectUnison, interval.MinorThird, interval.DiminishedFifth, interval.MinorSeventh)
}

// Diminished7th returns the fully diminished seventh chord on root.
func Diminished7th(root note.NoteName) Chord {
	return New(root, interval.PerfectUnison, interval.MinorThird, interval.DiminishedFifth, interval.DiminishedSeventh)
}

// Notes spells the member notes in stack order.
func (c Chord) Notes() ([]note.NoteName, error) {
	notes := make([]note.NoteName, len(c.Intervals))
	for i, iv := range c.Intervals {
		n, err := c.Root.Transpose(iv)
		if err != nil {
			return nil, errors.Wrapf(err, "member %d of %s chord", i+1, c.Root)
		}
		notes[i] = n
	}
	return notes, nil
}

// Pitches binds the members to a register with the root in the given
// octave.
func (c Chord) Pitches(octave int) ([]note.Pitch, error) {
	root := note.NewPitch(c.Root, octave)
	pitches := make([]note.Pitch, len(c.Intervals))
	for i, iv := range c.Intervals {
		p, err := root.Transpose(iv)
		if err != nil {
			return nil, errors.Wrapf(err, "member %d of %s chord", i+1, c.Root)
		}
		pitches[i] = p
	}
	return pitches, nil
}

// third returns the third-class interval of the stack, if any.
func (c Chord) third() (interval.Interval, bool) {
	for _, iv := range c.Intervals {
		if iv.IsThird() {
			return iv.Simple(), true
		}
	}
	return interval.Interval{}, false
}

// fifth returns the fifth-class interval of the stack, if any.
func (c Chord) fifth() (interval.Interval, bool) {
	for _, iv := range c.Intervals {
		if iv.IsFifth() {
			return iv.Simple(), true
		}
	}
	return interval.Interval{}, false
}

// seventh returns the seventh-class interval of the stack, if any.
func (c Chord) seventh() (interval.Interval, bool) {
	for _, iv := range c.Intervals {
		if iv.IsSeventh() {
			return iv.Simple(), true
		}
	}
	return interval.Interval{}, false
}

// Quality measures the triad quality from the semitone gaps root-third
// and third-fifth. Stacks without a third and a fifth have no triad
// quality.
func (c Chord) Quality() (Quality, bool) {
	third, ok := c.third()
	if !ok {
		return Quality_Unknown, false
	}
	fifth, ok := c.fifth()
	if !ok {
		return Quality_Unknown, false
	}
	return QualityFromGaps(third.Semitones(), fifth.Semitones()-third.Semitones())
}

// Inverted returns the chord with its lowest n members moved up an
// octave, re-rooted on the new bass note.
func (c Chord) Inverted(n int) (Chord, error) {
	if len(c.Intervals) == 0 {
		return c, nil
	}
	notes, err := c.Notes()
	if err != nil {
		return Chord{}, err
	}
	n = ((n % len(notes)) + len(notes)) % len(notes)
	bass := notes[n]
	intervals := make([]interval.Interval, len(notes))
	for i := range notes {
		member := notes[(n+i)%len(notes)]
		iv, err := bass.IntervalTo(member)
		if err != nil {
			return Chord{}, errors.Wrapf(err, "inversion %d of %s chord", n, c.Root)
		}
		intervals[i] = iv
	}
	return Chord{Root: bass, Intervals: intervals}, nil
}

// AbbreviatedName renders the usual chord symbol: "C", "Am", "Bdim",
// "G7", "Fmaj7", "Dm7", "Bm7b5".
func (c Chord) AbbreviatedName() string {
	quality, ok := c.Quality()
	seventh, hasSeventh := c.seventh()
	if !ok {
		return c.Root.String()
	}
	var suffix string
	switch quality {
	case Quality_Major:
		if hasSeventh {
			if seventh == interval.MajorSeventh {
				suffix = "maj7"
			} else {
				suffix = "7"
			}
		}
	case Quality_Minor:
		suffix = "m"
		if hasSeventh {
			if seventh == interval.MajorSeventh {
				suffix = "mMaj7"
			} else {
				suffix = "m7"
			}
		}
	case Quality_Diminished:
		suffix = "dim"
		if hasSeventh {
			if seventh == interval.DiminishedSeventh {
				suffix = "dim7"
			} else {
				suffix = "m7b5"
			}
		}
	case Quality_Augmented:
		suffix = "aug"
		if hasSeventh {
			suffix = "aug7"
		}
	}
	return c.Root.String() + suffix
}

func (c Chord) String() string {
	parts := make([]string, len(c.Intervals))
	for i, iv := range c.Intervals {
		parts[i] = iv.String()
	}
	return fmt.Sprintf("%s[%s]", c.Root, strings.Join(parts, " "))
}
