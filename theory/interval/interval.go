// Package interval models diatonic intervals as a pair of generic
// (letter-count) size and specific (semitone) distance. Quality is always
// derived from the two, never stored, so an Interval that exists is
// consistent by construction.
package interval

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidInterval is reported when a generic-size/semitone pairing
// falls outside the doubly-diminished..doubly-augmented window.
var ErrInvalidInterval = errors.New("generic size and semitone count do not form a representable interval")

// Interval is an ascending diatonic distance. The zero value is a perfect
// unison.
type Interval struct {
	// size is the generic interval number: 1 unison, 2 second, ... 8
	// octave, 9 ninth and so on. Always >= 1.
	size int
	// semitones is the specific distance. It may be negative only for the
	// diminished unison.
	semitones int
}

// diatonicBaseline holds the semitone count of the perfect or major
// interval for each simple generic number, indexed by (size-1)%7.
var diatonicBaseline = [7]int{0, 2, 4, 5, 7, 9, 11}

// baseline returns the semitone count of the perfect/major interval of
// the given generic size, compounds included.
func baseline(size int) int {
	return diatonicBaseline[(size-1)%7] + 12*((size-1)/7)
}

// isPerfectClass reports whether the generic size belongs to the
// unison/fourth/fifth family, which has no major/minor qualities.
func isPerfectClass(size int) bool {
	switch (size-1)%7 + 1 {
	case 1, 4, 5:
		return true
	}
	return false
}

// New validates and builds an interval from a generic size (1 = unison)
// and a semitone count. The semitones must lie within the representable
// quality window for that size: doubly diminished through doubly
// augmented. Anything further is ErrInvalidInterval.
func New(size, semitones int) (Interval, error) {
	if size < 1 {
		return Interval{}, errors.Wrapf(ErrInvalidInterval, "generic size %d", size)
	}
	diff := semitones - baseline(size)
	min := -3 // doubly diminished sits below minor for major/minor-class sizes
	if isPerfectClass(size) {
		min = -2
	}
	if diff < min || 2 < diff {
		return Interval{}, errors.Wrapf(ErrInvalidInterval, "size %d with %d semitones", size, semitones)
	}
	return Interval{size: size, semitones: semitones}, nil
}

// MustNew is New for literal sizes known to be valid; it panics otherwise.
func MustNew(size, semitones int) Interval {
	iv, err := New(size, semitones)
	if err != nil {
		panic(err)
	}
	return iv
}

// GenericSize returns the interval number: 1 unison, 3 third, 8 octave.
func (iv Interval) GenericSize() int {
	if iv.size == 0 {
		return 1 // zero value
	}
	return iv.size
}

// GenericSteps returns the letter-cycle distance, GenericSize-1.
func (iv Interval) GenericSteps() int {
	return iv.GenericSize() - 1
}

// Semitones returns the specific distance.
func (iv Interval) Semitones() int {
	return iv.semitones
}

// Quality derives the interval quality from the deviation between the
// semitone count and the diatonic baseline for the generic size.
func (iv Interval) Quality() Quality {
	diff := iv.semitones - baseline(iv.GenericSize())
	if isPerfectClass(iv.GenericSize()) {
		switch diff {
		case -2:
			return Quality_DoublyDiminished
		case -1:
			return Quality_Diminished
		case 0:
			return Quality_Perfect
		case 1:
			return Quality_Augmented
		case 2:
			return Quality_DoublyAugmented
		}
	} else {
		switch diff {
		case -3:
			return Quality_DoublyDiminished
		case -2:
			return Quality_Diminished
		case -1:
			return Quality_Minor
		case 0:
			return Quality_Major
		case 1:
			return Quality_Augmented
		case 2:
			return Quality_DoublyAugmented
		}
	}
	return Quality_Unknown
}

// IsCompound reports whether the interval spans more than an octave.
func (iv Interval) IsCompound() bool {
	return 8 < iv.GenericSize() || (iv.GenericSize() == 8 && 12 < iv.semitones)
}

// Simple reduces a compound interval to its within-octave equivalent.
// Octaves stay octaves.
func (iv Interval) Simple() Interval {
	size, semitones := iv.GenericSize(), iv.semitones
	for 8 < size || (size == 8 && 12 < semitones) {
		size -= 7
		semitones -= 12
	}
	return Interval{size: size, semitones: semitones}
}

// Add stacks two intervals. The sum may be invalid (e.g. two doubly
// augmented fourths), which is reported rather than clamped.
func (iv Interval) Add(other Interval) (Interval, error) {
	return New(iv.GenericSteps()+other.GenericSteps()+1, iv.semitones+other.semitones)
}

// Sub removes other from iv. Fails if other is the larger interval or the
// difference is not representable.
func (iv Interval) Sub(other Interval) (Interval, error) {
	return New(iv.GenericSteps()-other.GenericSteps()+1, iv.semitones-other.semitones)
}

// Invert returns the octave complement of a simple interval: P5 becomes
// P4, M3 becomes m6. Compound intervals are reduced first.
func (iv Interval) Invert() Interval {
	s := iv.Simple()
	return Interval{size: 9 - s.GenericSize(), semitones: 12 - s.semitones}
}

// Less orders intervals by sounding distance.
func (iv Interval) Less(other Interval) bool {
	return iv.semitones < other.semitones
}

// IsThird reports whether the interval is some kind of third.
func (iv Interval) IsThird() bool {
	return (iv.GenericSize()-1)%7+1 == 3
}

// IsFifth reports whether the interval is some kind of fifth.
func (iv Interval) IsFifth() bool {
	return (iv.GenericSize()-1)%7+1 == 5
}

// IsSeventh reports whether the interval is some kind of seventh.
func (iv Interval) IsSeventh() bool {
	return (iv.GenericSize()-1)%7+1 == 7
}

// String renders the conventional shorthand: "P5", "m3", "dd7", "AA4".
func (iv Interval) String() string {
	q := iv.Quality()
	if q == Quality_Unknown {
		return fmt.Sprintf("interval(size:%d,semitones:%d)", iv.GenericSize(), iv.semitones)
	}
	return fmt.Sprintf("%s%d", q.Abbrev(), iv.GenericSize())
}

func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(iv.String())
}
