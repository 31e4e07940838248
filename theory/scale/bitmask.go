package scale

import (
	"fmt"

	"github.com/mersenne-sister/chordy/theory/interval"
)

// Bitmask records which of the 12 pitch classes a scale contains,
// relative to its tonic. Bit 0 is the tonic itself.
type Bitmask uint16

// BitmaskFromIntervals folds a degree-interval list into a pitch-class
// mask.
func BitmaskFromIntervals(intervals []interval.Interval) Bitmask {
	var mask Bitmask
	for _, iv := range intervals {
		mask |= 1 << uint(((iv.Semitones()%12)+12)%12)
	}
	return mask
}

// Contains reports whether the pitch class (relative to the tonic) is in
// the scale.
func (m Bitmask) Contains(pitchClass int) bool {
	return m&(1<<uint(((pitchClass%12)+12)%12)) != 0
}

func (m Bitmask) String() string {
	return fmt.Sprintf("%012b", uint16(m))
}
