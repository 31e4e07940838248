package scale

import (
	"strings"

	"github.com/mersenne-sister/chordy/theory/interval"
	"github.com/pkg/errors"
)

// Definition is a named heptatonic scale shape: seven degree intervals
// from the tonic, the first always a perfect unison, each successive one
// a step further along the letter cycle. Modes carry a pointer to their
// parent shape by name.
type Definition struct {
	Name         string
	Intervals    [7]interval.Interval
	ModeOf       string
	DegreeOffset int
}

// Steps returns the seven semitone steps between successive degrees, the
// last one closing the octave. They always sum to 12.
func (d Definition) Steps() [7]int {
	var steps [7]int
	for i := 0; i < 6; i++ {
		steps[i] = d.Intervals[i+1].Semitones() - d.Intervals[i].Semitones()
	}
	steps[6] = 12 - d.Intervals[6].Semitones()
	return steps
}

// Mask returns the pitch-class bitmask of this shape.
func (d Definition) Mask() Bitmask {
	return BitmaskFromIntervals(d.Intervals[:])
}

func (d Definition) String() string {
	return d.Name
}

func def(name string, modeOf string, degreeOffset int, shorthand ...string) Definition {
	d := Definition{Name: name, ModeOf: modeOf, DegreeOffset: degreeOffset}
	for i, s := range shorthand {
		d.Intervals[i] = interval.MustParse(s)
	}
	return d
}

// The registry of built-in heptatonic shapes. The hexatonic whole-tone
// scale is deliberately absent: with only six degrees it cannot use each
// letter exactly once, which every Scale here guarantees.
var (
	Ionian         = def("Ionian", "", 0, "P1", "M2", "M3", "P4", "P5", "M6", "M7")
	Dorian         = def("Dorian", "Ionian", 1, "P1", "M2", "m3", "P4", "P5", "M6", "m7")
	Phrygian       = def("Phrygian", "Ionian", 2, "P1", "m2", "m3", "P4", "P5", "m6", "m7")
	Lydian         = def("Lydian", "Ionian", 3, "P1", "M2", "M3", "A4", "P5", "M6", "M7")
	Mixolydian     = def("Mixolydian", "Ionian", 4, "P1", "M2", "M3", "P4", "P5", "M6", "m7")
	Aeolian        = def("Aeolian", "Ionian", 5, "P1", "M2", "m3", "P4", "P5", "m6", "m7")
	Locrian        = def("Locrian", "Ionian", 6, "P1", "m2", "m3", "P4", "d5", "m6", "m7")
	HarmonicMinor  = def("Harmonic Minor", "", 0, "P1", "M2", "m3", "P4", "P5", "m6", "M7")
	MelodicMinor   = def("Melodic Minor", "", 0, "P1", "M2", "m3", "P4", "P5", "M6", "M7")
	HungarianMinor = def("Hungarian Minor", "", 0, "P1", "M2", "m3", "A4", "P5", "m6", "M7")
	Altered        = def("Altered", "", 0, "P1", "m2", "m3", "d4", "d5", "m6", "m7")
)

// Registry lists every built-in shape in a stable order.
var Registry = []Definition{
	Ionian,
	Dorian,
	Phrygian,
	Lydian,
	Mixolydian,
	Aeolian,
	Locrian,
	HarmonicMinor,
	MelodicMinor,
	HungarianMinor,
	Altered,
}

// LookupDefinition finds a shape by name, case-insensitively, accepting
// the common aliases "major" and "minor".
func LookupDefinition(name string) (Definition, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "major":
		return Ionian, nil
	case "minor", "natural minor":
		return Aeolian, nil
	}
	for _, d := range Registry {
		if strings.ToLower(d.Name) == key {
			return d, nil
		}
	}
	return Definition{}, errors.Errorf("unknown scale %q", name)
}
