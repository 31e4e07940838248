package interval

import (
	"encoding/json"
	"fmt"
)

// Quality classifies an interval by its deviation from the diatonic
// baseline of its generic size.
type Quality int

const (
	Quality_Unknown Quality = iota
	Quality_DoublyDiminished
	Quality_Diminished
	Quality_Minor
	Quality_Perfect
	Quality_Major
	Quality_Augmented
	Quality_DoublyAugmented
)

func (q Quality) String() string {
	switch q {
	case Quality_DoublyDiminished:
		return "doubly diminished"
	case Quality_Diminished:
		return "diminished"
	case Quality_Minor:
		return "minor"
	case Quality_Perfect:
		return "perfect"
	case Quality_Major:
		return "major"
	case Quality_Augmented:
		return "augmented"
	case Quality_DoublyAugmented:
		return "doubly augmented"
	}
	return fmt.Sprintf("undefined(%d)", int(q))
}

// Abbrev returns the one- or two-letter shorthand used in interval names:
// dd, d, m, P, M, A, AA.
func (q Quality) Abbrev() string {
	switch q {
	case Quality_DoublyDiminished:
		return "dd"
	case Quality_Diminished:
		return "d"
	case Quality_Minor:
		return "m"
	case Quality_Perfect:
		return "P"
	case Quality_Major:
		return "M"
	case Quality_Augmented:
		return "A"
	case Quality_DoublyAugmented:
		return "AA"
	}
	return "?"
}

func (q Quality) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}
