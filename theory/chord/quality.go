package chord

import (
	"encoding/json"
	"fmt"
)

// Quality is the triad quality, determined by the stacked third sizes.
type Quality int

const (
	Quality_Unknown Quality = iota
	Quality_Major
	Quality_Minor
	Quality_Diminished
	Quality_Augmented
)

// QualityFromGaps classifies a triad by its measured semitone gaps,
// root to third and third to fifth. Measuring rather than table-lookup is
// what lets degree triads of any mode classify correctly.
func QualityFromGaps(rootToThird, thirdToFifth int) (Quality, bool) {
	switch [2]int{rootToThird, thirdToFifth} {
	case [2]int{4, 3}:
		return Quality_Major, true
	case [2]int{3, 4}:
		return Quality_Minor, true
	case [2]int{3, 3}:
		return Quality_Diminished, true
	case [2]int{4, 4}:
		return Quality_Augmented, true
	}
	return Quality_Unknown, false
}

func (q Quality) String() string {
	switch q {
	case Quality_Major:
		return "major"
	case Quality_Minor:
		return "minor"
	case Quality_Diminished:
		return "diminished"
	case Quality_Augmented:
		return "augmented"
	}
	return fmt.Sprintf("undefined(%d)", int(q))
}

func (q Quality) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}
