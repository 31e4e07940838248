package chord

import (
	"fmt"

	"github.com/mersenne-sister/chordy/theory/scale"
)

// HarmonicFunction is the role a chord plays within a key. Detection
// follows Ian Quinn's scale-degree method: each function has trigger,
// associate and conditional dissonance degrees, and the best-scoring
// function wins.
type HarmonicFunction int

const (
	HarmonicFunction_Tonic HarmonicFunction = iota
	HarmonicFunction_Subdominant
	HarmonicFunction_Dominant
)

func (hf HarmonicFunction) String() string {
	switch hf {
	case HarmonicFunction_Tonic:
		return "tonic"
	case HarmonicFunction_Subdominant:
		return "subdominant"
	case HarmonicFunction_Dominant:
		return "dominant"
	}
	return fmt.Sprintf("undefined(%d)", int(hf))
}

func (hf HarmonicFunction) triggers() []int {
	switch hf {
	case HarmonicFunction_Tonic:
		return []int{1, 3}
	case HarmonicFunction_Subdominant:
		return []int{4, 6}
	default:
		return []int{5, 7}
	}
}

func (hf HarmonicFunction) associates() []int {
	switch hf {
	case HarmonicFunction_Tonic:
		return []int{5, 6}
	case HarmonicFunction_Subdominant:
		return []int{1, 2}
	default:
		return []int{2}
	}
}

// dissonances lists degree pairs that score only when the companion
// degree (0 = unconditional) is also present.
func (hf HarmonicFunction) dissonances() [][2]int {
	switch hf {
	case HarmonicFunction_Tonic:
		return [][2]int{{5, 6}, {7, 0}}
	case HarmonicFunction_Subdominant:
		return [][2]int{{1, 2}, {3, 0}}
	default:
		return [][2]int{{4, 0}, {6, 0}}
	}
}

// DetectHarmonicFunction scores the three functions against the chord's scale
// degrees: 8 per trigger, 4 per associate, 1 per admitted dissonance.
func DetectHarmonicFunction(degrees []int) (HarmonicFunction, bool) {
	all := []HarmonicFunction{HarmonicFunction_Tonic, HarmonicFunction_Subdominant, HarmonicFunction_Dominant}
	best := HarmonicFunction_Tonic
	bestScore := 0
	for _, hf := range all {
		score := 0
		for _, degree := range degrees {
			if contains(hf.triggers(), degree) {
				score += 8
			} else if contains(hf.associates(), degree) {
				score += 4
			} else {
				for _, d := range hf.dissonances() {
					if d[0] == degree && (d[1] == 0 || contains(degrees, d[1])) {
						score++
						break
					}
				}
			}
		}
		if bestScore < score {
			best = hf
			bestScore = score
		}
	}
	if bestScore == 0 {
		return 0, false
	}
	return best, true
}

// HarmonicFunctionOf locates the chord's members in the scale and
// classifies the resulting degree set.
func HarmonicFunctionOf(s scale.Scale, c Chord) (HarmonicFunction, bool) {
	notes, err := c.Notes()
	if err != nil {
		return 0, false
	}
	var degrees []int
	for _, n := range notes {
		if d, ok := s.DegreeOf(n); ok {
			degrees = append(degrees, d)
		}
	}
	return DetectHarmonicFunction(degrees)
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
