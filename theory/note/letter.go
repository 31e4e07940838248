package note

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Letter is one of the seven natural note names. The zero value is C,
// matching the convention that octaves begin at C.
type Letter int

const (
	Letter_C Letter = iota
	Letter_D
	Letter_E
	Letter_F
	Letter_G
	Letter_A
	Letter_B
)

// naturalPitchClass maps each letter to the pitch class of its natural,
// indexed by Letter value.
var naturalPitchClass = [7]int{0, 2, 4, 5, 7, 9, 11}

var letterName = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// AllLetters returns the seven letters in C-first order.
func AllLetters() [7]Letter {
	return [7]Letter{Letter_C, Letter_D, Letter_E, Letter_F, Letter_G, Letter_A, Letter_B}
}

// PitchClass returns the pitch class (0..11) of the letter's natural.
func (l Letter) PitchClass() int {
	return naturalPitchClass[l]
}

// Step returns the letter n positions away in the cyclic C..B order.
// Negative n steps downward.
func (l Letter) Step(n int) Letter {
	return Letter(((int(l)+n)%7 + 7) % 7)
}

// Next returns the following letter, wrapping from B to C.
func (l Letter) Next() Letter {
	return l.Step(1)
}

// Prev returns the preceding letter, wrapping from C to B.
func (l Letter) Prev() Letter {
	return l.Step(-1)
}

func (l Letter) String() string {
	if l < 0 || 7 <= l {
		return fmt.Sprintf("undefined(%d)", int(l))
	}
	return letterName[l]
}

func (l Letter) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// ParseLetter converts a single letter character A..G (either case).
func ParseLetter(c byte) (Letter, error) {
	switch c {
	case 'C', 'c':
		return Letter_C, nil
	case 'D', 'd':
		return Letter_D, nil
	case 'E', 'e':
		return Letter_E, nil
	case 'F', 'f':
		return Letter_F, nil
	case 'G', 'g':
		return Letter_G, nil
	case 'A', 'a':
		return Letter_A, nil
	case 'B', 'b':
		return Letter_B, nil
	}
	return 0, errors.Errorf("invalid note letter %q", string(c))
}
