package note

import (
	"github.com/pkg/errors"
)

// ErrUnrepresentableAccidental is reported when a spelling request lands
// outside the double-flat..double-sharp range. The engine never substitutes
// an enharmonic alternative in that case.
var ErrUnrepresentableAccidental = errors.New("spelling requires an accidental beyond double sharp or double flat")

// Spell resolves a target that lies genericSteps letter positions and
// semitones semitones away from start into the unique correct spelling.
//
// The letter is fixed first: a generic step of k always lands k positions
// along the C..B cycle, never on an enharmonic substitute (a major third
// above C spells E, not Fb). The accidental is then whatever offset makes
// that letter sound at the requested pitch class. Because the letter is
// determined by the generic distance alone there is never a tie between
// enharmonic spellings.
func Spell(start NoteName, genericSteps, semitones int) (NoteName, error) {
	letter := start.Letter.Step(genericSteps)
	target := ((start.PitchClass()+semitones)%12 + 12) % 12

	// Signed mod-12 difference nearest zero; accidentals only span -2..+2
	// so any representative farther than half the octave is hopeless anyway.
	needed := ((target-letter.PitchClass())%12 + 12) % 12
	if 6 < needed {
		needed -= 12
	}
	if needed < int(Accidental_DoubleFlat) || int(Accidental_DoubleSharp) < needed {
		return NoteName{}, errors.Wrapf(ErrUnrepresentableAccidental,
			"%s %+d steps %+d semitones wants %s with offset %+d", start, genericSteps, semitones, letter, needed)
	}
	return New(letter, Accidental(needed)), nil
}
