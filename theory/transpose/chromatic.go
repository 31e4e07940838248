// Package transpose implements the semitone-only transposition policy:
// when no generic interval is given, the result is chosen by scoring every
// spelling of the target pitch and taking the cheapest one. Ascending
// motion prefers sharpward spellings and descending motion flatward, with
// naturals always free, so the policy is deterministic and testable
// rather than an accident of letter arithmetic.
package transpose

import (
	"github.com/mersenne-sister/chordy/theory/note"
)

// BySemitones moves the pitch by the given number of semitones, choosing
// the most conventional spelling for the direction of motion.
func BySemitones(p note.Pitch, semitones int) note.Pitch {
	if semitones == 0 {
		return p
	}

	target := p.MIDINumber() + semitones
	best := p
	bestScore := int(^uint(0) >> 1)

	for _, letter := range note.AllLetters() {
		for _, accidental := range note.AllAccidentals() {
			guess := candidate(letter, accidental, target)
			if guess.MIDINumber() != target {
				continue
			}
			// Against-the-grain accidentals are not considered at all
			// unless the starting note already leaned that way.
			if semitones > 0 && accidental.IsFlat() && !p.Name.Accidental.IsFlat() {
				continue
			}
			if semitones < 0 && accidental.IsSharp() && !p.Name.Accidental.IsSharp() {
				continue
			}

			score := intervalPenalty(p, guess)
			if accidental != p.Name.Accidental {
				score += accidental.Penalty()
			}
			letterDistance := ((int(guess.Name.Letter)-int(p.Name.Letter))%7 + 7) % 7
			if letterDistance == 6 || letterDistance == 0 {
				score += 2
			}
			if suspiciousSpelling(guess.Name) {
				score += 3
			}
			if letter != expectedLetter(p.Name.Letter, semitones) {
				score += 2
			}
			score += directionBias(accidental, semitones)

			if score < bestScore {
				best = guess
				bestScore = score
			}
		}
	}
	return best
}

// candidate places the spelling in the octave nearest the target MIDI
// number.
func candidate(letter note.Letter, accidental note.Accidental, target int) note.Pitch {
	octave := floorDiv(target, 12) - 2
	guess := note.NewPitch(note.New(letter, accidental), octave)
	diff := guess.MIDINumber() - target
	if diff > 6 {
		guess.Octave--
	} else if diff < -6 {
		guess.Octave++
	}
	return guess
}

// intervalPenalty charges candidates whose letter/semitone motion does not
// form a sensible melodic interval from the source.
func intervalPenalty(from, to note.Pitch) int {
	letterDiff := ((int(to.Name.Letter)-int(from.Name.Letter))%7 + 7) % 7
	semitoneDiff := to.MIDINumber() - from.MIDINumber()

	switch {
	case letterDiff == 0 && semitoneDiff == 0:
		return 0
	case letterDiff == 1 && (semitoneDiff == 1 || semitoneDiff == 2),
		letterDiff == 6 && (semitoneDiff == -1 || semitoneDiff == -2),
		letterDiff == 2 && (semitoneDiff == 3 || semitoneDiff == 4),
		letterDiff == 5 && (semitoneDiff == -3 || semitoneDiff == -4),
		letterDiff == 3 && semitoneDiff == 5,
		letterDiff == 4 && semitoneDiff == -5,
		letterDiff == 4 && semitoneDiff == 7,
		letterDiff == 3 && semitoneDiff == -7,
		letterDiff == 5 && (semitoneDiff == 8 || semitoneDiff == 9),
		letterDiff == 2 && (semitoneDiff == -8 || semitoneDiff == -9),
		letterDiff == 6 && (semitoneDiff == 10 || semitoneDiff == 11),
		letterDiff == 1 && (semitoneDiff == -10 || semitoneDiff == -11),
		letterDiff == 0 && (semitoneDiff == 12 || semitoneDiff == -12):
		return 0
	case semitoneDiff == 6 || semitoneDiff == -6:
		return 1
	case -2 <= semitoneDiff && semitoneDiff <= 2:
		return 2
	default:
		return 4
	}
}

// suspiciousSpelling flags accidentals that respell a natural (E#, Cb,
// B##, ...): legal, but penalized when a plainer spelling exists.
func suspiciousSpelling(n note.NoteName) bool {
	if n.Accidental == note.Accidental_Natural {
		return false
	}
	pc := n.PitchClass()
	for _, l := range note.AllLetters() {
		if l.PitchClass() == pc {
			return true
		}
	}
	return false
}

// expectedLetter is the conventional letter distance for each semitone
// count: a move of 3 or 4 semitones reads as a third, 5 as a fourth, and
// so on.
func expectedLetter(from note.Letter, semitones int) note.Letter {
	abs := semitones
	if abs < 0 {
		abs = -abs
	}
	var steps int
	switch {
	case abs == 0:
		steps = 0
	case abs <= 2:
		steps = 1
	case abs <= 4:
		steps = 2
	case abs == 5:
		steps = 3
	case abs <= 7:
		steps = 4
	case abs <= 9:
		steps = 5
	case abs <= 11:
		steps = 6
	default:
		steps = 7
	}
	if semitones < 0 {
		steps = -steps
	}
	return from.Step(steps)
}

func directionBias(a note.Accidental, semitones int) int {
	switch {
	case a == note.Accidental_Natural:
		return 0
	case semitones < 0 && a.IsFlat():
		return 0
	case semitones > 0 && a.IsSharp():
		return 0
	default:
		return 2
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
