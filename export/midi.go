// Package export turns spelled pitches into numeric formats: standard
// MIDI files and sine-rendered WAV previews. No theory lives here; the
// spelling has already happened by the time a pitch arrives.
package export

import (
	"io"

	"github.com/go-audio/midi"
	"github.com/mersenne-sister/chordy/theory/log"
	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/pkg/errors"
)

// Options controls rendering. The zero value is usable.
type Options struct {
	TicksPerQuarter int     // SMF resolution, default 96
	Velocity        int     // note-on velocity, default 90
	BeatsPerNote    float64 // duration of each note in beats, default 1
	Chord           bool    // sound everything at once instead of in sequence
}

func (o *Options) withDefaults() Options {
	out := Options{TicksPerQuarter: 96, Velocity: 90, BeatsPerNote: 1}
	if o == nil {
		return out
	}
	if 0 < o.TicksPerQuarter {
		out.TicksPerQuarter = o.TicksPerQuarter
	}
	if 0 < o.Velocity {
		out.Velocity = o.Velocity
	}
	if 0 < o.BeatsPerNote {
		out.BeatsPerNote = o.BeatsPerNote
	}
	out.Chord = o.Chord
	return out
}

// WriteSMF renders the pitches as a single-track standard MIDI file.
// Pitches outside the 0..127 MIDI range are an error, not a clamp.
func WriteSMF(w io.WriteSeeker, pitches []note.Pitch, o *Options) error {
	if len(pitches) == 0 {
		return errors.New("nothing to export")
	}
	opts := o.withDefaults()
	keys := make([]int, len(pitches))
	for i, p := range pitches {
		k := p.MIDINumber()
		if k < 0 || 127 < k {
			return errors.Errorf("%s (MIDI %d) is outside the exportable range", p, k)
		}
		keys[i] = k
		log.Debugf("SMF note %s -> %d", p, k)
	}

	enc := midi.NewEncoder(w, midi.SingleTrack, uint16(opts.TicksPerQuarter))
	track := enc.NewTrack()
	if opts.Chord {
		for _, k := range keys {
			track.Add(0, midi.NoteOn(0, k, opts.Velocity))
		}
		for i, k := range keys {
			delta := 0.0
			if i == 0 {
				delta = opts.BeatsPerNote
			}
			track.Add(delta, midi.NoteOff(0, k))
		}
	} else {
		for _, k := range keys {
			track.Add(0, midi.NoteOn(0, k, opts.Velocity))
			track.Add(opts.BeatsPerNote, midi.NoteOff(0, k))
		}
	}
	return errors.Wrap(enc.Write(), "writing SMF")
}
