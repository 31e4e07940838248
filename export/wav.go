package export

import (
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/generator"
	"github.com/go-audio/wav"
	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/pkg/errors"
)

const wavBitDepth = 16
const wavSampleRate = 44100

// A4 under the system's octave convention; everything is tuned from it.
var refA4 = note.MustParsePitch("A4").MIDINumber()

// Frequency returns the equal-tempered frequency of the pitch, A4 = 440.
func Frequency(p note.Pitch) float64 {
	return 440 * math.Pow(2, float64(p.MIDINumber()-refA4)/12)
}

// WriteWAV renders the pitches as sequential sine tones. Chord mode is
// not supported here; render the members as an arpeggio instead.
func WriteWAV(w io.WriteSeeker, pitches []note.Pitch, o *Options) error {
	if len(pitches) == 0 {
		return errors.New("nothing to export")
	}
	opts := o.withDefaults()
	secondsPerNote := opts.BeatsPerNote * 0.5 // fixed 120 BPM preview

	bufs := make([]*audio.FloatBuffer, len(pitches))
	for i, p := range pitches {
		bufs[i] = sineTone(Frequency(p), secondsPerNote)
	}

	enc := wav.NewEncoder(w, wavSampleRate, wavBitDepth, 1, 1)
	for _, b := range bufs {
		if err := enc.Write(b.AsIntBuffer()); err != nil {
			return errors.Wrap(err, "writing WAV data")
		}
	}
	return errors.Wrap(enc.Close(), "finishing WAV")
}

// sineTone renders one note's worth of samples at PCM scale.
func sineTone(freq, seconds float64) *audio.FloatBuffer {
	osc := generator.NewOsc(generator.WaveSine, freq, wavSampleRate)
	osc.Amplitude = float64(audio.IntMaxSignedValue(wavBitDepth))
	buf := &audio.FloatBuffer{
		Data:   make([]float64, int(seconds*wavSampleRate)),
		Format: audio.FormatMono44100,
	}
	osc.Fill(buf)
	return buf
}
