package export

import (
	"io/ioutil"
	"math"
	"os"
	"testing"

	"github.com/mersenne-sister/chordy/theory/note"
)

func TestFrequency(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"A4", 440},
		{"A5", 880},
		{"A3", 220},
		{"A-1", 13.75},
		{"C4", 261.6256},
		{"E4", 329.6276},
	}
	for _, c := range cases {
		got := Frequency(note.MustParsePitch(c.in))
		if math.Abs(got-c.want) > 0.001 {
			t.Errorf("Frequency(%s) = %f, want %f", c.in, got, c.want)
		}
	}
}

func TestFrequencyEnharmonics(t *testing.T) {
	a := Frequency(note.MustParsePitch("F#4"))
	b := Frequency(note.MustParsePitch("Gb4"))
	if a != b {
		t.Errorf("F#4 = %f but Gb4 = %f", a, b)
	}
}

func tempFile(t *testing.T) (*os.File, func()) {
	t.Helper()
	f, err := ioutil.TempFile("", "export")
	if err != nil {
		t.Fatal(err)
	}
	return f, func() {
		f.Close()
		os.Remove(f.Name())
	}
}

func header(t *testing.T, f *os.File) string {
	t.Helper()
	b, err := ioutil.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if len(b) < 4 {
		t.Fatalf("wrote only %d bytes", len(b))
	}
	return string(b[:4])
}

func TestWriteSMF(t *testing.T) {
	f, cleanup := tempFile(t)
	defer cleanup()
	pitches := []note.Pitch{
		note.MustParsePitch("C4"),
		note.MustParsePitch("E4"),
		note.MustParsePitch("G4"),
	}
	if err := WriteSMF(f, pitches, nil); err != nil {
		t.Fatal(err)
	}
	if got := header(t, f); got != "MThd" {
		t.Errorf("header = %q, want MThd", got)
	}
}

func TestWriteSMFRejectsOutOfRange(t *testing.T) {
	f, cleanup := tempFile(t)
	defer cleanup()
	if err := WriteSMF(f, []note.Pitch{note.MustParsePitch("C11")}, nil); err == nil {
		t.Error("MIDI 156 accepted, want error")
	}
	if err := WriteSMF(f, []note.Pitch{note.MustParsePitch("B-3")}, nil); err == nil {
		t.Error("MIDI -1 accepted, want error")
	}
	if err := WriteSMF(f, nil, nil); err == nil {
		t.Error("empty pitch list accepted, want error")
	}
}

func TestWriteWAV(t *testing.T) {
	f, cleanup := tempFile(t)
	defer cleanup()
	pitches := []note.Pitch{note.MustParsePitch("A4")}
	if err := WriteWAV(f, pitches, &Options{BeatsPerNote: 0.1}); err != nil {
		t.Fatal(err)
	}
	if got := header(t, f); got != "RIFF" {
		t.Errorf("header = %q, want RIFF", got)
	}
}
