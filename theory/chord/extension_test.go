package chord

import (
	"testing"

	"github.com/mersenne-sister/chordy/theory/note"
)

func TestExtensionApply(t *testing.T) {
	cases := []struct {
		base      Chord
		extension Extension
		want      string
	}{
		{Major(note.MustParse("C")), Extension_Dominant7, "C E G Bb"},
		{Major(note.MustParse("C")), Extension_Major7, "C E G B"},
		{Major(note.MustParse("C")), Extension_Sus4, "C G F"},
		{Major(note.MustParse("C")), Extension_Sus2, "C G D"},
		{Major(note.MustParse("C")), Extension_No5, "C E"},
		{Major(note.MustParse("C")), Extension_No3, "C G"},
		{Major(note.MustParse("C")), Extension_Flat5, "C E Gb"},
		{Major(note.MustParse("C")), Extension_Sharp5, "C E G#"},
		{Major(note.MustParse("G")), Extension_Add6, "G B D E"},
		{Dominant7th(note.MustParse("G")), Extension_Ninth, "G B D F A"},
		{Dominant7th(note.MustParse("C")), Extension_FlatNinth, "C E G Bb Db"},
		{Dominant7th(note.MustParse("C")), Extension_SharpEleventh, "C E G Bb F#"},
	}
	for _, c := range cases {
		got := mustNotes(t, c.extension.Apply(c.base))
		if got != c.want {
			t.Errorf("%s %s = %s, want %s", c.base, c.extension, got, c.want)
		}
	}
}

func TestSusDropsTriadQuality(t *testing.T) {
	sus := Extension_Sus4.Apply(Major(note.MustParse("C")))
	if q, ok := sus.Quality(); ok {
		t.Errorf("sus4 chord reported quality %s", q)
	}
}
