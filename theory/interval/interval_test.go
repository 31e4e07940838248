package interval

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewValidation(t *testing.T) {
	valid := []struct {
		size, semitones int
	}{
		{1, 0},  // P1
		{1, -1}, // d1
		{4, 6},  // A4
		{5, 6},  // d5
		{7, 8},  // dd7
		{2, 4},  // AA2
		{8, 12}, // P8
		{9, 14}, // M9
		{3, 1},  // dd3
	}
	for _, c := range valid {
		if _, err := New(c.size, c.semitones); err != nil {
			t.Errorf("New(%d, %d): %v", c.size, c.semitones, err)
		}
	}

	invalid := []struct {
		size, semitones int
	}{
		{0, 0},
		{-1, 3},
		{1, 3},  // beyond doubly augmented unison
		{1, -3}, // perfect class stops at doubly diminished
		{3, 0},  // beyond doubly diminished third
		{5, 10}, // beyond doubly augmented fifth
		{7, 5},
	}
	for _, c := range invalid {
		_, err := New(c.size, c.semitones)
		if err == nil {
			t.Errorf("New(%d, %d) succeeded, want error", c.size, c.semitones)
			continue
		}
		if errors.Cause(err) != ErrInvalidInterval {
			t.Errorf("New(%d, %d): cause = %v, want ErrInvalidInterval", c.size, c.semitones, err)
		}
	}
}

func TestQuality(t *testing.T) {
	cases := []struct {
		iv   Interval
		want Quality
	}{
		{PerfectUnison, Quality_Perfect},
		{MinorThird, Quality_Minor},
		{MajorThird, Quality_Major},
		{DiminishedFifth, Quality_Diminished},
		{AugmentedFourth, Quality_Augmented},
		{DiminishedSeventh, Quality_Diminished},
		{MustNew(7, 8), Quality_DoublyDiminished},
		{MustNew(4, 7), Quality_DoublyAugmented},
		{MajorNinth, Quality_Major},
		{PerfectTwelfth, Quality_Perfect},
	}
	for _, c := range cases {
		if got := c.iv.Quality(); got != c.want {
			t.Errorf("%s quality = %s, want %s", c.iv, got, c.want)
		}
	}
}

func TestZeroValueIsUnison(t *testing.T) {
	var iv Interval
	if iv.GenericSize() != 1 || iv.Semitones() != 0 {
		t.Errorf("zero value = size %d, %d semitones, want perfect unison", iv.GenericSize(), iv.Semitones())
	}
	if iv.Quality() != Quality_Perfect {
		t.Errorf("zero value quality = %s, want perfect", iv.Quality())
	}
}

func TestAddSub(t *testing.T) {
	sum, err := MajorThird.Add(MinorThird)
	if err != nil {
		t.Fatal(err)
	}
	if sum != PerfectFifth {
		t.Errorf("M3 + m3 = %s, want P5", sum)
	}

	diff, err := PerfectFifth.Sub(MajorThird)
	if err != nil {
		t.Fatal(err)
	}
	if diff != MinorThird {
		t.Errorf("P5 - M3 = %s, want m3", diff)
	}

	oct, err := PerfectFourth.Add(PerfectFifth)
	if err != nil {
		t.Fatal(err)
	}
	if oct != PerfectOctave {
		t.Errorf("P4 + P5 = %s, want P8", oct)
	}

	aa4 := MustNew(4, 7)
	if _, err := aa4.Add(aa4); err == nil {
		t.Error("AA4 + AA4 succeeded, want error")
	}
	if _, err := MinorThird.Sub(PerfectFifth); err == nil {
		t.Error("m3 - P5 succeeded, want error")
	}
}

func TestInvert(t *testing.T) {
	cases := []struct {
		in, want Interval
	}{
		{PerfectFifth, PerfectFourth},
		{MajorThird, MinorSixth},
		{MinorSecond, MajorSeventh},
		{AugmentedFourth, DiminishedFifth},
		{PerfectUnison, PerfectOctave},
		{MajorTenth, MinorSixth}, // compound reduces first
	}
	for _, c := range cases {
		if got := c.in.Invert(); got != c.want {
			t.Errorf("%s inverted = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestSimpleAndCompound(t *testing.T) {
	if MajorNinth.Simple() != MajorSecond {
		t.Errorf("M9 simple = %s, want M2", MajorNinth.Simple())
	}
	if PerfectOctave.Simple() != PerfectOctave {
		t.Errorf("P8 simple = %s, want P8", PerfectOctave.Simple())
	}
	if !PerfectTwelfth.IsCompound() {
		t.Error("P12 should be compound")
	}
	if PerfectOctave.IsCompound() {
		t.Error("P8 should not be compound")
	}
	if PerfectTwelfth.Simple() != PerfectFifth {
		t.Errorf("P12 simple = %s, want P5", PerfectTwelfth.Simple())
	}
}

func TestClassPredicates(t *testing.T) {
	if !MajorThird.IsThird() || !MajorTenth.IsThird() {
		t.Error("M3 and M10 are thirds")
	}
	if !PerfectFifth.IsFifth() || !PerfectTwelfth.IsFifth() {
		t.Error("P5 and P12 are fifths")
	}
	if !MinorSeventh.IsSeventh() || MajorSecond.IsSeventh() {
		t.Error("m7 is a seventh, M2 is not")
	}
}
