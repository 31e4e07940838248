package interval

import (
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Interval
	}{
		{"P1", PerfectUnison},
		{"P5", PerfectFifth},
		{"m3", MinorThird},
		{"M3", MajorThird},
		{"A4", AugmentedFourth},
		{"d5", DiminishedFifth},
		{"d7", DiminishedSeventh},
		{"dd7", MustNew(7, 8)},
		{"AA4", MustNew(4, 7)},
		{"M9", MajorNinth},
		{"P12", PerfectTwelfth},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %s, want %s", c.in, got, c.want)
		}
	}

	invalid := []string{
		"", "5", "X3", "P", "M",
		"P3",   // thirds have no perfect quality
		"M5",   // fifths have no major quality
		"m4",   // fourths have no minor quality
		"ddd7", // beyond the representable range
		"AAA4",
		"P0",
		"M-3",
	}
	for _, bad := range invalid {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	shorthand := []string{"P1", "d1", "A1", "m2", "M2", "m3", "M3", "P4", "A4", "d5", "P5", "m6", "M6", "d7", "m7", "M7", "P8", "dd3", "AA5", "M9", "P11", "m13"}
	for _, s := range shorthand {
		iv, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q): %v", s, err)
			continue
		}
		if iv.String() != s {
			t.Errorf("Parse(%q).String() = %q", s, iv.String())
		}
	}
}
