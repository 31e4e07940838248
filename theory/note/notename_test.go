package note

import (
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in     string
		letter Letter
		acc    Accidental
	}{
		{"C", Letter_C, Accidental_Natural},
		{"c", Letter_C, Accidental_Natural},
		{"F#", Letter_F, Accidental_Sharp},
		{"f♯", Letter_F, Accidental_Sharp},
		{"Bb", Letter_B, Accidental_Flat},
		{"E♭", Letter_E, Accidental_Flat},
		{"Gbb", Letter_G, Accidental_DoubleFlat},
		{"A##", Letter_A, Accidental_DoubleSharp},
		{"Ax", Letter_A, Accidental_DoubleSharp},
		{"Dn", Letter_D, Accidental_Natural},
	}
	for _, c := range cases {
		n, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", c.in, err)
			continue
		}
		if n.Letter != c.letter || n.Accidental != c.acc {
			t.Errorf("Parse(%q) = %s, want %s%s", c.in, n, c.letter, c.acc)
		}
	}

	for _, bad := range []string{"", "H", "C###", "#C", "1"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
	}
}

func TestPitchClass(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"C", 0},
		{"B#", 0},
		{"Dbb", 0},
		{"C#", 1},
		{"Db", 1},
		{"E", 4},
		{"Fb", 4},
		{"F##", 7},
		{"Cb", 11},
		{"B", 11},
	}
	for _, c := range cases {
		if got := MustParse(c.in).PitchClass(); got != c.want {
			t.Errorf("%s pitch class = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestEnharmonicIsNotEquality(t *testing.T) {
	cs := MustParse("C#")
	db := MustParse("Db")
	if !cs.IsEnharmonicWith(db) {
		t.Errorf("%s and %s should be enharmonic", cs, db)
	}
	if cs == db {
		t.Errorf("%s and %s must not compare equal", cs, db)
	}
	if !cs.IsEnharmonicWith(cs) {
		t.Errorf("%s should be enharmonic with itself", cs)
	}
}

func TestStringAndSymbol(t *testing.T) {
	cases := []struct {
		in     string
		str    string
		symbol string
	}{
		{"C", "C", "C"},
		{"F#", "F#", "F♯"},
		{"Bb", "Bb", "B♭"},
		{"Gbb", "Gbb", "G\U0001d12b"},
		{"A##", "A##", "A\U0001d12a"},
	}
	for _, c := range cases {
		n := MustParse(c.in)
		if n.String() != c.str {
			t.Errorf("%q String = %q, want %q", c.in, n.String(), c.str)
		}
		if n.Symbol() != c.symbol {
			t.Errorf("%q Symbol = %q, want %q", c.in, n.Symbol(), c.symbol)
		}
	}
}
