package interval

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads interval shorthand: a quality prefix (P, M, m, A.., d..)
// followed by the generic number, e.g. "P5", "m3", "M9", "dd7", "AA4".
// Repeated A or d letters mean doubly augmented/diminished; more than two
// is outside the representable range.
func Parse(s string) (Interval, error) {
	if s == "" {
		return Interval{}, errors.Errorf("invalid interval %q", s)
	}

	var diff int
	var perfectOnly, majorMinorOnly bool
	rest := s
	switch s[0] {
	case 'P':
		perfectOnly = true
		rest = s[1:]
	case 'M':
		majorMinorOnly = true
		rest = s[1:]
	case 'm':
		majorMinorOnly = true
		diff = -1
		rest = s[1:]
	case 'A':
		n := len(s) - len(strings.TrimLeft(s, "A"))
		diff = n
		rest = s[n:]
	case 'd':
		n := len(s) - len(strings.TrimLeft(s, "d"))
		diff = -n
		rest = s[n:]
	default:
		return Interval{}, errors.Errorf("invalid interval %q", s)
	}

	size, err := strconv.Atoi(rest)
	if err != nil || size < 1 {
		return Interval{}, errors.Errorf("invalid interval %q", s)
	}
	if perfectOnly && !isPerfectClass(size) {
		return Interval{}, errors.Errorf("invalid interval %q: a %dth cannot be perfect", s, size)
	}
	if majorMinorOnly && isPerfectClass(size) {
		return Interval{}, errors.Errorf("invalid interval %q: a generic %d has no major or minor quality", s, size)
	}
	// Diminished counts down from minor for major/minor-class sizes.
	if diff < 0 && !majorMinorOnly && !isPerfectClass(size) {
		diff--
	}
	return New(size, baseline(size)+diff)
}

// MustParse is Parse for literal shorthand; it panics on malformed input.
func MustParse(s string) Interval {
	iv, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return iv
}
