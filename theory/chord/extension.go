package chord

import (
	"fmt"

	"github.com/mersenne-sister/chordy/theory/interval"
)

// Extension is an addition or alteration applied to a basic triad stack.
type Extension int

const (
	Extension_Dominant7 Extension = iota
	Extension_Major7
	Extension_Minor7
	Extension_Diminished7
	Extension_Ninth
	Extension_FlatNinth
	Extension_SharpNinth
	Extension_Eleventh
	Extension_SharpEleventh
	Extension_Thirteenth
	Extension_FlatThirteenth
	Extension_Add2
	Extension_Add4
	Extension_Add6
	Extension_AddFlat6
	Extension_Sus2
	Extension_Sus4
	Extension_Flat5
	Extension_Sharp5
	Extension_No3
	Extension_No5
)

// Intervals returns the interval(s) the extension contributes. Omissions
// contribute none; sus and altered-fifth extensions replace rather than
// add, which Apply handles.
func (e Extension) Intervals() []interval.Interval {
	switch e {
	case Extension_Dominant7, Extension_Minor7:
		return []interval.Interval{interval.MinorSeventh}
	case Extension_Major7:
		return []interval.Interval{interval.MajorSeventh}
	case Extension_Diminished7:
		return []interval.Interval{interval.DiminishedSeventh}
	case Extension_Ninth:
		return []interval.Interval{interval.MajorNinth}
	case Extension_FlatNinth:
		return []interval.Interval{interval.MinorNinth}
	case Extension_SharpNinth:
		return []interval.Interval{interval.AugmentedNinth}
	case Extension_Eleventh:
		return []interval.Interval{interval.PerfectEleventh}
	case Extension_SharpEleventh:
		return []interval.Interval{interval.AugmentedEleventh}
	case Extension_Thirteenth:
		return []interval.Interval{interval.MajorThirteenth}
	case Extension_FlatThirteenth:
		return []interval.Interval{interval.MinorThirteenth}
	case Extension_Add2:
		return []interval.Interval{interval.MajorSecond}
	case Extension_Add4:
		return []interval.Interval{interval.PerfectFourth}
	case Extension_Add6:
		return []interval.Interval{interval.MajorSixth}
	case Extension_AddFlat6:
		return []interval.Interval{interval.MinorSixth}
	case Extension_Sus2:
		return []interval.Interval{interval.MajorSecond}
	case Extension_Sus4:
		return []interval.Interval{interval.PerfectFourth}
	case Extension_Flat5:
		return []interval.Interval{interval.DiminishedFifth}
	case Extension_Sharp5:
		return []interval.Interval{interval.AugmentedFifth}
	}
	return nil
}

// Apply returns a new chord with the extension worked into the stack.
// Sus extensions replace the third, altered fifths replace the fifth,
// omissions drop their member, everything else appends.
func (e Extension) Apply(c Chord) Chord {
	switch e {
	case Extension_Sus2, Extension_Sus4:
		return c.replaceClass(func(iv interval.Interval) bool { return iv.IsThird() }, e.Intervals()...)
	case Extension_Flat5, Extension_Sharp5:
		return c.replaceClass(func(iv interval.Interval) bool { return iv.IsFifth() }, e.Intervals()...)
	case Extension_No3:
		return c.replaceClass(func(iv interval.Interval) bool { return iv.IsThird() })
	case Extension_No5:
		return c.replaceClass(func(iv interval.Interval) bool { return iv.IsFifth() })
	default:
		out := New(c.Root, c.Intervals...)
		out.Intervals = append(out.Intervals, e.Intervals()...)
		return out
	}
}

// replaceClass drops matching intervals and appends the replacements.
func (c Chord) replaceClass(match func(interval.Interval) bool, with ...interval.Interval) Chord {
	intervals := make([]interval.Interval, 0, len(c.Intervals)+len(with))
	for _, iv := range c.Intervals {
		if !match(iv) {
			intervals = append(intervals, iv)
		}
	}
	intervals = append(intervals, with...)
	return Chord{Root: c.Root, Intervals: intervals}
}

func (e Extension) String() string {
	switch e {
	case Extension_Dominant7:
		return "7"
	case Extension_Major7:
		return "maj7"
	case Extension_Minor7:
		return "m7"
	case Extension_Diminished7:
		return "dim7"
	case Extension_Ninth:
		return "9"
	case Extension_FlatNinth:
		return "b9"
	case Extension_SharpNinth:
		return "#9"
	case Extension_Eleventh:
		return "11"
	case Extension_SharpEleventh:
		return "#11"
	case Extension_Thirteenth:
		return "13"
	case Extension_FlatThirteenth:
		return "b13"
	case Extension_Add2:
		return "add2"
	case Extension_Add4:
		return "add4"
	case Extension_Add6:
		return "6"
	case Extension_AddFlat6:
		return "b6"
	case Extension_Sus2:
		return "sus2"
	case Extension_Sus4:
		return "sus4"
	case Extension_Flat5:
		return "b5"
	case Extension_Sharp5:
		return "#5"
	case Extension_No3:
		return "no3"
	case Extension_No5:
		return "no5"
	}
	return fmt.Sprintf("undefined(%d)", int(e))
}
