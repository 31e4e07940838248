package interval

// The usual named intervals, unison through fourteenth. All are valid by
// inspection, so they are built directly rather than through New.
var (
	PerfectUnison   = Interval{size: 1, semitones: 0}
	AugmentedUnison = Interval{size: 1, semitones: 1}

	DiminishedSecond = Interval{size: 2, semitones: 0}
	MinorSecond      = Interval{size: 2, semitones: 1}
	MajorSecond      = Interval{size: 2, semitones: 2}
	AugmentedSecond  = Interval{size: 2, semitones: 3}

	DiminishedThird = Interval{size: 3, semitones: 2}
	MinorThird      = Interval{size: 3, semitones: 3}
	MajorThird      = Interval{size: 3, semitones: 4}
	AugmentedThird  = Interval{size: 3, semitones: 5}

	DiminishedFourth = Interval{size: 4, semitones: 4}
	PerfectFourth    = Interval{size: 4, semitones: 5}
	AugmentedFourth  = Interval{size: 4, semitones: 6}

	DiminishedFifth = Interval{size: 5, semitones: 6}
	PerfectFifth    = Interval{size: 5, semitones: 7}
	AugmentedFifth  = Interval{size: 5, semitones: 8}

	DiminishedSixth = Interval{size: 6, semitones: 7}
	MinorSixth      = Interval{size: 6, semitones: 8}
	MajorSixth      = Interval{size: 6, semitones: 9}
	AugmentedSixth  = Interval{size: 6, semitones: 10}

	DiminishedSeventh = Interval{size: 7, semitones: 9}
	MinorSeventh      = Interval{size: 7, semitones: 10}
	MajorSeventh      = Interval{size: 7, semitones: 11}
	AugmentedSeventh  = Interval{size: 7, semitones: 12}

	DiminishedOctave = Interval{size: 8, semitones: 11}
	PerfectOctave    = Interval{size: 8, semitones: 12}
	AugmentedOctave  = Interval{size: 8, semitones: 13}

	DiminishedNinth = Interval{size: 9, semitones: 12}
	MinorNinth      = Interval{size: 9, semitones: 13}
	MajorNinth      = Interval{size: 9, semitones: 14}
	AugmentedNinth  = Interval{size: 9, semitones: 15}

	DiminishedTenth = Interval{size: 10, semitones: 14}
	MinorTenth      = Interval{size: 10, semitones: 15}
	MajorTenth      = Interval{size: 10, semitones: 16}
	AugmentedTenth  = Interval{size: 10, semitones: 17}

	DiminishedEleventh = Interval{size: 11, semitones: 16}
	PerfectEleventh    = Interval{size: 11, semitones: 17}
	AugmentedEleventh  = Interval{size: 11, semitones: 18}

	DiminishedTwelfth = Interval{size: 12, semitones: 18}
	PerfectTwelfth    = Interval{size: 12, semitones: 19}
	AugmentedTwelfth  = Interval{size: 12, semitones: 20}

	DiminishedThirteenth = Interval{size: 13, semitones: 19}
	MinorThirteenth      = Interval{size: 13, semitones: 20}
	MajorThirteenth      = Interval{size: 13, semitones: 21}
	AugmentedThirteenth  = Interval{size: 13, semitones: 22}

	DiminishedFourteenth = Interval{size: 14, semitones: 21}
	MinorFourteenth      = Interval{size: 14, semitones: 22}
	MajorFourteenth      = Interval{size: 14, semitones: 23}
	AugmentedFourteenth  = Interval{size: 14, semitones: 24}
)
