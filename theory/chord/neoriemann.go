package chord

import (
	"github.com/mersenne-sister/chordy/theory/interval"
	"github.com/pkg/errors"
)

// Neo-Riemannian transformations on major and minor triads. Each is an
// involution: applying it twice returns the starting triad.

// TransformP exchanges a triad with its parallel: same root, third
// toggled between major and minor.
func TransformP(c Chord) (Chord, error) {
	quality, ok := c.Quality()
	if !ok {
		return Chord{}, errors.Errorf("%s chord has no triad quality", c.Root)
	}
	switch quality {
	case Quality_Major:
		return Minor(c.Root), nil
	case Quality_Minor:
		return Major(c.Root), nil
	}
	return Chord{}, errors.Errorf("parallel transform needs a major or minor triad, got %s", quality)
}

// TransformR exchanges a triad with its relative: C major and A minor,
// the shared notes kept.
func TransformR(c Chord) (Chord, error) {
	quality, ok := c.Quality()
	if !ok {
		return Chord{}, errors.Errorf("%s chord has no triad quality", c.Root)
	}
	switch quality {
	case Quality_Major:
		root, err := c.Root.Transpose(interval.MajorSixth)
		if err != nil {
			return Chord{}, errors.Wrapf(err, "relative of %s major", c.Root)
		}
		return Minor(root), nil
	case Quality_Minor:
		root, err := c.Root.Transpose(interval.MinorThird)
		if err != nil {
			return Chord{}, errors.Wrapf(err, "relative of %s minor", c.Root)
		}
		return Major(root), nil
	}
	return Chord{}, errors.Errorf("relative transform needs a major or minor triad, got %s", quality)
}

// TransformL is the leading-tone exchange: C major and E minor.
func TransformL(c Chord) (Chord, error) {
	quality, ok := c.Quality()
	if !ok {
		return Chord{}, errors.Errorf("%s chord has no triad quality", c.Root)
	}
	switch quality {
	case Quality_Major:
		root, err := c.Root.Transpose(interval.MajorThird)
		if err != nil {
			return Chord{}, errors.Wrapf(err, "leading-tone exchange of %s major", c.Root)
		}
		return Minor(root), nil
	case Quality_Minor:
		root, err := c.Root.Transpose(interval.MinorSixth)
		if err != nil {
			return Chord{}, errors.Wrapf(err, "leading-tone exchange of %s minor", c.Root)
		}
		return Major(root), nil
	}
	return Chord{}, errors.Errorf("leading-tone exchange needs a major or minor triad, got %s", quality)
}
