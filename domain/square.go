// SPDX-License-Identifier: Unlicense OR MIT

package domain

import "fmt"

// A SquareDomain is a rectangular domain whose axes are coupled:
// xmin == ymin and xmax == ymax at all times. Writing a bound on
// either axis writes both. A write that would violate the range
// invariant fails the whole coupled update with no partial change.
type SquareDomain struct {
	rect   RectangularDomain
	frozen bool
}

// NewSquareDomain returns the domain [lo, hi] x [lo, hi].
// It fails if lo > hi.
func NewSquareDomain(lo, hi float64) (*SquareDomain, error) {
	rect, err := NewRectangularDomain(lo, hi, lo, hi)
	if err != nil {
		return nil, err
	}
	return &SquareDomain{rect: *rect}, nil
}

// UnitSquare returns the immutable square domain [0, 1] x [0, 1].
// Every setter on it fails with ErrImmutable.
func UnitSquare() *SquareDomain {
	d, err := NewSquareDomain(0, 1)
	if err != nil {
		panic("unreachable")
	}
	d.frozen = true
	return d
}

// Min returns the shared lower bound of both axes.
func (d *SquareDomain) Min() float64 { return d.rect.rd.x.min }

// Max returns the shared upper bound of both axes.
func (d *SquareDomain) Max() float64 { return d.rect.rd.x.max }

// Immutable reports whether the domain rejects all mutation.
func (d *SquareDomain) Immutable() bool { return d.frozen }

// XMin returns the lower x bound.
func (d *SquareDomain) XMin() float64 { return d.rect.XMin() }

// XMax returns the upper x bound.
func (d *SquareDomain) XMax() float64 { return d.rect.XMax() }

// YMin returns the lower y bound.
func (d *SquareDomain) YMin() float64 { return d.rect.YMin() }

// YMax returns the upper y bound.
func (d *SquareDomain) YMax() float64 { return d.rect.YMax() }

// SetXMin writes v to the lower bound of both axes. It fails without
// writing if the domain is immutable or if v is greater than the
// current upper bound.
func (d *SquareDomain) SetXMin(v float64) error { return d.setMin(v) }

// SetYMin is the coupled twin of SetXMin: it writes the lower bound
// of both axes.
func (d *SquareDomain) SetYMin(v float64) error { return d.setMin(v) }

// SetXMax writes v to the upper bound of both axes. It fails without
// writing if the domain is immutable or if v is less than the current
// lower bound.
func (d *SquareDomain) SetXMax(v float64) error { return d.setMax(v) }

// SetYMax is the coupled twin of SetXMax: it writes the upper bound
// of both axes.
func (d *SquareDomain) SetYMax(v float64) error { return d.setMax(v) }

// setMin validates the coupled effect on both axes before committing
// either field. The axes share their bounds, so one check covers both.
func (d *SquareDomain) setMin(v float64) error {
	if d.frozen {
		return ErrImmutable
	}
	if v > d.rect.rd.x.max {
		return fmt.Errorf("domain: square: min %g, max %g: %w", v, d.rect.rd.x.max, ErrRange)
	}
	d.rect.rd.x.min = v
	d.rect.rd.y.min = v
	return nil
}

func (d *SquareDomain) setMax(v float64) error {
	if d.frozen {
		return ErrImmutable
	}
	if d.rect.rd.x.min > v {
		return fmt.Errorf("domain: square: min %g, max %g: %w", d.rect.rd.x.min, v, ErrRange)
	}
	d.rect.rd.x.max = v
	d.rect.rd.y.max = v
	return nil
}
