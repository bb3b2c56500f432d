// SPDX-License-Identifier: Unlicense OR MIT

package domain

// A Domain is the two-dimensional bound surface shared by the
// rectangular domain family. Renderers read the four bounds to decide
// where a predicate is meaningfully sampled. Setters validate and
// fail without partial writes.
type Domain interface {
	XMin() float64
	XMax() float64
	YMin() float64
	YMax() float64
	SetXMin(v float64) error
	SetXMax(v float64) error
	SetYMin(v float64) error
	SetYMax(v float64) error
}

// A RectangularDomain is a real domain narrowed to the x/y plane,
// spanning [xmin, xmax] x [ymin, ymax]. The two axes move
// independently.
type RectangularDomain struct {
	rd RealDomain
}

// NewRectangularDomain returns the domain [xmin, xmax] x [ymin, ymax].
// It fails if xmin > xmax or ymin > ymax.
func NewRectangularDomain(xmin, xmax, ymin, ymax float64) (*RectangularDomain, error) {
	d := &RectangularDomain{rd: defaultRealDomain()}
	if err := d.rd.x.Set(xmin, xmax); err != nil {
		return nil, err
	}
	if err := d.rd.y.Set(ymin, ymax); err != nil {
		return nil, err
	}
	return d, nil
}

// XMin returns the lower x bound.
func (d *RectangularDomain) XMin() float64 { return d.rd.x.min }

// XMax returns the upper x bound.
func (d *RectangularDomain) XMax() float64 { return d.rd.x.max }

// YMin returns the lower y bound.
func (d *RectangularDomain) YMin() float64 { return d.rd.y.min }

// YMax returns the upper y bound.
func (d *RectangularDomain) YMax() float64 { return d.rd.y.max }

// SetXMin updates the lower x bound. It fails without writing if v is
// greater than the current upper x bound.
func (d *RectangularDomain) SetXMin(v float64) error { return d.rd.x.SetMin(v) }

// SetXMax updates the upper x bound. It fails without writing if v is
// less than the current lower x bound.
func (d *RectangularDomain) SetXMax(v float64) error { return d.rd.x.SetMax(v) }

// SetYMin updates the lower y bound. It fails without writing if v is
// greater than the current upper y bound.
func (d *RectangularDomain) SetYMin(v float64) error { return d.rd.y.SetMin(v) }

// SetYMax updates the upper y bound. It fails without writing if v is
// less than the current lower y bound.
func (d *RectangularDomain) SetYMax(v float64) error { return d.rd.y.SetMax(v) }

// Contains reports whether the point (x, y) lies within d's bounds,
// inclusive on every edge.
func Contains(d Domain, x, y float64) bool {
	return d.XMin() <= x && x <= d.XMax() && d.YMin() <= y && y <= d.YMax()
}
