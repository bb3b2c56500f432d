// SPDX-License-Identifier: Unlicense OR MIT

package drawable

import "github.com/LordTandy/stylo/domain"

var (
	_ Drawable = (*Ellipse)(nil)
	_ Drawable = (*Rectangle)(nil)
	_ Drawable = (*Border)(nil)
	_ Drawable = (*Ring)(nil)
)

// An Ellipse is the region centered on (X, Y) of the points (x, y)
// satisfying
//
//	(x-X)²/A + (y-Y)²/B <= R²
//
// The test divides by A and B directly, not by their squares; pass a²
// and b² for the textbook ellipse. Larger A elongates the region
// along x, larger B along y, and R scales it overall. The boundary is
// part of the region.
type Ellipse struct {
	// X, Y is the center.
	X, Y float64
	// A and B are the semi-axis parameters.
	A, B float64
	// R is the radius parameter.
	R float64
}

// NewEllipse returns an ellipse centered on (x, y) with semi-axis
// parameters a, b and radius r. Parameters are not validated:
// degenerate values produce an empty or inverted region, never an
// error.
func NewEllipse(x, y, a, b, r float64) *Ellipse {
	return &Ellipse{X: x, Y: y, A: a, B: b, R: r}
}

// NewCircle returns the circle of radius r centered on (x, y): an
// ellipse with both semi-axis parameters set to 1.
func NewCircle(x, y, r float64) *Ellipse {
	return NewEllipse(x, y, 1, 1, r)
}

// DefaultDomain returns a fresh square domain spanning [-1, 1],
// regardless of the ellipse's own parameters.
func (e *Ellipse) DefaultDomain() domain.Domain {
	return squareDomain(-1, 1)
}

// Shape compiles the membership test from the current field values.
func (e *Ellipse) Shape() Predicate {
	x0, y0 := e.X, e.Y
	a, b := e.A, e.B
	rr := e.R * e.R
	return func(x, y float64) bool {
		xc := x - x0
		yc := y - y0
		return xc*xc/a+yc*yc/b <= rr
	}
}

// A Rectangle is the axis-aligned region of the given Width and
// Height centered on (X, Y). Its bounds are strict: a point exactly
// on an edge is not a member, unlike the inclusive ellipse boundary.
type Rectangle struct {
	// X, Y is the center.
	X, Y float64
	// Width and Height are the side lengths.
	Width, Height float64
}

// NewRectangle returns a width-by-height rectangle centered on
// (x, y). Parameters are not validated: degenerate values produce an
// empty region, never an error.
func NewRectangle(x, y, width, height float64) *Rectangle {
	return &Rectangle{X: x, Y: y, Width: width, Height: height}
}

// NewSquare returns the square of side size centered on (x, y): a
// rectangle with equal width and height.
func NewSquare(x, y, size float64) *Rectangle {
	return NewRectangle(x, y, size, size)
}

// DefaultDomain returns the immutable unit square [0, 1] x [0, 1],
// regardless of the rectangle's own position and size; renderers
// rescale as they see fit.
func (r *Rectangle) DefaultDomain() domain.Domain {
	return domain.UnitSquare()
}

// Shape compiles the membership test from the current field values.
func (r *Rectangle) Shape() Predicate {
	left, right := r.X-r.Width/2, r.X+r.Width/2
	bottom, top := r.Y-r.Height/2, r.Y+r.Height/2
	return func(x, y float64) bool {
		return left < x && x < right && bottom < y && y < top
	}
}

// A Border is the rectangular frame of the given Thickness just
// inside the Width-by-Height rectangle centered on (X, Y): the points
// inside the outer rectangle but not inside the rectangle inset by
// Thickness on every side.
type Border struct {
	// X, Y is the center.
	X, Y float64
	// Width and Height are the outer side lengths.
	Width, Height float64
	// Thickness is the frame width, inset from the outer edge.
	Thickness float64
}

// NewBorder returns a border of the given thickness tracing the
// width-by-height rectangle centered on (x, y).
func NewBorder(x, y, width, height, thickness float64) *Border {
	return &Border{X: x, Y: y, Width: width, Height: height, Thickness: thickness}
}

// DefaultDomain returns the immutable unit square, like Rectangle.
func (b *Border) DefaultDomain() domain.Domain {
	return domain.UnitSquare()
}

// Shape compiles the membership test from the current field values.
// The outer bounds are strict like Rectangle's; the inner edge of the
// frame is part of the region.
func (b *Border) Shape() Predicate {
	outer := NewRectangle(b.X, b.Y, b.Width, b.Height).Shape()
	inner := NewRectangle(b.X, b.Y, b.Width-2*b.Thickness, b.Height-2*b.Thickness).Shape()
	return func(x, y float64) bool {
		return outer(x, y) && !inner(x, y)
	}
}

// A Ring is the annulus of the given Thickness just inside the circle
// of radius R centered on (X, Y): the points inside the outer circle
// but not inside the circle of radius R-Thickness.
type Ring struct {
	// X, Y is the center.
	X, Y float64
	// R is the outer radius.
	R float64
	// Thickness is the band width, inset from the outer edge.
	Thickness float64
}

// NewRing returns a ring of the given thickness tracing the circle of
// radius r centered on (x, y).
func NewRing(x, y, r, thickness float64) *Ring {
	return &Ring{X: x, Y: y, R: r, Thickness: thickness}
}

// DefaultDomain returns a fresh square domain spanning [-1, 1], like
// Ellipse.
func (r *Ring) DefaultDomain() domain.Domain {
	return squareDomain(-1, 1)
}

// Shape compiles the membership test from the current field values.
// The outer boundary is part of the region; the inner one is not.
func (r *Ring) Shape() Predicate {
	outer := NewCircle(r.X, r.Y, r.R).Shape()
	inner := NewCircle(r.X, r.Y, r.R-r.Thickness).Shape()
	return func(x, y float64) bool {
		return outer(x, y) && !inner(x, y)
	}
}

func squareDomain(lo, hi float64) *domain.SquareDomain {
	d, err := domain.NewSquareDomain(lo, hi)
	if err != nil {
		panic("unreachable")
	}
	return d
}
