// SPDX-License-Identifier: Unlicense OR MIT

/*
Package drawable describes 2-D shapes as boolean membership
predicates.

A Drawable pairs a geometric region with the domain it is naturally
sampled over. Shape compiles the region's membership test into a
Predicate from the drawable's fields as they are at the moment of the
call; later field changes never alter an already compiled predicate,
and the next Shape call reflects them.

A renderer consumes a drawable by taking its default domain, sampling
a coordinate grid within the domain's bounds and evaluating the
predicate over the samples:

	c := drawable.NewCircle(0, 0, 0.8)
	g := domain.NewGrid(c.DefaultDomain(), 32, 32)
	mask := c.Shape().Mask(g)

A membership of true means the point belongs to the shape.
*/
package drawable

import (
	"golang.org/x/exp/constraints"

	"github.com/LordTandy/stylo/domain"
)

// A Predicate reports whether the point (x, y) belongs to a region.
// Predicates are pure: they capture no mutable state and are safe for
// concurrent use.
type Predicate func(x, y float64) bool

// A Drawable produces its natural sampling domain and a membership
// predicate for its region.
//
// DefaultDomain returns a fresh domain instance per call, describing
// the drawable's natural coordinate extent; mutating the returned
// domain never affects the drawable. Shape compiles the membership
// predicate from the drawable's fields at the time of the call.
type Drawable interface {
	DefaultDomain() domain.Domain
	Shape() Predicate
}

// Eval evaluates p elementwise over xs and ys with the broadcasting
// rules of elementwise comparison: slices of equal length pair up,
// and a slice of length 1 broadcasts against the other. Any other
// length combination panics.
func (p Predicate) Eval(xs, ys []float64) []bool {
	nx, ny := len(xs), len(ys)
	n := nx
	switch {
	case nx == ny:
	case nx == 1:
		n = ny
	case ny == 1:
	default:
		panic("drawable: mismatched coordinate lengths")
	}
	out := make([]bool, n)
	for i := range out {
		x, y := xs[0], ys[0]
		if nx > 1 {
			x = xs[i]
		}
		if ny > 1 {
			y = ys[i]
		}
		out[i] = p(x, y)
	}
	return out
}

// Mask evaluates p over every point of g in row-major order:
// mask[i][j] is the membership of (g.Xs[j], g.Ys[i]).
func (p Predicate) Mask(g domain.Grid) [][]bool {
	mask := make([][]bool, len(g.Ys))
	for i, y := range g.Ys {
		row := make([]bool, len(g.Xs))
		for j, x := range g.Xs {
			row[j] = p(x, y)
		}
		mask[i] = row
	}
	return mask
}

// Between reports whether v lies in [lo, hi], inclusive on both ends.
func Between[T constraints.Ordered](lo, v, hi T) bool {
	return lo <= v && v <= hi
}
