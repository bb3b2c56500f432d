// SPDX-License-Identifier: Unlicense OR MIT

package domain

import (
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/floats"
)

// A Grid is a rectangular lattice of sample coordinates spanning a
// domain's bounds, endpoints included. Xs holds the column samples
// and Ys the row samples.
type Grid struct {
	Xs, Ys []float64
}

// NewGrid samples d with cols columns and rows rows, evenly spaced
// from bound to bound. It panics if cols or rows is less than 2.
func NewGrid(d Domain, cols, rows int) Grid {
	if cols < 2 || rows < 2 {
		panic("domain: grid needs at least 2 samples per axis")
	}
	g := Grid{
		Xs: make([]float64, cols),
		Ys: make([]float64, rows),
	}
	floats.Span(g.Xs, d.XMin(), d.XMax())
	floats.Span(g.Ys, d.YMin(), d.YMax())
	// Span accumulates steps from the lower bound, which can land the
	// last sample off the upper one when the bounds have no exact
	// binary representation. Pin it so the grid never leaves the
	// domain.
	g.Xs[cols-1] = d.XMax()
	g.Ys[rows-1] = d.YMax()
	return g
}

// Points returns the mesh points of the grid in row-major order: all
// columns of the first row, then the second row, and so on.
func (g Grid) Points() []f64.Vec2 {
	pts := make([]f64.Vec2, 0, len(g.Xs)*len(g.Ys))
	for _, y := range g.Ys {
		for _, x := range g.Xs {
			pts = append(pts, f64.Vec2{x, y})
		}
	}
	return pts
}
