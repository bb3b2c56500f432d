// SPDX-License-Identifier: Unlicense OR MIT

/*
Package domain describes the coordinate extent over which shape
predicates are sampled.

A domain bundles named coordinate fields, one per axis, each holding a
bounded [min, max] range. Mutation is validated: no write may leave a
field with its minimum above its maximum, and a failed write changes
nothing. Domains are not safe for concurrent mutation.

RealDomain is the generic bundle with the fixed fields x, y, r and t.
RectangularDomain narrows the public surface to the x/y plane.
SquareDomain couples the two axes so their ranges stay equal, and
UnitSquare is a square domain frozen to [0, 1] x [0, 1].

Renderers consume a Domain through its bound getters, typically by
sampling a Grid of coordinates within the bounds and evaluating a
shape predicate over the samples.
*/
package domain

import (
	"errors"
	"fmt"
	"math"
)

// Errors reported by failing domain mutations. Match them with
// errors.Is; ErrRange arrives wrapped with the offending bounds.
var (
	// ErrRange is reported when a write would leave a field's minimum
	// above its maximum.
	ErrRange = errors.New("min greater than max")
	// ErrImmutable is reported when any bound of an immutable domain
	// is written.
	ErrImmutable = errors.New("immutable domain")
)

// A Field is a single named, bounded coordinate axis.
//
// Bounds are not checked for NaN: a comparison with NaN is never
// true, so NaN values pass every range check. The zero Field is an
// unnamed axis spanning [0, 0].
type Field struct {
	name     string
	min, max float64
}

// NewField returns a field named name spanning [min, max].
// It fails if min is greater than max.
func NewField(name string, min, max float64) (Field, error) {
	if min > max {
		return Field{}, rangeErr(name, min, max)
	}
	return Field{name: name, min: min, max: max}, nil
}

// Name returns the axis name.
func (f Field) Name() string { return f.name }

// Min returns the lower bound.
func (f Field) Min() float64 { return f.min }

// Max returns the upper bound.
func (f Field) Max() float64 { return f.max }

// SetMin updates the lower bound. It fails without writing if v is
// greater than the current upper bound.
func (f *Field) SetMin(v float64) error {
	if v > f.max {
		return rangeErr(f.name, v, f.max)
	}
	f.min = v
	return nil
}

// SetMax updates the upper bound. It fails without writing if v is
// less than the current lower bound.
func (f *Field) SetMax(v float64) error {
	if f.min > v {
		return rangeErr(f.name, f.min, v)
	}
	f.max = v
	return nil
}

// Set updates both bounds at once. It fails without writing if min is
// greater than max.
func (f *Field) Set(min, max float64) error {
	if min > max {
		return rangeErr(f.name, min, max)
	}
	f.min, f.max = min, max
	return nil
}

func rangeErr(name string, min, max float64) error {
	return fmt.Errorf("domain: field %q: min %g, max %g: %w", name, min, max, ErrRange)
}

// A RealDomain bundles the coordinate fields x, y, r and t.
//
// The field set is fixed at the type, not per instance: every
// RealDomain has exactly these four axes. Fields are owned
// exclusively by their domain; accessors return copies.
type RealDomain struct {
	x, y, r, t Field
}

// NewRealDomain returns a real domain with default bounds: x and y
// span [-1, 1], r spans [0, 1] and t spans [-pi, pi].
func NewRealDomain() *RealDomain {
	d := defaultRealDomain()
	return &d
}

func defaultRealDomain() RealDomain {
	return RealDomain{
		x: Field{name: "x", min: -1, max: 1},
		y: Field{name: "y", min: -1, max: 1},
		r: Field{name: "r", min: 0, max: 1},
		t: Field{name: "t", min: -math.Pi, max: math.Pi},
	}
}

// X returns a copy of the x field.
func (d *RealDomain) X() Field { return d.x }

// Y returns a copy of the y field.
func (d *RealDomain) Y() Field { return d.y }

// R returns a copy of the r field.
func (d *RealDomain) R() Field { return d.r }

// T returns a copy of the t field.
func (d *RealDomain) T() Field { return d.t }

// Field returns a copy of the named field. The name must be one of
// "x", "y", "r" or "t"; any other name panics.
func (d *RealDomain) Field(name string) Field {
	return *d.field(name)
}

// SetMin updates the named field's lower bound, enforcing the field's
// range invariant.
func (d *RealDomain) SetMin(name string, v float64) error {
	return d.field(name).SetMin(v)
}

// SetMax updates the named field's upper bound, enforcing the field's
// range invariant.
func (d *RealDomain) SetMax(name string, v float64) error {
	return d.field(name).SetMax(v)
}

// Set updates both bounds of the named field at once.
func (d *RealDomain) Set(name string, min, max float64) error {
	return d.field(name).Set(min, max)
}

func (d *RealDomain) field(name string) *Field {
	switch name {
	case "x":
		return &d.x
	case "y":
		return &d.y
	case "r":
		return &d.r
	case "t":
		return &d.t
	default:
		panic("domain: unknown field " + name)
	}
}
