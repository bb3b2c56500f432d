// SPDX-License-Identifier: Unlicense OR MIT

package drawable_test

import (
	"testing"

	"github.com/LordTandy/stylo/domain"
	"github.com/LordTandy/stylo/drawable"
)

func TestPredicateEval(t *testing.T) {
	p := drawable.NewCircle(0, 0, 1).Shape()
	xs := []float64{0, 1, 2, 0}
	ys := []float64{0, 0, 0, 2}
	want := []bool{true, true, false, false}

	got := p.Eval(xs, ys)
	if len(got) != len(want) {
		t.Fatalf("len(Eval) is %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Eval[%d]: have %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPredicateEvalBroadcast(t *testing.T) {
	p := drawable.NewCircle(0, 0, 1).Shape()

	got := p.Eval([]float64{0}, []float64{0, 1, 2})
	want := []bool{true, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("broadcast x: Eval[%d]: have %v, want %v", i, got[i], want[i])
		}
	}

	got = p.Eval([]float64{0, 1, 2}, []float64{0})
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("broadcast y: Eval[%d]: have %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPredicateEvalMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Eval with mismatched lengths did not panic")
		}
	}()
	drawable.NewCircle(0, 0, 1).Shape().Eval([]float64{1, 2}, []float64{1, 2, 3})
}

func TestPredicateMask(t *testing.T) {
	d, err := domain.NewSquareDomain(-1, 1)
	if err != nil {
		t.Fatalf("NewSquareDomain: %v", err)
	}
	mask := drawable.NewCircle(0, 0, 1).Shape().Mask(domain.NewGrid(d, 3, 3))

	want := [][]bool{
		{false, true, false},
		{true, true, true},
		{false, true, false},
	}
	if len(mask) != len(want) {
		t.Fatalf("mask has %d rows, want %d", len(mask), len(want))
	}
	for i, row := range want {
		for j := range row {
			if mask[i][j] != want[i][j] {
				t.Errorf("mask[%d][%d]: have %v, want %v", i, j, mask[i][j], want[i][j])
			}
		}
	}
}
