// SPDX-License-Identifier: Unlicense OR MIT

package domain_test

import (
	"fmt"

	"github.com/LordTandy/stylo/domain"
)

func ExampleSquareDomain() {
	d, _ := domain.NewSquareDomain(-2, 2)

	// The axes are coupled: moving xmin moves ymin with it.
	if err := d.SetXMin(-1); err != nil {
		fmt.Println(err)
	}
	fmt.Println(d.XMin(), d.YMin(), d.XMax(), d.YMax())

	// Output:
	// -1 -1 2 2
}

func ExampleUnitSquare() {
	d := domain.UnitSquare()
	fmt.Println(d.XMin(), d.YMin(), d.XMax(), d.YMax())
	fmt.Println(d.SetXMax(2))

	// Output:
	// 0 0 1 1
	// immutable domain
}
