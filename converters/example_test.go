// SPDX-License-Identifier: MIT
package converters_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlight/converters"
	"github.com/katalvlaran/lvlight/jones"
)

// A quarter-wave plate at 45° turns horizontal light left circular.
func ExampleMuellerFromJones() {
	qwp := jones.QuarterWavePlate(math.Pi / 4)
	in := jones.NewVector(1, 0)

	viaJones := converters.JonesToStokes(qwp.Apply(in))
	viaMueller := converters.MuellerFromJones(qwp).Apply(converters.JonesToStokes(in))

	fmt.Printf("jones:   S=%.3f\n", viaJones.S())
	fmt.Printf("mueller: S=%.3f\n", viaMueller.S())
	fmt.Println("agree:", viaJones.ApproxEqual(viaMueller))
	// Output:
	// jones:   S=-1.000
	// mueller: S=-1.000
	// agree: true
}
