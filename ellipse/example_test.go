// SPDX-License-Identifier: MIT
package ellipse_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlight/ellipse"
)

// ExampleEllipse shows the geometry of a right-handed elliptical state
// whose Y amplitude is twice its X amplitude.
func ExampleEllipse() {
	e := ellipse.New(0.445, 0.89, math.Pi/2)

	fmt.Printf("intensity=%.4f\n", e.Intensity())
	fmt.Printf("ellipticity=%.2f°\n", ellipse.ToDegrees(e.EllipticityAngle()))
	fmt.Printf("diagonal=%.2f°\n", ellipse.ToDegrees(e.DiagonalAngle()))
	fmt.Println(e.Handedness())
	// Output:
	// intensity=0.9901
	// ellipticity=26.57°
	// diagonal=63.43°
	// right-handed
}
