// SPDX-License-Identifier: MIT
package algebra_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlight/algebra"
	"github.com/katalvlaran/lvlight/jones"
)

func ExampleChain() {
	train, err := algebra.Chain(
		algebra.JonesOperator(jones.LinearPolarizer(0)),
		algebra.JonesOperator(jones.LinearPolarizer(math.Pi/4)),
		algebra.JonesOperator(jones.LinearPolarizer(math.Pi/2)),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, _ := algebra.Apply(train, algebra.JonesVector(jones.NewVector(1, 0)))
	v, _ := out.JonesVector()
	fmt.Printf("transmitted intensity: %.2f\n", v.Intensity())

	_, err = algebra.Mul(algebra.JonesVector(jones.NewVector(1, 0)), train)
	fmt.Println(errors.Is(err, algebra.ErrInvalidOperationOrder))
	// Output:
	// transmitted intensity: 0.25
	// true
}
