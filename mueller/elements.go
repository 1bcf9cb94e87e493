// SPDX-License-Identifier: MIT

package mueller

import (
	"math"

	"github.com/katalvlaran/lvlight/matrix"
)

// frame returns R(2θ), the change to a frame rotated by θ.
func frame(theta float64) matrix.R4 {
	c, s := math.Cos(2*theta), math.Sin(2*theta)

	return matrix.R4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// rotated returns R(−2θ)·m·R(2θ): m with its axis turned to θ.
func rotated(m matrix.R4, theta float64) Matrix {
	return Matrix{m: frame(-theta).Mul(m).Mul(frame(theta))}
}

// Identity is free space.
func Identity() Matrix {
	return Matrix{m: matrix.IdentityR4()}
}

// LinearPolarizer is an ideal linear polarizer with transmission axis at angle.
func LinearPolarizer(angle float64) Matrix {
	return rotated(matrix.R4{
		{0.5, 0.5, 0, 0},
		{0.5, 0.5, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, angle)
}

// Retarder is a lossless linear retarder with fast axis at angle, delaying
// the perpendicular component by delta.
func Retarder(angle, delta float64) Matrix {
	c, s := math.Cos(delta), math.Sin(delta)

	return rotated(matrix.R4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, c, -s},
		{0, 0, s, c},
	}, angle)
}

// QuarterWavePlate is Retarder(angle, π/2).
func QuarterWavePlate(angle float64) Matrix {
	return Retarder(angle, math.Pi/2)
}

// HalfWavePlate is Retarder(angle, π).
func HalfWavePlate(angle float64) Matrix {
	return Retarder(angle, math.Pi)
}

// Rotator turns the polarization ellipse by angle.
func Rotator(angle float64) Matrix {
	return Matrix{m: frame(-angle)}
}

// Depolarizer is the ideal depolarizer: it keeps the intensity and discards
// all polarization.
func Depolarizer() Matrix {
	return Matrix{m: matrix.R4{{1, 0, 0, 0}}}
}
