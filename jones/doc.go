// SPDX-License-Identifier: MIT

// Package jones implements the Jones calculus: fully polarized states as
// two-component complex field vectors, and optical elements as 2×2 complex
// matrices acting on them from the left.
//
// ✨ Key features:
//   - Vector keeps the native amplitudes (Ex, Ey) and embeds the derived
//     ellipse.Ellipse, so Azimuth, EllipticityAngle, ... are available directly.
//   - Vector.Add is coherent superposition (field amplitudes add).
//   - Vector.Normalize returns a new unit-intensity vector; values never mutate.
//   - Matrix.Apply / Matrix.Compose model element×state and element×element.
//     There is no state×element operation: elements act on column vectors
//     from the left only.
//   - NewElement synthesizes an element from its physical parameters
//     (axis angle, retardance, transparency).
//
// ⚙️ Usage:
//
//	in := jones.NewVector(1, 1)                   // +45° linear, intensity 2
//	pol := jones.NewElement(0)                   // horizontal linear polarizer
//	out := pol.Apply(in)                         // (1, 0)
//	qwp := jones.QuarterWavePlate(math.Pi / 4)
//	train := qwp.Compose(pol)                    // polarizer first, then QWP
package jones
