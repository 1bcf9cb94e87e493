// SPDX-License-Identifier: MIT

// Package ellipse describes a fully polarized state by its polarization
// ellipse: two non-negative field amplitudes along orthogonal reference axes
// (E0x, E0y) and the phase of the Y component relative to X.
//
// Every other representation in lvlight (jones.Vector, stokes.Vector,
// coherency.Matrix) embeds an Ellipse computed once at construction, so the
// geometric quantities below are available on all of them through the
// Polarization interface:
//
//   - Intensity               E0x² + E0y²
//   - DiagonalAngle           |atan2(E0y, E0x)|, in [0, π/2]
//   - ComplementDiagonalAngle π/2 − DiagonalAngle
//   - Azimuth                 orientation of the major axis
//   - EllipticityAngle        ½·asin(2·E0x·E0y·sin φ / I), in [−π/4, π/4]
//
// Handedness follows the IEEE convention: a phase in (0, π) gives a positive
// ellipticity angle and a right-handed state.
//
// Degenerate geometry never produces NaN: a zero-intensity ellipse reports
// every angle as 0, and an axis-aligned ellipse uses the two-argument
// arctangent where the single-argument form would divide by zero.
//
// IMPORTANT: Ellipse.Add sums the raw (E0x, E0y, phase) coordinates. It is a
// bookkeeping operation for composing fixtures, not a superposition of light.
// Coherent superposition is jones.Vector.Add; incoherent superposition is
// stokes.Vector.Add or coherency.Matrix.Add.
package ellipse
