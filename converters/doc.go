// SPDX-License-Identifier: MIT

// Package converters maps one polarization state, or one optical element,
// between the Jones, Stokes and coherency representations.
//
// Conventions shared by every function here:
//   - phase is arg(Ey) − arg(Ex);
//   - S > 0 is right-handed (IEEE), so JonesToStokes of (1, i)/√2 is (1, 0, 0, 1);
//   - the Stokes and coherency descriptions carry no absolute phase, so the
//     Jones vector rebuilt from them has a real, non-negative Ex.
//
// Converting fully polarized light Jones→Stokes→Jones reproduces
// (E0x, E0y, phase) up to rounding; phase is only meaningful, and only
// compared, when both amplitudes are non-zero.
//
// MuellerFromJones lifts any Jones matrix to its (non-depolarizing) Mueller
// image, so that for every J and E
//
//	JonesToStokes(J·E) == MuellerFromJones(J)·JonesToStokes(E).
package converters
