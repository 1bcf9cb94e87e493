// SPDX-License-Identifier: MIT

// Package stokes represents polarization by the real Stokes 4-vector
// (I, M, C, S): total intensity, horizontal-vs-vertical preference,
// ±45° preference and circularity.
//
// A Vector embeds the ellipse derived as
//
//	E0x = √((I+M)/2),  E0y = √((I−M)/2),  phase = atan2(S, C)
//
// which is exact for fully polarized light (I² = M²+C²+S²). Sums of
// vectors model incoherent superposition and may be partially polarized;
// DegreeOfPolarization reports how much.
//
// S > 0 is right-handed (IEEE), matching ellipse.RightHanded.
package stokes
