// SPDX-License-Identifier: MIT

// Package mueller implements Mueller matrices: 4×4 real operators acting on
// stokes.Vector by left-multiplication.
//
// Closed forms are provided for the ideal elements (polarizer, retarder,
// rotator, depolarizer). They use the same axis and handedness conventions
// as package jones, so converters.MuellerFromJones of a Jones element agrees
// with the corresponding closed form here.
//
// Rotation convention: an element whose axis sits at θ from X is
//
//	M(θ) = R(−2θ) · M(0) · R(2θ),   R(2θ) = [[1,0,0,0],[0,c,s,0],[0,−s,c,0],[0,0,0,1]]
//
// with c = cos 2θ, s = sin 2θ.
package mueller
