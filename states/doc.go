// SPDX-License-Identifier: MIT

// Package states is a read-only catalog of canonical polarization states
// and common optical elements, looked up by name.
//
// States are listed once per representation (ellipse, Jones, Stokes,
// coherency) with exact canonical values; the tests check that the four
// tables describe the same light. Handedness follows the IEEE convention:
// CircularRight has phase +π/2 and S = +1.
//
// Elements are defined in the Jones calculus; their Mueller images are
// derived with converters.MuellerFromJones.
//
// The tables are built on first use and returned by value, so callers can
// neither mutate them nor race on them.
package states
