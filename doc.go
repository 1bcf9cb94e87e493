// Package lvlight models the polarization of light and the optical
// elements that change it.
//
// 🚀 What is lvlight?
//
//	A small, dependency-light library with one value type per formalism:
//		• Polarization ellipse: amplitudes, relative phase, azimuth, ellipticity
//		• Jones calculus: complex field vectors and 2×2 complex elements
//		• Stokes/Mueller calculus: measurable intensities and 4×4 real elements
//		• Coherency matrices: second-order field correlations
//		• Converters between all of the above, including Jones → Mueller
//
// ✨ Why choose lvlight?
//
//   - Every state type embeds the same ellipse geometry
//   - Values are immutable; Normalize and Add return new values
//   - Degenerate inputs (zero amplitudes, circular light) never yield NaN
//   - Operator/state products are type-checked by a closed tagged union
//
// Subpackages:
//
//	matrix/     — fixed-size C2 (2×2 complex) and R4 (4×4 real) values + epsilon options
//	ellipse/    — Ellipse value type and the Polarization interface
//	jones/      — Jones vectors, matrices and element synthesis
//	stokes/     — Stokes vectors, degree of polarization
//	mueller/    — Mueller matrices and closed-form elements
//	coherency/  — coherency matrices
//	converters/ — Jones ↔ Stokes ↔ coherency, Jones matrix → Mueller matrix
//	algebra/    — Operand union with Mul, Chain, Propagate
//	states/     — catalog of canonical states and elements
//	cmd/lvlight — YAML-driven optical train propagation
//
// Quick example, horizontal light through a quarter-wave plate at 45°:
//
//	H ──► [QWP 45°] ──► left circular (S = −1)
//
//	go get github.com/katalvlaran/lvlight
package lvlight
