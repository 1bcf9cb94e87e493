// SPDX-License-Identifier: MIT

// Package matrix provides the fixed-size linear algebra used by the optical
// operators of lvlight.
//
// The matrix package provides:
//
//   - C2: a 2×2 complex matrix, the storage behind Jones matrices.
//   - R4: a 4×4 real matrix, the storage behind Mueller matrices.
//   - Shape-checked constructors (NewC2, NewR4) that turn ragged [][]T input
//     into fixed-size values or fail with ErrShapeMismatch.
//   - A single numeric policy (options.go): the comparison epsilon and the
//     NaN/Inf ingestion guard shared by every ApproxEqual-like check in the
//     module.
//
// Both types are plain arrays, so they are values: assignment copies, and no
// method mutates its receiver. Products are computed with fixed loop orders
// and are therefore deterministic bit-for-bit.
//
// Complexity quicksheet:
//   - C2: Mul O(8) complex multiplications, MulVec O(4).
//   - R4: Mul O(64) multiplications, MulVec O(16).
package matrix
