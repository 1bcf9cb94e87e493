// SPDX-License-Identifier: MIT

package jones

import "github.com/katalvlaran/lvlight/matrix"

// ErrShapeMismatch is returned by NewMatrix for input that is not exactly 2×2.
// It is the same sentinel as matrix.ErrShapeMismatch, so errors.Is matches
// either name.
var ErrShapeMismatch = matrix.ErrShapeMismatch

const (
	panicRetardanceInvalid   = "jones: WithRetardance: retardance must be finite"
	panicTransparencyInvalid = "jones: WithTransparency: transparency must be finite, non-negative"
)
