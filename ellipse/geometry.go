// SPDX-License-Identifier: MIT

package ellipse

import (
	"math"

	"github.com/katalvlaran/lvlight/matrix"
)

// azimuth returns the orientation ψ of the ellipse major axis.
//
// Description:
//
//	tan(2ψ) = 2·r·cos φ / (1 − r²),  r = E0y/E0x
//
// Evaluation:
//  1. E0x = E0y = 0: zero-intensity state, ψ = 0.
//  2. E0x = 0, or r, r² or num/den is not finite: use the two-argument
//     form ψ = ½·atan2(2·E0x·E0y·cos φ, E0x² − E0y²) on amplitudes scaled
//     by max(E0x, E0y). A pure Y amplitude lands at ψ = π/2.
//  3. r = 1: the denominator vanishes; ψ = ½·atan2(num, 0), i.e. ±π/4
//     by the sign of cos φ, or 0 when cos φ = 0 exactly.
//  4. otherwise ψ = ½·atan(num/den).
//
// The single-argument branch keeps ψ within [−DiagonalAngle, DiagonalAngle]
// for E0y < E0x; states dominated by Y are reported relative to the same
// branch (e.g. (0.445, 0.89, π/2) has ψ ≈ 0).
func azimuth(e0x, e0y, phase float64) float64 {
	if e0x == 0 && e0y == 0 {
		return 0
	}
	if e0x == 0 {
		return azimuthAtan2(e0x, e0y, phase)
	}

	r := e0y / e0x
	num := 2 * r * math.Cos(phase)
	den := 1 - r*r
	if !isFinite(r) || !isFinite(den) {
		return azimuthAtan2(e0x, e0y, phase)
	}
	if den == 0 {
		return 0.5 * math.Atan2(num, 0)
	}
	if q := num / den; isFinite(q) {
		return 0.5 * math.Atan(q)
	}

	return azimuthAtan2(e0x, e0y, phase)
}

// azimuthAtan2 is ½·atan2(2·a·b·cos φ, a² − b²) with a, b scaled so the
// larger is 1.
func azimuthAtan2(e0x, e0y, phase float64) float64 {
	a, b := unitScale(e0x, e0y)
	num := 2 * a * b * math.Cos(phase)
	if num == 0 {
		num = 0 // drop a negative zero so a pure Y state lands on +π/2
	}

	return 0.5 * math.Atan2(num, a*a-b*b)
}

// unitScale divides both amplitudes by the larger one. Both must be ≥ 0
// and not both zero.
func unitScale(e0x, e0y float64) (float64, float64) {
	m := math.Max(e0x, e0y)

	return e0x / m, e0y / m
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ellipticityAngle returns χ = ½·asin(2·E0x·E0y·sin φ / (E0x² + E0y²)).
// χ is scale-invariant, so the amplitudes are first scaled to a larger
// value of 1. The argument is clamped to [−1, 1]: at circular states
// rounding can push it one ULP past 1, and asin would return NaN.
func ellipticityAngle(e0x, e0y, phase float64) float64 {
	if e0x == 0 && e0y == 0 {
		return 0
	}
	a, b := unitScale(e0x, e0y)
	s := 2 * a * b * math.Sin(phase) / (a*a + b*b)

	return 0.5 * math.Asin(clamp(s, -1, 1))
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// MajorAxis returns the semi-major axis √I·cos χ.
func (e Ellipse) MajorAxis() float64 {
	return math.Sqrt(e.Intensity()) * math.Cos(e.EllipticityAngle())
}

// MinorAxis returns the semi-minor axis √I·|sin χ|.
func (e Ellipse) MinorAxis() float64 {
	return math.Sqrt(e.Intensity()) * math.Abs(math.Sin(e.EllipticityAngle()))
}

// Handedness classifies the state by the sign of the ellipticity angle;
// |χ| within eps counts as Linear.
func (e Ellipse) Handedness(opts ...matrix.Option) Handedness {
	chi := e.EllipticityAngle()
	switch {
	case math.Abs(chi) <= matrix.Epsilon(opts...):
		return Linear
	case chi > 0:
		return RightHanded
	default:
		return LeftHanded
	}
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
