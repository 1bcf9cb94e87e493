// SPDX-License-Identifier: MIT

package ellipse

// Polarization is the capability shared by every representation that can
// report its polarization ellipse. Ellipse implements it directly; the
// jones, stokes and coherency types implement it by embedding an Ellipse.
type Polarization interface {
	E0x() float64
	E0y() float64
	Phase() float64
	Azimuth() float64
	EllipticityAngle() float64
	DiagonalAngle() float64
	ComplementDiagonalAngle() float64
	Intensity() float64
}

// Handedness classifies the sense of rotation of the field vector.
type Handedness int

const (
	// Linear: the ellipse degenerates to a line (ellipticity angle ≈ 0).
	Linear Handedness = iota
	// RightHanded: positive ellipticity angle (IEEE convention).
	RightHanded
	// LeftHanded: negative ellipticity angle.
	LeftHanded
)

// String returns a lower-case label.
func (h Handedness) String() string {
	switch h {
	case Linear:
		return "linear"
	case RightHanded:
		return "right-handed"
	case LeftHanded:
		return "left-handed"
	default:
		return "unknown"
	}
}

var _ Polarization = Ellipse{}
