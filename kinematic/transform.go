package kinematic

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Axis names one of the three principal axes, used by Mirror (spec.md
// §4.3) and by Box/Cylinder orientation conventions.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// EulerAngles is a roll-pitch-yaw rotation, applied in URDF's convention
// (Rz(yaw) * Ry(pitch) * Rx(roll)).
type EulerAngles struct {
	Roll, Pitch, Yaw float64
}

// Transform is a rigid-body displacement from a parent frame to a child
// frame. Translation and rotation are each independently optional;
// absent means identity for that component (spec.md §3, §4.8).
type Transform struct {
	Translation *r3.Vector
	Rotation    *EulerAngles
}

// IdentityTransform returns a transform with both components absent.
func IdentityTransform() Transform {
	return Transform{}
}

// NewTransform builds a transform from optional components. Either
// argument may be nil.
func NewTransform(translation *r3.Vector, rotation *EulerAngles) Transform {
	return Transform{Translation: translation, Rotation: rotation}
}

// Clone deep-copies the transform so the returned value shares no
// pointers with t.
func (t Transform) Clone() Transform {
	out := Transform{}
	if t.Translation != nil {
		v := *t.Translation
		out.Translation = &v
	}
	if t.Rotation != nil {
		r := *t.Rotation
		out.Rotation = &r
	}
	return out
}

// point returns the translation, defaulting to the origin.
func (t Transform) point() r3.Vector {
	if t.Translation == nil {
		return r3.Vector{}
	}
	return *t.Translation
}

// euler returns the rotation, defaulting to zero (identity).
func (t Transform) euler() EulerAngles {
	if t.Rotation == nil {
		return EulerAngles{}
	}
	return *t.Rotation
}

// quaternion returns the unit quaternion for t's rotation component,
// using the closed-form roll-pitch-yaw conversion (ZYX intrinsic, URDF
// convention).
func (t Transform) quaternion() quat.Number {
	e := t.euler()
	cr, sr := math.Cos(e.Roll/2), math.Sin(e.Roll/2)
	cp, sp := math.Cos(e.Pitch/2), math.Sin(e.Pitch/2)
	cy, sy := math.Cos(e.Yaw/2), math.Sin(e.Yaw/2)
	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// eulerFromQuaternion recovers roll-pitch-yaw angles from a unit
// quaternion built with the same ZYX convention as quaternion() above.
func eulerFromQuaternion(q quat.Number) EulerAngles {
	// roll (x-axis rotation)
	sinrCosp := 2 * (q.Real*q.Imag + q.Jmag*q.Kmag)
	cosrCosp := 1 - 2*(q.Imag*q.Imag+q.Jmag*q.Jmag)
	roll := math.Atan2(sinrCosp, cosrCosp)

	// pitch (y-axis rotation)
	sinp := 2 * (q.Real*q.Jmag - q.Kmag*q.Imag)
	var pitch float64
	if math.Abs(sinp) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}

	// yaw (z-axis rotation)
	sinyCosp := 2 * (q.Real*q.Kmag + q.Imag*q.Jmag)
	cosyCosp := 1 - 2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag)
	yaw := math.Atan2(sinyCosp, cosyCosp)

	return EulerAngles{Roll: roll, Pitch: pitch, Yaw: yaw}
}

// Pose is the resolved translation+rotation pair used internally for
// mirror math; Transform is the public, independently-optional surface.
type Pose struct {
	Point      r3.Vector
	Quaternion quat.Number
}

// Pose resolves t into a concrete Pose (identity components filled in).
func (t Transform) Pose() Pose {
	return Pose{Point: t.point(), Quaternion: t.quaternion()}
}

// Transform converts a resolved Pose back into a Transform with both
// components explicitly set.
func (p Pose) Transform() Transform {
	translation := p.Point
	rotation := eulerFromQuaternion(p.Quaternion)
	return Transform{Translation: &translation, Rotation: &rotation}
}

func almostEqualFloat(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// AlmostEqual reports whether t and o are equal within eps on every
// present component, treating an absent component as its identity value.
func (t Transform) AlmostEqual(o Transform, eps float64) bool {
	tp, op := t.point(), o.point()
	if !almostEqualFloat(tp.X, op.X, eps) || !almostEqualFloat(tp.Y, op.Y, eps) || !almostEqualFloat(tp.Z, op.Z, eps) {
		return false
	}
	te, oe := t.euler(), o.euler()
	return almostEqualFloat(te.Roll, oe.Roll, eps) &&
		almostEqualFloat(te.Pitch, oe.Pitch, eps) &&
		almostEqualFloat(te.Yaw, oe.Yaw, eps)
}
