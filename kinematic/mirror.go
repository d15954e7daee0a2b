package kinematic

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// mirrorMatrix builds the 3x3 reflection matrix for axis: the identity
// with a single -1 on the chosen axis's diagonal entry (spec.md §4.3).
func mirrorMatrix(axis Axis) *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	m.Set(2, 2, 1)
	switch axis {
	case AxisX:
		m.Set(0, 0, -1)
	case AxisY:
		m.Set(1, 1, -1)
	case AxisZ:
		m.Set(2, 2, -1)
	}
	return m
}

func quatToMatrix(q quat.Number) *mat.Dense {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	m := mat.NewDense(3, 3, []float64{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w),
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w),
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y),
	})
	return m
}

// matrixToQuat recovers a unit quaternion from an orthonormal rotation
// matrix using Shepperd's method.
func matrixToQuat(m *mat.Dense) quat.Number {
	tr := m.At(0, 0) + m.At(1, 1) + m.At(2, 2)
	var w, x, y, z float64
	switch {
	case tr > 0:
		s := math.Sqrt(tr+1) * 2
		w = s / 4
		x = (m.At(2, 1) - m.At(1, 2)) / s
		y = (m.At(0, 2) - m.At(2, 0)) / s
		z = (m.At(1, 0) - m.At(0, 1)) / s
	case m.At(0, 0) > m.At(1, 1) && m.At(0, 0) > m.At(2, 2):
		s := math.Sqrt(1+m.At(0, 0)-m.At(1, 1)-m.At(2, 2)) * 2
		w = (m.At(2, 1) - m.At(1, 2)) / s
		x = s / 4
		y = (m.At(0, 1) + m.At(1, 0)) / s
		z = (m.At(0, 2) + m.At(2, 0)) / s
	case m.At(1, 1) > m.At(2, 2):
		s := math.Sqrt(1+m.At(1, 1)-m.At(0, 0)-m.At(2, 2)) * 2
		w = (m.At(0, 2) - m.At(2, 0)) / s
		x = (m.At(0, 1) + m.At(1, 0)) / s
		y = s / 4
		z = (m.At(1, 2) + m.At(2, 1)) / s
	default:
		s := math.Sqrt(1+m.At(2, 2)-m.At(0, 0)-m.At(1, 1)) * 2
		w = (m.At(1, 0) - m.At(0, 1)) / s
		x = (m.At(0, 2) + m.At(2, 0)) / s
		y = (m.At(1, 2) + m.At(2, 1)) / s
		z = s / 4
	}
	return quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
}

func mulVec3(m *mat.Dense, v r3.Vector) r3.Vector {
	in := mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})
	var out mat.VecDense
	out.MulVec(m, in)
	return r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// mirrorPose reflects pose across the current mirror matrix m and
// returns the reflected pose along with the updated mirror matrix for
// the next level of descent (spec.md §4.3's chain-rule requirement:
// "the mirror matrix is updated for the next descent").
//
// Translation mirrors directly: t' = m * t. Rotation conjugates: R' =
// m * R * m (m is its own inverse, being an orthogonal reflection). The
// matrix handed to the next descent level is R^T * m * R: the mirror
// operator re-expressed in the child's local frame, which is what lets
// descendants keep using "multiply local translation by the current
// mirror matrix" and still end up correct in the root frame.
func mirrorPose(p Pose, m *mat.Dense) (Pose, *mat.Dense) {
	r := quatToMatrix(p.Quaternion)

	mirroredR := mat.NewDense(3, 3, nil)
	mirroredR.Mul(m, r)
	mirroredR.Mul(mirroredR, m)

	next := mat.NewDense(3, 3, nil)
	next.Mul(r.T(), m)
	next.Mul(next, r)

	return Pose{
		Point:      mulVec3(m, p.Point),
		Quaternion: matrixToQuat(mirroredR),
	}, next
}

// mirrorTransform reflects t across m, discarding the updated
// chain-rule matrix mirrorPose also computes. Used by leaf nodes
// (visuals, colliders, inertial origins) that have no descendants of
// their own to hand an updated matrix down to.
func mirrorTransform(t Transform, m *mat.Dense) Transform {
	mirrored, _ := mirrorPose(t.Pose(), m)
	return mirrored.Transform()
}
