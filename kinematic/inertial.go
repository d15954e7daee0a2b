package kinematic

import "gonum.org/v1/gonum/mat"

// Inertial is the mass and moment-of-inertia tensor of a link, centered
// at an offset (and optional orientation) from the link frame.
type Inertial struct {
	Mass   float64
	Origin Transform
	// Ixx, Ixy, Ixz, Iyy, Iyz, Izz are the six independent entries of the
	// symmetric 3x3 inertia tensor.
	Ixx, Ixy, Ixz, Iyy, Iyz, Izz float64
}

// NewDefaultInertial returns the identity inertial the Rust source uses
// as a link's implicit default: unit mass, zero tensor, zero origin.
func NewDefaultInertial() Inertial {
	return Inertial{Mass: 1, Ixx: 0, Iyy: 0, Izz: 0}
}

// mirror reflects the inertial across the current mirror matrix m
// (spec.md §3's open question, resolved in SPEC_FULL.md §5.2): the
// origin mirrors like any other transform, and the tensor mirrors as a
// rank-2 tensor under reflection, I' = m·I·mᵀ. Because m is an
// orthogonal reflection, mᵀ = m, so at the top of a descent (m
// axis-aligned) this reduces to exactly "negate every off-diagonal
// product-of-inertia term that references the mirrored axis, once";
// deeper in a mirrored chain, where m has been conjugated by ancestor
// rotations, the full tensor form still produces the physically correct
// result. Diagonal moments of inertia are invariant under reflection.
func (i Inertial) mirror(m *mat.Dense) Inertial {
	out := i
	out.Origin = mirrorTransform(i.Origin, m)

	tensor := mat.NewSymDense(3, []float64{
		i.Ixx, i.Ixy, i.Ixz,
		i.Ixy, i.Iyy, i.Iyz,
		i.Ixz, i.Iyz, i.Izz,
	})
	var tmp, mirrored mat.Dense
	tmp.Mul(m, tensor)
	mirrored.Mul(&tmp, m)

	out.Ixx, out.Ixy, out.Ixz = mirrored.At(0, 0), mirrored.At(0, 1), mirrored.At(0, 2)
	out.Iyy, out.Iyz = mirrored.At(1, 1), mirrored.At(1, 2)
	out.Izz = mirrored.At(2, 2)
	return out
}
