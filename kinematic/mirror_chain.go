package kinematic

import (
	"gonum.org/v1/gonum/mat"
)

// Mirror reflects the builder chain rooted at b across axis (spec.md
// §4.3). The reflection is geometry-aware and carries the chain-rule
// matrix update down through every nested joint so a rotation followed
// by a reflection ends up equal to a reflection followed by the
// correctly adjusted rotation.
func (b *LinkBuilder) Mirror(axis Axis) *LinkBuilder {
	return mirrorLinkBuilder(b, mirrorMatrix(axis))
}

// Mirror reflects the joint-rooted builder chain across axis.
func (b *JointBuilder) Mirror(axis Axis) *JointBuilder {
	return mirrorJointBuilder(b, mirrorMatrix(axis))
}

func mirrorLinkBuilder(lb *LinkBuilder, m *mat.Dense) *LinkBuilder {
	out := &LinkBuilder{name: lb.name}
	if lb.inertial != nil {
		mirrored := lb.inertial.mirror(m)
		out.inertial = &mirrored
	}
	for _, vb := range lb.visuals {
		mirroredGeom, err := vb.geometry.Mirror(matrixAxis(m))
		if err != nil {
			mirroredGeom = vb.geometry // mesh: caller responsibility, left as-is (spec.md §4.3)
		}
		out.visuals = append(out.visuals, &VisualBuilder{
			name:      vb.name,
			transform: mirrorTransform(vb.transform, m),
			geometry:  mirroredGeom,
			material:  vb.material,
		})
	}
	for _, cb := range lb.colliders {
		mirroredGeom, err := cb.geometry.Mirror(matrixAxis(m))
		if err != nil {
			mirroredGeom = cb.geometry
		}
		out.colliders = append(out.colliders, &CollisionBuilder{
			name:      cb.name,
			transform: mirrorTransform(cb.transform, m),
			geometry:  mirroredGeom,
		})
	}
	for _, jb := range lb.joints {
		out.joints = append(out.joints, mirrorJointBuilder(jb, m))
	}
	return out
}

func mirrorJointBuilder(jb *JointBuilder, m *mat.Dense) *JointBuilder {
	out := &JointBuilder{
		name:        jb.name,
		jointType:   jb.jointType,
		calibration: jb.calibration,
		dynamics:    jb.dynamics,
		limit:       jb.limit,
		mimic:       jb.mimic,
		safety:      jb.safety,
	}

	var nextMatrix *mat.Dense
	if jb.transform.direct != nil {
		mirroredPose, next := mirrorPose(jb.transform.direct.Pose(), m)
		t := mirroredPose.Transform()
		out.transform = Direct(t)
		nextMatrix = next
	} else {
		// A deferred (resolver-based) transform can't be mirrored ahead
		// of time since it isn't resolved until attach time; wrap it so
		// the mirror is applied to whatever the resolver eventually
		// produces, using m unchanged for the next descent (best effort
		// for resolver chains, documented as an approximation since the
		// resolver's output shape is not known until attach time).
		resolver := jb.transform.resolver
		out.transform = Deferred(func(shape LinkShapeData) Transform {
			resolved := resolver(shape)
			mirrored, _ := mirrorPose(resolved.Pose(), m)
			return mirrored.Transform()
		})
		nextMatrix = m
	}

	if jb.axis != nil {
		mirroredAxis := mulVec3(m, *jb.axis)
		out.axis = &mirroredAxis
	}

	if jb.child != nil {
		out.child = mirrorLinkBuilder(jb.child, nextMatrix)
	}
	return out
}

// matrixAxis recovers which principal axis a freshly-built mirror
// matrix (not yet conjugated by any rotation) reflects across, for
// handing to Geometry.Mirror's axis-tagged interface. Once a matrix has
// been conjugated by an ancestor rotation it is no longer axis-aligned;
// Geometry.Mirror only needs the axis to reject meshes and pass through
// non-chiral primitives, so an arbitrary consistent choice is harmless
// past the first level.
func matrixAxis(m *mat.Dense) Axis {
	if m.At(0, 0) < 0 {
		return AxisX
	}
	if m.At(1, 1) < 0 {
		return AxisY
	}
	return AxisZ
}
