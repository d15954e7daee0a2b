package kinematic

// Rebuild produces a detached builder that, when attached, reproduces l
// (spec.md §4.3's Rebuild operation, testable property 6).
func (l *Link) Rebuild() *LinkBuilder { return rebuildLink(l) }

// Rebuild produces a detached builder that, when attached, reproduces j.
func (j *Joint) Rebuild() *JointBuilder { return rebuildJoint(j) }

func rebuildLink(l *Link) *LinkBuilder {
	lb := NewLinkBuilder(l.Name())
	if inertial := l.Inertial(); inertial != nil {
		lb.WithInertial(*inertial)
	}
	for _, v := range l.Visuals() {
		vb := NewVisualBuilder(v.Geometry.Clone()).WithName(v.Name).WithTransform(v.Transform.Clone())
		if v.Material != nil {
			vb.WithMaterial(v.Material.clone())
		}
		lb.AddVisual(vb)
	}
	for _, c := range l.Colliders() {
		cb := NewCollisionBuilder(c.Geometry.Clone()).WithName(c.Name).WithTransform(c.Transform.Clone())
		lb.AddCollider(cb)
	}
	for _, j := range l.Children() {
		lb.AddJoint(rebuildJoint(j))
	}
	return lb
}

func rebuildJoint(j *Joint) *JointBuilder {
	jb := NewJointBuilder(j.Name(), j.Type()).WithTransform(Direct(j.Transform().Clone()))
	if axis := j.Axis(); axis != nil {
		jb.WithAxis(*axis)
	}
	if c := j.Calibration(); c != nil {
		jb.WithCalibration(*c)
	}
	if d := j.Dynamics(); d != nil {
		jb.WithDynamics(*d)
	}
	if lim := j.Limit(); lim != nil {
		jb.WithLimit(*lim)
	}
	if m := j.Mimic(); m != nil {
		jb.WithMimic(m.JointName, m.Multiplier, m.Offset)
	}
	if s := j.SafetyController(); s != nil {
		jb.WithSafetyController(*s)
	}
	jb.WithChild(rebuildLink(j.ChildLink()))
	return jb
}
