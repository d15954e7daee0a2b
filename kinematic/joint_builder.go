package kinematic

import "github.com/golang/geo/r3"

// JointBuilder is the detached, value-typed construction for a Joint
// (spec.md §4.3). Its Child is itself a LinkBuilder, which may recurse
// with further nested JointBuilders, forming a chain.
type JointBuilder struct {
	name      string
	jointType JointType
	transform DeferredTransform

	axis        *r3.Vector
	calibration *Calibration
	dynamics    *Dynamics
	limit       *Limit
	mimic       *Mimic
	safety      *SafetyController

	child *LinkBuilder
}

// NewJointBuilder starts a joint builder of the given type, defaulting
// to an identity direct transform.
func NewJointBuilder(name string, jointType JointType) *JointBuilder {
	return &JointBuilder{name: name, jointType: jointType, transform: Direct(IdentityTransform())}
}

func (b *JointBuilder) WithTransform(t DeferredTransform) *JointBuilder {
	b.transform = t
	return b
}

func (b *JointBuilder) WithAxis(axis r3.Vector) *JointBuilder {
	b.axis = &axis
	return b
}

func (b *JointBuilder) WithCalibration(c Calibration) *JointBuilder {
	b.calibration = &c
	return b
}

func (b *JointBuilder) WithDynamics(d Dynamics) *JointBuilder {
	b.dynamics = &d
	return b
}

func (b *JointBuilder) WithLimit(l Limit) *JointBuilder {
	b.limit = &l
	return b
}

func (b *JointBuilder) WithMimic(jointName string, multiplier, offset float64) *JointBuilder {
	b.mimic = &Mimic{JointName: jointName, Multiplier: multiplier, Offset: offset}
	return b
}

func (b *JointBuilder) WithSafetyController(s SafetyController) *JointBuilder {
	b.safety = &s
	return b
}

// WithChild sets the joint's child link-builder, the only way a joint
// builder extends the chain downward.
func (b *JointBuilder) WithChild(child *LinkBuilder) *JointBuilder {
	b.child = child
	return b
}

// Name returns the builder's joint name.
func (b *JointBuilder) Name() string { return b.name }

// Clone deep-copies the builder chain rooted at b.
func (b *JointBuilder) Clone() *JointBuilder {
	out := &JointBuilder{name: b.name, jointType: b.jointType, transform: b.transform.clone()}
	if b.axis != nil {
		a := *b.axis
		out.axis = &a
	}
	if b.calibration != nil {
		c := *b.calibration
		out.calibration = &c
	}
	if b.dynamics != nil {
		d := *b.dynamics
		out.dynamics = &d
	}
	if b.limit != nil {
		l := *b.limit
		out.limit = &l
	}
	if b.mimic != nil {
		m := *b.mimic
		out.mimic = &m
	}
	if b.safety != nil {
		s := *b.safety
		out.safety = &s
	}
	if b.child != nil {
		out.child = b.child.Clone()
	}
	return out
}
