package kinematic

import "github.com/golang/geo/r3"

// TypestateError reports that a SmartJointBuilder field was set (or
// left unset) in a way its joint-type does not allow (spec.md §4.6).
// In a language with compile-time typestate this would be a type error;
// here it surfaces at Build time, naming the offending field.
type TypestateError struct {
	JointType JointType
	Field     string
	Required  bool
	err       error
}

func newTypestateError(jt JointType, field string, required bool) *TypestateError {
	msg := "field " + field + " is not valid for " + jt.String() + " joints"
	if required {
		msg = jt.String() + " joints require " + field
	}
	return &TypestateError{JointType: jt, Field: field, Required: required, err: newStructuralError(msg).err}
}

func (e *TypestateError) Error() string { return e.err.Error() }
func (e *TypestateError) Unwrap() error { return e.err }

// jointFieldRule records, per joint-type, which optional field groups
// spec.md §4.6's table allows and whether Limit is required.
type jointFieldRule struct {
	axis, calibration, dynamics, limit, mimic, safety bool
	limitRequired                                     bool
}

var jointFieldRules = map[JointType]jointFieldRule{
	Fixed:      {},
	Revolute:   {axis: true, calibration: true, dynamics: true, limit: true, mimic: true, safety: true, limitRequired: true},
	Continuous: {axis: true, calibration: true, dynamics: true, limit: true, mimic: true, safety: true},
	Prismatic:  {axis: true, calibration: true, dynamics: true, limit: true, mimic: true, safety: true, limitRequired: true},
	Planar:     {axis: true, calibration: true, dynamics: true, limit: true, mimic: true, safety: true},
	Floating:   {},
}

// SmartJointBuilder is a convenience layer over JointBuilder that uses
// per-joint-type field-presence rules to keep invalid joints from being
// built (spec.md §4.6). Go has no compile-time typestate, so the rules
// are enforced at Build time instead of by making the invalid setter
// calls themselves uncallable (spec.md §9's "runtime state machine"
// implementation strategy for non-generic/non-typestate languages).
type SmartJointBuilder struct {
	jb *JointBuilder
}

// NewSmartJointBuilder starts a typestate-checked joint builder.
func NewSmartJointBuilder(name string, jointType JointType) *SmartJointBuilder {
	return &SmartJointBuilder{jb: NewJointBuilder(name, jointType)}
}

func (b *SmartJointBuilder) WithTransform(t DeferredTransform) *SmartJointBuilder {
	b.jb.WithTransform(t)
	return b
}

func (b *SmartJointBuilder) WithAxis(axis r3.Vector) *SmartJointBuilder {
	b.jb.WithAxis(axis)
	return b
}

func (b *SmartJointBuilder) WithCalibration(c Calibration) *SmartJointBuilder {
	b.jb.WithCalibration(c)
	return b
}

func (b *SmartJointBuilder) WithDynamics(d Dynamics) *SmartJointBuilder {
	b.jb.WithDynamics(d)
	return b
}

func (b *SmartJointBuilder) WithLimit(l Limit) *SmartJointBuilder {
	b.jb.WithLimit(l)
	return b
}

func (b *SmartJointBuilder) WithMimic(jointName string, multiplier, offset float64) *SmartJointBuilder {
	b.jb.WithMimic(jointName, multiplier, offset)
	return b
}

func (b *SmartJointBuilder) WithSafetyController(s SafetyController) *SmartJointBuilder {
	b.jb.WithSafetyController(s)
	return b
}

func (b *SmartJointBuilder) WithChild(child *LinkBuilder) *SmartJointBuilder {
	b.jb.WithChild(child)
	return b
}

// CanBuild reports whether Build would currently succeed, without
// constructing an error.
func (b *SmartJointBuilder) CanBuild() bool {
	return b.validate() == nil
}

func (b *SmartJointBuilder) validate() error {
	rule, ok := jointFieldRules[b.jb.jointType]
	if !ok {
		rule = jointFieldRule{}
	}
	jt := b.jb.jointType
	if !rule.axis && b.jb.axis != nil {
		return newTypestateError(jt, "axis", false)
	}
	if !rule.calibration && b.jb.calibration != nil {
		return newTypestateError(jt, "calibration", false)
	}
	if !rule.dynamics && b.jb.dynamics != nil {
		return newTypestateError(jt, "dynamics", false)
	}
	if !rule.limit && b.jb.limit != nil {
		return newTypestateError(jt, "limit", false)
	}
	if !rule.mimic && b.jb.mimic != nil {
		return newTypestateError(jt, "mimic", false)
	}
	if !rule.safety && b.jb.safety != nil {
		return newTypestateError(jt, "safety", false)
	}
	if rule.limitRequired && b.jb.limit == nil {
		return newTypestateError(jt, "limit", true)
	}
	return nil
}

// Build validates the accumulated fields against b's joint-type rules
// and, on success, returns the plain JointBuilder ready to extend a
// chain or attach to a live link.
func (b *SmartJointBuilder) Build() (*JointBuilder, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if b.jb.jointType == Floating {
		logger.Warnw("floating joint built; many downstream URDF tools do not support it", "joint", b.jb.name)
	}
	return b.jb, nil
}
