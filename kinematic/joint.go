package kinematic

import (
	"sync"

	"github.com/golang/geo/r3"
)

// JointType is the constraint class of a Joint (spec.md §3).
type JointType int

const (
	Fixed JointType = iota
	Revolute
	Continuous
	Prismatic
	Floating
	Planar
)

func (t JointType) String() string {
	switch t {
	case Fixed:
		return "fixed"
	case Revolute:
		return "revolute"
	case Continuous:
		return "continuous"
	case Prismatic:
		return "prismatic"
	case Floating:
		return "floating"
	case Planar:
		return "planar"
	default:
		return "unknown"
	}
}

// Calibration is a joint's reference-position calibration, URDF's
// <calibration rising="" falling=""/>.
type Calibration struct {
	Rising, Falling *float64
}

// Dynamics is a joint's physical damping/friction model.
type Dynamics struct {
	Damping, Friction float64
}

// Limit is a joint's position/effort/velocity envelope. Required for
// Revolute and Prismatic joints (spec.md §4.6's table).
type Limit struct {
	Lower, Upper, Effort, Velocity float64
}

// Mimic ties this joint's position to another joint's, by name, with an
// affine relationship matching URDF's <mimic joint="" multiplier=""
// offset=""/>.
type Mimic struct {
	JointName  string
	Multiplier float64
	Offset     float64
}

// SafetyController is a joint's soft-limit safety envelope.
type SafetyController struct {
	SoftLowerLimit, SoftUpperLimit, KPosition, KVelocity float64
}

// Joint connects a parent link to a child link (spec.md §3). The
// transform is resolved (never deferred) once the joint is live: see
// DeferredTransform and attach.go. A live Joint is reachable through the
// tree's joint index as soon as attach.go registers it, several
// statements before its childLink back-reference is wired and before its
// parent link lists it as a child (spec.md §4.2 steps 2-4), so every
// field needs the same per-node lock
// link.go uses rather than relying on happens-before from the caller.
type Joint struct {
	mu sync.RWMutex

	name      string
	jointType JointType
	transform Transform

	axis        *r3.Vector
	calibration *Calibration
	dynamics    *Dynamics
	limit       *Limit
	mimic       *Mimic
	safety      *SafetyController

	parentLink *Link
	childLink  *Link
	tree       *Tree
}

// Name returns the joint's unique-within-tree name.
func (j *Joint) Name() string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.name
}

// Type returns the joint's constraint class.
func (j *Joint) Type() JointType {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.jointType
}

// Transform returns the joint's resolved parent-to-child transform.
func (j *Joint) Transform() Transform {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.transform
}

// Axis returns the joint's motion axis, or nil if absent.
func (j *Joint) Axis() *r3.Vector {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.axis
}

// Calibration returns the joint's calibration data, or nil if absent.
func (j *Joint) Calibration() *Calibration {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.calibration
}

// Dynamics returns the joint's dynamics data, or nil if absent.
func (j *Joint) Dynamics() *Dynamics {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.dynamics
}

// Limit returns the joint's limit data, or nil if absent.
func (j *Joint) Limit() *Limit {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.limit
}

// Mimic returns the joint's mimic reference, or nil if absent.
func (j *Joint) Mimic() *Mimic {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.mimic
}

// SafetyController returns the joint's safety-controller data, or nil if
// absent.
func (j *Joint) SafetyController() *SafetyController {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.safety
}

// ParentLink returns the link this joint is attached to. Never nil for a
// live joint.
func (j *Joint) ParentLink() *Link {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.parentLink
}

// ChildLink returns the link this joint owns. Never nil for a live
// joint.
func (j *Joint) ChildLink() *Link {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.childLink
}

// Tree returns the tree this joint lives in.
func (j *Joint) Tree() *Tree {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.tree
}

// setChildLink wires the joint's child-link back-reference under lock.
// Used by attach.go after the joint is already published in the tree's
// index, so this write must be synchronized against concurrent readers
// of ChildLink().
func (j *Joint) setChildLink(child *Link) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.childLink = child
}
