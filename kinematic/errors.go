package kinematic

import "github.com/pkg/errors"

// ConflictError is returned by the tree's try-add entry points when a name
// is already in use by a different live node.
type ConflictError struct {
	Kind string // "link", "joint", "material", "transmission"
	Name string
	err  error
}

func newConflictError(kind, name string) *ConflictError {
	return &ConflictError{
		Kind: kind,
		Name: name,
		err:  errors.Errorf("%s with name %q already exists in tree", kind, name),
	}
}

func (e *ConflictError) Error() string { return e.err.Error() }
func (e *ConflictError) Unwrap() error { return e.err }

// ErrMaterialNoName is returned when an operation required a named
// material but received an unnamed one.
var ErrMaterialNoName = errors.New("material has no name")

// StructuralError covers attachment-time topology problems that are not
// simple name conflicts, such as a joint builder with no child link or an
// unresolved mimic reference. Attaching to a detached node and mirroring
// a mesh are reported with the plain sentinel errors at the end of this
// file instead.
type StructuralError struct {
	err error
}

func newStructuralError(format string, args ...interface{}) *StructuralError {
	return &StructuralError{err: errors.Errorf(format, args...)}
}

func (e *StructuralError) Error() string { return e.err.Error() }
func (e *StructuralError) Unwrap() error { return e.err }

// LockError is returned when a fallible try-acquire on a guarded value
// (the material cells) fails because of contention or a previously
// poisoned lock. Tree indexes and nodes use plain blocking locks and
// never return it.
type LockError struct {
	Resource string
	Poisoned bool
	err      error
}

func newLockError(resource string, poisoned bool) *LockError {
	msg := "could not acquire lock on " + resource
	if poisoned {
		msg = "lock on " + resource + " is poisoned"
	}
	return &LockError{Resource: resource, Poisoned: poisoned, err: errors.New(msg)}
}

func (e *LockError) Error() string { return e.err.Error() }
func (e *LockError) Unwrap() error { return e.err }

// BuildTransmissionError wraps an invalid joint reference discovered while
// building a Transmission.
type BuildTransmissionError struct {
	JointName string
	err       error
}

func newBuildTransmissionError(jointName string) *BuildTransmissionError {
	return &BuildTransmissionError{
		JointName: jointName,
		err:       errors.Errorf("transmission references unknown joint %q", jointName),
	}
}

func (e *BuildTransmissionError) Error() string { return e.err.Error() }
func (e *BuildTransmissionError) Unwrap() error { return e.err }

var (
	errGeometryMirrorMesh  = errors.New("mesh geometry cannot be mirrored automatically; caller is responsible for supplying a pre-mirrored mesh")
	errDetachedNode        = errors.New("cannot attach to a link that is not part of a tree")
	errYankRootUnsupported = errors.New("yanking the root link consumes the tree")
	errEmptyName           = errors.New("name must not be empty")
	errNilPose             = errors.New("pose must not be nil")
)
