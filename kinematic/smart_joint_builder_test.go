package kinematic

import (
	"errors"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestSmartJointBuilderRevoluteRequiresLimit(t *testing.T) {
	b := NewSmartJointBuilder("j", Revolute).WithAxis(r3.Vector{X: 0, Y: 0, Z: 1})
	test.That(t, b.CanBuild(), test.ShouldBeFalse)
	_, err := b.Build()
	test.That(t, err, test.ShouldBeError)

	b.WithLimit(Limit{Lower: -1, Upper: 1, Effort: 1, Velocity: 1})
	test.That(t, b.CanBuild(), test.ShouldBeTrue)
	jb, err := b.Build()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, jb, test.ShouldNotBeNil)
}

func TestSmartJointBuilderFixedRejectsAxis(t *testing.T) {
	b := NewSmartJointBuilder("j", Fixed).WithAxis(r3.Vector{X: 1, Y: 0, Z: 0})
	test.That(t, b.CanBuild(), test.ShouldBeFalse)
	_, err := b.Build()
	test.That(t, err, test.ShouldBeError)

	var typestateErr *TypestateError
	test.That(t, errors.As(err, &typestateErr), test.ShouldBeTrue)
	test.That(t, typestateErr.Field, test.ShouldEqual, "axis")
	test.That(t, typestateErr.Required, test.ShouldBeFalse)
}

func TestSmartJointBuilderFloatingAcceptedWithNoFields(t *testing.T) {
	b := NewSmartJointBuilder("j", Floating)
	test.That(t, b.CanBuild(), test.ShouldBeTrue)
	jb, err := b.Build()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, jb, test.ShouldNotBeNil)
}

func TestSmartJointBuilderContinuousNoLimitRequired(t *testing.T) {
	b := NewSmartJointBuilder("j", Continuous).WithAxis(r3.Vector{X: 0, Y: 1, Z: 0})
	test.That(t, b.CanBuild(), test.ShouldBeTrue)
}
