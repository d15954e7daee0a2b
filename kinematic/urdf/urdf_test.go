package urdf

import (
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/rdbuilder/kinematic"
)

func buildSimpleRobot(t *testing.T) *kinematic.Robot {
	t.Helper()
	lb := kinematic.NewLinkBuilder("base").
		WithInertial(kinematic.Inertial{Mass: 1, Ixx: 1, Iyy: 1, Izz: 1}).
		AddVisual(kinematic.NewVisualBuilder(&kinematic.Box{SideX: 1, SideY: 1, SideZ: 1}).
			WithMaterial(kinematic.NewNamedMaterial("red", kinematic.NewColorData(1, 0, 0, 1)))).
		AddJoint(kinematic.NewJointBuilder("shoulder", kinematic.Revolute).
			WithAxis(r3.Vector{X: 0, Y: 0, Z: 1}).
			WithLimit(kinematic.Limit{Lower: -1, Upper: 1, Effort: 10, Velocity: 2}).
			WithChild(kinematic.NewLinkBuilder("arm").
				AddVisual(kinematic.NewVisualBuilder(&kinematic.Cylinder{Radius: 0.1, Length: 1}).
					WithMaterial(kinematic.NewNamedMaterial("red", kinematic.NewColorData(1, 0, 0, 1))))))

	tree, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeNil)
	return tree.ToRobot("my_robot")
}

func TestToURDFBasicStructure(t *testing.T) {
	robot := buildSimpleRobot(t)
	doc, err := ToURDF(robot, DefaultConfig())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, doc, test.ShouldNotBeNil)
	test.That(t, len(doc.doc.Links), test.ShouldEqual, 2)
	test.That(t, len(doc.doc.Joints), test.ShouldEqual, 1)
	test.That(t, doc.doc.Joints[0].Name, test.ShouldEqual, "shoulder")
	test.That(t, doc.doc.Joints[0].Type, test.ShouldEqual, "revolute")
}

func TestToURDFStringHasPreamble(t *testing.T) {
	robot := buildSimpleRobot(t)
	s, err := ToURDFString(robot, DefaultConfig())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, strings.HasPrefix(s, "\xef\xbb\xbf"+`<?xml version="1.0"?>`), test.ShouldBeTrue)
	test.That(t, strings.Contains(s, `<robot name="my_robot">`), test.ShouldBeTrue)
}

func TestMaterialAllNamedOnTop(t *testing.T) {
	robot := buildSimpleRobot(t)
	cfg := DefaultConfig()
	cfg.MaterialReferences = AllNamedMaterialOnTop
	doc, err := ToURDF(robot, cfg)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(doc.doc.Materials), test.ShouldEqual, 1)
	test.That(t, doc.doc.Materials[0].Name, test.ShouldEqual, "red")
	test.That(t, doc.doc.Materials[0].Color, test.ShouldNotBeNil)

	for _, l := range doc.doc.Links {
		for _, v := range l.Visuals {
			if v.Material != nil {
				test.That(t, v.Material.Color, test.ShouldBeNil)
				test.That(t, v.Material.Name, test.ShouldEqual, "red")
			}
		}
	}
}

func TestMaterialOnlyMultiUseInlinesSingleUse(t *testing.T) {
	lb := kinematic.NewLinkBuilder("base").
		AddVisual(kinematic.NewVisualBuilder(&kinematic.Box{SideX: 1, SideY: 1, SideZ: 1}).
			WithMaterial(kinematic.NewNamedMaterial("onlyone", kinematic.NewColorData(0, 1, 0, 1))))
	tree, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeNil)
	robot := tree.ToRobot("r")

	cfg := DefaultConfig()
	cfg.MaterialReferences = OnlyMultiUseMaterials
	doc, err := ToURDF(robot, cfg)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(doc.doc.Materials), test.ShouldEqual, 0)
	test.That(t, doc.doc.Links[0].Visuals[0].Material.Color, test.ShouldNotBeNil)
}

func TestHardwareInterfaceTargetPrefix(t *testing.T) {
	robot := buildSimpleRobot(t)
	_, err := robot.TryAddTransmission(
		kinematic.NewTransmissionBuilder("trans1", kinematic.SimpleTransmission).
			AddJoint("shoulder", kinematic.PositionJointInterface).
			AddActuator("motor1", nil),
	)
	test.That(t, err, test.ShouldBeNil)

	standard, err := ToURDF(robot, Config{URDFTarget: Standard})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, standard.doc.Transmissions[0].Joints[0].Interfaces[0].Value, test.ShouldEqual, "hardware_interface/PositionJointInterface")

	gazebo, err := ToURDF(robot, Config{URDFTarget: Gazebo})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gazebo.doc.Transmissions[0].Joints[0].Interfaces[0].Value, test.ShouldEqual, "PositionJointInterface")
}

func TestToURDFRejectsUnresolvedMimic(t *testing.T) {
	lb := kinematic.NewLinkBuilder("base").
		AddJoint(kinematic.NewJointBuilder("j1", kinematic.Revolute).
			WithLimit(kinematic.Limit{Lower: -1, Upper: 1, Effort: 1, Velocity: 1}).
			WithMimic("does_not_exist", 1, 0).
			WithChild(kinematic.NewLinkBuilder("child")))
	tree, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeNil)

	_, err = ToURDF(tree.ToRobot("r"), DefaultConfig())
	test.That(t, err, test.ShouldBeError)
}

func TestIndentModePrefix(t *testing.T) {
	m := Indent(' ', 4)
	test.That(t, m.prefix(), test.ShouldEqual, "    ")
	test.That(t, NoIndent().prefix(), test.ShouldEqual, "")
}
