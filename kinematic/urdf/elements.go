package urdf

import "encoding/xml"

// The element structs below mirror URDF's XML schema one-to-one. Only
// fields this writer emits are present; there is no reader side (the
// core never needs to parse URDF back in, only produce it).

type document struct {
	XMLName       xml.Name             `xml:"robot"`
	Name          string               `xml:"name,attr"`
	Materials     []*materialElem      `xml:"material,omitempty"`
	Links         []*linkElem          `xml:"link"`
	Joints        []*jointElem         `xml:"joint,omitempty"`
	Transmissions []*transmissionElem  `xml:"transmission,omitempty"`
}

type poseElem struct {
	XMLName xml.Name `xml:"origin"`
	XYZ     string   `xml:"xyz,attr,omitempty"`
	RPY     string   `xml:"rpy,attr,omitempty"`
}

type boxElem struct {
	Size string `xml:"size,attr"`
}

type cylinderElem struct {
	Radius string `xml:"radius,attr"`
	Length string `xml:"length,attr"`
}

type sphereElem struct {
	Radius string `xml:"radius,attr"`
}

type meshElem struct {
	Filename string `xml:"filename,attr"`
	Scale    string `xml:"scale,attr,omitempty"`
}

type geometryElem struct {
	Box      *boxElem      `xml:"box,omitempty"`
	Cylinder *cylinderElem `xml:"cylinder,omitempty"`
	Sphere   *sphereElem   `xml:"sphere,omitempty"`
	Mesh     *meshElem     `xml:"mesh,omitempty"`
}

type colorElem struct {
	RGBA string `xml:"rgba,attr"`
}

type textureElem struct {
	Filename string `xml:"filename,attr"`
}

// materialElem doubles as both a top-level named-material declaration
// (Color/Texture set) and a visual's material reference (only Name set).
type materialElem struct {
	Name    string       `xml:"name,attr,omitempty"`
	Color   *colorElem   `xml:"color,omitempty"`
	Texture *textureElem `xml:"texture,omitempty"`
}

type visualElem struct {
	Name     string        `xml:"name,attr,omitempty"`
	Origin   *poseElem     `xml:"origin,omitempty"`
	Geometry *geometryElem `xml:"geometry"`
	Material *materialElem `xml:"material,omitempty"`
}

type collisionElem struct {
	Name     string        `xml:"name,attr,omitempty"`
	Origin   *poseElem     `xml:"origin,omitempty"`
	Geometry *geometryElem `xml:"geometry"`
}

type massElem struct {
	Value string `xml:"value,attr"`
}

type inertiaElem struct {
	Ixx string `xml:"ixx,attr"`
	Ixy string `xml:"ixy,attr"`
	Ixz string `xml:"ixz,attr"`
	Iyy string `xml:"iyy,attr"`
	Iyz string `xml:"iyz,attr"`
	Izz string `xml:"izz,attr"`
}

type inertialElem struct {
	Origin  *poseElem    `xml:"origin,omitempty"`
	Mass    massElem     `xml:"mass"`
	Inertia inertiaElem  `xml:"inertia"`
}

type linkElem struct {
	Name       string           `xml:"name,attr"`
	Inertial   *inertialElem    `xml:"inertial,omitempty"`
	Visuals    []*visualElem    `xml:"visual,omitempty"`
	Collisions []*collisionElem `xml:"collision,omitempty"`
}

type linkRefElem struct {
	Link string `xml:"link,attr"`
}

type axisElem struct {
	XYZ string `xml:"xyz,attr"`
}

type calibrationElem struct {
	Rising  string `xml:"rising,attr,omitempty"`
	Falling string `xml:"falling,attr,omitempty"`
}

type dynamicsElem struct {
	Damping  string `xml:"damping,attr"`
	Friction string `xml:"friction,attr"`
}

type limitElem struct {
	Lower  string `xml:"lower,attr"`
	Upper  string `xml:"upper,attr"`
	Effort string `xml:"effort,attr"`
	Velocity string `xml:"velocity,attr"`
}

type mimicElem struct {
	Joint      string `xml:"joint,attr"`
	Multiplier string `xml:"multiplier,attr"`
	Offset     string `xml:"offset,attr"`
}

type safetyControllerElem struct {
	SoftLowerLimit string `xml:"soft_lower_limit,attr"`
	SoftUpperLimit string `xml:"soft_upper_limit,attr"`
	KPosition      string `xml:"k_position,attr"`
	KVelocity      string `xml:"k_velocity,attr"`
}

type jointElem struct {
	Name             string                `xml:"name,attr"`
	Type             string                `xml:"type,attr"`
	Origin           *poseElem             `xml:"origin,omitempty"`
	Parent           linkRefElem           `xml:"parent"`
	Child            linkRefElem           `xml:"child"`
	Axis             *axisElem             `xml:"axis,omitempty"`
	Calibration      *calibrationElem      `xml:"calibration,omitempty"`
	Dynamics         *dynamicsElem         `xml:"dynamics,omitempty"`
	Limit            *limitElem            `xml:"limit,omitempty"`
	Mimic            *mimicElem            `xml:"mimic,omitempty"`
	SafetyController *safetyControllerElem `xml:"safety_controller,omitempty"`
}

type transTypeElem struct {
	Value string `xml:",chardata"`
}

type hwInterfaceElem struct {
	Value string `xml:",chardata"`
}

type transJointElem struct {
	Name       string             `xml:"name,attr"`
	Interfaces []*hwInterfaceElem `xml:"hardwareInterface"`
}

type mechanicalReductionElem struct {
	Value string `xml:",chardata"`
}

type transActuatorElem struct {
	Name                string                   `xml:"name,attr"`
	MechanicalReduction *mechanicalReductionElem `xml:"mechanicalReduction,omitempty"`
}

type transmissionElem struct {
	Name      string               `xml:"name,attr"`
	Type      transTypeElem        `xml:"type"`
	Joints    []*transJointElem    `xml:"joint"`
	Actuators []*transActuatorElem `xml:"actuator"`
}
