package urdf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/rdbuilder/kinematic"
)

// Document is a built URDF document, ready to be rendered to bytes or a
// string per the Config it was built with.
type Document struct {
	doc    *document
	config Config
}

// ToURDF walks robot and builds a Document (spec.md §6). It performs the
// lazy mimic-reference check (SPEC_FULL.md §5.3) by calling
// robot.Validate() before walking; a tree with a dangling mimic
// reference is rejected here rather than producing unreferenceable XML.
func ToURDF(robot *kinematic.Robot, config Config) (*Document, error) {
	if err := robot.Validate(); err != nil {
		return nil, errors.Wrap(err, "urdf: invalid tree")
	}

	c := &converter{tree: robot.Tree, config: config}
	c.countMaterialUses()

	d := &document{Name: robot.Name()}

	for _, name := range c.sortedMaterialNames() {
		if c.shouldEmitTopLevel(name) {
			data, _ := robot.GetMaterial(name)
			d.Materials = append(d.Materials, materialElemFrom(name, data))
		}
	}

	root := robot.RootLink()
	if root != nil {
		c.walkLink(d, root)
	}

	for _, name := range sortedTransmissionNames(robot.Transmissions()) {
		tr, _ := robot.GetTransmission(name)
		d.Transmissions = append(d.Transmissions, c.transmissionElem(tr))
	}

	return &Document{doc: d, config: config}, nil
}

// ToURDFString is the convenience form spec.md's distillation dropped
// but the original exposes alongside the writer (SPEC_FULL.md §4):
// build and render in one call.
func ToURDFString(robot *kinematic.Robot, config Config) (string, error) {
	d, err := ToURDF(robot, config)
	if err != nil {
		return "", err
	}
	return d.String()
}

// converter carries the per-document bookkeeping ToURDF needs beyond a
// single pass: material-use counts (for MaterialReferencesMode) and the
// target config.
type converter struct {
	tree   *kinematic.Tree
	config Config

	materialUses map[string]int
}

func (c *converter) countMaterialUses() {
	c.materialUses = map[string]int{}
	for _, link := range c.tree.Links() {
		for _, v := range link.Visuals() {
			if v.Material != nil && v.Material.IsNamed() {
				c.materialUses[v.Material.Name()]++
			}
		}
	}
}

func (c *converter) sortedMaterialNames() []string {
	names := make([]string, 0, len(c.materialUses))
	for name := range c.materialUses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// shouldEmitTopLevel reports whether a named material gets its own
// top-level <material> declaration, per the configured
// MaterialReferencesMode.
func (c *converter) shouldEmitTopLevel(name string) bool {
	if c.config.MaterialReferences == AllNamedMaterialOnTop {
		return true
	}
	return c.materialUses[name] >= 2
}

func sortedTransmissionNames(m map[string]*kinematic.Transmission) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *converter) walkLink(d *document, link *kinematic.Link) {
	d.Links = append(d.Links, c.linkElem(link))
	children := link.Children()
	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })
	for _, j := range children {
		d.Joints = append(d.Joints, c.jointElem(j))
		c.walkLink(d, j.ChildLink())
	}
}

func (c *converter) linkElem(link *kinematic.Link) *linkElem {
	le := &linkElem{Name: link.Name()}
	if in := link.Inertial(); in != nil {
		le.Inertial = inertialElemFrom(*in)
	}
	for _, v := range link.Visuals() {
		le.Visuals = append(le.Visuals, c.visualElem(v))
	}
	for _, col := range link.Colliders() {
		le.Collisions = append(le.Collisions, collisionElemFrom(col))
	}
	return le
}

func (c *converter) visualElem(v kinematic.Visual) *visualElem {
	ve := &visualElem{
		Name:     v.Name,
		Origin:   poseElemFrom(v.Transform),
		Geometry: geometryElemFrom(v.Geometry),
	}
	if v.Material != nil {
		ve.Material = c.materialRefElem(*v.Material)
	}
	return ve
}

// materialRefElem renders a visual's material reference: a bare
// name-only element when the material is named and already declared
// top-level, or a full inline declaration otherwise (unnamed materials,
// and named materials the configured MaterialReferencesMode chose not
// to hoist).
func (c *converter) materialRefElem(m kinematic.Material) *materialElem {
	if m.IsNamed() && c.shouldEmitTopLevel(m.Name()) {
		return &materialElem{Name: m.Name()}
	}
	return materialElemFrom(m.Name(), m.Data())
}

func materialElemFrom(name string, data kinematic.MaterialData) *materialElem {
	me := &materialElem{Name: name}
	if data.IsTexture {
		me.Texture = &textureElem{Filename: data.TexturePath}
	} else {
		me.Color = &colorElem{RGBA: fmt.Sprintf("%s %s %s %s",
			formatFloat(data.R), formatFloat(data.G), formatFloat(data.B), formatFloat(data.A))}
	}
	return me
}

func collisionElemFrom(col kinematic.Collision) *collisionElem {
	return &collisionElem{
		Name:     col.Name,
		Origin:   poseElemFrom(col.Transform),
		Geometry: geometryElemFrom(col.Geometry),
	}
}

func inertialElemFrom(in kinematic.Inertial) *inertialElem {
	return &inertialElem{
		Origin: poseElemFrom(in.Origin),
		Mass:   massElem{Value: formatFloat(in.Mass)},
		Inertia: inertiaElem{
			Ixx: formatFloat(in.Ixx), Ixy: formatFloat(in.Ixy), Ixz: formatFloat(in.Ixz),
			Iyy: formatFloat(in.Iyy), Iyz: formatFloat(in.Iyz), Izz: formatFloat(in.Izz),
		},
	}
}

func geometryElemFrom(g kinematic.Geometry) *geometryElem {
	switch shape := g.(type) {
	case *kinematic.Box:
		return &geometryElem{Box: &boxElem{Size: vec3String(r3.Vector{X: shape.SideX, Y: shape.SideY, Z: shape.SideZ})}}
	case *kinematic.Cylinder:
		return &geometryElem{Cylinder: &cylinderElem{Radius: formatFloat(shape.Radius), Length: formatFloat(shape.Length)}}
	case *kinematic.Sphere:
		return &geometryElem{Sphere: &sphereElem{Radius: formatFloat(shape.Radius)}}
	case *kinematic.Mesh:
		me := &meshElem{Filename: shape.Path}
		if shape.Scale != (r3.Vector{}) {
			me.Scale = vec3String(shape.Scale)
		}
		return &geometryElem{Mesh: me}
	default:
		return &geometryElem{}
	}
}

func (c *converter) jointElem(j *kinematic.Joint) *jointElem {
	je := &jointElem{
		Name:   j.Name(),
		Type:   j.Type().String(),
		Origin: poseElemFrom(j.Transform()),
		Parent: linkRefElem{Link: j.ParentLink().Name()},
		Child:  linkRefElem{Link: j.ChildLink().Name()},
	}
	if axis := j.Axis(); axis != nil {
		je.Axis = &axisElem{XYZ: vec3String(*axis)}
	}
	if cal := j.Calibration(); cal != nil {
		ce := &calibrationElem{}
		if cal.Rising != nil {
			ce.Rising = formatFloat(*cal.Rising)
		}
		if cal.Falling != nil {
			ce.Falling = formatFloat(*cal.Falling)
		}
		je.Calibration = ce
	}
	if dyn := j.Dynamics(); dyn != nil {
		je.Dynamics = &dynamicsElem{Damping: formatFloat(dyn.Damping), Friction: formatFloat(dyn.Friction)}
	}
	if lim := j.Limit(); lim != nil {
		je.Limit = &limitElem{
			Lower: formatFloat(lim.Lower), Upper: formatFloat(lim.Upper),
			Effort: formatFloat(lim.Effort), Velocity: formatFloat(lim.Velocity),
		}
	}
	if m := j.Mimic(); m != nil {
		je.Mimic = &mimicElem{Joint: m.JointName, Multiplier: formatFloat(m.Multiplier), Offset: formatFloat(m.Offset)}
	}
	if sc := j.SafetyController(); sc != nil {
		je.SafetyController = &safetyControllerElem{
			SoftLowerLimit: formatFloat(sc.SoftLowerLimit), SoftUpperLimit: formatFloat(sc.SoftUpperLimit),
			KPosition: formatFloat(sc.KPosition), KVelocity: formatFloat(sc.KVelocity),
		}
	}
	return je
}

func (c *converter) transmissionElem(tr *kinematic.Transmission) *transmissionElem {
	te := &transmissionElem{Name: tr.Name(), Type: transTypeElem{Value: tr.Type().String()}}
	for _, jr := range tr.Joints() {
		tj := &transJointElem{Name: jr.JointName}
		for _, hw := range jr.Interfaces {
			tj.Interfaces = append(tj.Interfaces, &hwInterfaceElem{Value: c.hardwareInterfaceName(hw)})
		}
		te.Joints = append(te.Joints, tj)
	}
	for _, a := range tr.Actuators() {
		ta := &transActuatorElem{Name: a.Name}
		if a.MechanicalReduction != nil {
			ta.MechanicalReduction = &mechanicalReductionElem{Value: formatFloat(*a.MechanicalReduction)}
		}
		te.Actuators = append(te.Actuators, ta)
	}
	return te
}

// hardwareInterfaceName applies the URDFTargetMode prefixing rule
// (spec.md §6): Standard gets ros_control's "hardware_interface/"
// namespace prefix, Gazebo gets the bare interface name.
func (c *converter) hardwareInterfaceName(hw kinematic.HardwareInterface) string {
	if c.config.URDFTarget == Gazebo {
		return string(hw)
	}
	return "hardware_interface/" + string(hw)
}

func poseElemFrom(t kinematic.Transform) *poseElem {
	pe := &poseElem{}
	if t.Translation != nil {
		pe.XYZ = vec3String(*t.Translation)
	}
	if t.Rotation != nil {
		pe.RPY = fmt.Sprintf("%s %s %s", formatFloat(t.Rotation.Roll), formatFloat(t.Rotation.Pitch), formatFloat(t.Rotation.Yaw))
	}
	if pe.XYZ == "" && pe.RPY == "" {
		return nil
	}
	return pe
}

func vec3String(v r3.Vector) string {
	return fmt.Sprintf("%s %s %s", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Bytes renders the document, applying the configured XMLMode and
// prepending the UTF-8 BOM and XML declaration the original writer
// emits (SPEC_FULL.md §4).
func (d *Document) Bytes() ([]byte, error) {
	var body []byte
	var err error
	if d.config.XMLMode.indent {
		body, err = xml.MarshalIndent(d.doc, "", d.config.XMLMode.prefix())
	} else {
		body, err = xml.Marshal(d.doc)
	}
	if err != nil {
		return nil, errors.Wrap(err, "urdf: marshal")
	}

	var buf bytes.Buffer
	buf.WriteString("\xef\xbb\xbf")
	buf.WriteString(`<?xml version="1.0"?>`)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// String is Bytes rendered as a string, trimming nothing: the BOM is
// part of the returned text, matching the byte form.
func (d *Document) String() (string, error) {
	b, err := d.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteTo satisfies io.WriterTo for callers that want to stream the
// document directly, e.g. to a file.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	b, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}
