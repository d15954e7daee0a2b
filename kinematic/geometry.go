package kinematic

import (
	"math"

	"github.com/golang/geo/r3"
)

// Geometry is the capability set every shape primitive implements:
// volume, surface area, an axis-aligned bounding half-extent, mirroring,
// cloning, and value equality (spec.md §4.7).
type Geometry interface {
	Volume() float64
	SurfaceArea() float64
	// BoundingHalfExtents returns the local axis-aligned half-extents
	// from the geometry's own origin.
	BoundingHalfExtents() r3.Vector
	// Mirror reflects the geometry across axis. Non-chiral primitives
	// (Box, Cylinder, Sphere) return themselves unchanged; Mesh returns
	// errGeometryMirrorMesh.
	Mirror(axis Axis) (Geometry, error)
	Clone() Geometry
	kind() string
}

// GeometriesEqual compares two geometries by volume, surface area, and
// bounding box, per spec.md §4.7's definition of abstract equality.
func GeometriesEqual(a, b Geometry) bool {
	if a == nil || b == nil {
		return a == b
	}
	const eps = 1e-9
	ae, be := a.BoundingHalfExtents(), b.BoundingHalfExtents()
	return almostEqualFloat(a.Volume(), b.Volume(), eps) &&
		almostEqualFloat(a.SurfaceArea(), b.SurfaceArea(), eps) &&
		almostEqualFloat(ae.X, be.X, eps) && almostEqualFloat(ae.Y, be.Y, eps) && almostEqualFloat(ae.Z, be.Z, eps)
}

// Box is a rectangular cuboid given its three full side lengths.
type Box struct {
	SideX, SideY, SideZ float64
}

func (b *Box) Volume() float64      { return b.SideX * b.SideY * b.SideZ }
func (b *Box) SurfaceArea() float64 {
	return 2 * (b.SideX*b.SideY + b.SideX*b.SideZ + b.SideY*b.SideZ)
}
func (b *Box) BoundingHalfExtents() r3.Vector {
	return r3.Vector{X: b.SideX / 2, Y: b.SideY / 2, Z: b.SideZ / 2}
}
func (b *Box) Mirror(Axis) (Geometry, error) { return &Box{b.SideX, b.SideY, b.SideZ}, nil }
func (b *Box) Clone() Geometry               { return &Box{b.SideX, b.SideY, b.SideZ} }
func (b *Box) kind() string                  { return "box" }

// Cylinder is a right circular cylinder of radius r and length L, aligned
// with the local Z axis (URDF convention).
type Cylinder struct {
	Radius, Length float64
}

func (c *Cylinder) Volume() float64      { return math.Pi * c.Radius * c.Radius * c.Length }
func (c *Cylinder) SurfaceArea() float64 {
	return 2*math.Pi*c.Radius*c.Radius + 2*math.Pi*c.Radius*c.Length
}
func (c *Cylinder) BoundingHalfExtents() r3.Vector {
	return r3.Vector{X: c.Radius, Y: c.Radius, Z: c.Length / 2}
}
func (c *Cylinder) Mirror(Axis) (Geometry, error) { return &Cylinder{c.Radius, c.Length}, nil }
func (c *Cylinder) Clone() Geometry               { return &Cylinder{c.Radius, c.Length} }
func (c *Cylinder) kind() string                  { return "cylinder" }

// Sphere is centered at the local origin with the given radius.
type Sphere struct {
	Radius float64
}

func (s *Sphere) Volume() float64                  { return 4. / 3. * math.Pi * s.Radius * s.Radius * s.Radius }
func (s *Sphere) SurfaceArea() float64              { return 4 * math.Pi * s.Radius * s.Radius }
func (s *Sphere) BoundingHalfExtents() r3.Vector    { return r3.Vector{X: s.Radius, Y: s.Radius, Z: s.Radius} }
func (s *Sphere) Mirror(Axis) (Geometry, error)     { return &Sphere{s.Radius}, nil }
func (s *Sphere) Clone() Geometry                   { return &Sphere{s.Radius} }
func (s *Sphere) kind() string                      { return "sphere" }

// Mesh references an external mesh file. Volume and surface area are not
// required to be exact (spec.md §4.7); BoundingBox is caller-supplied in
// the mesh's unscaled units, and Scale is applied to it by Volume,
// SurfaceArea and BoundingHalfExtents.
type Mesh struct {
	Path      string
	BoundingBox r3.Vector // full extents, not half
	Scale       r3.Vector // zero-value Scale is treated as (1,1,1)
}

func (m *Mesh) scale() r3.Vector {
	if m.Scale == (r3.Vector{}) {
		return r3.Vector{X: 1, Y: 1, Z: 1}
	}
	return m.Scale
}

func (m *Mesh) Volume() float64 {
	s := m.scale()
	return m.BoundingBox.X * s.X * m.BoundingBox.Y * s.Y * m.BoundingBox.Z * s.Z
}

func (m *Mesh) SurfaceArea() float64 {
	s := m.scale()
	x, y, z := m.BoundingBox.X*s.X, m.BoundingBox.Y*s.Y, m.BoundingBox.Z*s.Z
	return 2 * (x*y + x*z + y*z)
}

func (m *Mesh) BoundingHalfExtents() r3.Vector {
	s := m.scale()
	return r3.Vector{X: m.BoundingBox.X * s.X / 2, Y: m.BoundingBox.Y * s.Y / 2, Z: m.BoundingBox.Z * s.Z / 2}
}

func (m *Mesh) Mirror(Axis) (Geometry, error) { return nil, errGeometryMirrorMesh }

func (m *Mesh) Clone() Geometry {
	return &Mesh{Path: m.Path, BoundingBox: m.BoundingBox, Scale: m.Scale}
}

func (m *Mesh) kind() string { return "mesh" }
