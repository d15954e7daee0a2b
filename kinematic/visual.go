package kinematic

// Visual is a rendering attachment on a link: optional name, optional
// transform (default identity), a geometry, and an optional material
// reference (spec.md §3).
type Visual struct {
	Name      string
	Transform Transform
	Geometry  Geometry
	Material  *Material
}

// VisualBuilder is the detached, value-typed builder for a Visual
// (spec.md §4.3): freely cloneable, composable into a link-builder
// chain, never itself live in a tree.
type VisualBuilder struct {
	name      string
	transform Transform
	geometry  Geometry
	material  *Material
}

// NewVisualBuilder starts a visual builder over the given geometry.
func NewVisualBuilder(geometry Geometry) *VisualBuilder {
	return &VisualBuilder{geometry: geometry}
}

func (b *VisualBuilder) WithName(name string) *VisualBuilder {
	b.name = name
	return b
}

func (b *VisualBuilder) WithTransform(t Transform) *VisualBuilder {
	b.transform = t
	return b
}

func (b *VisualBuilder) WithMaterial(m Material) *VisualBuilder {
	b.material = &m
	return b
}

// Build produces a detached Visual value.
func (b *VisualBuilder) Build() Visual {
	v := Visual{Name: b.name, Transform: b.transform, Geometry: b.geometry}
	if b.material != nil {
		mat := b.material.clone()
		v.Material = &mat
	}
	return v
}

func (b *VisualBuilder) clone() *VisualBuilder {
	out := *b
	return &out
}
