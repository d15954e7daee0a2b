package kinematic

// VisualShapeRecord is one visual's transform+geometry, captured for use
// by a deferred joint-transform resolver (spec.md §4.5).
type VisualShapeRecord struct {
	Transform Transform
	Geometry  Geometry
}

// LinkShapeData carries a parent link's realized geometry at the moment
// a child joint-chain is attached to it: the ordered visual shape
// records, plus a designated "main" geometry record (the first visual,
// or a zero-radius sphere at identity if the parent has no visuals).
type LinkShapeData struct {
	Visuals []VisualShapeRecord
	Main    VisualShapeRecord
}

func newLinkShapeData(visuals []Visual) LinkShapeData {
	records := make([]VisualShapeRecord, 0, len(visuals))
	for _, v := range visuals {
		records = append(records, VisualShapeRecord{Transform: v.Transform, Geometry: v.Geometry})
	}
	main := VisualShapeRecord{Transform: IdentityTransform(), Geometry: &Sphere{Radius: 0}}
	if len(records) > 0 {
		main = records[0]
	}
	return LinkShapeData{Visuals: records, Main: main}
}

// TransformResolver is a pure function from a parent link's realized
// shape to a concrete transform, called exactly once at attach time
// (spec.md §4.2 step 1, §4.5, §9 "Deferred transforms").
type TransformResolver func(LinkShapeData) Transform

// DeferredTransform is the tagged union "direct transform" vs "resolver
// function of parent-link shape" a JointBuilder carries for its
// transform field.
type DeferredTransform struct {
	direct   *Transform
	resolver TransformResolver
}

// Direct wraps a concrete transform: resolve() always returns it
// unchanged, regardless of parent shape.
func Direct(t Transform) DeferredTransform {
	return DeferredTransform{direct: &t}
}

// Deferred wraps a resolver that is invoked with the parent link's shape
// data at attach time.
func Deferred(resolver TransformResolver) DeferredTransform {
	return DeferredTransform{resolver: resolver}
}

func (d DeferredTransform) resolve(shape LinkShapeData) Transform {
	if d.direct != nil {
		return *d.direct
	}
	if d.resolver != nil {
		return d.resolver(shape)
	}
	return IdentityTransform()
}

func (d DeferredTransform) clone() DeferredTransform {
	if d.direct != nil {
		t := d.direct.Clone()
		return DeferredTransform{direct: &t}
	}
	return d
}
