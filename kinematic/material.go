package kinematic

// MaterialData is the appearance payload of a material: either an RGBA
// color or a texture file path (spec.md §3). Component ranges of Color
// are not enforced, matching the Rust source this was distilled from.
type MaterialData struct {
	IsTexture bool
	R, G, B, A float64
	TexturePath string
}

// NewColorData builds an RGBA color material payload.
func NewColorData(r, g, b, a float64) MaterialData {
	return MaterialData{R: r, G: g, B: b, A: a}
}

// NewTextureData builds a texture-path material payload.
func NewTextureData(path string) MaterialData {
	return MaterialData{IsTexture: true, TexturePath: path}
}

// Equal compares two material payloads field-by-field.
func (d MaterialData) Equal(o MaterialData) bool {
	if d.IsTexture != o.IsTexture {
		return false
	}
	if d.IsTexture {
		return d.TexturePath == o.TexturePath
	}
	const eps = 1e-9
	return almostEqualFloat(d.R, o.R, eps) && almostEqualFloat(d.G, o.G, eps) &&
		almostEqualFloat(d.B, o.B, eps) && almostEqualFloat(d.A, o.A, eps)
}

// materialCell is the tree-owned, reference-counted, lockable storage
// cell a named material is promoted into once a visual attaches it
// (spec.md §3, §4.4). The lock is the one place the core performs
// destructive poison recovery.
type materialCell struct {
	name string
	data *guarded[MaterialData]
	refs int
}

func newMaterialCell(name string, data MaterialData) *materialCell {
	return &materialCell{name: name, data: newGuarded(data)}
}

// materialStage tracks whether a named Material's data is owned locally
// (not yet attached to any tree) or shared via the tree's material index.
type materialStage int

const (
	stagePreInit materialStage = iota
	stageInitialized
)

// Material is either unnamed (data carried directly) or named (data
// pre-init locally, or initialized as a shared tree-owned cell).
type Material struct {
	name string // empty ⇒ unnamed

	// unnamed path
	data MaterialData

	// named path
	stage     materialStage
	localData MaterialData
	shared    *materialCell
}

// NewUnnamedMaterial builds a material that carries its data directly and
// never deduplicates with any other material.
func NewUnnamedMaterial(data MaterialData) Material {
	return Material{data: data}
}

// NewNamedMaterial builds a pre-init named material. It is promoted to a
// shared cell the first time it is attached to a tree (spec.md §4.4).
func NewNamedMaterial(name string, data MaterialData) Material {
	return Material{name: name, stage: stagePreInit, localData: data}
}

// Name returns the material's name, or "" if unnamed.
func (m Material) Name() string { return m.name }

// IsNamed reports whether m carries a name.
func (m Material) IsNamed() bool { return m.name != "" }

// Data returns the material's current payload, resolving through the
// shared cell if the material has been initialized.
func (m Material) Data() MaterialData {
	if m.name == "" {
		return m.data
	}
	if m.stage == stageInitialized && m.shared != nil {
		return m.shared.data.snapshot()
	}
	return m.localData
}

// SetData updates the material's payload in place: the shared cell if
// initialized (visible to every other Material referencing the same
// name), or the local copy otherwise.
func (m *Material) SetData(data MaterialData) error {
	if m.name != "" && m.stage == stageInitialized && m.shared != nil {
		return m.shared.data.withLock("material "+m.name, func(v *MaterialData) error {
			*v = data
			return nil
		})
	}
	if m.name == "" {
		m.data = data
	} else {
		m.localData = data
	}
	return nil
}

// Equal compares two materials' current data, per spec.md §4.4: equal if
// both resolve to the same shared cell, or if their current values
// compare equal by field. If one side's cell lock is poisoned, the
// surviving side's value is written over the poisoned one (documented
// destructive recovery).
func (m Material) Equal(o Material) bool {
	if m.name != "" && o.name != "" && m.stage == stageInitialized && o.stage == stageInitialized && m.shared == o.shared && m.shared != nil {
		return true
	}
	mData, mErr := m.tryData()
	oData, oErr := o.tryData()
	if mErr != nil && !isPoisonedLock(mErr) {
		mData, mErr = m.Data(), nil
	}
	if oErr != nil && !isPoisonedLock(oErr) {
		oData, oErr = o.Data(), nil
	}
	switch {
	case mErr == nil && oErr == nil:
		return mData.Equal(oData)
	case mErr != nil && oErr == nil:
		logger.Warnw("recovering poisoned material lock from peer value", "material", m.name)
		if m.shared != nil {
			m.shared.data.recoverPoison(oData)
		}
		return true
	case mErr == nil && oErr != nil:
		logger.Warnw("recovering poisoned material lock from peer value", "material", o.name)
		if o.shared != nil {
			o.shared.data.recoverPoison(mData)
		}
		return true
	default:
		return false
	}
}

func isPoisonedLock(err error) bool {
	le, ok := err.(*LockError)
	return ok && le.Poisoned
}

func (m Material) tryData() (MaterialData, error) {
	if m.name != "" && m.stage == stageInitialized && m.shared != nil {
		var out MaterialData
		err := m.shared.data.withRLock("material "+m.name, func(v MaterialData) error {
			out = v
			return nil
		})
		return out, err
	}
	return m.Data(), nil
}

func (m Material) clone() Material {
	return m
}
