package kinematic

import "sync"

// Tree is the mutable, shared kinematic-tree data structure (spec.md
// §3, §4.1): a strong reference to the root link plus four name-keyed
// indexes. A tree's lifetime is bounded by its root; every other node is
// reachable only by walking the ownership spine from it.
//
// Go's tracing GC collects reference cycles, so the source's
// strong/weak split collapses here to: the indexes hold the same
// pointers the ownership spine holds, and every index mutation keeps
// the map exactly in sync with the live tree (entries are removed the
// instant a subtree is yanked, never left to decay and be pruned
// later). This is the "arena + index" alternative spec.md §9 names for
// languages without cycle-friendly shared pointers, simplified further
// because Go has no leak risk from the cycles themselves. purgeLinks/
// purgeJoints are kept for API symmetry with purgeMaterials/
// purgeTransmissions (the one index kind that does carry unreferenced
// entries worth reclaiming: materials with a zero refcount).
type Tree struct {
	mu sync.RWMutex

	root   *Link
	newest *Link

	links         map[string]*Link
	joints        map[string]*Joint
	materials     map[string]*materialCell
	transmissions map[string]*Transmission
}

func newEmptyTree() *Tree {
	return &Tree{
		links:         map[string]*Link{},
		joints:        map[string]*Joint{},
		materials:     map[string]*materialCell{},
		transmissions: map[string]*Transmission{},
	}
}

// RootLink returns the tree's root link.
func (t *Tree) RootLink() *Link {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root
}

// NewestLink returns the most recently attached link (invariant 4,
// spec.md §3).
func (t *Tree) NewestLink() *Link {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.newest
}

// GetLink looks up a link by name.
func (t *Tree) GetLink(name string) (*Link, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	l, ok := t.links[name]
	return l, ok
}

// GetJoint looks up a joint by name.
func (t *Tree) GetJoint(name string) (*Joint, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	j, ok := t.joints[name]
	return j, ok
}

// GetMaterial looks up a named material's current data by name.
func (t *Tree) GetMaterial(name string) (MaterialData, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	cell, ok := t.materials[name]
	if !ok {
		return MaterialData{}, false
	}
	return cell.data.snapshot(), true
}

// GetTransmission looks up a transmission by name.
func (t *Tree) GetTransmission(name string) (*Transmission, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tr, ok := t.transmissions[name]
	return tr, ok
}

// Links returns every live link, keyed by name.
func (t *Tree) Links() map[string]*Link {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]*Link, len(t.links))
	for k, v := range t.links {
		out[k] = v
	}
	return out
}

// Joints returns every live joint, keyed by name.
func (t *Tree) Joints() map[string]*Joint {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]*Joint, len(t.joints))
	for k, v := range t.joints {
		out[k] = v
	}
	return out
}

// Materials returns every named material's current data, keyed by name.
func (t *Tree) Materials() map[string]MaterialData {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]MaterialData, len(t.materials))
	for k, v := range t.materials {
		out[k] = v.data.snapshot()
	}
	return out
}

// Transmissions returns every live transmission, keyed by name.
func (t *Tree) Transmissions() map[string]*Transmission {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]*Transmission, len(t.transmissions))
	for k, v := range t.transmissions {
		out[k] = v
	}
	return out
}

// TryAddTransmission builds and registers a transmission (spec.md §6).
func (t *Tree) TryAddTransmission(b *TransmissionBuilder) (*Transmission, error) {
	tr, err := b.build(t)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.transmissions[tr.name]; ok && existing != tr {
		return nil, newConflictError("transmission", tr.name)
	}
	t.transmissions[tr.name] = tr
	return tr, nil
}

// tryAddLink registers l under its name. Step 2 of spec.md §4.1's
// try_add_* contract: name free → insert (and refresh newest); name
// used by l itself → Conflict (degenerate re-add); name used by
// another live link → Conflict.
func (t *Tree) tryAddLink(l *Link) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.links[l.name]; ok {
		return newConflictError("link", existing.name)
	}
	t.links[l.name] = l
	t.newest = l
	return nil
}

// tryAddJoint registers j under its name.
func (t *Tree) tryAddJoint(j *Joint) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.joints[j.name]; ok {
		return newConflictError("joint", j.name)
	}
	t.joints[j.name] = j
	return nil
}

// tryAddMaterial implements spec.md §4.1's material branch: no entry →
// new cell with refcount 1; entry with equal data → share it, bump
// refcount; entry with unequal data → Conflict.
func (t *Tree) tryAddMaterial(name string, data MaterialData) (*materialCell, error) {
	if name == "" {
		return nil, ErrMaterialNoName
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.materials[name]; ok {
		if !existing.data.snapshot().Equal(data) {
			return nil, newConflictError("material", name)
		}
		existing.refs++
		return existing, nil
	}
	cell := newMaterialCell(name, data)
	cell.refs = 1
	t.materials[name] = cell
	return cell, nil
}

func (t *Tree) releaseMaterial(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	cell, ok := t.materials[name]
	if !ok {
		return
	}
	cell.refs--
}

// purgeMaterials drops every material with a zero refcount.
func (t *Tree) purgeMaterials() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for name, cell := range t.materials {
		if cell.refs <= 0 {
			delete(t.materials, name)
		}
	}
}

// purgeTransmissions is provided for symmetry with purgeMaterials; the
// tree never holds a transmission that isn't live, so this is a no-op.
func (t *Tree) purgeTransmissions() {}

// purgeLinks is provided for symmetry; see the Tree doc comment for why
// the Go port never accumulates dead link entries to prune.
func (t *Tree) purgeLinks() {}

// purgeJoints is provided for symmetry; see purgeLinks.
func (t *Tree) purgeJoints() {}

func (t *Tree) removeLink(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.links, name)
}

func (t *Tree) removeJoint(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.joints, name)
}

// Robot is a named Tree: the serialization entry point (spec.md §6).
type Robot struct {
	*Tree
	name string
}

// Name returns the robot's name.
func (r *Robot) Name() string { return r.name }

// ToRobot wraps t as a named Robot.
func (t *Tree) ToRobot(name string) *Robot {
	return &Robot{Tree: t, name: name}
}
