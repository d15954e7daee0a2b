package kinematic

// YankLink detaches the link named name, together with its entire
// subtree, and returns it reconstructed as a builder chain (spec.md
// §4.3). Because a non-root link is owned by exactly one parent joint
// (invariant 2), removing the link also removes that parent joint: the
// returned chain is rooted at the link itself, and the joint that used
// to attach it is discarded along with its own name, transform, and
// per-type parameters (use YankJoint to keep the joint's identity
// instead). Returns (nil, nil) if name is not a live link. Yanking the
// root link is not supported through this entry point — use YankRoot.
func (t *Tree) YankLink(name string) (*LinkBuilder, error) {
	link, ok := t.GetLink(name)
	if !ok {
		return nil, nil
	}
	if link.IsRoot() {
		return nil, errYankRootUnsupported
	}
	chain := rebuildLink(link)

	parentJoint := link.Parent()
	if grandparent := parentJoint.ParentLink(); grandparent != nil {
		grandparent.removeChild(parentJoint)
	}
	t.removeJoint(parentJoint.name)
	t.removeLinkSubtree(link)
	t.purgeMaterials()

	return chain, nil
}

// YankJoint detaches the joint named name, together with its entire
// subtree (its child link and every descendant), and returns it
// reconstructed as a builder chain. Returns (nil, nil) if name is not a
// live joint.
func (t *Tree) YankJoint(name string) (*JointBuilder, error) {
	joint, ok := t.GetJoint(name)
	if !ok {
		return nil, nil
	}
	chain := rebuildJoint(joint)

	if parent := joint.ParentLink(); parent != nil {
		parent.removeChild(joint)
	}
	t.removeJointSubtree(joint)
	t.purgeMaterials()

	return chain, nil
}

// YankRoot detaches the tree's entire contents (spec.md §4.3's
// Yank(name) generalized to the root, resolved per SPEC_FULL.md §5.1):
// it returns the whole tree reconstructed as a builder chain and leaves
// the Tree empty — root nil, every index cleared. The Tree value must
// not be used again afterward. Returns (nil, nil) if the tree has no
// root (already yanked).
func (t *Tree) YankRoot() (*LinkBuilder, error) {
	root := t.RootLink()
	if root == nil {
		return nil, nil
	}
	chain := rebuildLink(root)

	t.mu.Lock()
	t.root = nil
	t.newest = nil
	t.links = map[string]*Link{}
	t.joints = map[string]*Joint{}
	t.materials = map[string]*materialCell{}
	t.transmissions = map[string]*Transmission{}
	t.mu.Unlock()

	return chain, nil
}

// removeLinkSubtree drops link and every descendant link/joint from the
// tree's indexes, releasing any named-material references they held.
func (t *Tree) removeLinkSubtree(link *Link) {
	for _, v := range link.Visuals() {
		if v.Material != nil && v.Material.IsNamed() {
			t.releaseMaterial(v.Material.Name())
		}
	}
	t.removeLink(link.Name())
	for _, j := range link.Children() {
		t.removeJointSubtree(j)
	}
}

func (t *Tree) removeJointSubtree(j *Joint) {
	t.removeJoint(j.Name())
	if child := j.ChildLink(); child != nil {
		t.removeLinkSubtree(child)
	}
}
