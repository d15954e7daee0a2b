package kinematic

// attachCtx tracks everything inserted during one attachment call so a
// failure partway through can be unwound completely (spec.md §4.2 step
// 6, §7's staged-commit policy: validate, mutate, wire back-references;
// any failure undoes every partial insert before returning).
type attachCtx struct {
	tree              *Tree
	insertedLinks     []string
	insertedJoints    []string
	promotedMaterials []string
}

func (c *attachCtx) rollback() {
	for i := len(c.insertedJoints) - 1; i >= 0; i-- {
		c.tree.removeJoint(c.insertedJoints[i])
	}
	for i := len(c.insertedLinks) - 1; i >= 0; i-- {
		c.tree.removeLink(c.insertedLinks[i])
	}
	for _, name := range c.promotedMaterials {
		c.tree.releaseMaterial(name)
	}
	if len(c.promotedMaterials) > 0 {
		c.tree.purgeMaterials()
	}
}

// newTreeFromRoot materializes lb (and its entire nested chain) as the
// root of a brand-new tree: LinkBuilder.BuildTree's terminal operation.
func newTreeFromRoot(lb *LinkBuilder) (*Tree, error) {
	if lb.name == "" {
		return nil, errEmptyName
	}
	tree := newEmptyTree()
	ctx := &attachCtx{tree: tree}
	root, err := attachLinkBuilder(ctx, nil, lb)
	if err != nil {
		ctx.rollback()
		return nil, err
	}
	tree.root = root
	return tree, nil
}

// TryAttachChild is the one operation by which a tree grows (spec.md
// §4.2): it attaches jb, and its entire nested chain, as a new child of
// l. l must already be part of a tree.
func (l *Link) TryAttachChild(jb *JointBuilder) (*Joint, error) {
	tree := l.Tree()
	if tree == nil {
		return nil, errDetachedNode
	}
	prevNewest := tree.NewestLink()
	ctx := &attachCtx{tree: tree}
	joint, err := attachJointBuilder(ctx, l, jb)
	if err != nil {
		ctx.rollback()
		tree.mu.Lock()
		if cur := tree.newest; cur != nil && tree.links[cur.name] != cur {
			tree.newest = prevNewest
		}
		tree.mu.Unlock()
		return nil, err
	}
	return joint, nil
}

// AttachJointChain is an alias for TryAttachChild, named to match
// spec.md §6's surface for attaching a pre-built (already-cloned)
// builder chain; the attachment semantics are identical either way.
func (l *Link) AttachJointChain(chain *JointBuilder) (*Joint, error) {
	return l.TryAttachChild(chain)
}

func attachLinkBuilder(ctx *attachCtx, parent *Joint, lb *LinkBuilder) (*Link, error) {
	if lb == nil {
		return nil, newStructuralError("joint builder has no child link")
	}
	if lb.name == "" {
		return nil, errEmptyName
	}

	link := &Link{
		name:     lb.name,
		inertial: lb.inertial,
		tree:     ctx.tree,
		parent:   parent,
	}
	for _, vb := range lb.visuals {
		link.visuals = append(link.visuals, vb.Build())
	}
	for _, cb := range lb.colliders {
		link.colliders = append(link.colliders, cb.Build())
	}

	if err := ctx.tree.tryAddLink(link); err != nil {
		return nil, err
	}
	ctx.insertedLinks = append(ctx.insertedLinks, link.name)

	for i := range link.visuals {
		if err := promoteMaterial(ctx, &link.visuals[i]); err != nil {
			return nil, err
		}
	}

	for _, jb := range lb.joints {
		if _, err := attachJointBuilder(ctx, link, jb); err != nil {
			return nil, err
		}
	}

	return link, nil
}

func attachJointBuilder(ctx *attachCtx, parentLink *Link, jb *JointBuilder) (*Joint, error) {
	if jb == nil {
		return nil, newStructuralError("missing joint builder")
	}
	if jb.name == "" {
		return nil, errEmptyName
	}
	if jb.child == nil {
		return nil, newStructuralError("joint %q has no child link builder", jb.name)
	}

	shape := parentLink.shapeData()
	transform := jb.transform.resolve(shape)

	joint := &Joint{
		name:      jb.name,
		jointType: jb.jointType,
		transform: transform,
		parentLink: parentLink,
		tree:      ctx.tree,
	}
	if jb.axis != nil {
		axis := *jb.axis
		joint.axis = &axis
	}
	if jb.calibration != nil {
		c := *jb.calibration
		joint.calibration = &c
	}
	if jb.dynamics != nil {
		d := *jb.dynamics
		joint.dynamics = &d
	}
	if jb.limit != nil {
		lim := *jb.limit
		joint.limit = &lim
	}
	if jb.mimic != nil {
		m := *jb.mimic
		joint.mimic = &m
	}
	if jb.safety != nil {
		s := *jb.safety
		joint.safety = &s
	}

	if joint.jointType == Floating {
		logger.Warnw("floating joint attached; many downstream URDF tools do not support it", "joint", joint.name)
	}

	if err := ctx.tree.tryAddJoint(joint); err != nil {
		return nil, err
	}
	ctx.insertedJoints = append(ctx.insertedJoints, joint.name)

	child, err := attachLinkBuilder(ctx, joint, jb.child)
	if err != nil {
		return nil, err
	}
	joint.setChildLink(child)
	parentLink.appendChild(joint)

	return joint, nil
}

// promoteMaterial runs spec.md §4.4's material-initialization step for
// one visual: a named material is promoted into the tree's material
// index the moment its carrying visual is attached.
func promoteMaterial(ctx *attachCtx, v *Visual) error {
	if v.Material == nil || !v.Material.IsNamed() {
		return nil
	}
	cell, err := ctx.tree.tryAddMaterial(v.Material.name, v.Material.Data())
	if err != nil {
		return err
	}
	v.Material.stage = stageInitialized
	v.Material.shared = cell
	ctx.promotedMaterials = append(ctx.promotedMaterials, v.Material.name)
	return nil
}
