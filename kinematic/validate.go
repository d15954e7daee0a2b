package kinematic

// Validate performs the checks spec.md documents as "implementer's
// choice": this module resolves that choice as lazy, serializer-side
// validation (SPEC_FULL.md §5.3), but also exposes it here for callers
// that want to check eagerly before handing a tree to urdf.ToURDF.
// Currently this checks that every joint's Mimic reference names a live
// joint in the same tree.
func (t *Tree) Validate() error {
	for _, j := range t.Joints() {
		if m := j.Mimic(); m != nil {
			if _, ok := t.GetJoint(m.JointName); !ok {
				return newStructuralError("joint %q mimics unknown joint %q", j.Name(), m.JointName)
			}
		}
	}
	return nil
}
