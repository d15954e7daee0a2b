package kinematic

import (
	"testing"

	"go.viam.com/test"
)

func TestBuildTreeTrivial(t *testing.T) {
	lb := NewLinkBuilder("base")
	tree, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tree, test.ShouldNotBeNil)
	test.That(t, tree.RootLink().Name(), test.ShouldEqual, "base")
	test.That(t, tree.RootLink().IsRoot(), test.ShouldBeTrue)
	test.That(t, tree.NewestLink().Name(), test.ShouldEqual, "base")
}

func TestBuildTreeEmptyNameRejected(t *testing.T) {
	lb := NewLinkBuilder("")
	_, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeError)
}

func TestAttachChain(t *testing.T) {
	lb := NewLinkBuilder("base").
		AddJoint(NewJointBuilder("shoulder", Revolute).
			WithLimit(Limit{Lower: -1, Upper: 1, Effort: 10, Velocity: 1}).
			WithChild(NewLinkBuilder("upper_arm").
				AddJoint(NewJointBuilder("elbow", Revolute).
					WithLimit(Limit{Lower: -1, Upper: 1, Effort: 10, Velocity: 1}).
					WithChild(NewLinkBuilder("forearm")))))

	tree, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeNil)

	_, ok := tree.GetLink("upper_arm")
	test.That(t, ok, test.ShouldBeTrue)
	forearm, ok := tree.GetLink("forearm")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, forearm.IsRoot(), test.ShouldBeFalse)

	elbow, ok := tree.GetJoint("elbow")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, elbow.ChildLink().Name(), test.ShouldEqual, "forearm")
	test.That(t, elbow.ParentLink().Name(), test.ShouldEqual, "upper_arm")
}

func TestDuplicateLinkNameRejected(t *testing.T) {
	lb := NewLinkBuilder("base").
		AddJoint(NewJointBuilder("j1", Fixed).WithChild(NewLinkBuilder("dup"))).
		AddJoint(NewJointBuilder("j2", Fixed).WithChild(NewLinkBuilder("dup")))

	_, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeError)

	// building the same chain again fails the same way; BuildTree returns
	// no tree on error, so partial index state is not observable here
	_, err = NewLinkBuilder("base").
		AddJoint(NewJointBuilder("j1", Fixed).WithChild(NewLinkBuilder("dup"))).
		AddJoint(NewJointBuilder("j2", Fixed).WithChild(NewLinkBuilder("dup"))).
		BuildTree()
	test.That(t, err, test.ShouldBeError)
}

func TestDuplicateJointNameRejected(t *testing.T) {
	lb := NewLinkBuilder("base").
		AddJoint(NewJointBuilder("dup", Fixed).WithChild(NewLinkBuilder("l1").
			AddJoint(NewJointBuilder("dup", Fixed).WithChild(NewLinkBuilder("l2")))))

	tree, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeError)
	test.That(t, tree, test.ShouldBeNil)
}

func TestTryAttachChildToDetachedLink(t *testing.T) {
	detached := &Link{name: "floating"}
	_, err := detached.TryAttachChild(NewJointBuilder("j", Fixed).WithChild(NewLinkBuilder("c")))
	test.That(t, err, test.ShouldBeError)
}

func TestBoxGeometryVolumeAndBounds(t *testing.T) {
	b := &Box{SideX: 2, SideY: 3, SideZ: 4}
	test.That(t, b.Volume(), test.ShouldEqual, 24.0)
	test.That(t, b.SurfaceArea(), test.ShouldEqual, 2*(2*3+2*4+3*4))
	ext := b.BoundingHalfExtents()
	test.That(t, ext.X, test.ShouldEqual, 1.0)
	test.That(t, ext.Y, test.ShouldEqual, 1.5)
	test.That(t, ext.Z, test.ShouldEqual, 2.0)
}

func TestGeometriesEqual(t *testing.T) {
	a := &Box{SideX: 1, SideY: 1, SideZ: 1}
	b := &Box{SideX: 1, SideY: 1, SideZ: 1}
	c := &Sphere{Radius: 1}
	test.That(t, GeometriesEqual(a, b), test.ShouldBeTrue)
	test.That(t, GeometriesEqual(a, c), test.ShouldBeFalse)
}

func TestNamedMaterialDeduplication(t *testing.T) {
	red := NewColorData(1, 0, 0, 1)
	lb := NewLinkBuilder("base").
		AddVisual(NewVisualBuilder(&Box{SideX: 1, SideY: 1, SideZ: 1}).WithMaterial(NewNamedMaterial("red", red))).
		AddJoint(NewJointBuilder("j", Fixed).WithChild(
			NewLinkBuilder("child").
				AddVisual(NewVisualBuilder(&Sphere{Radius: 1}).WithMaterial(NewNamedMaterial("red", red)))))

	tree, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeNil)

	mats := tree.Materials()
	test.That(t, len(mats), test.ShouldEqual, 1)
	data, ok := tree.GetMaterial("red")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, data.Equal(red), test.ShouldBeTrue)
}

func TestNamedMaterialConflictRejected(t *testing.T) {
	lb := NewLinkBuilder("base").
		AddVisual(NewVisualBuilder(&Box{SideX: 1, SideY: 1, SideZ: 1}).WithMaterial(NewNamedMaterial("red", NewColorData(1, 0, 0, 1)))).
		AddJoint(NewJointBuilder("j", Fixed).WithChild(
			NewLinkBuilder("child").
				AddVisual(NewVisualBuilder(&Sphere{Radius: 1}).WithMaterial(NewNamedMaterial("red", NewColorData(0, 1, 0, 1))))))

	_, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeError)
}

func TestRebuildRoundTrip(t *testing.T) {
	original := NewLinkBuilder("base").
		WithInertial(Inertial{Mass: 2, Ixx: 1, Iyy: 1, Izz: 1}).
		AddVisual(NewVisualBuilder(&Box{SideX: 1, SideY: 2, SideZ: 3}).WithName("v1")).
		AddJoint(NewJointBuilder("j", Revolute).
			WithLimit(Limit{Lower: -1, Upper: 1, Effort: 1, Velocity: 1}).
			WithChild(NewLinkBuilder("child")))

	tree, err := original.BuildTree()
	test.That(t, err, test.ShouldBeNil)

	chain := tree.RootLink().Rebuild()
	tree2, err := chain.BuildTree()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tree2.RootLink().Name(), test.ShouldEqual, "base")
	child, ok := tree2.GetLink("child")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, child.Parent().Name(), test.ShouldEqual, "j")
}

func TestYankJointAndRebuild(t *testing.T) {
	lb := NewLinkBuilder("base").
		AddJoint(NewJointBuilder("j", Fixed).WithChild(NewLinkBuilder("child").
			AddJoint(NewJointBuilder("j2", Fixed).WithChild(NewLinkBuilder("grandchild")))))
	tree, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeNil)

	chain, err := tree.YankJoint("j")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, chain, test.ShouldNotBeNil)
	test.That(t, chain.Name(), test.ShouldEqual, "j")

	_, ok := tree.GetLink("child")
	test.That(t, ok, test.ShouldBeFalse)
	_, ok = tree.GetJoint("j")
	test.That(t, ok, test.ShouldBeFalse)
	_, ok = tree.GetLink("grandchild")
	test.That(t, ok, test.ShouldBeFalse)

	rebuiltTree, err := NewLinkBuilder("newbase").AddJoint(chain.Clone()).BuildTree()
	test.That(t, err, test.ShouldBeNil)
	_, ok = rebuiltTree.GetLink("grandchild")
	test.That(t, ok, test.ShouldBeTrue)
}

func TestYankLinkCascadesParentJoint(t *testing.T) {
	lb := NewLinkBuilder("base").
		AddJoint(NewJointBuilder("j", Fixed).WithChild(NewLinkBuilder("child")))
	tree, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeNil)

	chain, err := tree.YankLink("child")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, chain.Name(), test.ShouldEqual, "child")

	_, ok := tree.GetJoint("j")
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, len(tree.RootLink().Children()), test.ShouldEqual, 0)
}

func TestYankRootConsumesTree(t *testing.T) {
	tree, err := NewLinkBuilder("base").BuildTree()
	test.That(t, err, test.ShouldBeNil)

	chain, err := tree.YankRoot()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, chain.Name(), test.ShouldEqual, "base")
	test.That(t, tree.RootLink(), test.ShouldBeNil)
	test.That(t, len(tree.Links()), test.ShouldEqual, 0)

	rebuilt, err := chain.BuildTree()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rebuilt.RootLink().Name(), test.ShouldEqual, "base")
}

func TestYankLinkOnRootUnsupported(t *testing.T) {
	lb := NewLinkBuilder("base").
		AddJoint(NewJointBuilder("j", Fixed).WithChild(NewLinkBuilder("child")))
	tree, err := lb.BuildTree()
	test.That(t, err, test.ShouldBeNil)

	_, err = tree.YankLink("base")
	test.That(t, err, test.ShouldBeError)
}
