package kinematic

import (
	"testing"

	"go.viam.com/test"
)

func TestTokenizeGroupTags(t *testing.T) {
	segs := tokenizeGroupTags("leg[[side]]_upper")
	test.That(t, len(segs), test.ShouldEqual, 3)
	test.That(t, segs[0].tag, test.ShouldBeFalse)
	test.That(t, segs[0].text, test.ShouldEqual, "leg")
	test.That(t, segs[1].tag, test.ShouldBeTrue)
	test.That(t, segs[1].text, test.ShouldEqual, "side")
	test.That(t, segs[2].tag, test.ShouldBeFalse)
	test.That(t, segs[2].text, test.ShouldEqual, "_upper")
}

func TestTokenizeEscapedBrackets(t *testing.T) {
	segs := tokenizeGroupTags("literal[\\[bracket]\\]here")
	test.That(t, len(segs), test.ShouldEqual, 1)
	test.That(t, segs[0].tag, test.ShouldBeFalse)
	test.That(t, segs[0].text, test.ShouldEqual, "literal[\\[bracket]\\]here")
}

func TestChangeGroupID(t *testing.T) {
	out := changeGroupID("leg[[side]]_joint", "left")
	test.That(t, out, test.ShouldEqual, "leg[[left]]_joint")
}

func TestApplyGroupIDCommitsAndUnescapes(t *testing.T) {
	out := applyGroupID("leg[[left]]_and_literal[\\[bracket]\\]")
	test.That(t, out, test.ShouldEqual, "legleft_and_literal[[bracket]]")
}

func TestApplyGroupIDOnChain(t *testing.T) {
	lb := NewLinkBuilder("leg[[id]]").
		AddJoint(NewJointBuilder("hip[[id]]", Fixed).WithChild(NewLinkBuilder("foot[[id]]")))

	applied := lb.ApplyGroupID()
	test.That(t, applied.name, test.ShouldEqual, "legid")
	test.That(t, applied.joints[0].name, test.ShouldEqual, "hipid")
	test.That(t, applied.joints[0].child.name, test.ShouldEqual, "footid")

	// the original chain must be untouched
	test.That(t, lb.name, test.ShouldEqual, "leg[[id]]")
}

func TestChangeGroupIDUpdatesMimicReference(t *testing.T) {
	jb := NewJointBuilder("follower[[id]]", Revolute).
		WithLimit(Limit{Lower: -1, Upper: 1, Effort: 1, Velocity: 1}).
		WithMimic("leader[[id]]", 1, 0).
		WithChild(NewLinkBuilder("child[[id]]"))

	renamed := jb.ChangeGroupID("left")
	test.That(t, renamed.mimic.JointName, test.ShouldEqual, "leader[[left]]")
}
