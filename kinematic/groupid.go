package kinematic

import "strings"

// groupSegment is one piece of a tokenized name: either a literal run
// (kept verbatim, escapes and all, until ApplyGroupID commits them) or a
// group-id tag's inner id content.
type groupSegment struct {
	tag  bool
	text string
}

// tokenizeGroupTags splits s into literal and tag segments per spec.md
// §9's grammar: `[[id]]` is an unescaped tag; `[\[` and `]\]` are
// literal double brackets. A deliberate small hand-written scanner, not
// a regex, because the escape boundaries are exactly what a regex
// shortcut tends to get wrong (spec.md §9).
func tokenizeGroupTags(s string) []groupSegment {
	var segments []groupSegment
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			segments = append(segments, groupSegment{text: buf.String()})
			buf.Reset()
		}
	}

	n := len(s)
	i := 0
	for i < n {
		switch {
		case matchesAt(s, i, "[\\["):
			buf.WriteString("[\\[")
			i += 3
		case matchesAt(s, i, "]\\]"):
			buf.WriteString("]\\]")
			i += 3
		case matchesAt(s, i, "[["):
			j := i + 2
			for j+1 < n && s[j:j+2] != "]]" {
				j++
			}
			if j+1 < n {
				flush()
				segments = append(segments, groupSegment{tag: true, text: s[i+2 : j]})
				i = j + 2
			} else {
				buf.WriteString("[[")
				i += 2
			}
		default:
			buf.WriteByte(s[i])
			i++
		}
	}
	flush()
	return segments
}

func matchesAt(s string, i int, prefix string) bool {
	return i+len(prefix) <= len(s) && s[i:i+len(prefix)] == prefix
}

// changeGroupID substitutes the id carried by every tag in s with
// newID, leaving literal runs (including escaped brackets) untouched.
func changeGroupID(s, newID string) string {
	segments := tokenizeGroupTags(s)
	var out strings.Builder
	for _, seg := range segments {
		if seg.tag {
			out.WriteString("[[")
			out.WriteString(newID)
			out.WriteString("]]")
		} else {
			out.WriteString(seg.text)
		}
	}
	return out.String()
}

// applyGroupID strips the enclosing brackets from every tag (committing
// the id as a plain substring) and unescapes literal double brackets.
func applyGroupID(s string) string {
	segments := tokenizeGroupTags(s)
	var out strings.Builder
	for _, seg := range segments {
		if seg.tag {
			out.WriteString(seg.text)
		} else {
			literal := strings.ReplaceAll(seg.text, "[\\[", "[[")
			literal = strings.ReplaceAll(literal, "]\\]", "]]")
			out.WriteString(literal)
		}
	}
	return out.String()
}

// ChangeGroupID substitutes every [[…]] tag across every name in the
// chain rooted at b (link name, visual/collider names, and every
// nested joint's name/mimic reference) with [[newID]] (spec.md §4.3).
func (b *LinkBuilder) ChangeGroupID(newID string) *LinkBuilder {
	out := b.Clone()
	walkLinkNames(out, func(s string) string { return changeGroupID(s, newID) })
	return out
}

// ApplyGroupID strips the enclosing brackets from every tag across the
// chain rooted at b, committing them as plain substrings.
func (b *LinkBuilder) ApplyGroupID() *LinkBuilder {
	out := b.Clone()
	walkLinkNames(out, applyGroupID)
	return out
}

// ChangeGroupID is the joint-rooted-chain counterpart of
// LinkBuilder.ChangeGroupID.
func (b *JointBuilder) ChangeGroupID(newID string) *JointBuilder {
	out := b.Clone()
	walkJointNames(out, func(s string) string { return changeGroupID(s, newID) })
	return out
}

// ApplyGroupID is the joint-rooted-chain counterpart of
// LinkBuilder.ApplyGroupID.
func (b *JointBuilder) ApplyGroupID() *JointBuilder {
	out := b.Clone()
	walkJointNames(out, applyGroupID)
	return out
}

func walkLinkNames(lb *LinkBuilder, f func(string) string) {
	lb.name = f(lb.name)
	for _, vb := range lb.visuals {
		vb.name = f(vb.name)
	}
	for _, cb := range lb.colliders {
		cb.name = f(cb.name)
	}
	for _, jb := range lb.joints {
		walkJointNames(jb, f)
	}
}

func walkJointNames(jb *JointBuilder, f func(string) string) {
	jb.name = f(jb.name)
	if jb.mimic != nil {
		jb.mimic.JointName = f(jb.mimic.JointName)
	}
	if jb.child != nil {
		walkLinkNames(jb.child, f)
	}
}
