package archhive

import "github.com/TheBitDrifter/mask"

// typeMask is a bitset over registered type ids, used both as an
// archetype's key and as a system's include/exclude filter. It is
// comparable, so it can key the world's archetype table directly.
type typeMask = mask.Mask

// markType sets bit id in m.
func markType(m *typeMask, id TypeID) {
	m.Mark(uint32(id))
}

// bitMask returns a mask with only bit id set, a one-off probe mask.
func bitMask(id TypeID) typeMask {
	var m typeMask
	m.Mark(uint32(id))
	return m
}

// hasType reports whether bit id is set in m, by building a one-bit
// probe mask and checking containment.
func hasType(m typeMask, id TypeID) bool {
	return m.ContainsAll(bitMask(id))
}

// forEachSetType iterates the set bits of m in ascending order, up to
// width (exclusive). width is always the registry's type count at the
// time the mask was built, so bits at or beyond it are never
// meaningful and are skipped even if present.
func forEachSetType(m typeMask, width int, fn func(TypeID)) {
	for i := 0; i < width; i++ {
		if hasType(m, TypeID(i)) {
			fn(TypeID(i))
		}
	}
}

// firstSetType returns the lowest set bit below width, if any.
func firstSetType(m typeMask, width int) (TypeID, bool) {
	for i := 0; i < width; i++ {
		if hasType(m, TypeID(i)) {
			return TypeID(i), true
		}
	}
	return 0, false
}

// isMatch implements the match-graph predicate: m must contain every
// included type and none of the excluded ones. Subset, not proper
// subset: extra components on m beyond inc never disqualify a match.
func isMatch(m, inc, exc typeMask) bool {
	// an empty exclude mask excludes nothing; it is checked explicitly
	// rather than passed to ContainsNone
	return m.ContainsAll(inc) && (exc == (typeMask{}) || m.ContainsNone(exc))
}
