package archhive

// layoutEntry is one component's placement within a packed family
// record.
type layoutEntry struct {
	id TypeID
	// size is the slot's recorded size, which may be larger than the
	// type's logical size if a trailing pad was absorbed into it;
	// see logicalSize.
	size   uint32
	offset uint32
}

// layout is the packed per-entity record for one archetype: an
// ordered (id, size, offset) table, the total family size, and the
// family's alignment (the largest alignment among its members).
type layout struct {
	entries     []layoutEntry
	familySize  uint32
	alignment   uint32
	offsetByID  map[TypeID]uint32
	logicalSize map[TypeID]uint32
}

// offsetOf returns the byte offset of id within the family record.
func (l *layout) offsetOf(id TypeID) (uint32, bool) {
	off, ok := l.offsetByID[id]
	return off, ok
}

// sizeOf returns the logical (un-padded) byte size of id's component.
func (l *layout) sizeOf(id TypeID) uint32 {
	return l.logicalSize[id]
}

// planLayout packs the members of mask into a family record: the
// widest member (ties broken by lowest bit index) is placed at offset
// 0, then each remaining hole left by alignment padding is greedily
// filled by the best-fitting remaining member; a hole nothing fits
// into is absorbed into the previous entry's recorded size so later
// offsets stay aligned.
func planLayout(reg *typeRegistry, m typeMask) layout {
	width := reg.count()

	var members []TypeID
	forEachSetType(m, width, func(id TypeID) {
		members = append(members, id)
	})

	l := layout{
		offsetByID:  make(map[TypeID]uint32, len(members)),
		logicalSize: make(map[TypeID]uint32, len(members)),
	}
	for _, id := range members {
		l.logicalSize[id] = reg.size(id)
	}

	if len(members) == 0 {
		return l
	}

	// Family alignment is the widest alignment across all members.
	for _, id := range members {
		if a := reg.alignment(id); a > l.alignment {
			l.alignment = a
		}
	}

	// Widest member (ties -> lowest bit index, i.e. first in `members`
	// since forEachSetType walks in ascending id order) goes first.
	widest := members[0]
	for _, id := range members[1:] {
		if reg.size(id) > reg.size(widest) {
			widest = id
		}
	}

	remaining := make([]TypeID, 0, len(members)-1)
	for _, id := range members {
		if id != widest {
			remaining = append(remaining, id)
		}
	}

	l.entries = append(l.entries, layoutEntry{id: widest, size: reg.size(widest)})

	remainingBytes := padBytes(reg.size(widest), l.alignment)

	for len(remaining) > 0 {
		// Provisional pick: the first remaining type in scan order.
		bestIdx := 0
		bestSize := reg.size(remaining[0])

		// Greedy hole-fill: promote the best fitter, preferring an
		// exact match for an early exit.
		for i := 1; i < len(remaining); i++ {
			size := reg.size(remaining[i])
			if size > remainingBytes {
				continue
			}
			if size == remainingBytes {
				bestIdx, bestSize = i, size
				break
			}
			if bestSize > remainingBytes || size > bestSize {
				bestIdx, bestSize = i, size
			}
		}

		chosen := remaining[bestIdx]
		chosenSize := bestSize

		if chosenSize > remainingBytes {
			// No fitter exists: absorb the hole into the previous entry.
			prev := &l.entries[len(l.entries)-1]
			prev.size += remainingBytes
		}

		l.entries = append(l.entries, layoutEntry{id: chosen, size: chosenSize})
		remainingBytes = padBytes(chosenSize, l.alignment)

		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	for i := range l.entries {
		l.entries[i].offset = l.familySize
		l.offsetByID[l.entries[i].id] = l.familySize
		l.familySize += l.entries[i].size
	}

	Config.logf("planLayout(): family size: %d, alignment: %d", l.familySize, l.alignment)

	return l
}

// padBytes returns the hole-fill window available after placing a
// member of the given size: alignment - (size % alignment),
// deliberately unclamped. When size is an exact multiple of alignment
// this yields alignment itself rather than 0, so the next placement
// still gets a full alignment-sized window to fill; clamping it to 0
// would mis-pack that member one alignment unit short and break its
// offset alignment.
func padBytes(size, alignment uint32) uint32 {
	if alignment == 0 {
		return 0
	}
	return alignment - size%alignment
}
