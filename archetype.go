package archhive

import "unsafe"

// archetypeID uniquely identifies an archetype within one world.
type archetypeID uint32

// archetype owns the storage for every entity sharing one exact
// type-set: the packed layout, a head-first linked list of regions,
// a free-slot pool of previously-freed record pointers, and the set
// of systems the match graph has linked to it.
type archetype struct {
	id     archetypeID
	mask   typeMask
	layout layout

	regions   *region // head of the linked list; most-recently-allocated first
	freeSlots []unsafe.Pointer

	// zeroFamily archetypes (family size 0, tag-only) never allocate a
	// region: per-slot pointers are all nil and liveCount grows
	// without bound.
	zeroFamily bool
	liveCount  int

	matchedSystems map[*system]struct{}
}

func newArchetype(id archetypeID, reg *typeRegistry, m typeMask) *archetype {
	l := planLayout(reg, m)
	return &archetype{
		id:             id,
		mask:           m,
		layout:         l,
		zeroFamily:     l.familySize == 0,
		matchedSystems: make(map[*system]struct{}),
	}
}

// regionDelta records how many slots a reservation consumed from one
// region, so an aborted reservation can undo it.
type regionDelta struct {
	r     *region
	delta int
}

// drainedSlot records a free-pool slot handed out by a reservation,
// so an abort can restore its dead mark.
type drainedSlot struct {
	r   *region
	idx int
}

// reservation is the transactional handle returned by reserveSlots:
// an ordered list of per-slot base pointers covering the requested
// count, plus everything needed to commit or abort the change.
type reservation struct {
	archetype *archetype
	slots     []unsafe.Pointer // empty for a zeroFamily archetype

	drainedFromFree int // how many of `slots`' leading entries came from the free pool
	drained         []drainedSlot
	regionDeltas    []regionDelta
	zeroFamilyCount int
}

// reserveSlots reserves n new family slots in a, draining the
// free-slot pool first (LIFO) and extending or prepending regions for
// the remainder. The returned reservation must be committed or
// aborted by the caller.
func (a *archetype) reserveSlots(n int) *reservation {
	if a.zeroFamily {
		return &reservation{archetype: a, zeroFamilyCount: n}
	}

	res := &reservation{archetype: a}

	drain := n
	if drain > len(a.freeSlots) {
		drain = len(a.freeSlots)
	}
	for i := 0; i < drain; i++ {
		ptr := a.freeSlots[len(a.freeSlots)-1-i]
		res.slots = append(res.slots, ptr)
		if r, idx, ok := a.locateSlot(ptr); ok {
			if r.dead != nil {
				delete(r.dead, idx)
			}
			res.drained = append(res.drained, drainedSlot{r: r, idx: idx})
		}
		// a recycled slot must read as zero, same as one carved from a
		// freshly allocated region
		zeroSlot(ptr, a.layout.familySize)
	}
	res.drainedFromFree = drain

	remaining := n - drain
	for remaining > 0 {
		head := a.regions
		if head == nil || head.free() == 0 {
			head = newRegion(a.layout.familySize, a.layout.alignment)
			head.next = a.regions
			a.regions = head
		}
		take := head.free()
		if take > remaining {
			take = remaining
		}
		for i := 0; i < take; i++ {
			res.slots = append(res.slots, head.slotPointer(head.count+i, a.layout.familySize))
		}
		head.count += take
		res.regionDeltas = append(res.regionDeltas, regionDelta{r: head, delta: take})
		remaining -= take
	}

	return res
}

// commit applies the free-pool shrink. Region counts were already
// updated eagerly during reserveSlots, so committing a non-zero-family
// reservation only needs to drop the drained tail of the free pool.
func (res *reservation) commit() {
	a := res.archetype
	if a.zeroFamily {
		a.liveCount += res.zeroFamilyCount
		return
	}
	a.freeSlots = a.freeSlots[:len(a.freeSlots)-res.drainedFromFree]
}

// abort undoes a reservation that will not be used: region counts
// consumed from existing or freshly-allocated regions are rolled
// back, so those slots become reservable again and the capacity is
// never lost even though the reservation didn't commit. The free
// pool itself is untouched since its drained tail is not removed
// until commit; only the drained slots' dead marks need restoring.
func (res *reservation) abort() {
	a := res.archetype
	if a.zeroFamily {
		return
	}
	for _, d := range res.regionDeltas {
		d.r.count -= d.delta
	}
	for _, d := range res.drained {
		if d.r.dead == nil {
			d.r.dead = make(map[int]struct{})
		}
		d.r.dead[d.idx] = struct{}{}
	}
}

// locateSlot finds the region owning ptr and ptr's slot index within
// it, by address range.
func (a *archetype) locateSlot(ptr unsafe.Pointer) (*region, int, bool) {
	familySize := uintptr(a.layout.familySize)
	if familySize == 0 {
		return nil, 0, false
	}
	target := uintptr(ptr)
	for r := a.regions; r != nil; r = r.next {
		base := uintptr(r.ptr)
		end := base + uintptr(r.capacity)*familySize
		if target >= base && target < end {
			return r, int((target - base) / familySize), true
		}
	}
	return nil, 0, false
}

// releaseSlot returns a record pointer to the free-slot pool. Regions
// are never compacted: migrating an entity out of this archetype
// leaves a hole at its old slot, so the region also marks that index
// dead to keep dispatch from revisiting it.
func (a *archetype) releaseSlot(ptr unsafe.Pointer) {
	if a.zeroFamily {
		a.liveCount--
		return
	}
	a.freeSlots = append(a.freeSlots, ptr)
	if r, idx, ok := a.locateSlot(ptr); ok {
		if r.dead == nil {
			r.dead = make(map[int]struct{})
		}
		r.dead[idx] = struct{}{}
	}
}

// copyIntersecting copies every component common to both src's and
// dst's archetypes, byte for byte, using each archetype's own offset
// table. This is the primitive entity migration is built on.
func copyIntersecting(srcA *archetype, src unsafe.Pointer, dstA *archetype, dst unsafe.Pointer, reg *typeRegistry) {
	if src == nil || dst == nil {
		return
	}
	width := reg.count()
	forEachSetType(srcA.mask, width, func(id TypeID) {
		if !hasType(dstA.mask, id) {
			return
		}
		srcOff, _ := srcA.layout.offsetOf(id)
		dstOff, _ := dstA.layout.offsetOf(id)
		size := reg.size(id)
		if size == 0 {
			return
		}
		srcBytes := unsafe.Slice((*byte)(unsafe.Add(src, srcOff)), size)
		dstBytes := unsafe.Slice((*byte)(unsafe.Add(dst, dstOff)), size)
		copy(dstBytes, srcBytes)
	})
}
