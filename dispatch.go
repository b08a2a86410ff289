package archhive

import "unsafe"

// Ctx is the per-invocation context a system callback receives: a
// base pointer into the current slot plus the offset vector for its
// operand list, built once per matched archetype and reused for every
// slot in it. It is stack-resident; dispatch never allocates per
// invocation.
type Ctx struct {
	base     unsafe.Pointer
	offsets  []uint32
	userData unsafe.Pointer
}

// Operand returns a pointer to the i-th included operand (in
// requirement-string order) for the entity at the current slot.
func (c *Ctx) Operand(i int) unsafe.Pointer {
	return unsafe.Add(c.base, c.offsets[i])
}

// UserData returns the user_data pointer the system was registered
// with.
func (c *Ctx) UserData() unsafe.Pointer {
	return c.userData
}

// dispatch invokes s's callback once for every live slot of every
// archetype s matches. Within a system, archetypes are visited in
// link order; within an archetype, regions are visited head-to-tail
// (most-recently-allocated first); within a region, slots are
// visited in ascending index order.
//
// A system callback must not mutate the world; World's reentrancy
// guard rejects such calls while a dispatch is in progress.
func dispatch(s *system, dt float64) {
	for _, a := range s.matchedOrder {
		s.prepareFor(a)
		ctx := Ctx{offsets: s.offsetScratch, userData: s.userData}

		if a.zeroFamily {
			for i := 0; i < a.liveCount; i++ {
				s.callback(&ctx, dt)
			}
			continue
		}

		for r := a.regions; r != nil; r = r.next {
			for i := 0; i < r.count; i++ {
				if r.dead != nil {
					if _, dead := r.dead[i]; dead {
						continue
					}
				}
				ctx.base = r.slotPointer(i, a.layout.familySize)
				s.callback(&ctx, dt)
			}
		}
	}
}
