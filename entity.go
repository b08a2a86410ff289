package archhive

import "unsafe"

// Entity is a recycled integer handle: an index into the world's
// entity directory. It carries no generation, so a recycled id is
// indistinguishable from its previous incarnation to anyone still
// holding it.
type Entity uint64

// directoryEntry is one slot of the entity directory: where an
// entity's record currently lives, or the zero value if the entity
// has no archetype yet (never spawned, or deleted).
type directoryEntry struct {
	archetype *archetype
	record    unsafe.Pointer
}

func (d directoryEntry) live() bool {
	return d.archetype != nil
}
