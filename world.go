package archhive

import (
	"sort"
	"unsafe"

	"github.com/TheBitDrifter/bark"
)

// World is the top-level container: a type registry, an archetype
// table keyed by mask, a system table keyed by name, an entity
// directory, and a recycled-entity stack. A World must be used by at
// most one goroutine at a time.
type World struct {
	types typeRegistry

	systems map[string]*system
	// systemOrder preserves registration order for Step.
	systemOrder []*system

	archetypes   map[typeMask]*archetype
	archetypeSeq archetypeID

	directory        []directoryEntry
	recycledEntities []Entity

	// lastSpawned is reallocated on every Spawn call; its previous
	// contents are invalidated.
	lastSpawned []Entity

	// dispatching guards against reentrant mutation of the world from
	// inside a system callback.
	dispatching bool
}

// NewWorld constructs an empty world.
func NewWorld() *World {
	return &World{
		systems:    make(map[string]*system),
		archetypes: make(map[typeMask]*archetype),
	}
}

// RegisterType adds a component type descriptor to the world's
// registry, returning its stable TypeID.
func (w *World) RegisterType(name string, size, alignment uint32) (TypeID, error) {
	if w.dispatching {
		return 0, bark.AddTrace(ReentrancyError{Op: "RegisterType"})
	}
	id, err := w.types.register(TypeDesc{Name: name, Size: size, Alignment: alignment})
	if err != nil {
		return 0, err
	}
	Config.logf("register_type(): %q id=%d size=%d align=%d", name, id, size, alignment)
	return id, nil
}

// RegisterSystem parses desc's requirement string, links it against
// every existing archetype, and adds it to the system table.
func (w *World) RegisterSystem(desc SystemDesc) error {
	if w.dispatching {
		return bark.AddTrace(ReentrancyError{Op: "RegisterSystem"})
	}
	if _, exists := w.systems[desc.Name]; exists {
		return DuplicateNameError{Kind: "system", Name: desc.Name}
	}
	s, err := newSystem(&w.types, desc)
	if err != nil {
		return err
	}

	archetypes := make([]*archetype, 0, len(w.archetypes))
	for _, a := range w.archetypes {
		archetypes = append(archetypes, a)
	}
	// link in creation order so the system's dispatch order does not
	// depend on map iteration order
	sort.Slice(archetypes, func(i, j int) bool { return archetypes[i].id < archetypes[j].id })
	linkSystem(s, archetypes)

	w.systems[desc.Name] = s
	w.systemOrder = append(w.systemOrder, s)
	Config.logf("register_system(): %q requirements=%q", desc.Name, desc.Requirements)
	return nil
}

// archetypeFor locates or creates the archetype for mask m, linking a
// freshly created one against every registered system.
func (w *World) archetypeFor(m typeMask) *archetype {
	if a, ok := w.archetypes[m]; ok {
		return a
	}
	a := newArchetype(w.archetypeSeq, &w.types, m)
	w.archetypeSeq++
	linkArchetype(a, w.systemOrder)
	w.archetypes[m] = a
	return a
}

// allocEntity pops a recycled id if one is available, otherwise mints
// a fresh one and grows the directory.
func (w *World) allocEntity() Entity {
	if n := len(w.recycledEntities); n > 0 {
		e := w.recycledEntities[n-1]
		w.recycledEntities = w.recycledEntities[:n-1]
		return e
	}
	e := Entity(len(w.directory))
	w.directory = append(w.directory, directoryEntry{})
	return e
}

// Spawn creates count entities matching requirements (an
// inclusion-only requirement string) and returns their ids. The
// returned slice aliases the world's last-spawned buffer and is
// invalidated by the next Spawn call.
func (w *World) Spawn(count int, requirements string) ([]Entity, error) {
	if w.dispatching {
		return nil, bark.AddTrace(ReentrancyError{Op: "Spawn"})
	}
	if count <= 0 {
		w.lastSpawned = w.lastSpawned[:0]
		return w.lastSpawned, nil
	}

	m, err := parseSpawnMask(&w.types, requirements)
	if err != nil {
		return nil, err
	}
	target := w.archetypeFor(m)

	w.lastSpawned = make([]Entity, count)
	for i := 0; i < count; i++ {
		w.lastSpawned[i] = w.allocEntity()
	}

	res := target.reserveSlots(count)

	for i, e := range w.lastSpawned {
		var newPtr unsafe.Pointer
		if !target.zeroFamily {
			newPtr = res.slots[i]
		}

		prev := w.directory[e]
		if prev.live() {
			copyIntersecting(prev.archetype, prev.record, target, newPtr, &w.types)
			prev.archetype.releaseSlot(prev.record)
		}

		w.directory[e] = directoryEntry{archetype: target, record: newPtr}
	}

	res.commit()

	Config.logf("spawn(): count=%d requirements=%q", count, requirements)
	return w.lastSpawned, nil
}

// Migrate moves a live entity into the archetype for requirements,
// copying every intersecting component byte-for-byte and releasing
// its old slot. Components the new archetype adds read as zero;
// components it drops are discarded. Component pointers previously
// obtained for the entity are invalidated.
func (w *World) Migrate(entity Entity, requirements string) error {
	if w.dispatching {
		return bark.AddTrace(ReentrancyError{Op: "Migrate"})
	}
	if int(entity) < 0 || int(entity) >= len(w.directory) || !w.directory[entity].live() {
		return NoSuchEntityError{Entity: entity}
	}

	m, err := parseSpawnMask(&w.types, requirements)
	if err != nil {
		return err
	}
	target := w.archetypeFor(m)
	prev := w.directory[entity]

	if prev.archetype == target {
		return nil
	}

	res := target.reserveSlots(1)
	var newPtr unsafe.Pointer
	if !target.zeroFamily {
		newPtr = res.slots[0]
	}

	copyIntersecting(prev.archetype, prev.record, target, newPtr, &w.types)
	prev.archetype.releaseSlot(prev.record)
	res.commit()

	w.directory[entity] = directoryEntry{archetype: target, record: newPtr}
	Config.logf("migrate(): entity=%d requirements=%q", entity, requirements)
	return nil
}

// Destroy releases entity's slot back to its archetype's free-slot
// pool and pushes its id onto the recycled-entity stack for reuse by
// a later Spawn. Ids carry no generation, so a caller still holding
// the id cannot tell a recycled entity from the destroyed one.
func (w *World) Destroy(entity Entity) error {
	if w.dispatching {
		return bark.AddTrace(ReentrancyError{Op: "Destroy"})
	}
	if int(entity) < 0 || int(entity) >= len(w.directory) || !w.directory[entity].live() {
		return NoSuchEntityError{Entity: entity}
	}
	d := w.directory[entity]
	d.archetype.releaseSlot(d.record)
	w.directory[entity] = directoryEntry{}
	w.recycledEntities = append(w.recycledEntities, entity)
	Config.logf("destroy(): entity=%d", entity)
	return nil
}

// GetComponent returns a pointer to entity's component of the named
// type, or an error if the entity isn't live, the type isn't
// registered, or the entity's archetype doesn't include it. The
// pointer is stable until the entity migrates.
func (w *World) GetComponent(entity Entity, name string) (unsafe.Pointer, error) {
	if int(entity) < 0 || int(entity) >= len(w.directory) {
		return nil, NoSuchEntityError{Entity: entity}
	}
	d := w.directory[entity]
	if !d.live() {
		return nil, NoSuchEntityError{Entity: entity}
	}
	id, ok := w.types.find(name)
	if !ok {
		return nil, UnknownTypeError{Name: name}
	}
	if !hasType(d.archetype.mask, id) {
		return nil, NoSuchComponentError{Entity: entity, Name: name}
	}
	off, _ := d.archetype.layout.offsetOf(id)
	return unsafe.Add(d.record, off), nil
}

// Run looks up a registered system by name and dispatches it once.
func (w *World) Run(name string, dt float64) error {
	if w.dispatching {
		return bark.AddTrace(ReentrancyError{Op: "Run"})
	}
	s, ok := w.systems[name]
	if !ok {
		return NoSuchSystemError{Name: name}
	}
	w.dispatching = true
	defer func() { w.dispatching = false }()
	dispatch(s, dt)
	return nil
}

// Step dispatches every registered system once, in registration
// order. A Step issued from inside a system callback is a no-op:
// nesting a dispatch would disarm the reentrancy guard for the rest
// of the outer one.
func (w *World) Step(dt float64) {
	if w.dispatching {
		return
	}
	w.dispatching = true
	defer func() { w.dispatching = false }()
	for _, s := range w.systemOrder {
		dispatch(s, dt)
	}
}
