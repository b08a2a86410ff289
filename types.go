package archhive

// TypeID is a registered component type's ordinal in the registry. It
// is stable for the lifetime of the world and doubles as the bit
// position of that type in every mask derived after registration.
type TypeID uint32

// TypeDesc describes a component type at registration time: its
// name, byte size, and required alignment (a power of two).
type TypeDesc struct {
	Name      string
	Size      uint32
	Alignment uint32
}

// typeDescriptor is the registry's immutable, owned record for a
// registered type.
type typeDescriptor struct {
	name      string
	size      uint32
	alignment uint32
}

// typeRegistry assigns integer ids to registered component
// descriptors. Registration is a startup-phase operation and the
// type count stays small (tens), so a linear scan for find is
// acceptable and keeps the registry free of a hashing dependency.
type typeRegistry struct {
	types []typeDescriptor
}

// register appends a new descriptor and returns its id, or
// DuplicateNameError if the name is already registered.
func (r *typeRegistry) register(desc TypeDesc) (TypeID, error) {
	if _, ok := r.find(desc.Name); ok {
		return 0, DuplicateNameError{Kind: "type", Name: desc.Name}
	}
	id := TypeID(len(r.types))
	r.types = append(r.types, typeDescriptor{
		name:      desc.Name,
		size:      desc.Size,
		alignment: desc.Alignment,
	})
	return id, nil
}

// find returns the id of a registered type by name.
func (r *typeRegistry) find(name string) (TypeID, bool) {
	for i := range r.types {
		if r.types[i].name == name {
			return TypeID(i), true
		}
	}
	return 0, false
}

// count returns how many types are currently registered.
func (r *typeRegistry) count() int {
	return len(r.types)
}

func (r *typeRegistry) descriptor(id TypeID) typeDescriptor {
	return r.types[id]
}

func (r *typeRegistry) size(id TypeID) uint32 {
	return r.types[id].size
}

func (r *typeRegistry) alignment(id TypeID) uint32 {
	return r.types[id].alignment
}
