package archhive

import "unsafe"

// SystemCallback is invoked once per live slot of every archetype a
// system matches. ctx is stack-resident and only valid for the
// duration of the call.
type SystemCallback func(ctx *Ctx, dt float64)

// SystemDesc describes a system at registration time.
type SystemDesc struct {
	Name         string
	Requirements string
	Callback     SystemCallback
	UserData     unsafe.Pointer
}

// system owns everything the dispatch loop needs to invoke a
// registered callback over every entity it matches.
type system struct {
	name          string
	include       typeMask
	exclude       typeMask
	operandIDs    []TypeID
	callback      SystemCallback
	userData      unsafe.Pointer
	offsetScratch []uint32

	matchedArchetypes map[*archetype]struct{}
	// matchedOrder preserves link order so dispatch visits a system's
	// archetypes deterministically for a fixed registration sequence.
	matchedOrder []*archetype
}

func newSystem(reg *typeRegistry, desc SystemDesc) (*system, error) {
	parsed, err := parseRequirements(reg, desc.Requirements)
	if err != nil {
		return nil, err
	}
	return &system{
		name:              desc.Name,
		include:           parsed.include,
		exclude:           parsed.exclude,
		operandIDs:        parsed.operands,
		callback:          desc.Callback,
		userData:          desc.UserData,
		offsetScratch:     make([]uint32, len(parsed.operands)),
		matchedArchetypes: make(map[*archetype]struct{}),
	}, nil
}

// prepareFor populates the offset scratch for one archetype, once per
// matched archetype per dispatch rather than once per slot, since
// layout is archetype-stable.
func (s *system) prepareFor(a *archetype) {
	for i, id := range s.operandIDs {
		off, _ := a.layout.offsetOf(id)
		s.offsetScratch[i] = off
	}
}
