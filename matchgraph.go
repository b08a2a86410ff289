package archhive

// linkArchetype scans every registered system against a newly created
// archetype and records matches on both sides. Systems and archetypes
// are both small-cardinality and append-only during normal use, so a
// full scan on insert is cheaper than filtering on every dispatch.
func linkArchetype(a *archetype, systems []*system) {
	for _, s := range systems {
		if isMatch(a.mask, s.include, s.exclude) {
			a.matchedSystems[s] = struct{}{}
			s.matchedArchetypes[a] = struct{}{}
			s.matchedOrder = append(s.matchedOrder, a)
		}
	}
}

// linkSystem is the symmetric scan performed when a new system is
// registered: it tries every existing archetype against the new
// system's filter.
func linkSystem(s *system, archetypes []*archetype) {
	for _, a := range archetypes {
		if isMatch(a.mask, s.include, s.exclude) {
			a.matchedSystems[s] = struct{}{}
			s.matchedArchetypes[a] = struct{}{}
			s.matchedOrder = append(s.matchedOrder, a)
		}
	}
}
