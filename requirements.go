package archhive

import (
	"strings"
	"unicode"
)

// requirementToken is one parsed `Name` or `!Name` token from a
// requirement string, in the order it appeared.
type requirementToken struct {
	name    string
	exclude bool
}

// tokenizeRequirements strips all whitespace and splits on commas,
// per the requirement-string grammar:
//
//	requirements := token (',' token)*
//	token        := ws* ('!' name | name) ws*
//	name         := [A-Za-z_][A-Za-z0-9_]*
//
// An empty string yields zero tokens.
func tokenizeRequirements(s string) []requirementToken {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if stripped == "" {
		return nil
	}
	parts := strings.Split(stripped, ",")
	tokens := make([]requirementToken, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if p[0] == '!' {
			tokens = append(tokens, requirementToken{name: p[1:], exclude: true})
		} else {
			tokens = append(tokens, requirementToken{name: p})
		}
	}
	return tokens
}

// parsedRequirements is the resolved form of a requirement string
// against a concrete type registry.
type parsedRequirements struct {
	include typeMask
	exclude typeMask
	// operands are the inclusion-token type ids, in requirement-string
	// order; exclusions never contribute. This order is the public
	// operand-index contract systems rely on at runtime.
	operands []TypeID
}

// parseRequirements tokenizes and resolves s against reg. Unknown
// names fail with UnknownTypeError; a token count exceeding the
// registry's size fails with TypeCountExceededError since it can
// never be satisfiable.
func parseRequirements(reg *typeRegistry, s string) (parsedRequirements, error) {
	tokens := tokenizeRequirements(s)
	if len(tokens) > reg.count() {
		return parsedRequirements{}, TypeCountExceededError{
			Requested:  len(tokens),
			Registered: reg.count(),
		}
	}

	var out parsedRequirements
	for _, tok := range tokens {
		id, ok := reg.find(tok.name)
		if !ok {
			return parsedRequirements{}, UnknownTypeError{Name: tok.name}
		}
		if tok.exclude {
			markType(&out.exclude, id)
		} else {
			markType(&out.include, id)
			out.operands = append(out.operands, id)
		}
	}
	return out, nil
}

// parseSpawnMask resolves a spawn-time requirement string into an
// inclusion-only mask. Exclusion tokens are not permitted at spawn
// time.
func parseSpawnMask(reg *typeRegistry, s string) (typeMask, error) {
	tokens := tokenizeRequirements(s)
	if len(tokens) > reg.count() {
		return typeMask{}, TypeCountExceededError{
			Requested:  len(tokens),
			Registered: reg.count(),
		}
	}
	var m typeMask
	for _, tok := range tokens {
		if tok.exclude {
			return typeMask{}, ExclusionNotAllowedError{Requirements: s}
		}
		id, ok := reg.find(tok.name)
		if !ok {
			return typeMask{}, UnknownTypeError{Name: tok.name}
		}
		markType(&m, id)
	}
	return m, nil
}
