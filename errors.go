package archhive

import "fmt"

// DuplicateNameError indicates a type or system name that is already
// registered in this world.
type DuplicateNameError struct {
	Kind string // "type" or "system"
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("archhive: %s %q is already registered", e.Kind, e.Name)
}

// UnknownTypeError indicates a requirement string or component-access
// call named a type that isn't in the registry.
type UnknownTypeError struct {
	Name string
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("archhive: unknown type %q", e.Name)
}

// TypeCountExceededError indicates a requirement string lists more
// tokens than the world has registered types, so it cannot possibly
// be satisfiable.
type TypeCountExceededError struct {
	Requested, Registered int
}

func (e TypeCountExceededError) Error() string {
	return fmt.Sprintf("archhive: requirement string names %d types but only %d are registered", e.Requested, e.Registered)
}

// NoSuchEntityError indicates get_component was called on an entity
// with no archetype (never spawned, or destroyed).
type NoSuchEntityError struct {
	Entity Entity
}

func (e NoSuchEntityError) Error() string {
	return fmt.Sprintf("archhive: entity %d has no archetype", e.Entity)
}

// NoSuchComponentError indicates an entity's archetype lacks the
// named component type.
type NoSuchComponentError struct {
	Entity Entity
	Name   string
}

func (e NoSuchComponentError) Error() string {
	return fmt.Sprintf("archhive: entity %d has no component %q", e.Entity, e.Name)
}

// NoSuchSystemError indicates Run was called with a name that was
// never registered.
type NoSuchSystemError struct {
	Name string
}

func (e NoSuchSystemError) Error() string {
	return fmt.Sprintf("archhive: no system named %q", e.Name)
}

// ExclusionNotAllowedError indicates a spawn requirement string
// contained a `!Name` token, which only systems may use.
type ExclusionNotAllowedError struct {
	Requirements string
}

func (e ExclusionNotAllowedError) Error() string {
	return fmt.Sprintf("archhive: spawn requirements %q may not contain exclusions", e.Requirements)
}

// ReentrancyError indicates a system callback attempted to mutate
// the world (spawn, register, migrate, destroy, or a nested Run)
// while a dispatch was already in progress.
type ReentrancyError struct {
	Op string
}

func (e ReentrancyError) Error() string {
	return fmt.Sprintf("archhive: %s called re-entrantly from within a system callback", e.Op)
}
