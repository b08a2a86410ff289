/*
Package archhive implements an archetype-based Entity-Component-System
(ECS) world: a runtime registry of component types, entities, and
systems in which entities holding identical sets of component types
are co-located in densely packed, chunked memory blocks, and systems
iterate over every chunk whose type-set satisfies an inclusion/exclusion
filter.

Core Concepts:

  - Type: a registered component descriptor (name, size, alignment).
  - Entity: a recycled integer handle into the world's entity directory.
  - Archetype: the storage for every entity sharing one exact type-set,
    backed by a linked list of fixed-size chunked regions.
  - System: a callback plus an include/exclude type-set filter, invoked
    once per live slot of every archetype it matches.

Basic usage:

	w := archhive.NewWorld()

	position, _ := w.RegisterType("Position", 16, 8)
	velocity, _ := w.RegisterType("Velocity", 16, 8)
	_ = position
	_ = velocity

	w.RegisterSystem(archhive.SystemDesc{
		Name:         "integrate",
		Requirements: "Position, Velocity",
		Callback: func(ctx *archhive.Ctx, dt float64) {
			pos := (*Vec2)(ctx.Operand(0))
			vel := (*Vec2)(ctx.Operand(1))
			pos.X += vel.X * dt
			pos.Y += vel.Y * dt
		},
	})

	entities, _ := w.Spawn(100, "Position, Velocity")
	_ = entities
	w.Step(1.0 / 60.0)

archhive is built bottom-up from leaf utilities (type registry,
requirement parser) to the layout planner and chunked storage, to the
archetype/system match graph, to the World façade that ties them
together.
*/
package archhive
