package archhive_test

import (
	"fmt"
	"unsafe"

	"github.com/foundrywright/archhive"
)

// Vec2 is a simple component for 2D coordinates.
type Vec2 struct {
	X float64
	Y float64
}

// Example shows basic world usage: register types, register a system,
// spawn entities, and step the world.
func Example_basic() {
	w := archhive.NewWorld()

	w.RegisterType("Position", uint32(unsafe.Sizeof(Vec2{})), uint32(unsafe.Alignof(Vec2{})))
	w.RegisterType("Velocity", uint32(unsafe.Sizeof(Vec2{})), uint32(unsafe.Alignof(Vec2{})))

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

	entities, _ := w.Spawn(3, "Position, Velocity")

	velPtr, _ := w.GetComponent(entities[0], "Velocity")
	vel := (*Vec2)(velPtr)
	vel.X, vel.Y = 1.0, 2.0

	w.Step(0.5)

	posPtr, _ := w.GetComponent(entities[0], "Position")
	pos := (*Vec2)(posPtr)
	fmt.Printf("position after step: (%.1f, %.1f)\n", pos.X, pos.Y)

	// Output: position after step: (0.5, 1.0)
}

// Example_exclusion shows a system that skips entities carrying an
// excluded component.
func Example_exclusion() {
	w := archhive.NewWorld()

	w.RegisterType("Health", 4, 4)
	w.RegisterType("Invulnerable", 0, 1)

	damaged := 0
	w.RegisterSystem(archhive.SystemDesc{
		Name:         "damage",
		Requirements: "Health, !Invulnerable",
		Callback: func(ctx *archhive.Ctx, dt float64) {
			damaged++
		},
	})

	w.Spawn(4, "Health")
	w.Spawn(2, "Health, Invulnerable")

	w.Run("damage", 0)
	fmt.Printf("damaged %d of 6 entities\n", damaged)

	// Output: damaged 4 of 6 entities
}
