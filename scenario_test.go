package archhive_test

import (
	"testing"
	"unsafe"

	"github.com/foundrywright/archhive"
)

func TestScenarioLargeSpawnAndDispatch(t *testing.T) {
	w := archhive.NewWorld()

	w.RegisterType("int", 4, 4)
	w.RegisterType("float", 4, 4)
	w.RegisterType("char", 1, 1)
	w.RegisterType("short", 2, 2)

	w.RegisterSystem(archhive.SystemDesc{
		Name:         "test",
		Requirements: "char, int",
		Callback: func(ctx *archhive.Ctx, dt float64) {
			intPtr := (*int32)(ctx.Operand(1))
			*intPtr++
		},
	})

	entities, err := w.Spawn(10000, "int, char, float, short")
	if err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}
	if len(entities) != 10000 {
		t.Fatalf("Spawn(10000) returned %d entities", len(entities))
	}

	floatPtr, err := w.GetComponent(entities[0], "float")
	if err != nil {
		t.Fatalf("GetComponent(float) error = %v", err)
	}
	*(*float32)(floatPtr) = 123.0

	intPtr, err := w.GetComponent(entities[1], "int")
	if err != nil {
		t.Fatalf("GetComponent(int) error = %v", err)
	}
	*(*int32)(intPtr) = 65

	if got := *(*float32)(floatPtr); got != 123.0 {
		t.Fatalf("float readback = %v, want 123.0", got)
	}
	if got := *(*int32)(intPtr); got != 65 {
		t.Fatalf("int readback = %v, want 65", got)
	}

	if err := w.Run("test", 0); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := *(*int32)(intPtr); got != 66 {
		t.Fatalf("int after run(\"test\") = %d, want 66", got)
	}
}

func TestScenarioUserData(t *testing.T) {
	w := archhive.NewWorld()
	w.RegisterType("int", 4, 4)

	var x int32
	w.RegisterSystem(archhive.SystemDesc{
		Name:         "s",
		Requirements: "int",
		UserData:     unsafe.Pointer(&x),
		Callback: func(ctx *archhive.Ctx, dt float64) {
			*(*int32)(ctx.UserData()) = 50
		},
	})

	if _, err := w.Spawn(1, "int"); err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}

	if err := w.Run("s", 0); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if x != 50 {
		t.Fatalf("x = %d, want 50", x)
	}
}

func TestScenarioTagOnlyZeroFamilySize(t *testing.T) {
	w := archhive.NewWorld()
	w.RegisterType("tag", 0, 1)

	calls := 0
	w.RegisterSystem(archhive.SystemDesc{
		Name:         "counter",
		Requirements: "tag",
		Callback: func(ctx *archhive.Ctx, dt float64) {
			calls++
		},
	})

	entities, err := w.Spawn(1000, "tag")
	if err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}
	if len(entities) != 1000 {
		t.Fatalf("Spawn(1000) returned %d entities", len(entities))
	}

	w.Step(0)
	if calls != 1000 {
		t.Fatalf("calls = %d, want 1000", calls)
	}
}
