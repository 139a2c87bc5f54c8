package debugs

import (
	"testing"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func TestTap(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestGlobals(t *testing.T) {
	vm, err := bfvm.NewVM("+++>++", "", bfvm.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, err := range vm.Run {
		if err != nil {
			t.Fatal(err)
		}
	}

	globals := Globals(map[string]any{
		"pointer": vm.Pointer,
		"cells":   vm.UsedTape(),
		"cell": func(i int) int {
			return int(vm.Cell(i))
		},
		"output":  vm.Output(),
	})

	thread := &starlark.Thread{
		Name: "test",
	}
	value, err := starlark.EvalOptions(
		&syntax.FileOptions{},
		thread,
		"expr",
		"cells[0] + cells[1] + pointer",
		globals,
	)
	if err != nil {
		t.Fatal(err)
	}
	if value.String() != "6" {
		t.Fatalf("got %v", value)
	}

	if _, ok := globals["cell"].(starlark.Callable); !ok {
		t.Fatalf("got %T", globals["cell"])
	}

	// indexes outside the tape wrap instead of escaping the prompt
	for expr, expected := range map[string]string{
		"cell(1)":      "2",
		"cell(10000)":  "3",
		"cell(-1)":     "0",
		"cell(-10000)": "3",
	} {
		value, err := starlark.EvalOptions(
			&syntax.FileOptions{},
			thread,
			"expr",
			expr,
			globals,
		)
		if err != nil {
			t.Fatalf("%s: %v", expr, err)
		}
		if value.String() != expected {
			t.Fatalf("%s: got %v", expr, value)
		}
	}
}
