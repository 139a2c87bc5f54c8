package bfconfigs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		config bfvm.Config,
		addr ListenAddr,
		maxConcurrent MaxConcurrent,
		storePath StorePath,
	) {
		if config != bfvm.DefaultConfig() {
			t.Fatalf("got %+v", config)
		}
		if addr != "127.0.0.1:8421" {
			t.Fatalf("got %v", addr)
		}
		if maxConcurrent != 8 {
			t.Fatalf("got %v", maxConcurrent)
		}
		if storePath == "" {
			t.Fatal()
		}
	})
}

func TestConfigFile(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{"testdata/bf.cue"}, schema)),
	).Call(func(
		config bfvm.Config,
		addr ListenAddr,
		storePath StorePath,
	) {
		expected := bfvm.Config{
			TapeSize:    30000,
			CellModulus: 65536,
			MaxSteps:    1000000,
			JumpTable:   true,
		}
		if config != expected {
			t.Fatalf("got %+v", config)
		}
		if addr != ":9000" {
			t.Fatalf("got %v", addr)
		}
		if storePath != "/tmp/programs.db" {
			t.Fatalf("got %v", storePath)
		}
	})
}

func TestFlagOverridesFile(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{
		"-tape-size", "42",
		"-max-steps", "7",
	})
	defer cmds.GlobalExecutor.MustExecute([]string{
		"-tape-size.",
		"-max-steps.",
	})
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{"testdata/bf.cue"}, schema)),
	).Call(func(
		size TapeSize,
		maxSteps MaxSteps,
		modulus CellModulus,
	) {
		if size != 42 {
			t.Fatalf("got %v", size)
		}
		if maxSteps != 7 {
			t.Fatalf("got %v", maxSteps)
		}
		if modulus != 65536 {
			t.Fatalf("got %v", modulus)
		}
	})
}

func TestSchemaRejectsBadValue(t *testing.T) {
	loader := configs.NewLoader([]string{"testdata/bad.cue"}, schema)
	var n int
	if err := loader.AssignFirst("tape_size", &n); err == nil {
		t.Fatal("should error")
	}
}

func TestConfigExprInSchema(t *testing.T) {
	for _, value := range []configs.Configurable{
		TapeSize(0),
		CellModulus(0),
		MaxSteps(0),
		JumpTable(false),
		ListenAddr(""),
		MaxConcurrent(0),
		StorePath(""),
	} {
		if !strings.Contains(schema, value.ConfigExpr()+"?:") {
			t.Fatalf("%T: %s not in schema", value, value.ConfigExpr())
		}
	}
}

func TestFlagDisablesFileValues(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{
		"!-jump-table",
		"-max-steps", "0",
	})
	defer cmds.GlobalExecutor.MustExecute([]string{
		"-jump-table.",
		"-max-steps.",
	})
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{"testdata/bf.cue"}, schema)),
	).Call(func(
		config bfvm.Config,
	) {
		if config.JumpTable {
			t.Fatal("jump table should be disabled")
		}
		if config.MaxSteps != 0 {
			t.Fatalf("got %v", config.MaxSteps)
		}
		if config.TapeSize != 30000 {
			t.Fatalf("got %v", config.TapeSize)
		}
	})
}

func TestNonPositiveMaxConcurrent(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{
		"-max-concurrent", "-1",
	})
	defer cmds.GlobalExecutor.MustExecute([]string{
		"-max-concurrent.",
	})
	func() {
		defer func() {
			p := recover()
			if p == nil {
				t.Fatal("should panic")
			}
			if !strings.Contains(fmt.Sprint(p), "must be positive") {
				t.Fatalf("got %v", p)
			}
		}()
		dscope.New(
			modes.ForTest(t),
			new(Module),
		).Call(func(
			MaxConcurrent,
		) {
		})
	}()
}
