package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func TestExecute(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		execute Execute,
	) {
		out := new(bytes.Buffer)
		if err := execute(t.Context(), out, ",[.,]", "echo"); err != nil {
			t.Fatal(err)
		}
		if out.String() != "echo" {
			t.Fatalf("got %q", out.String())
		}

		out.Reset()
		err := execute(t.Context(), out, "[", "")
		if !errors.Is(err, bfvm.ErrUnbalancedOpenBracket) {
			t.Fatalf("got %v", err)
		}
		if out.Len() != 0 {
			t.Fatalf("got %q", out.String())
		}
	})
}
