package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/storages"
)

func TestStoreCommands(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "programs.db")
	open := func() (*storages.Store, error) {
		return storages.OpenStore(ctx, path)
	}
	store, err := open()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if err := store.Save(ctx, "three", "+++."); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, "echo", ",[.,]"); err != nil {
		t.Fatal(err)
	}

	out := new(bytes.Buffer)
	if err := listPrograms(ctx, store, out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "echo\nthree\n" {
		t.Fatalf("got %q", out.String())
	}

	out.Reset()
	if err := showProgram("three")(ctx, store, out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "+++.\n" {
		t.Fatalf("got %q", out.String())
	}
	if err := showProgram("nope")(ctx, store, out); !errors.Is(err, storages.ErrProgramNotFound) {
		t.Fatalf("got %v", err)
	}

	// store delete parsed from the command line
	saved := action
	defer func() {
		action = saved
	}()
	cmds.GlobalExecutor.MustExecute([]string{"store", "delete", "echo"})
	if err := action(ctx, actions{
		getStore: open,
	}); err != nil {
		t.Fatal(err)
	}
	names, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "three" {
		t.Fatalf("got %v", names)
	}
}
