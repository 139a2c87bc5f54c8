package storages

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func TestStore(t *testing.T) {
	ctx := t.Context()
	store, err := OpenStore(ctx, filepath.Join(t.TempDir(), "sub", "programs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if err := store.Save(ctx, "hello", "+++."); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, "copy", "++[>+<-]>."); err != nil {
		t.Fatal(err)
	}

	source, err := store.Load(ctx, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if source != "+++." {
		t.Fatalf("got %q", source)
	}

	// replace
	if err := store.Save(ctx, "hello", "++."); err != nil {
		t.Fatal(err)
	}
	source, err = store.Load(ctx, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if source != "++." {
		t.Fatalf("got %q", source)
	}

	names, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(names, []string{"copy", "hello"}) {
		t.Fatalf("got %v", names)
	}

	if err := store.Delete(ctx, "copy"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(ctx, "copy"); !errors.Is(err, ErrProgramNotFound) {
		t.Fatalf("got %v", err)
	}
	if err := store.Delete(ctx, "copy"); !errors.Is(err, ErrProgramNotFound) {
		t.Fatalf("got %v", err)
	}
	if err := store.Save(ctx, "", "+"); err == nil {
		t.Fatal("should error")
	}
}

func TestGetStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "programs.db")
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(bfconfigs.StorePath(path)),
	).Call(func(
		getStore GetStore,
	) {
		store, err := getStore()
		if err != nil {
			t.Fatal(err)
		}
		defer store.Close()
		again, err := getStore()
		if err != nil {
			t.Fatal(err)
		}
		if again != store {
			t.Fatal()
		}
		names, err := store.List(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if len(names) != 0 {
			t.Fatalf("got %v", names)
		}
	})
}
