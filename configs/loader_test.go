package configs

import (
	"errors"
	"slices"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
tape_size?: int & >0
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var str string
	if err := loader.AssignFirst("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	if err := loader.AssignFirst("list", &list); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(list, []int{1, 2, 3}) {
		t.Fatalf("got %v", list)
	}

	if err := loader.AssignFirst("not", &list); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	var wrongType string
	if err := loader.AssignFirst("tape_size", &wrongType); err == nil {
		t.Fatal("should error")
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)
	if paths := loader.Paths(); len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}

	var sizes []int
	for value, err := range loader.IterCueValues("tape_size") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		sizes = append(sizes, n)
	}
	if !slices.Equal(sizes, []int{30000, 100}) {
		t.Fatalf("got %v", sizes)
	}

	strs := slices.Collect(All[string](loader, "str"))
	if !slices.Equal(strs, []string{"bar", "foo"}) {
		t.Fatalf("got %v", strs)
	}
}

func TestLoaderSchemaViolation(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/not-exists.cue",
	}, testSchema)
	var str string
	if err := loader.AssignFirst("str", &str); err == nil {
		t.Fatal("should error")
	}
}

func TestLoaderNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	var n int
	if err := loader.AssignFirst("tape_size", &n); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderWithoutSchema(t *testing.T) {
	loader := NewLoader([]string{"testdata/bad.cue"}, "")
	if s := First[string](loader, "unknown_field"); s != "foo" {
		t.Fatalf("got %q", s)
	}
}
