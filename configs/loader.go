package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads cue files on first use. Earlier files take precedence.
type Loader struct {
	paths []string
	files func() ([]cue.Value, error)
}

// NewLoader validates every file against schemaSrc, a list of fields wrapped in a
// closed struct. An empty schema accepts anything.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		paths: filePaths,
		files: sync.OnceValues(func() ([]cue.Value, error) {
			return loadFiles(filePaths, schemaSrc)
		}),
	}
}

func loadFiles(paths []string, schemaSrc string) ([]cue.Value, error) {
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
	}

	values := make([]cue.Value, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		value := ctx.CompileBytes(content, cue.Filename(path))
		if err := value.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if schema.Exists() {
			if err := schema.Unify(value).Validate(); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		values = append(values, value)
	}
	return values, nil
}

func (l Loader) Paths() []string {
	return l.paths
}

// IterCueValues yields the value at path from each file that defines it.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		files, err := l.files()
		if err != nil {
			yield(nil, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, file := range files {
			value := file.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes the first value at path into target, or returns
// ErrValueNotFound.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
