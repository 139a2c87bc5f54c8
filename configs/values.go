package configs

import (
	"fmt"
	"iter"
)

// All yields the value at path decoded from every file that defines it, earlier
// files first. A file that fails to load or decode panics with the offending path.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			if !yield(v) {
				return
			}
		}
	}
}

// First returns the value from the earliest file defining path, or the zero value.
func First[T any](loader Loader, path string) (ret T) {
	for v := range All[T](loader, path) {
		return v
	}
	return
}
