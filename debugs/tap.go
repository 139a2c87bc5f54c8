package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/bf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with globals bound as starlark values.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		repl.REPLOptions(
			&syntax.FileOptions{
				Set:             true,
				While:           true,
				TopLevelControl: true,
			},
			&starlark.Thread{
				Name: "tap",
			},
			Globals(globals),
		)
	}
}

// Globals converts values for use as starlark globals.
func Globals(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}
