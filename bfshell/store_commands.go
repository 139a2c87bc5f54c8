package bfshell

import (
	"context"
	"strings"

	"github.com/reusee/bf/storages"
)

func (s *Shell) store() *storages.Store {
	store, err := s.getStore()
	if err != nil {
		s.printf("error: %v\n", err)
		return nil
	}
	return store
}

func (s *Shell) save(ctx context.Context, name string) bool {
	if name == "" {
		s.println("usage: :save <name>")
		return false
	}
	code := s.Code()
	if code == "" {
		s.println("no code to save.")
		return false
	}
	store := s.store()
	if store == nil {
		return false
	}
	if err := store.Save(ctx, name, code); err != nil {
		s.printf("error: %v\n", err)
		return false
	}
	s.printf("saved %s.\n", name)
	return false
}

// load replaces the buffer with a stored program.
func (s *Shell) load(ctx context.Context, name string) bool {
	if name == "" {
		s.println("usage: :load <name>")
		return false
	}
	store := s.store()
	if store == nil {
		return false
	}
	code, err := store.Load(ctx, name)
	if err != nil {
		s.printf("error: %v\n", err)
		return false
	}
	s.buffer = []string{code}
	s.printf("loaded %s.\n", name)
	return false
}

func (s *Shell) list(ctx context.Context, arg string) bool {
	store := s.store()
	if store == nil {
		return false
	}
	names, err := store.List(ctx)
	if err != nil {
		s.printf("error: %v\n", err)
		return false
	}
	if len(names) == 0 {
		s.println("no saved programs.")
		return false
	}
	s.println(strings.Join(names, "\n"))
	return false
}

func (s *Shell) delete(ctx context.Context, name string) bool {
	if name == "" {
		s.println("usage: :delete <name>")
		return false
	}
	store := s.store()
	if store == nil {
		return false
	}
	if err := store.Delete(ctx, name); err != nil {
		s.printf("error: %v\n", err)
		return false
	}
	s.printf("deleted %s.\n", name)
	return false
}
