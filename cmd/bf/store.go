package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/storages"
)

// storeCommand operates on the program store shared with the shell.
type storeCommand func(ctx context.Context, store *storages.Store, out io.Writer) error

func listPrograms(ctx context.Context, store *storages.Store, out io.Writer) error {
	names, err := store.List(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func showProgram(name string) storeCommand {
	return func(ctx context.Context, store *storages.Store, out io.Writer) error {
		source, err := store.Load(ctx, name)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, source)
		return err
	}
}

func deleteProgram(name string) storeCommand {
	return func(ctx context.Context, store *storages.Store, out io.Writer) error {
		if err := store.Delete(ctx, name); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "deleted %s\n", name)
		return err
	}
}

func withStore(fn storeCommand) func(ctx context.Context, a actions) error {
	return func(ctx context.Context, a actions) error {
		store, err := a.getStore()
		if err != nil {
			return err
		}
		defer store.Close()
		return fn(ctx, store, os.Stdout)
	}
}

func init() {
	cmds.Define("store", cmds.Sub(map[string]*cmds.Command{
		"list": cmds.Func(func() {
			action = withStore(listPrograms)
		}).Desc("list stored programs"),
		"show": cmds.Func(func(name string) {
			action = withStore(showProgram(name))
		}).Args("name").Desc("print a stored program"),
		"delete": cmds.Func(func(name string) {
			action = withStore(deleteProgram(name))
		}).Args("name").Desc("delete a stored program"),
	}).Desc("manage programs saved from the shell"))
}
