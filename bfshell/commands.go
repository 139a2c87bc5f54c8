package bfshell

import (
	"context"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/reusee/bf/bfvm"
)

type command struct {
	// fn returns true to end the session
	fn       func(s *Shell, ctx context.Context, arg string) bool
	takesArg bool
	desc     string
}

var commands map[string]command

func init() {
	commands = map[string]command{
		":run":    {fn: (*Shell).run, desc: "execute the buffered code"},
		":clear":  {fn: (*Shell).clear, desc: "discard the buffered code"},
		":exit":   {fn: (*Shell).exit, desc: "leave the shell"},
		":show":   {fn: (*Shell).show, desc: "print the buffered code"},
		":save":   {fn: (*Shell).save, takesArg: true, desc: "store the buffered code under a name"},
		":load":   {fn: (*Shell).load, takesArg: true, desc: "replace the buffer with a stored program"},
		":list":   {fn: (*Shell).list, desc: "list stored programs"},
		":delete": {fn: (*Shell).delete, takesArg: true, desc: "delete a stored program"},
		":tap":    {fn: (*Shell).tapLast, desc: "inspect the last run in a starlark prompt"},
		":help":   {fn: (*Shell).help, desc: "list commands"},
	}
}

func (s *Shell) help(ctx context.Context, arg string) bool {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		cmd := commands[name]
		if cmd.takesArg {
			name += " <name>"
		}
		s.printf("%-16s%s\n", name, cmd.desc)
	}
	return false
}

func (s *Shell) run(ctx context.Context, arg string) bool {
	code := s.Code()
	if code == "" {
		s.println("no code to run.")
		return false
	}

	// Ctrl-C aborts the run, not the session
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	ctx, _ = s.newSpan(ctx, "")
	vm, err := bfvm.NewVM(code, "", s.config)
	if err != nil {
		s.printf("error: %v\n", err)
		return false
	}
	s.last = vm
	err = vm.RunContext(ctx)
	s.logger.InfoContext(ctx, "execute",
		"program_len", len(vm.Program),
		"steps", vm.Steps,
		"output_len", len(vm.Out),
		"error", err,
	)
	if err != nil {
		s.printf("error: %v\n", err)
		return false
	}
	s.printf("output: %s\n", vm.Output())
	return false
}

func (s *Shell) clear(ctx context.Context, arg string) bool {
	s.buffer = nil
	s.println("code cleared.")
	return false
}

func (s *Shell) exit(ctx context.Context, arg string) bool {
	s.println("exiting Brainfuck interpreter.")
	return true
}

func (s *Shell) show(ctx context.Context, arg string) bool {
	if len(s.buffer) == 0 {
		s.println("no code.")
		return false
	}
	s.println(strings.Join(s.buffer, "\n"))
	return false
}

func (s *Shell) tapLast(ctx context.Context, arg string) bool {
	if s.last == nil {
		s.println("nothing to tap, use :run first.")
		return false
	}
	vm := s.last
	s.tap(ctx, "last run", map[string]any{
		"pointer":    vm.Pointer,
		"pc":         vm.PC,
		"steps":      vm.Steps,
		"output":     vm.Output(),
		"loop_stack": vm.LoopStack,
		"cells":      vm.UsedTape(),
		"cell": func(i int) int {
			return int(vm.Cell(i))
		},
	})
	return false
}
