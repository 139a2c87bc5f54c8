package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusee/bf/bfshell"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/nets"
	"github.com/reusee/bf/storages"
	"github.com/reusee/dscope"
)

var (
	inputFlag = cmds.Var[string]("-input")
	devFlag   = cmds.Switch("-dev")
)

type actions struct {
	newShell bfshell.NewShell
	execute  Execute
	serve    nets.Serve
	getStore storages.GetStore
}

// action is set by the command line; the shell runs when none is given.
var action = func(ctx context.Context, a actions) error {
	rl, err := bfshell.NewReadline()
	if err != nil {
		return err
	}
	defer rl.Close()
	return a.newShell(rl, os.Stdout).Run(ctx)
}

func init() {
	cmds.Define("run", cmds.Func(func(path string) {
		action = func(ctx context.Context, a actions) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return a.execute(ctx, os.Stdout, string(content), *inputFlag)
		}
	}).Args("file").Desc("execute a program file"))

	cmds.Define("eval", cmds.Func(func(program string) {
		action = func(ctx context.Context, a actions) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.execute(ctx, os.Stdout, program, *inputFlag)
		}
	}).Args("program").Desc("execute a program given as argument"))

	cmds.Define("serve", cmds.Func(func() {
		action = func(ctx context.Context, a actions) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		}
	}).Desc("serve program execution over HTTP"))
}

func main() {
	logs.SetLevel(slog.LevelWarn)
	cmds.Execute(os.Args[1:])

	ctx := context.Background()

	mode := modes.ForProduction()
	if *devFlag {
		mode = modes.ForDevelopment()
	}

	var err error
	dscope.New(
		new(Module),
		mode,
	).Call(func(
		newShell bfshell.NewShell,
		execute Execute,
		serve nets.Serve,
		getStore storages.GetStore,
	) {
		err = action(ctx, actions{
			newShell: newShell,
			execute:  execute,
			serve:    serve,
			getStore: getStore,
		})
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// Execute runs one program and writes its output to out.
type Execute func(ctx context.Context, out io.Writer, program string, input string) error

func (Module) Execute(
	config bfvm.Config,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Execute {
	return func(ctx context.Context, out io.Writer, program string, input string) error {
		ctx, _ = newSpan(ctx, "")
		vm, err := bfvm.NewVM(program, input, config)
		if err != nil {
			return err
		}
		err = vm.RunContext(ctx)
		logger.InfoContext(ctx, "execute",
			"program_len", len(vm.Program),
			"steps", vm.Steps,
			"error", err,
		)
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		_, err = io.WriteString(out, vm.Output())
		return err
	}
}
