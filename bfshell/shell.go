package bfshell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/storages"
)

const Prompt = "Brainfuck> "

// LineReader yields one line per call, io.EOF when the session input ends.
type LineReader interface {
	Readline() (string, error)
}

type Shell struct {
	lines    LineReader
	out      io.Writer
	config   bfvm.Config
	getStore storages.GetStore
	tap      debugs.Tap
	logger   logs.Logger
	newSpan  logs.NewSpan

	buffer []string
	last   *bfvm.VM
}

type NewShell func(lines LineReader, out io.Writer) *Shell

func (Module) NewShell(
	config bfvm.Config,
	getStore storages.GetStore,
	tap debugs.Tap,
	logger logs.Logger,
	newSpan logs.NewSpan,
) NewShell {
	return func(lines LineReader, out io.Writer) *Shell {
		return &Shell{
			lines:    lines,
			out:      out,
			config:   config,
			getStore: getStore,
			tap:      tap,
			logger:   logger,
			newSpan:  newSpan,
		}
	}
}

// Run reads lines until :exit or end of input.
func (s *Shell) Run(ctx context.Context) error {
	s.println("welcome to brainfuck!")
	s.println("type your code below. enter ':run' to execute, ':clear' to clear the code, or ':exit' to quit.")

	for {
		line, err := s.lines.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if !strings.HasPrefix(line, ":") {
			s.buffer = append(s.buffer, line)
			continue
		}

		name, arg, hasArg := strings.Cut(line, " ")
		cmd, ok := commands[name]
		if !ok || hasArg && !cmd.takesArg {
			// not a control token, so it is program text
			s.buffer = append(s.buffer, line)
			continue
		}
		if cmd.fn(s, ctx, strings.TrimSpace(arg)) {
			return nil
		}
	}
}

// Code returns the buffered lines joined without separators.
func (s *Shell) Code() string {
	return strings.Join(s.buffer, "")
}

func (s *Shell) println(args ...any) {
	fmt.Fprintln(s.out, args...)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
