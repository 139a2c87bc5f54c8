package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "usage:\n")
	writeCommands(w, p.commands, 1)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share a *Command; print each command once under its first name
	seen := make(map[*Command]bool)
	names := slices.Sorted(maps.Keys(commands))
	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}
		if seen[command] {
			continue
		}
		seen[command] = true
		line := indent + name
		if args := command.argsUsage(); args != "" {
			line += " " + args
		}
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}

func (c *Command) argsUsage() string {
	if !c.Func.IsValid() {
		return ""
	}
	t := c.Func.Type()
	var args []string
	for i := range t.NumIn() {
		in := t.In(i)
		optional := in.Kind() == reflect.Pointer
		if optional {
			in = in.Elem()
		}
		name := in.Kind().String()
		if i < len(c.ArgNames) {
			name = c.ArgNames[i]
		}
		if optional {
			args = append(args, "["+name+"]")
		} else {
			args = append(args, "<"+name+">")
		}
	}
	return strings.Join(args, " ")
}
