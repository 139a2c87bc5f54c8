package cmds

import (
	"fmt"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/bf/vars"
)

// Executor interprets a command line as a sequence of commands, each consuming
// as many following words as its function has arguments.
type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	executor := &Executor{
		commands: make(map[string]*Command),
	}
	executor.Define("-h", Func(func() {
		executor.PrintUsage()
		os.Exit(0)
	}).Desc("print this usage").Alias("help", "-help", "--help"))
	return executor
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

var errorType = reflect.TypeFor[error]()

// Execute runs args in order. A word of the form name=value is the same as name
// followed by value.
func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			key, value, found := strings.Cut(name, "=")
			if found {
				command, ok = commands[key]
			}
			if !ok {
				return fmt.Errorf("unknown command: %s", name)
			}
			name = key
			args = append([]string{value}, args...)
		}

		rest, err := call(name, command, args)
		if err != nil {
			return err
		}
		args = rest

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subName, sub := range command.Subs {
				if _, ok := commands[subName]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subName)
				}
				commands[subName] = sub
			}
		}
	}
	return nil
}

// call invokes the function of command, returning the unconsumed arguments.
func call(name string, command *Command, args []string) ([]string, error) {
	if !command.Func.IsValid() {
		return args, nil
	}
	fnType := command.Func.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := parseArg(fnType.In(i), args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := command.Func.Call(callArgs)
	if len(rets) > 0 && !rets[0].IsNil() {
		return nil, fmt.Errorf("%s: %w", name, rets[0].Interface().(error))
	}
	return args, nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

// parseArg converts the first of args to t. A pointer type is optional and
// becomes a pointer to the zero value when args is exhausted.
func parseArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			return reflect.New(t.Elem()), nil
		}
		elem, err := parseArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		return elem.Addr(), nil
	}
	if len(args) == 0 {
		return ret, fmt.Errorf("expecting argument of type %v, got nothing", t)
	}

	str := args[0]
	ret = reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)
	case reflect.String:
		ret.SetString(str)
	default:
		return ret, fmt.Errorf("unsupported type: %v", t)
	}
	return ret, nil
}
