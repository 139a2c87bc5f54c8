package cmds

import (
	"fmt"
	"reflect"
)

// Command is either a function consuming the following arguments, a set of sub
// commands made visible to the rest of the command line, or both.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	ArgNames    []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Args names the function arguments in usage output.
func (c *Command) Args(names ...string) *Command {
	if c.Func.IsValid() && len(names) != c.Func.Type().NumIn() {
		panic(fmt.Errorf("%d argument names for %d arguments", len(names), c.Func.Type().NumIn()))
	}
	c.ArgNames = names
	return c
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("must return error, got %v", fnType.Out(0)))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value"))
	}

	for i := range fnType.NumIn() {
		if t := fnType.In(i); !isArgType(t) {
			panic(fmt.Errorf("unsupported argument type: %v", t))
		}
	}

	return &Command{
		Func: fnValue,
	}
}

func isArgType(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
