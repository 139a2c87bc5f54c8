package cmds

// Var defines name taking one argument and name+"." resetting it to the zero value.
func Var[T any](name string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}).Args("value").Desc("set "+name))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}).Desc("reset "+name))
	return value
}

// Switch defines name turning the flag on and "!"+name turning it off.
func Switch(name string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}).Desc("enable "+name))
	Define("!"+name, Func(func() {
		*value = false
	}).Desc("disable "+name))
	return value
}

// Collect defines name appending its argument on every occurrence.
func Collect[T any](name string) *[]T {
	value := new([]T)
	Define(name, Func(func(v T) {
		*value = append(*value, v)
	}).Args("value").Desc("add to "+name))
	return value
}

// Flag is a command line value that remembers whether it was given.
type Flag[T any] struct {
	Value T
	Set   bool
}

// Or returns the flag value when it was given, otherwise fallback.
func (f *Flag[T]) Or(fallback T) T {
	if f.Set {
		return f.Value
	}
	return fallback
}

// OptionalVar is like Var, but a given zero value still overrides other layers.
// name+"." forgets the value.
func OptionalVar[T any](name string) *Flag[T] {
	flag := new(Flag[T])
	Define(name, Func(func(v T) {
		*flag = Flag[T]{Value: v, Set: true}
	}).Args("value").Desc("set "+name))
	Define(name+".", Func(func() {
		*flag = Flag[T]{}
	}).Desc("unset "+name))
	return flag
}

// OptionalSwitch is like Switch, but "!"+name is an explicit false.
// name+"." forgets the value.
func OptionalSwitch(name string) *Flag[bool] {
	flag := new(Flag[bool])
	Define(name, Func(func() {
		*flag = Flag[bool]{Value: true, Set: true}
	}).Desc("enable "+name))
	Define("!"+name, Func(func() {
		*flag = Flag[bool]{Value: false, Set: true}
	}).Desc("disable "+name))
	Define(name+".", Func(func() {
		*flag = Flag[bool]{}
	}).Desc("unset "+name))
	return flag
}
