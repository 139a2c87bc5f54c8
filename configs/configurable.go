package configs

// Configurable is implemented by typed config values. ConfigExpr is the cue path
// the value is read from.
type Configurable interface {
	ConfigExpr() string
}

// Value reads a Configurable from the path it names.
func Value[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}
