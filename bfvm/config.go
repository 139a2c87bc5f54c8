package bfvm

import "fmt"

const (
	DefaultTapeSize      = 10000
	DefaultCellModulus   = 256
	DefaultYieldInterval = 4096

	// MaxCellModulus keeps every cell value a valid code point for output.
	MaxCellModulus = 0x110000
)

// Config holds the construction parameters of a VM.
// Zero TapeSize and CellModulus select the defaults.
type Config struct {
	TapeSize    int
	CellModulus int

	// MaxSteps aborts execution with ErrStepLimitExceeded once the program counter
	// has been advanced this many times. 0 means unlimited.
	MaxSteps int

	// JumpTable precomputes bracket partners once per VM instead of scanning the
	// program on every skipped loop.
	JumpTable bool

	// YieldInterval makes Run yield InterruptYield every that many steps.
	// 0 disables interrupts.
	YieldInterval int
}

func DefaultConfig() Config {
	return Config{
		TapeSize:    DefaultTapeSize,
		CellModulus: DefaultCellModulus,
	}
}

func (c Config) withDefaults() Config {
	if c.TapeSize == 0 {
		c.TapeSize = DefaultTapeSize
	}
	if c.CellModulus == 0 {
		c.CellModulus = DefaultCellModulus
	}
	return c
}

func (c Config) Validate() error {
	c = c.withDefaults()
	if c.TapeSize < 0 {
		return fmt.Errorf("%w: tape size %d", ErrInvalidConfig, c.TapeSize)
	}
	if c.CellModulus < 2 || c.CellModulus > MaxCellModulus {
		return fmt.Errorf("%w: cell modulus %d not in [2, %d]", ErrInvalidConfig, c.CellModulus, MaxCellModulus)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max steps %d", ErrInvalidConfig, c.MaxSteps)
	}
	if c.YieldInterval < 0 {
		return fmt.Errorf("%w: yield interval %d", ErrInvalidConfig, c.YieldInterval)
	}
	return nil
}

// Execute runs program to completion against input and returns everything it printed.
func (c Config) Execute(program, input string) (string, error) {
	vm, err := NewVM(program, input, c)
	if err != nil {
		return "", err
	}
	for _, err := range vm.Run {
		if err != nil {
			return "", err
		}
	}
	return vm.Output(), nil
}

// Execute runs program with the default config.
func Execute(program, input string) (string, error) {
	return DefaultConfig().Execute(program, input)
}
