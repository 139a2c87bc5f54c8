package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrUnbalancedOpenBracket  = errors.New("unbalanced open bracket")
	ErrUnbalancedCloseBracket = errors.New("unbalanced close bracket")
	ErrStepLimitExceeded      = errors.New("step limit exceeded")
	ErrInvalidConfig          = errors.New("invalid config")
)

// ExecError is a fatal execution error and the machine position it happened at.
type ExecError struct {
	Err   error
	PC    int
	Steps int
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%v at position %d after %d steps", e.Err, e.PC, e.Steps)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

func (v *VM) fail(err error) error {
	return &ExecError{
		Err:   err,
		PC:    v.PC,
		Steps: v.Steps,
	}
}
