package bfvm

import "context"

// Run executes until the program halts. It yields (nil, err) once on a fatal error,
// and (InterruptYield, nil) every Config.YieldInterval steps. Returning false from
// yield stops execution; the VM can be resumed by calling Run again.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	v.run(v.Config.YieldInterval, yield)
}

// RunContext runs until the program halts, fails, or ctx is done.
func (v *VM) RunContext(ctx context.Context) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	interval := v.Config.YieldInterval
	if interval == 0 {
		interval = DefaultYieldInterval
	}
	v.run(interval, func(_ *Interrupt, e error) bool {
		if e != nil {
			err = e
			return false
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return false
		default:
		}
		return true
	})
	return
}

func (v *VM) run(interval int, yield func(*Interrupt, error) bool) {
	for v.PC < len(v.Program) {
		if err := v.step(); err != nil {
			yield(nil, err)
			return
		}
		if interval > 0 && v.Steps%interval == 0 {
			if !yield(InterruptYield, nil) {
				return
			}
		}
	}
}

// Step executes the instruction at the program counter.
func (v *VM) Step() error {
	if v.Halted() {
		return nil
	}
	return v.step()
}

func (v *VM) step() error {
	if v.Config.MaxSteps > 0 && v.Steps >= v.Config.MaxSteps {
		return v.fail(ErrStepLimitExceeded)
	}

	cell := &v.Tape[v.Pointer]
	switch v.Program[v.PC] {

	case OpRight:
		v.Pointer++
		if v.Pointer == len(v.Tape) {
			v.Pointer = 0
		}

	case OpLeft:
		if v.Pointer == 0 {
			v.Pointer = len(v.Tape)
		}
		v.Pointer--

	case OpInc:
		*cell++
		if int(*cell) == v.Config.CellModulus {
			*cell = 0
		}

	case OpDec:
		if *cell == 0 {
			*cell = Cell(v.Config.CellModulus)
		}
		*cell--

	case OpOutput:
		v.Out = append(v.Out, rune(*cell))

	case OpInput:
		if v.Cursor < len(v.Input) {
			*cell = Cell(int(v.Input[v.Cursor]) % v.Config.CellModulus)
			v.Cursor++
		} else {
			// exhausted input reads as zero
			*cell = 0
		}

	case OpLoopStart:
		if *cell == 0 {
			end, err := v.matchForward()
			if err != nil {
				return err
			}
			v.PC = end
		} else {
			v.LoopStack = append(v.LoopStack, v.PC)
		}

	case OpLoopEnd:
		if len(v.LoopStack) == 0 {
			return v.fail(ErrUnbalancedCloseBracket)
		}
		if *cell != 0 {
			// body start is PC+1; the condition at '[' is already known to hold
			v.PC = v.LoopStack[len(v.LoopStack)-1]
		} else {
			v.LoopStack = v.LoopStack[:len(v.LoopStack)-1]
		}

	}

	v.PC++
	v.Steps++
	return nil
}
