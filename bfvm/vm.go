package bfvm

import (
	"encoding/gob"
	"io"
)

// Cell is one tape cell, always in [0, Config.CellModulus).
type Cell uint32

type VM struct {
	Config    Config
	Program   []OpCode
	Input     []rune
	Tape      []Cell
	Pointer   int
	PC        int
	LoopStack []int
	Cursor    int
	Steps     int
	Out       []rune

	jumps []int
}

func NewVM(program string, input string, config Config) (*VM, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config = config.withDefaults()
	vm := &VM{
		Config:    config,
		Program:   Decode(program),
		Input:     []rune(input),
		Tape:      make([]Cell, config.TapeSize),
		LoopStack: make([]int, 0, 16),
	}
	if config.JumpTable {
		vm.jumps = buildJumpTable(vm.Program)
	}
	return vm, nil
}

// Halted reports whether the program counter reached the end of the program.
func (v *VM) Halted() bool {
	return v.PC >= len(v.Program)
}

func (v *VM) Output() string {
	return string(v.Out)
}

// Cell returns the value of tape cell i. i wraps around the tape the same way the
// pointer does, so -1 is the last cell.
func (v *VM) Cell(i int) Cell {
	i %= len(v.Tape)
	if i < 0 {
		i += len(v.Tape)
	}
	return v.Tape[i]
}

// UsedTape returns the tape up to and including the last nonzero cell.
func (v *VM) UsedTape() []Cell {
	end := len(v.Tape)
	for end > 0 && v.Tape[end-1] == 0 {
		end--
	}
	return v.Tape[:end]
}

func (v *VM) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return nil
}

// Restore replaces the whole machine state with a snapshot.
func (v *VM) Restore(r io.Reader) error {
	var restored VM
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&restored); err != nil {
		return err
	}
	*v = restored
	if v.Config.JumpTable {
		v.jumps = buildJumpTable(v.Program)
	} else {
		v.jumps = nil
	}
	return nil
}
