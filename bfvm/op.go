package bfvm

// OpCode is one decoded program character.
type OpCode uint8

const (
	OpNop OpCode = iota
	OpRight
	OpLeft
	OpInc
	OpDec
	OpOutput
	OpInput
	OpLoopStart
	OpLoopEnd
)

var opSymbols = [...]rune{
	OpNop:       0,
	OpRight:     '>',
	OpLeft:      '<',
	OpInc:       '+',
	OpDec:       '-',
	OpOutput:    '.',
	OpInput:     ',',
	OpLoopStart: '[',
	OpLoopEnd:   ']',
}

var opNames = [...]string{
	OpNop:       "nop",
	OpRight:     "right",
	OpLeft:      "left",
	OpInc:       "inc",
	OpDec:       "dec",
	OpOutput:    "output",
	OpInput:     "input",
	OpLoopStart: "loop_start",
	OpLoopEnd:   "loop_end",
}

func (o OpCode) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Symbol returns the program character of o, or 0 for OpNop.
func (o OpCode) Symbol() rune {
	if int(o) < len(opSymbols) {
		return opSymbols[o]
	}
	return 0
}

func DecodeRune(r rune) OpCode {
	switch r {
	case '>':
		return OpRight
	case '<':
		return OpLeft
	case '+':
		return OpInc
	case '-':
		return OpDec
	case '.':
		return OpOutput
	case ',':
		return OpInput
	case '[':
		return OpLoopStart
	case ']':
		return OpLoopEnd
	}
	return OpNop
}

// Decode maps every character of program to an OpCode.
// Positions in the result are character positions, not byte offsets.
func Decode(program string) []OpCode {
	ops := make([]OpCode, 0, len(program))
	for _, r := range program {
		ops = append(ops, DecodeRune(r))
	}
	return ops
}
