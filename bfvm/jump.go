package bfvm

// buildJumpTable maps every bracket position to its partner's position.
// Unmatched brackets and non-bracket positions map to -1.
func buildJumpTable(program []OpCode) []int {
	jumps := make([]int, len(program))
	var open []int
	for pc, op := range program {
		jumps[pc] = -1
		switch op {
		case OpLoopStart:
			open = append(open, pc)
		case OpLoopEnd:
			if len(open) == 0 {
				continue
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			jumps[start] = pc
			jumps[pc] = start
		}
	}
	return jumps
}

// matchForward returns the position of the ']' closing the '[' at v.PC.
func (v *VM) matchForward() (int, error) {
	if v.jumps != nil {
		if end := v.jumps[v.PC]; end >= 0 {
			return end, nil
		}
		return 0, v.fail(ErrUnbalancedOpenBracket)
	}
	depth := 1
	for pc := v.PC + 1; pc < len(v.Program); pc++ {
		switch v.Program[pc] {
		case OpLoopStart:
			depth++
		case OpLoopEnd:
			depth--
			if depth == 0 {
				return pc, nil
			}
		}
	}
	return 0, v.fail(ErrUnbalancedOpenBracket)
}
