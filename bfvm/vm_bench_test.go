package bfvm

import (
	"strings"
	"testing"
)

// nested loops skipped with a zero cell
var skipProgram = strings.Repeat("[", 200) + strings.Repeat("]", 200)

func BenchmarkExecute_HelloWorld(b *testing.B) {
	program := "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."
	for b.Loop() {
		if _, err := Execute(program, ""); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExecute_SkipScan(b *testing.B) {
	program := strings.Repeat(skipProgram, 50)
	for b.Loop() {
		if _, err := Execute(program, ""); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExecute_SkipJumpTable(b *testing.B) {
	program := strings.Repeat(skipProgram, 50)
	config := Config{
		JumpTable: true,
	}
	for b.Loop() {
		if _, err := config.Execute(program, ""); err != nil {
			b.Fatal(err)
		}
	}
}
