package bfshell

import (
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
)

// NewReadline returns a terminal line reader with history in ~/.bf_history.
func NewReadline() (*readline.Instance, error) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".bf_history")
	}
	return readline.NewEx(&readline.Config{
		Prompt:      Prompt,
		HistoryFile: historyFile,
	})
}
