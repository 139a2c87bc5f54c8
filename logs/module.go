package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Span identifies one unit of work, such as a shell :run or an HTTP evaluation.
type Span string

type spanKey struct{}

var SpanKey spanKey

// Writer is where the terminal handler writes. Tests override it.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
