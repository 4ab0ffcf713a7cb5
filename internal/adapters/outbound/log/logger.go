package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
// Every component resolves the same *log.Logger and prefixes its messages with its own name.
type InitLogger struct {
	Output string `config:"LOG_OUTPUT" default:"stdout"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(log.New(il.writer(), "", log.LstdFlags|log.Lmsgprefix))
	return ctx, nil
}

func (il InitLogger) writer() io.Writer {
	switch il.Output {
	case "stderr":
		return os.Stderr
	case "discard":
		return io.Discard
	}
	return os.Stdout
}
