package log

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Debug  bool   `config:"DEBUG" default:"false"`
	Output string `config:"LOG_OUTPUT" default:"stdout"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	w, err := outputWriter(il.Output)
	if err != nil {
		return ctx, err
	}
	depend.Register(NewLogger(w, il.Debug))
	return ctx, nil
}

func outputWriter(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "discard":
		return io.Discard, nil
	default:
		return nil, fmt.Errorf("unsupported LOG_OUTPUT %q", output)
	}
}

// NewLogger creates the bridge logger. Debug mode adds the source file and line to each entry.
func NewLogger(w io.Writer, debug bool) *log.Logger {
	flags := log.LstdFlags | log.Lmsgprefix
	if debug {
		flags |= log.Lshortfile
	}
	return log.New(w, "", flags)
}
