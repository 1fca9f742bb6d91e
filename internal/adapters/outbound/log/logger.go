package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
// Logs go to stderr so a report can be piped from stdout.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"docexplore "`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(log.New(os.Stderr, il.Prefix, log.LstdFlags|log.Lmsgprefix))
	return ctx, nil
}
