// Package logging provides the named diagnostic channels used by the
// samplers and sources.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
)

// For returns a logger tagged with the caller name, e.g. "rnorm".
func For(caller string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("caller", caller).Logger()
}

// SetOutput replaces the writer of the base logger.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base = base.Output(w)
}

// SetLevel sets the minimum level of the base logger.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	base = base.Level(level)
}

// DomainWarning reports a parameter outside of the domain of a sampler.
// It mirrors the classic "argument out of domain in '<caller>'" message.
func DomainWarning(caller string, fields map[string]any) {
	l := For(caller)
	l.Warn().Fields(fields).Msgf("argument out of domain in '%s'", caller)
}
