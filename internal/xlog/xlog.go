// Package xlog provides the package-wide structured logger: a single
// process-level zerolog.Logger, customized per call site with .With()
// rather than passed down through every function signature.
package xlog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerLock sync.RWMutex
	logger     zerolog.Logger
)

func init() {
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// Logger returns the current package-wide logger.
func Logger() zerolog.Logger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	return logger
}

// Set replaces the package-wide logger. Callers embedding this module in a
// larger application may redirect output or adjust the level; the core
// never calls this itself.
func Set(l zerolog.Logger) {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	logger = l
}

// SetOutput redirects the logger's writer, keeping its current level and
// fields.
func SetOutput(w io.Writer) {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	logger = logger.Output(w)
}
