// Package debug provides opt-in trace logging for the store and file hasher,
// enabled by setting the DEDUPE_DEBUG environment variable to any non-empty
// value before the process starts.
package debug

import (
	"fmt"
	"log"
	"os"
)

var logger *log.Logger

func init() {
	if os.Getenv("DEDUPE_DEBUG") == "" {
		return
	}
	logger = log.New(os.Stderr, "DEBUG ", log.Ltime|log.Lmicroseconds)
}

// Enabled reports whether trace logging is active for this process.
func Enabled() bool {
	return logger != nil
}

// Log writes a trace line if debug logging is enabled. The format and args
// follow fmt.Sprintf conventions.
func Log(format string, args ...interface{}) {
	if logger == nil {
		return
	}
	logger.Output(2, fmt.Sprintf(format, args...))
}
