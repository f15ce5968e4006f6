package logging

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack trace and re-panics.
// It must be deferred directly: defer logging.RecoverPanic(logger).
func RecoverPanic(logger zerolog.Logger) {
	if r := recover(); r != nil {
		logPanic(logger, r)
		panic(r)
	}
}

func logPanic(logger zerolog.Logger, r any) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	logger.WithLevel(zerolog.FatalLevel).
		Str("panic", fmt.Sprint(r)).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint32("num_gc", m.NumGC).
		Bytes("stack", debug.Stack()).
		Msg("PANIC")

	if logger.GetLevel() == zerolog.Disabled {
		fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
	}
}
