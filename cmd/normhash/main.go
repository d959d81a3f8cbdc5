package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/normhash/internal/cli"
	"github.com/vvka-141/normhash/pkg/normhash"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(normhash.ExitPanic)
		}
	}()

	if os.Getenv("NORMHASH_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(normhash.ExitCodeForError(err))
	}
}
