package engine

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashHandler is invoked on panic inside Go-spawned goroutines.
// Binaries inject a handler that restores the terminal before printing.
var crashHandler atomic.Value // func(any)

// SetCrashHandler installs the process-wide panic handler for engine goroutines
func SetCrashHandler(fn func(r any)) {
	crashHandler.Store(fn)
}

// Go runs fn in a goroutine with centralized crash handling
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if h, ok := crashHandler.Load().(func(any)); ok && h != nil {
					h(r)
					return
				}
				fmt.Fprintf(os.Stderr, "goroutine crashed: %v\n%s\n", r, debug.Stack())
				os.Exit(1)
			}
		}()
		fn()
	}()
}
