package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blueprint/terminal"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
)

// SetCrashScreen registers the screen finalized by HandleCrash, nil clears it
func SetCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen := crashScreen
	crashMu.Unlock()

	if screen != nil {
		screen.Fini()
	} else {
		// Fallback for edge cases
		terminal.EmergencyReset(os.Stdout)
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Recover must be deferred directly; it routes a panic to HandleCrash
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Guard wraps a goroutine body with panic recovery, for errgroup.Go and similar launchers
// Use it instead of a bare closure to ensure terminal cleanup on crash
func Guard(fn func() error) func() error {
	return func() error {
		defer Recover()
		return fn()
	}
}
