package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/cli"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(inventory.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(inventory.ExitCodeForError(err))
	}
}
