package main

import (
	"context"
	"fmt"
	"os"
)

// exit is swapped out by tests.
var exit = os.Exit

func main() {
	RealMain()
}

// RealMain runs the CLI with the process arguments.
func RealMain() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		exit(1)
	}
}
