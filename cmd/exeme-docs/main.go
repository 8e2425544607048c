// SPDX-License-Identifier: MIT

// exeme-docs renders the Exeme documentation site configuration.
//
// Usage:
//
//	exeme-docs show [--format yaml|json] [--file site.yaml]
//	exeme-docs render [--format sphinx|starlight|json|yaml] [--out conf.py]
//	exeme-docs build [--dir docs]
//	exeme-docs validate [--file site.yaml]
//	exeme-docs diff --file site.yaml
//	exeme-docs watch --file site.yaml [--dir docs]
//
// Exit codes:
//   - 0: success
//   - 1: any error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(Options{Stdout: os.Stdout, Stderr: os.Stderr})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
