// Command paymentsengine reads a CSV transaction history and prints the
// resulting per-client balance report to standard output.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/robertohuertasm/payments-engine/internal/driver"
	"github.com/robertohuertasm/payments-engine/internal/pkg/components"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <input.csv>\n", os.Args[0])
		return 1
	}

	container := components.GetInstance()
	log := container.Logger

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Error("failed to open input file", "path", os.Args[1], "error", err)
		return 1
	}
	defer f.Close()

	ctx := context.Background()
	if err := driver.ProcessTransactions(ctx, f, os.Stdout, container.Engine, log); err != nil {
		log.Error("fatal error processing transactions", "error", err)
		return 1
	}

	if err := container.FlushMetrics(); err != nil {
		log.Warn("failed to flush metrics", "error", err)
	}

	return 0
}
