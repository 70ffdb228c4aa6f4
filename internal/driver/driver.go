// Package driver wires the CSV collaborator to the engine: it consumes one
// parsed transaction at a time, hands valid ones to the engine, logs
// per-transaction and per-row failures without aborting, and writes the
// final report once the input is exhausted.
package driver

import (
	"context"
	"fmt"
	"io"

	"github.com/robertohuertasm/payments-engine/internal/csvio"
	"github.com/robertohuertasm/payments-engine/internal/engine"
	"github.com/robertohuertasm/payments-engine/internal/pkg/logging"
)

// ProcessTransactions reads transactions from r, applies each one through
// eng, and writes the resulting account report to w. A fatal I/O error on
// either stream aborts the run and is returned; a per-row or per-transaction
// failure is logged and the run continues.
func ProcessTransactions(ctx context.Context, r io.Reader, w io.Writer, eng *engine.Engine, log logging.Logger) error {
	stream, err := csvio.ReadTransactions(r)
	if err != nil {
		return fmt.Errorf("starting transaction stream: %w", err)
	}

	for parsed := range stream {
		if parsed.Err != nil {
			log.Warn("csv deserialization error", "error", parsed.Err)
			continue
		}

		if _, err := eng.ProcessTransaction(ctx, parsed.Transaction); err != nil {
			log.Error("error processing transaction",
				"tx", parsed.Transaction.ID,
				"client", parsed.Transaction.Client,
				"kind", parsed.Transaction.Kind.String(),
				"error", err,
			)
		}
	}

	report, err := eng.Report(ctx)
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	if err := csvio.WriteAccounts(w, report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
