package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/robertohuertasm/payments-engine/internal/domain/models"
	"github.com/robertohuertasm/payments-engine/internal/store"
)

// WriteAccounts drains seq and writes it as a CSV report to w, rescaling
// every account to at most 4 fractional display digits. Returns a wrapped
// error on the first write failure; that is a fatal I/O error per the CLI's
// exit-code contract.
func WriteAccounts(w io.Writer, seq store.AccountSeq) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for acc := range seq {
		acc = acc.ToMaxDisplayPrecision()
		row := []string{
			fmt.Sprintf("%d", acc.Client),
			formatAmount(acc.Available),
			formatAmount(acc.Held),
			formatAmount(acc.Total),
			fmt.Sprintf("%t", acc.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for client %d: %w", acc.Client, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	return nil
}

// formatAmount renders amount at its own scale, keeping trailing fractional
// zeros (Decimal.String trims them).
func formatAmount(amount models.Amount) string {
	if amount.Exponent() < 0 {
		return amount.StringFixed(-amount.Exponent())
	}
	return amount.String()
}
