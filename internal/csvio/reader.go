// Package csvio is the CSV collaborator: it turns an input stream into a lazy
// sequence of parsed transactions and a lazy sequence of accounts into an
// output stream. It never validates ledger semantics — only row shape — and
// never keeps the whole file in memory.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/robertohuertasm/payments-engine/internal/domain/models"
)

// ParsedTransaction pairs a parsed transaction with a deserialization error.
// Exactly one field is meaningful at a time: a row that fails to parse
// carries Err and a zero Transaction.
type ParsedTransaction struct {
	Transaction models.Transaction
	Err         error
}

// ReadTransactions reads the header row then streams one ParsedTransaction
// per subsequent row over the returned channel, closing it when r is
// exhausted. It returns an error immediately if the header itself cannot be
// read (a fatal I/O error, per the CLI's exit-code contract); per-row
// deserialization failures are reported through ParsedTransaction.Err and do
// not stop the stream.
func ReadTransactions(r io.Reader) (<-chan ParsedTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // flexible column count
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	out := make(chan ParsedTransaction)
	go func() {
		defer close(out)
		for {
			row, err := cr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				out <- ParsedTransaction{Err: fmt.Errorf("reading row: %w", err)}
				continue
			}

			trimRow(row)
			tx, err := recordToTransaction(row)
			if err != nil {
				out <- ParsedTransaction{Err: err}
				continue
			}
			out <- ParsedTransaction{Transaction: tx}
		}
	}()
	return out, nil
}

func trimRow(row []string) {
	for i, cell := range row {
		row[i] = strings.TrimSpace(cell)
	}
}
