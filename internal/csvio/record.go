package csvio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robertohuertasm/payments-engine/internal/domain/models"
)

// parseKind maps a lowercase type cell to a models.Kind. Matching is
// case-insensitive but the canonical form is lowercase, per the input
// format's header contract.
func parseKind(cell string) (models.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "deposit":
		return models.Deposit, nil
	case "withdrawal":
		return models.Withdrawal, nil
	case "dispute":
		return models.Dispute, nil
	case "resolve":
		return models.Resolve, nil
	case "chargeback":
		return models.Chargeback, nil
	default:
		return 0, fmt.Errorf("unknown transaction type %q", cell)
	}
}

// parseClient parses a trimmed cell as a 16-bit unsigned client id.
func parseClient(cell string) (models.ClientID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(cell), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid client id %q: %w", cell, err)
	}
	return models.ClientID(v), nil
}

// parseTxID parses a trimmed cell as a 32-bit unsigned transaction id.
func parseTxID(cell string) (models.TransactionID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(cell), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction id %q: %w", cell, err)
	}
	return models.TransactionID(v), nil
}

// parseAmount parses a trimmed cell as a decimal amount. An empty cell
// defaults to zero, matching the observed behavior that an omitted amount on
// a deposit or withdrawal is a zero-amount transaction, not a malformed row.
func parseAmount(cell string) (models.Amount, error) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return models.Zero, nil
	}
	amount, err := models.ParseAmount(trimmed)
	if err != nil {
		return models.Zero, fmt.Errorf("invalid amount %q: %w", cell, err)
	}
	return amount, nil
}

// recordToTransaction converts one trimmed CSV row (in header order
// type,client,tx,amount) into a models.Transaction.
func recordToTransaction(row []string) (models.Transaction, error) {
	if len(row) < 3 {
		return models.Transaction{}, fmt.Errorf("row has %d fields, need at least 3", len(row))
	}

	kind, err := parseKind(row[0])
	if err != nil {
		return models.Transaction{}, err
	}
	client, err := parseClient(row[1])
	if err != nil {
		return models.Transaction{}, err
	}
	id, err := parseTxID(row[2])
	if err != nil {
		return models.Transaction{}, err
	}

	var amountCell string
	if len(row) > 3 {
		amountCell = row[3]
	}
	amount, err := parseAmount(amountCell)
	if err != nil {
		return models.Transaction{}, err
	}

	switch kind {
	case models.Deposit:
		return models.NewDeposit(id, client, amount), nil
	case models.Withdrawal:
		return models.NewWithdrawal(id, client, amount), nil
	case models.Dispute:
		return models.NewDispute(id, client), nil
	case models.Resolve:
		return models.NewResolve(id, client), nil
	case models.Chargeback:
		return models.NewChargeback(id, client), nil
	default:
		return models.Transaction{}, fmt.Errorf("unhandled transaction kind %v", kind)
	}
}
