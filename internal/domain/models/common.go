// Package models holds the core data types shared by the store and the engine:
// client and transaction identifiers, the transaction tagged variant and the
// account record.
package models

import "github.com/shopspring/decimal"

// ClientID uniquely identifies a client account.
type ClientID uint16

// TransactionID uniquely identifies a transaction across all kinds.
type TransactionID uint32

// Amount is a fixed-point decimal suitable for financial calculations: arbitrary
// scale, exact arithmetic, no floating point.
type Amount = decimal.Decimal

// Zero is the additive identity for Amount.
var Zero = decimal.Zero

// ParseAmount parses a decimal string into an Amount, preserving the input's
// scale exactly (e.g. "1.00005" keeps 5 fractional digits until the writer
// rescales it for display).
func ParseAmount(s string) (Amount, error) {
	return decimal.NewFromString(s)
}
