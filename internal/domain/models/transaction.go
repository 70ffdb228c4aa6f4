package models

import "fmt"

// Kind tags the five transaction variants the engine understands.
type Kind int

const (
	Deposit Kind = iota
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

// String renders the kind the way it appears in the CSV input/logs.
func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Transaction is the tagged variant the engine processes. Amount is only
// meaningful for Deposit and Withdrawal; UnderDispute is only meaningful for
// Deposit and is the one mutable field in the whole type.
type Transaction struct {
	Kind         Kind
	ID           TransactionID
	Client       ClientID
	Amount       Amount
	UnderDispute bool
}

// NewDeposit creates a Deposit transaction, not under dispute.
func NewDeposit(id TransactionID, client ClientID, amount Amount) Transaction {
	return Transaction{Kind: Deposit, ID: id, Client: client, Amount: amount}
}

// NewWithdrawal creates a Withdrawal transaction.
func NewWithdrawal(id TransactionID, client ClientID, amount Amount) Transaction {
	return Transaction{Kind: Withdrawal, ID: id, Client: client, Amount: amount}
}

// NewDispute creates a Dispute transaction referencing a prior deposit by id.
func NewDispute(id TransactionID, client ClientID) Transaction {
	return Transaction{Kind: Dispute, ID: id, Client: client}
}

// NewResolve creates a Resolve transaction referencing a prior deposit by id.
func NewResolve(id TransactionID, client ClientID) Transaction {
	return Transaction{Kind: Resolve, ID: id, Client: client}
}

// NewChargeback creates a Chargeback transaction referencing a prior deposit by id.
func NewChargeback(id TransactionID, client ClientID) Transaction {
	return Transaction{Kind: Chargeback, ID: id, Client: client}
}

// HasNegativeAmount reports whether a Deposit or Withdrawal carries a negative
// amount. Other kinds never have a negative amount.
func (t Transaction) HasNegativeAmount() bool {
	switch t.Kind {
	case Deposit, Withdrawal:
		return t.Amount.IsNegative()
	default:
		return false
	}
}

// IsDeposit reports whether t is a Deposit variant.
func (t Transaction) IsDeposit() bool {
	return t.Kind == Deposit
}

// SetUnderDispute mutates the UnderDispute flag. No-op for non-Deposit kinds.
func (t *Transaction) SetUnderDispute(disputed bool) {
	if t.Kind == Deposit {
		t.UnderDispute = disputed
	}
}

// ToggleUnderDispute flips the UnderDispute flag. No-op for non-Deposit kinds.
func (t *Transaction) ToggleUnderDispute() {
	if t.Kind == Deposit {
		t.UnderDispute = !t.UnderDispute
	}
}
