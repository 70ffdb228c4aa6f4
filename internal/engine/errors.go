package engine

import (
	"fmt"

	"github.com/robertohuertasm/payments-engine/internal/domain/models"
)

// InsufficientAvailableFundsError is returned when a withdrawal or dispute
// would take Available below zero.
type InsufficientAvailableFundsError struct {
	TransactionID models.TransactionID
}

func (e InsufficientAvailableFundsError) Error() string {
	return fmt.Sprintf("transaction %d: insufficient available funds", e.TransactionID)
}

// InsufficientHeldFundsError is returned when a resolve or chargeback would
// take Held below zero.
type InsufficientHeldFundsError struct {
	TransactionID models.TransactionID
}

func (e InsufficientHeldFundsError) Error() string {
	return fmt.Sprintf("transaction %d: insufficient held funds", e.TransactionID)
}

// WrongTransactionRefError is returned when a dispute, resolve or chargeback
// references a stored transaction that is not a Deposit. A reference to an id
// with nothing stored is not this error: the engine ignores it.
type WrongTransactionRefError struct {
	TransactionID models.TransactionID
}

func (e WrongTransactionRefError) Error() string {
	return fmt.Sprintf("transaction %d: referenced transaction is not a known deposit", e.TransactionID)
}

// TransactionRefWrongClientError is returned when a dispute, resolve or
// chargeback references a deposit that belongs to a different client.
// Client is the deposit's true owner; WrongClient is the client that issued
// the referencing transaction.
type TransactionRefWrongClientError struct {
	TransactionID models.TransactionID
	Client        models.ClientID
	WrongClient   models.ClientID
}

func (e TransactionRefWrongClientError) Error() string {
	return fmt.Sprintf("transaction %d: referenced deposit belongs to client %d, not %d",
		e.TransactionID, e.Client, e.WrongClient)
}

// NegativeAmountTransactionError is returned when a deposit or withdrawal
// carries a negative amount.
type NegativeAmountTransactionError struct {
	TransactionID models.TransactionID
}

func (e NegativeAmountTransactionError) Error() string {
	return fmt.Sprintf("transaction %d: negative amount", e.TransactionID)
}

// DoubleDisputeError is returned when a dispute references a deposit that is
// already under dispute.
type DoubleDisputeError struct {
	TransactionID models.TransactionID
}

func (e DoubleDisputeError) Error() string {
	return fmt.Sprintf("transaction %d: already under dispute", e.TransactionID)
}

// LockedAccountError is returned when a transaction targets a locked account.
type LockedAccountError struct {
	Client        models.ClientID
	TransactionID models.TransactionID
}

func (e LockedAccountError) Error() string {
	return fmt.Sprintf("transaction %d: account %d is locked", e.TransactionID, e.Client)
}

// TransactionNotCommittedError wraps a store failure that happened after the
// engine had already mutated an in-memory account snapshot, meaning the
// mutation must be rolled back. The caller can unwrap it to inspect the
// underlying store error.
type TransactionNotCommittedError struct {
	TransactionID models.TransactionID
	Err           error
}

func (e TransactionNotCommittedError) Error() string {
	return fmt.Sprintf("transaction %d: not committed: %s", e.TransactionID, e.Err)
}

func (e TransactionNotCommittedError) Unwrap() error {
	return e.Err
}

// UnknownError is a catch-all for engine failures that don't fit the other
// variants.
type UnknownError struct {
	Msg string
}

func (e UnknownError) Error() string {
	return fmt.Sprintf("unknown engine error: %s", e.Msg)
}
