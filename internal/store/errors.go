package store

import (
	"fmt"

	"github.com/robertohuertasm/payments-engine/internal/domain/models"
)

// NotFoundError is returned when a transaction id has no stored deposit.
type NotFoundError struct {
	ID models.TransactionID
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("transaction with id %d not found", e.ID)
}

// AlreadyExistsError is returned when a deposit id is already stored.
type AlreadyExistsError struct {
	ID models.TransactionID
}

func (e AlreadyExistsError) Error() string {
	return fmt.Sprintf("transaction with id %d already exists", e.ID)
}

// AccessError wraps a failure to access the backing store (lock contention,
// backend failure, ...).
type AccessError struct {
	Msg string
}

func (e AccessError) Error() string {
	return fmt.Sprintf("error while accessing the store: %s", e.Msg)
}

// UnknownError is a catch-all for store failures that don't fit the other
// variants.
type UnknownError struct {
	Msg string
}

func (e UnknownError) Error() string {
	return fmt.Sprintf("unknown store error: %s", e.Msg)
}
