// Package store is the persistence abstraction the engine mutates through: a
// deposits map keyed by transaction id and an accounts map keyed by client id.
package store

import (
	"context"

	"github.com/robertohuertasm/payments-engine/internal/domain/models"
)

// AccountSeq is a lazy, single-pass sequence of accounts, in unspecified
// order. Implementers may back it with a channel (as the in-memory store
// does) or any other pull/push mechanism; callers range over it exactly once.
type AccountSeq <-chan models.Account

// Store is the persistence abstraction over transactions (deposits only) and
// accounts. Implementations must be safe for concurrent use: the in-memory
// implementation guards each map with its own sync.RWMutex and holds the lock
// only for the duration of a single map operation — it offers no
// cross-operation atomicity, which is why the engine performs compensating
// actions on partial failure (see internal/engine).
type Store interface {
	// GetTransaction returns the stored deposit for id, or NotFoundError.
	GetTransaction(ctx context.Context, id models.TransactionID) (models.Transaction, error)
	// CreateTransaction stores tx if it is a Deposit and no deposit with the
	// same id exists yet (AlreadyExistsError otherwise). Non-deposit kinds are
	// not stored; CreateTransaction returns tx unchanged for them.
	CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	// DeleteTransaction removes the stored deposit for id. Deleting a
	// nonexistent id is a success.
	DeleteTransaction(ctx context.Context, id models.TransactionID) error
	// SetTransactionUnderDispute sets the under_dispute flag on the stored
	// deposit for id. A nonexistent id is a silent no-op.
	SetTransactionUnderDispute(ctx context.Context, id models.TransactionID, underDispute bool) error
	// ToggleUnderDispute flips the under_dispute flag on the stored deposit
	// for id. A nonexistent id is a silent no-op.
	ToggleUnderDispute(ctx context.Context, id models.TransactionID) error
	// GetAccount returns the stored account for id, or a freshly zeroed,
	// not-yet-persisted Account if none exists.
	GetAccount(ctx context.Context, id models.ClientID) (models.Account, error)
	// UpsertAccount creates or overwrites the stored account for acc.Client.
	UpsertAccount(ctx context.Context, acc *models.Account) error
	// GetAllAccounts returns a lazy sequence over every stored account, in
	// unspecified order.
	GetAllAccounts(ctx context.Context) (AccountSeq, error)
}
