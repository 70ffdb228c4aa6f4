// Package engine is the transaction state machine: it validates each
// incoming transaction, dispatches by kind, mutates the affected account in
// memory, persists the result, and compensates the store when persistence
// fails partway through. It never touches the network or the filesystem
// directly; all side effects flow through a store.Store.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/robertohuertasm/payments-engine/internal/domain/models"
	"github.com/robertohuertasm/payments-engine/internal/pkg/logging"
	"github.com/robertohuertasm/payments-engine/internal/store"
)

// Engine applies transactions against a Store, one at a time. It holds no
// state of its own beyond the store reference: every quiescent point has its
// state fully reflected in the store.
type Engine struct {
	store  store.Store
	log    logging.Logger
	metric Recorder
}

// Recorder is the subset of metric instrumentation the engine drives. It is
// satisfied by internal/metrics.Collectors; engines built without metrics
// wiring can pass a NopRecorder.
type Recorder interface {
	ObserveProcessed(kind models.Kind)
	ObserveFailed(kind models.Kind, reason string)
	ObserveRollback(kind models.Kind)
	ObserveLocked()
	ObserveDuration(kind models.Kind, seconds float64)
}

// NopRecorder discards every observation. Useful for tests that don't care
// about metrics.
type NopRecorder struct{}

func (NopRecorder) ObserveProcessed(models.Kind)         {}
func (NopRecorder) ObserveFailed(models.Kind, string)    {}
func (NopRecorder) ObserveRollback(models.Kind)          {}
func (NopRecorder) ObserveLocked()                       {}
func (NopRecorder) ObserveDuration(models.Kind, float64) {}

// New builds an Engine backed by s, logging through log and recording metrics
// through rec.
func New(s store.Store, log logging.Logger, rec Recorder) *Engine {
	if rec == nil {
		rec = NopRecorder{}
	}
	return &Engine{store: s, log: log, metric: rec}
}

// ProcessTransaction runs the seven-step algorithm in §4.2: negative-amount
// guard, record, load account, locked-account guard, dispatch, persist,
// compensate on failure. It returns the account snapshot as it stood
// immediately after a successful application.
func (e *Engine) ProcessTransaction(ctx context.Context, tx models.Transaction) (models.Account, error) {
	e.log.Debug("processing transaction", "kind", tx.Kind.String(), "tx", tx.ID, "client", tx.Client)

	start := time.Now()
	defer func() {
		e.metric.ObserveDuration(tx.Kind, time.Since(start).Seconds())
	}()

	if tx.HasNegativeAmount() {
		err := NegativeAmountTransactionError{TransactionID: tx.ID}
		e.recordFailure(tx.Kind, err)
		return models.Account{}, err
	}

	if _, err := e.store.CreateTransaction(ctx, tx); err != nil {
		e.recordFailure(tx.Kind, err)
		return models.Account{}, err
	}

	acc, err := e.store.GetAccount(ctx, tx.Client)
	if err != nil {
		e.recordFailure(tx.Kind, err)
		e.compensateRecord(ctx, tx)
		return models.Account{}, err
	}

	if acc.Locked {
		err := LockedAccountError{Client: tx.Client, TransactionID: tx.ID}
		e.recordFailure(tx.Kind, err)
		e.compensateRecord(ctx, tx)
		return models.Account{}, err
	}

	if err := e.dispatch(ctx, tx, &acc); err != nil {
		e.recordFailure(tx.Kind, err)
		e.compensate(ctx, tx, err)
		return models.Account{}, err
	}

	if err := e.store.UpsertAccount(ctx, &acc); err != nil {
		wrapped := TransactionNotCommittedError{TransactionID: tx.ID, Err: err}
		e.log.Error("account upsert failed", "tx", tx.ID, "client", tx.Client, "error", err)
		e.recordFailure(tx.Kind, wrapped)
		e.compensate(ctx, tx, wrapped)
		return models.Account{}, wrapped
	}

	if acc.Locked {
		e.metric.ObserveLocked()
	}
	e.metric.ObserveProcessed(tx.Kind)
	return acc, nil
}

// Report returns a lazy sequence of every account currently in the store.
func (e *Engine) Report(ctx context.Context) (store.AccountSeq, error) {
	return e.store.GetAllAccounts(ctx)
}

func (e *Engine) dispatch(ctx context.Context, tx models.Transaction, acc *models.Account) error {
	switch tx.Kind {
	case models.Deposit:
		return e.handleDeposit(acc, tx)
	case models.Withdrawal:
		return e.handleWithdrawal(acc, tx)
	case models.Dispute:
		return e.handleDispute(ctx, acc, tx)
	case models.Resolve:
		return e.handleResolve(ctx, acc, tx)
	case models.Chargeback:
		return e.handleChargeback(ctx, acc, tx)
	default:
		return UnknownError{Msg: "unrecognized transaction kind"}
	}
}

// compensateRecord undoes step 2 alone (used when a later step fails before
// any handler-level mutation could have happened, e.g. the locked-account
// guard or the account load).
func (e *Engine) compensateRecord(ctx context.Context, tx models.Transaction) {
	if !tx.IsDeposit() {
		return
	}
	e.log.Warn("rolling back recorded transaction", "tx", tx.ID, "client", tx.Client)
	if err := e.store.DeleteTransaction(ctx, tx.ID); err != nil {
		e.log.Error("compensation failed: could not delete transaction", "tx", tx.ID, "error", err)
	}
	e.metric.ObserveRollback(tx.Kind)
}

// compensate runs the full step-7 compensation logic: delete the deposit
// record for Deposit/Withdrawal, or undo the under_dispute flag flip for
// Dispute/Resolve/Chargeback when the failure is specifically
// TransactionNotCommitted.
func (e *Engine) compensate(ctx context.Context, tx models.Transaction, cause error) {
	switch tx.Kind {
	case models.Deposit, models.Withdrawal:
		e.compensateRecord(ctx, tx)
	case models.Dispute, models.Resolve, models.Chargeback:
		var notCommitted TransactionNotCommittedError
		if errors.As(cause, &notCommitted) {
			e.log.Warn("rolling back under_dispute flag", "tx", tx.ID, "client", tx.Client)
			if err := e.store.ToggleUnderDispute(ctx, tx.ID); err != nil {
				e.log.Error("compensation failed: could not toggle under_dispute", "tx", tx.ID, "error", err)
			}
			e.metric.ObserveRollback(tx.Kind)
		}
	}
}

func (e *Engine) recordFailure(kind models.Kind, err error) {
	e.metric.ObserveFailed(kind, failureReason(err))
}

func failureReason(err error) string {
	switch err.(type) {
	case InsufficientAvailableFundsError:
		return "insufficient_available"
	case InsufficientHeldFundsError:
		return "insufficient_held"
	case WrongTransactionRefError:
		return "wrong_transaction_ref"
	case TransactionRefWrongClientError:
		return "wrong_client"
	case NegativeAmountTransactionError:
		return "negative_amount"
	case DoubleDisputeError:
		return "double_dispute"
	case LockedAccountError:
		return "locked_account"
	case TransactionNotCommittedError:
		return "not_committed"
	default:
		return "store_error"
	}
}
