package engine

import (
	"context"
	"errors"

	"github.com/robertohuertasm/payments-engine/internal/domain/account"
	"github.com/robertohuertasm/payments-engine/internal/domain/models"
	"github.com/robertohuertasm/payments-engine/internal/store"
)

// handleDeposit credits the account. No dispute state is touched.
func (e *Engine) handleDeposit(acc *models.Account, tx models.Transaction) error {
	account.Credit(acc, tx.Amount)
	return nil
}

// handleWithdrawal debits the account if it has sufficient available funds.
func (e *Engine) handleWithdrawal(acc *models.Account, tx models.Transaction) error {
	if !account.HasSufficientAvailable(acc, tx.Amount) {
		return InsufficientAvailableFundsError{TransactionID: tx.ID}
	}
	account.Debit(acc, tx.Amount)
	return nil
}

// handleDispute opens a dispute against a prior deposit, moving its amount
// from available to held.
func (e *Engine) handleDispute(ctx context.Context, acc *models.Account, tx models.Transaction) error {
	ref, err := e.lookupRef(ctx, acc, tx)
	if err != nil || ref == nil {
		return err
	}

	if ref.UnderDispute {
		return DoubleDisputeError{TransactionID: tx.ID}
	}
	if !account.HasSufficientAvailable(acc, ref.Amount) {
		return InsufficientAvailableFundsError{TransactionID: tx.ID}
	}

	account.Hold(acc, ref.Amount)
	if err := e.store.SetTransactionUnderDispute(ctx, tx.ID, true); err != nil {
		return err
	}
	return nil
}

// handleResolve closes a dispute benignly, returning its amount from held to
// available.
func (e *Engine) handleResolve(ctx context.Context, acc *models.Account, tx models.Transaction) error {
	ref, err := e.lookupRef(ctx, acc, tx)
	if err != nil || ref == nil {
		return err
	}

	if !account.HasSufficientHeld(acc, ref.Amount) {
		return InsufficientHeldFundsError{TransactionID: tx.ID}
	}
	if !ref.UnderDispute {
		return nil
	}

	account.Release(acc, ref.Amount)
	if err := e.store.SetTransactionUnderDispute(ctx, tx.ID, false); err != nil {
		return err
	}
	return nil
}

// handleChargeback closes a dispute adversely, forfeiting the held amount and
// locking the account.
func (e *Engine) handleChargeback(ctx context.Context, acc *models.Account, tx models.Transaction) error {
	ref, err := e.lookupRef(ctx, acc, tx)
	if err != nil || ref == nil {
		return err
	}

	if !account.HasSufficientHeld(acc, ref.Amount) {
		return InsufficientHeldFundsError{TransactionID: tx.ID}
	}
	if !ref.UnderDispute {
		return nil
	}

	account.Forfeit(acc, ref.Amount)
	if err := e.store.SetTransactionUnderDispute(ctx, tx.ID, false); err != nil {
		return err
	}
	return nil
}

// lookupRef fetches the deposit referenced by a Dispute/Resolve/Chargeback,
// applying the shared validation order from §4.3: NotFound is a silent
// success (nil, nil), an unknown-variant or wrong-owner reference is an
// error, otherwise the referenced transaction is returned for the caller to
// inspect its amount and under_dispute flag.
func (e *Engine) lookupRef(ctx context.Context, acc *models.Account, tx models.Transaction) (*models.Transaction, error) {
	ref, err := e.store.GetTransaction(ctx, tx.ID)
	if err != nil {
		var notFound store.NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}

	if !ref.IsDeposit() {
		return nil, WrongTransactionRefError{TransactionID: tx.ID}
	}
	if ref.Client != acc.Client {
		return nil, TransactionRefWrongClientError{
			TransactionID: tx.ID,
			Client:        ref.Client,
			WrongClient:   acc.Client,
		}
	}

	return &ref, nil
}
