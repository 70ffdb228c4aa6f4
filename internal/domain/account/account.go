// Package account holds the pure balance mutations applied to an in-flight
// account snapshot. Callers (the engine) are responsible for validating that a
// mutation is legal before calling into this package — these functions only
// move money between the available/held/total buckets.
package account

import "github.com/robertohuertasm/payments-engine/internal/domain/models"

// Credit adds amount to the available and total funds. Used on a successful
// deposit.
func Credit(acc *models.Account, amount models.Amount) {
	acc.Available = acc.Available.Add(amount)
	acc.Total = acc.Total.Add(amount)
}

// Debit removes amount from the available and total funds. Used on a
// successful withdrawal. The caller must have already checked that Available
// covers amount.
func Debit(acc *models.Account, amount models.Amount) {
	acc.Available = acc.Available.Sub(amount)
	acc.Total = acc.Total.Sub(amount)
}

// Hold moves amount from available to held. Used when a dispute opens. The
// caller must have already checked that Available covers amount.
func Hold(acc *models.Account, amount models.Amount) {
	acc.Available = acc.Available.Sub(amount)
	acc.Held = acc.Held.Add(amount)
}

// Release moves amount from held back to available, leaving total unchanged.
// Used when a dispute resolves. The caller must have already checked that Held
// covers amount.
func Release(acc *models.Account, amount models.Amount) {
	acc.Held = acc.Held.Sub(amount)
	acc.Available = acc.Available.Add(amount)
}

// Forfeit removes amount from held and total and locks the account. Used when
// a dispute ends in a chargeback. The caller must have already checked that
// Held covers amount.
func Forfeit(acc *models.Account, amount models.Amount) {
	acc.Held = acc.Held.Sub(amount)
	acc.Total = acc.Total.Sub(amount)
	acc.Locked = true
}

// HasSufficientAvailable reports whether acc.Available covers amount.
func HasSufficientAvailable(acc *models.Account, amount models.Amount) bool {
	return acc.Available.GreaterThanOrEqual(amount)
}

// HasSufficientHeld reports whether acc.Held covers amount.
func HasSufficientHeld(acc *models.Account, amount models.Amount) bool {
	return acc.Held.GreaterThanOrEqual(amount)
}
