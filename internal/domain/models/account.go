package models

// maxDisplayPrecision is the number of fractional digits the CSV writer rescales to.
const maxDisplayPrecision = 4

// Account is the current state of a client's funds.
type Account struct {
	Client    ClientID `json:"client"`
	Available Amount   `json:"available"`
	Held      Amount   `json:"held"`
	Total     Amount   `json:"total"`
	Locked    bool     `json:"locked"`
}

// NewAccount creates a zeroed Account for the given client.
func NewAccount(client ClientID) Account {
	return Account{Client: client, Available: Zero, Held: Zero, Total: Zero}
}

// Seeded creates an Account with the given available/held funds, deriving Total.
// Mostly useful for tests.
func Seeded(client ClientID, available, held Amount, locked bool) Account {
	return Account{
		Client:    client,
		Available: available,
		Held:      held,
		Total:     available.Add(held),
		Locked:    locked,
	}
}

// ToMaxDisplayPrecision returns a copy of the account with available/held/total
// rescaled to at most 4 fractional digits. It never mutates the receiver: the
// store's copy of the account is never affected by display rescaling.
func (a Account) ToMaxDisplayPrecision() Account {
	a.Available = rescaleToMaxPrecision(a.Available)
	a.Held = rescaleToMaxPrecision(a.Held)
	a.Total = rescaleToMaxPrecision(a.Total)
	return a
}

// rescaleToMaxPrecision rounds half away from zero, matching the reference
// decimal library's default rescale behavior (e.g. 1.00005 -> 1.0001, not
// 1.0000 as banker's rounding would give).
func rescaleToMaxPrecision(amount Amount) Amount {
	if amount.Exponent() < -maxDisplayPrecision {
		return amount.Round(maxDisplayPrecision)
	}
	return amount
}
