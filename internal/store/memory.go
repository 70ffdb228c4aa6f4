package store

import (
	"context"
	"sync"

	"github.com/robertohuertasm/payments-engine/internal/domain/models"
)

// Memory is an in-memory Store implementation. It is safe for concurrent use:
// the deposits map and the accounts map are each guarded by their own
// sync.RWMutex, following the teacher repo's one-lock-per-map convention
// (internal/infrastructure/database/postgres.go's account-mutex map,
// generalized here to two independent maps instead of per-row mutexes, since
// an in-memory map has no row-level granularity to exploit).
type Memory struct {
	depositsMu sync.RWMutex
	deposits   map[models.TransactionID]models.Transaction

	accountsMu sync.RWMutex
	accounts   map[models.ClientID]models.Account

	// failUpserts, when set, makes UpsertAccount fail deterministically. It
	// exists purely for exercising the engine's compensation paths in tests.
	failUpserts bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		deposits: make(map[models.TransactionID]models.Transaction),
		accounts: make(map[models.ClientID]models.Account),
	}
}

// SeededMemory creates an in-memory store pre-populated with the given
// deposits and accounts. Useful for tests that need to start from a known
// state without replaying a transaction history.
func SeededMemory(deposits map[models.TransactionID]models.Transaction, accounts map[models.ClientID]models.Account) *Memory {
	m := NewMemory()
	for id, tx := range deposits {
		m.deposits[id] = tx
	}
	for id, acc := range accounts {
		m.accounts[id] = acc
	}
	return m
}

// SetFailUpserts toggles deterministic UpsertAccount failures, for tests that
// exercise the engine's compensation path.
func (m *Memory) SetFailUpserts(fail bool) {
	m.accountsMu.Lock()
	defer m.accountsMu.Unlock()
	m.failUpserts = fail
}

// DepositsLen returns the number of stored deposits. Test-only.
func (m *Memory) DepositsLen() int {
	m.depositsMu.RLock()
	defer m.depositsMu.RUnlock()
	return len(m.deposits)
}

// AccountsLen returns the number of stored accounts. Test-only.
func (m *Memory) AccountsLen() int {
	m.accountsMu.RLock()
	defer m.accountsMu.RUnlock()
	return len(m.accounts)
}

func (m *Memory) GetTransaction(_ context.Context, id models.TransactionID) (models.Transaction, error) {
	m.depositsMu.RLock()
	defer m.depositsMu.RUnlock()
	tx, ok := m.deposits[id]
	if !ok {
		return models.Transaction{}, NotFoundError{ID: id}
	}
	return tx, nil
}

func (m *Memory) CreateTransaction(_ context.Context, tx models.Transaction) (models.Transaction, error) {
	if !tx.IsDeposit() {
		return tx, nil
	}

	m.depositsMu.Lock()
	defer m.depositsMu.Unlock()
	if _, exists := m.deposits[tx.ID]; exists {
		return models.Transaction{}, AlreadyExistsError{ID: tx.ID}
	}
	m.deposits[tx.ID] = tx
	return tx, nil
}

func (m *Memory) DeleteTransaction(_ context.Context, id models.TransactionID) error {
	m.depositsMu.Lock()
	defer m.depositsMu.Unlock()
	delete(m.deposits, id)
	return nil
}

func (m *Memory) SetTransactionUnderDispute(_ context.Context, id models.TransactionID, underDispute bool) error {
	m.depositsMu.Lock()
	defer m.depositsMu.Unlock()
	if tx, ok := m.deposits[id]; ok {
		tx.SetUnderDispute(underDispute)
		m.deposits[id] = tx
	}
	return nil
}

func (m *Memory) ToggleUnderDispute(_ context.Context, id models.TransactionID) error {
	m.depositsMu.Lock()
	defer m.depositsMu.Unlock()
	if tx, ok := m.deposits[id]; ok {
		tx.ToggleUnderDispute()
		m.deposits[id] = tx
	}
	return nil
}

func (m *Memory) GetAccount(_ context.Context, id models.ClientID) (models.Account, error) {
	m.accountsMu.RLock()
	defer m.accountsMu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return models.NewAccount(id), nil
}

func (m *Memory) UpsertAccount(_ context.Context, acc *models.Account) error {
	m.accountsMu.Lock()
	defer m.accountsMu.Unlock()
	if m.failUpserts {
		return AccessError{Msg: "test error"}
	}
	m.accounts[acc.Client] = *acc
	return nil
}

func (m *Memory) GetAllAccounts(_ context.Context) (AccountSeq, error) {
	m.accountsMu.RLock()
	defer m.accountsMu.RUnlock()

	ch := make(chan models.Account, len(m.accounts))
	for _, acc := range m.accounts {
		ch <- acc
	}
	close(ch)
	return ch, nil
}
