package engine_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertohuertasm/payments-engine/internal/domain/models"
	"github.com/robertohuertasm/payments-engine/internal/engine"
	"github.com/robertohuertasm/payments-engine/internal/pkg/logging"
	"github.com/robertohuertasm/payments-engine/internal/store"
)

func newEngine() *engine.Engine {
	return engine.New(store.NewMemory(), nopLogger{}, nil)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

var _ logging.Logger = nopLogger{}

func d(s string) models.Amount {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func reportMap(t *testing.T, eng *engine.Engine, ctx context.Context) map[models.ClientID]models.Account {
	t.Helper()
	seq, err := eng.Report(ctx)
	require.NoError(t, err)
	out := map[models.ClientID]models.Account{}
	for acc := range seq {
		out[acc.Client] = acc
	}
	return out
}

// S1 from the reference scenario suite.
func TestScenarioMixedOperations(t *testing.T) {
	ctx := context.Background()
	eng := newEngine()

	txs := []models.Transaction{
		models.NewDeposit(1, 1, d("100")),
		models.NewWithdrawal(2, 1, d("50")),
		models.NewDeposit(3, 2, d("100")),
		models.NewDeposit(4, 1, d("200")),
		models.NewDispute(4, 1),
		models.NewResolve(4, 1),
		models.NewDispute(3, 2),
		models.NewChargeback(3, 2),
		models.NewDispute(3, 1), // wrong client, rejected
	}
	for _, tx := range txs {
		_, _ = eng.ProcessTransaction(ctx, tx)
	}

	accounts := reportMap(t, eng, ctx)
	require.Contains(t, accounts, models.ClientID(1))
	require.Contains(t, accounts, models.ClientID(2))

	a1 := accounts[1]
	assert.True(t, a1.Available.Equal(d("250")))
	assert.True(t, a1.Held.IsZero())
	assert.True(t, a1.Total.Equal(d("250")))
	assert.False(t, a1.Locked)

	a2 := accounts[2]
	assert.True(t, a2.Available.IsZero())
	assert.True(t, a2.Held.IsZero())
	assert.True(t, a2.Total.IsZero())
	assert.True(t, a2.Locked)
}

// S2
func TestScenarioWithdrawalExceedingAvailable(t *testing.T) {
	ctx := context.Background()
	eng := newEngine()

	_, _ = eng.ProcessTransaction(ctx, models.NewDeposit(1, 1, d("10")))
	_, err := eng.ProcessTransaction(ctx, models.NewWithdrawal(2, 1, d("20")))
	assert.Error(t, err)

	accounts := reportMap(t, eng, ctx)
	a1 := accounts[1]
	assert.True(t, a1.Available.Equal(d("10")))
	assert.True(t, a1.Total.Equal(d("10")))
}

// S3
func TestScenarioDisputeThenResolveReturnsToSteadyState(t *testing.T) {
	ctx := context.Background()
	eng := newEngine()

	_, _ = eng.ProcessTransaction(ctx, models.NewDeposit(1, 1, d("10")))
	_, err := eng.ProcessTransaction(ctx, models.NewDispute(1, 1))
	require.NoError(t, err)
	_, err = eng.ProcessTransaction(ctx, models.NewResolve(1, 1))
	require.NoError(t, err)

	accounts := reportMap(t, eng, ctx)
	a1 := accounts[1]
	assert.True(t, a1.Available.Equal(d("10")))
	assert.True(t, a1.Held.IsZero())
	assert.False(t, a1.Locked)
}

// S4
func TestScenarioChargebackLocksAccount(t *testing.T) {
	ctx := context.Background()
	eng := newEngine()

	_, _ = eng.ProcessTransaction(ctx, models.NewDeposit(1, 1, d("10")))
	_, _ = eng.ProcessTransaction(ctx, models.NewDispute(1, 1))
	_, err := eng.ProcessTransaction(ctx, models.NewChargeback(1, 1))
	require.NoError(t, err)

	_, err = eng.ProcessTransaction(ctx, models.NewDeposit(2, 1, d("5")))
	assert.Error(t, err)
	assert.IsType(t, engine.LockedAccountError{}, err)

	accounts := reportMap(t, eng, ctx)
	a1 := accounts[1]
	assert.True(t, a1.Available.IsZero())
	assert.True(t, a1.Total.IsZero())
	assert.True(t, a1.Locked)
}

// S6
func TestScenarioDisputeOnNonexistentReferenceIsNoop(t *testing.T) {
	ctx := context.Background()
	eng := newEngine()

	_, err := eng.ProcessTransaction(ctx, models.NewDispute(999, 1))
	assert.NoError(t, err)
}

func TestNegativeAmountDepositIsRejected(t *testing.T) {
	ctx := context.Background()
	eng := newEngine()

	_, err := eng.ProcessTransaction(ctx, models.NewDeposit(1, 1, d("-1")))
	assert.IsType(t, engine.NegativeAmountTransactionError{}, err)

	accounts := reportMap(t, eng, ctx)
	assert.NotContains(t, accounts, models.ClientID(1), "a rejected deposit never touches the store")
}

func TestDuplicateDepositIDIsRejected(t *testing.T) {
	ctx := context.Background()
	eng := newEngine()

	_, err := eng.ProcessTransaction(ctx, models.NewDeposit(1, 1, d("10")))
	require.NoError(t, err)

	_, err = eng.ProcessTransaction(ctx, models.NewDeposit(1, 1, d("20")))
	assert.Error(t, err)

	accounts := reportMap(t, eng, ctx)
	assert.True(t, accounts[1].Available.Equal(d("10")))
}

func TestDoubleDisputeRejected(t *testing.T) {
	ctx := context.Background()
	eng := newEngine()

	_, _ = eng.ProcessTransaction(ctx, models.NewDeposit(1, 1, d("10")))
	_, err := eng.ProcessTransaction(ctx, models.NewDispute(1, 1))
	require.NoError(t, err)

	_, err = eng.ProcessTransaction(ctx, models.NewDispute(1, 1))
	assert.IsType(t, engine.DoubleDisputeError{}, err)
}

// engine.rs:931 rollback_transaction_under_dispute_state_if_tx_is_not_commited
func TestFailedUpsertRollsBackDepositRecord(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	eng := engine.New(mem, nopLogger{}, nil)

	mem.SetFailUpserts(true)
	_, err := eng.ProcessTransaction(ctx, models.NewDeposit(1, 1, d("10")))
	require.Error(t, err)
	assert.IsType(t, engine.TransactionNotCommittedError{}, err)

	_, err = mem.GetTransaction(ctx, 1)
	assert.IsType(t, store.NotFoundError{}, err, "the deposit must be rolled back, not left committed")
}

func TestFailedUpsertRollsBackUnderDisputeFlag(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	eng := engine.New(mem, nopLogger{}, nil)

	_, err := eng.ProcessTransaction(ctx, models.NewDeposit(1, 1, d("10")))
	require.NoError(t, err)
	_, err = eng.ProcessTransaction(ctx, models.NewDispute(1, 1))
	require.NoError(t, err)

	ref, err := mem.GetTransaction(ctx, 1)
	require.NoError(t, err)
	require.True(t, ref.UnderDispute)

	mem.SetFailUpserts(true)
	_, err = eng.ProcessTransaction(ctx, models.NewResolve(1, 1))
	require.Error(t, err)
	assert.IsType(t, engine.TransactionNotCommittedError{}, err)

	ref, err = mem.GetTransaction(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ref.UnderDispute, "a failed resolve must restore the under_dispute flag it flipped")
}

func TestLockedAccountRejectsEveryFurtherTransaction(t *testing.T) {
	ctx := context.Background()
	eng := newEngine()

	_, _ = eng.ProcessTransaction(ctx, models.NewDeposit(1, 1, d("10")))
	_, _ = eng.ProcessTransaction(ctx, models.NewDispute(1, 1))
	_, _ = eng.ProcessTransaction(ctx, models.NewChargeback(1, 1))

	before := reportMap(t, eng, ctx)[1]

	_, err := eng.ProcessTransaction(ctx, models.NewWithdrawal(2, 1, d("1")))
	assert.IsType(t, engine.LockedAccountError{}, err)

	after := reportMap(t, eng, ctx)[1]
	assert.Equal(t, before, after, "a failed transaction on a locked account leaves it byte-identical")
}
