package csvio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertohuertasm/payments-engine/internal/csvio"
	"github.com/robertohuertasm/payments-engine/internal/domain/models"
)

func collect(t *testing.T, input string) []csvio.ParsedTransaction {
	t.Helper()
	stream, err := csvio.ReadTransactions(strings.NewReader(input))
	require.NoError(t, err)
	var out []csvio.ParsedTransaction
	for p := range stream {
		out = append(out, p)
	}
	return out
}

func TestReadTransactionsParsesMixedRows(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,10,100\n" +
		"deposito,1,11,100.0\n" +
		"withdrawal,1,12,200.0\n" +
		"resolve,1,13,\n" +
		"dispute,1,15,\n" +
		"chargeback,1,17,\n" +
		"deposit,1,19,5.001\n" +
		"withdrawal,1,21,\n"

	results := collect(t, input)
	require.Len(t, results, 8)

	require.NoError(t, results[0].Err)
	assert.Equal(t, models.NewDeposit(10, 1, mustAmount("100")), results[0].Transaction)

	assert.Error(t, results[1].Err, "unknown type should surface as a row error")

	require.NoError(t, results[2].Err)
	assert.Equal(t, models.NewWithdrawal(12, 1, mustAmount("200.0")), results[2].Transaction)

	require.NoError(t, results[3].Err)
	assert.Equal(t, models.NewResolve(13, 1), results[3].Transaction)

	require.NoError(t, results[6].Err)
	assert.Equal(t, models.NewDeposit(19, 1, mustAmount("5.001")), results[6].Transaction)

	require.NoError(t, results[7].Err)
	assert.Equal(t, models.NewWithdrawal(21, 1, models.Zero), results[7].Transaction)
}

func TestReadTransactionsTrimsWhitespace(t *testing.T) {
	input := "type    ,client,        tx,     amount\n" +
		"   deposit   ,1  , 10,   100\n"

	results := collect(t, input)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, models.NewDeposit(10, 1, mustAmount("100")), results[0].Transaction)
}

func TestReadTransactionsToleratesMissingTrailingColumn(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"dispute,1,10\n" +
		"resolve,1,11\n"

	results := collect(t, input)
	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	assert.Equal(t, models.NewDispute(10, 1), results[0].Transaction)
	require.NoError(t, results[1].Err)
	assert.Equal(t, models.NewResolve(11, 1), results[1].Transaction)
}

func mustAmount(s string) models.Amount {
	a, err := models.ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}
