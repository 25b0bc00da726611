package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLedger is an in-memory LedgerSource
type stubLedger struct {
	rows []RawTransactionRow
	err  error
}

func (s *stubLedger) Load(ctx context.Context) ([]RawTransactionRow, error) {
	return s.rows, s.err
}

func (s *stubLedger) Append(ctx context.Context, row RawTransactionRow) error {
	s.rows = append(s.rows, row)
	return s.err
}

func (s *stubLedger) Replace(ctx context.Context, rows []RawTransactionRow) error {
	s.rows = rows
	return s.err
}

func TestDecodeTransactions(t *testing.T) {
	t.Run("should decode and categorize rows", func(t *testing.T) {
		transactions, err := decodeTransactions([]RawTransactionRow{
			{TxnDate: "2025-10-20", Description: "Dinner order", Merchant: "Swiggy", Amount: "1,250.50", TxnType: " debit "},
			{TxnDate: "01/10/2025", Description: "October pay", Merchant: "ACME Pvt Ltd", Amount: "50000", TxnType: "CREDIT"},
		})

		require.NoError(t, err)
		require.Len(t, transactions, 2)

		first := transactions[0]
		assert.Equal(t, time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC), first.TxnDate)
		assert.Equal(t, 1250.5, first.Amount)
		assert.Equal(t, TxnTypeDebit, first.TxnType)
		assert.Equal(t, CategoryFood, first.Category)
		assert.NotEmpty(t, first.ID)

		second := transactions[1]
		assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), second.TxnDate)
		assert.True(t, second.IsCredit())
		assert.Equal(t, CategorySalary, second.Category)
	})

	t.Run("should coerce bad amounts to zero", func(t *testing.T) {
		transactions, err := decodeTransactions([]RawTransactionRow{
			{TxnDate: "2025-10-20", Amount: "abc", TxnType: "DEBIT"},
			{TxnDate: "2025-10-20", Amount: "-40", TxnType: "DEBIT"},
			{TxnDate: "2025-10-20", Amount: "", TxnType: "DEBIT"},
		})

		require.NoError(t, err)
		for _, txn := range transactions {
			assert.Zero(t, txn.Amount)
		}
	})

	t.Run("should fail on a malformed date with the row number", func(t *testing.T) {
		_, err := decodeTransactions([]RawTransactionRow{
			{TxnDate: "2025-10-20", Amount: "10", TxnType: "DEBIT"},
			{TxnDate: "yesterday", Amount: "10", TxnType: "DEBIT"},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedDate)
		assert.Contains(t, err.Error(), "row 2")
	})

	t.Run("should produce stable IDs", func(t *testing.T) {
		rows := []RawTransactionRow{
			{TxnDate: "2025-10-20", Merchant: "Cafe", Amount: "10", TxnType: "DEBIT"},
			{TxnDate: "2025-10-20", Merchant: "Cafe", Amount: "10", TxnType: "DEBIT"},
		}

		first, err := decodeTransactions(rows)
		require.NoError(t, err)
		second, err := decodeTransactions(rows)
		require.NoError(t, err)

		assert.Equal(t, first[0].ID, second[0].ID)
		assert.NotEqual(t, first[0].ID, first[1].ID)
	})
}

func TestLoadTransactions(t *testing.T) {
	t.Run("should wrap load errors", func(t *testing.T) {
		_, err := loadTransactions(context.Background(), &stubLedger{err: ErrLedgerNotFound})

		assert.ErrorIs(t, err, ErrLedgerNotFound)
	})

	t.Run("should pass through backend failures", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := loadTransactions(context.Background(), &stubLedger{err: boom})

		assert.ErrorIs(t, err, boom)
	})

	t.Run("should decode loaded rows", func(t *testing.T) {
		transactions, err := loadTransactions(context.Background(), &stubLedger{rows: []RawTransactionRow{
			{TxnDate: "2025-10-20", Description: "Uber ride", Amount: "120", TxnType: "DEBIT"},
		}})

		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, CategoryTravel, transactions[0].Category)
	})
}
