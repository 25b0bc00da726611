package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Ledger errors
var (
	ErrLedgerNotFound = errors.New("ledger not found")
	ErrMalformedDate  = errors.New("malformed transaction date")
	ErrMissingColumn  = errors.New("missing required ledger column")
)

// LedgerSource is the storage backend holding the raw transaction ledger.
// The insights pipeline only reads from it; Append and Replace serve the
// payment and upload endpoints.
type LedgerSource interface {
	// Load returns every row in ledger order, or ErrLedgerNotFound
	Load(ctx context.Context) ([]RawTransactionRow, error)
	// Append adds a single row at the end of the ledger
	Append(ctx context.Context, row RawTransactionRow) error
	// Replace swaps the whole ledger for rows
	Replace(ctx context.Context, rows []RawTransactionRow) error
}

// decodeTransactions turns raw rows into categorized transactions. Bad
// amounts become zero; a bad date fails the whole ledger because every
// window and weekly bucket depends on it.
func decodeTransactions(rows []RawTransactionRow) ([]Transaction, error) {
	transactions := make([]Transaction, 0, len(rows))
	for i, row := range rows {
		date, err := parseTxnDate(row.TxnDate)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: %v", i+1, ErrMalformedDate, err)
		}

		t := Transaction{
			ID:          transactionID(i, row),
			TxnDate:     date,
			Amount:      parseAmount(row.Amount),
			TxnType:     normalizeTxnType(row.TxnType),
			Merchant:    row.Merchant,
			Description: row.Description,
			Category:    categorizeTransaction(row.Description, row.Merchant),
			Balance:     strings.TrimSpace(row.Balance),
		}
		if t.Category == CategoryOthers {
			logger.Debug().
				Str("description", t.Description).
				Str("merchant", t.Merchant).
				Msg("uncategorized transaction")
		}

		transactions = append(transactions, t)
	}
	return transactions, nil
}

// loadTransactions reads the ledger and decodes it
func loadTransactions(ctx context.Context, source LedgerSource) ([]Transaction, error) {
	rows, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return decodeTransactions(rows)
}
