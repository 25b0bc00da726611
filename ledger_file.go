package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileLedger stores the ledger as a CSV file on local disk
type FileLedger struct {
	path string
	mu   sync.Mutex
}

// NewFileLedger creates a ledger backed by the CSV file at path
func NewFileLedger(path string) *FileLedger {
	return &FileLedger{path: path}
}

// Load reads every row of the CSV file
func (l *FileLedger) Load(ctx context.Context) ([]RawTransactionRow, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrLedgerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	result, err := decodeLedgerCSV(f)
	if err != nil {
		return nil, err
	}
	if result.SkippedRows > 0 {
		logger.Warn().Str("path", l.path).Int("skipped_rows", result.SkippedRows).Msg("skipped malformed ledger lines")
	}
	return result.Rows, nil
}

// Append adds row to the end of the ledger. The file is rewritten in
// canonical column order so foreign headers and missing trailing newlines are
// handled.
func (l *FileLedger) Append(ctx context.Context, row RawTransactionRow) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.Load(ctx)
	if err != nil && !errors.Is(err, ErrLedgerNotFound) {
		return err
	}
	return l.write(append(rows, row))
}

// Replace writes rows to a temporary file and renames it over the ledger
func (l *FileLedger) Replace(ctx context.Context, rows []RawTransactionRow) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.write(rows)
}

func (l *FileLedger) write(rows []RawTransactionRow) error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.csv")
	if err != nil {
		return fmt.Errorf("create temp ledger: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encodeLedgerCSV(tmp, rows); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp ledger: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}
