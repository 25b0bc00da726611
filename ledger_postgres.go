package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ledgerRowColumns = []string{"txn_date", "description", "merchant", "amount", "txn_type", "balance"}

// markLedgerPresent records that a ledger exists, even one with no rows
const markLedgerPresent = `
	INSERT INTO ledger_state (id) VALUES (TRUE)
	ON CONFLICT (id) DO UPDATE SET updated_at = CURRENT_TIMESTAMP
`

// PostgresLedger stores ledger rows in the ledger_rows table. Values are kept
// as text so decoding stays best-effort, exactly as for CSV files.
type PostgresLedger struct {
	pool *pgxpool.Pool
}

// NewPostgresLedger creates a ledger on an existing connection pool
func NewPostgresLedger(pool *pgxpool.Pool) *PostgresLedger {
	return &PostgresLedger{pool: pool}
}

// Load returns all rows in insertion order. Without a ledger_state row no
// ledger has been uploaded yet.
func (l *PostgresLedger) Load(ctx context.Context) ([]RawTransactionRow, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT txn_date, description, merchant, amount, txn_type, balance
		FROM ledger_rows
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("query ledger rows: %w", err)
	}
	defer rows.Close()

	var result []RawTransactionRow
	for rows.Next() {
		var r RawTransactionRow
		if err := rows.Scan(&r.TxnDate, &r.Description, &r.Merchant, &r.Amount, &r.TxnType, &r.Balance); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}

	if len(result) == 0 {
		var present bool
		if err := l.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM ledger_state)").Scan(&present); err != nil {
			return nil, fmt.Errorf("query ledger state: %w", err)
		}
		if !present {
			return nil, ErrLedgerNotFound
		}
		return []RawTransactionRow{}, nil
	}
	return result, nil
}

// Append inserts a single row
func (l *PostgresLedger) Append(ctx context.Context, row RawTransactionRow) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback is a no-op after commit

	_, err = tx.Exec(ctx, `
		INSERT INTO ledger_rows (txn_date, description, merchant, amount, txn_type, balance)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, row.TxnDate, row.Description, row.Merchant, row.Amount, row.TxnType, row.Balance)
	if err != nil {
		return fmt.Errorf("insert ledger row: %w", err)
	}
	if _, err := tx.Exec(ctx, markLedgerPresent); err != nil {
		return fmt.Errorf("mark ledger present: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Replace deletes every row and bulk-copies rows in one transaction
func (l *PostgresLedger) Replace(ctx context.Context, rows []RawTransactionRow) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback is a no-op after commit

	if _, err := tx.Exec(ctx, "DELETE FROM ledger_rows"); err != nil {
		return fmt.Errorf("clear ledger rows: %w", err)
	}

	values := make([][]any, 0, len(rows))
	for _, r := range rows {
		values = append(values, []any{r.TxnDate, r.Description, r.Merchant, r.Amount, r.TxnType, r.Balance})
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"ledger_rows"}, ledgerRowColumns, pgx.CopyFromRows(values)); err != nil {
		return fmt.Errorf("copy ledger rows: %w", err)
	}
	if _, err := tx.Exec(ctx, markLedgerPresent); err != nil {
		return fmt.Errorf("mark ledger present: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
