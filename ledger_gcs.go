package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"
)

// GCSLedger stores the ledger CSV as a single Cloud Storage object
type GCSLedger struct {
	client *storage.Client
	bucket string
	object string
}

// NewGCSLedger creates a ledger for gs://bucket/object
func NewGCSLedger(client *storage.Client, bucket, object string) *GCSLedger {
	return &GCSLedger{client: client, bucket: bucket, object: object}
}

func (l *GCSLedger) handle() *storage.ObjectHandle {
	return l.client.Bucket(l.bucket).Object(l.object)
}

// read returns the decoded rows and the object generation they came from
func (l *GCSLedger) read(ctx context.Context) ([]RawTransactionRow, int64, error) {
	r, err := l.handle().NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, 0, ErrLedgerNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("open gs://%s/%s: %w", l.bucket, l.object, err)
	}
	defer r.Close()

	result, err := decodeLedgerCSV(r)
	if err != nil {
		return nil, 0, err
	}
	if result.SkippedRows > 0 {
		logger.Warn().
			Str("object", fmt.Sprintf("gs://%s/%s", l.bucket, l.object)).
			Int("skipped_rows", result.SkippedRows).
			Msg("skipped malformed ledger lines")
	}
	return result.Rows, r.Attrs.Generation, nil
}

// Load reads every row of the ledger object
func (l *GCSLedger) Load(ctx context.Context) ([]RawTransactionRow, error) {
	rows, _, err := l.read(ctx)
	return rows, err
}

// Append rewrites the object with row added. The write is conditional on the
// generation that was read, so a concurrent writer makes this fail instead of
// losing a row.
func (l *GCSLedger) Append(ctx context.Context, row RawTransactionRow) error {
	rows, generation, err := l.read(ctx)
	if err != nil && !errors.Is(err, ErrLedgerNotFound) {
		return err
	}

	conds := storage.Conditions{DoesNotExist: true}
	if generation != 0 {
		conds = storage.Conditions{GenerationMatch: generation}
	}
	return l.write(ctx, l.handle().If(conds), append(rows, row))
}

// Replace overwrites the object unconditionally
func (l *GCSLedger) Replace(ctx context.Context, rows []RawTransactionRow) error {
	return l.write(ctx, l.handle(), rows)
}

func (l *GCSLedger) write(ctx context.Context, obj *storage.ObjectHandle, rows []RawTransactionRow) error {
	var buf bytes.Buffer
	if err := encodeLedgerCSV(&buf, rows); err != nil {
		return err
	}

	w := obj.NewWriter(ctx)
	w.ContentType = "text/csv"
	if _, err := w.Write(buf.Bytes()); err != nil {
		w.Close()
		return fmt.Errorf("write gs://%s/%s: %w", l.bucket, l.object, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close gs://%s/%s: %w", l.bucket, l.object, err)
	}
	return nil
}
