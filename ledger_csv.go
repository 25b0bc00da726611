package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ledger CSV columns in the order they are written
var ledgerColumns = []string{"txn_date", "description", "merchant", "amount", "txn_type", "balance"}

var requiredLedgerColumns = []string{"txn_date", "amount", "txn_type"}

// maxHeaderDistance is how far a header may drift from a known column name
const maxHeaderDistance = 2

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvDecodeResult holds the rows read from a ledger file and how many lines were unusable
type csvDecodeResult struct {
	Rows        []RawTransactionRow
	SkippedRows int
}

// resolveLedgerHeader maps each known column to its index in header. Names
// are compared case-insensitively with spaces treated as underscores, and a
// small edit distance is tolerated for misspelled headers.
func resolveLedgerHeader(header []string) (map[string]int, error) {
	indexes := make(map[string]int)
	for i, raw := range header {
		name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")
		if name == "" {
			continue
		}

		best, bestDistance := "", maxHeaderDistance+1
		for _, column := range ledgerColumns {
			if d := levenshtein.ComputeDistance(name, column); d < bestDistance {
				best, bestDistance = column, d
			}
		}
		if best == "" {
			continue
		}
		if _, taken := indexes[best]; !taken {
			indexes[best] = i
		}
	}

	for _, column := range requiredLedgerColumns {
		if _, ok := indexes[column]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
	}
	return indexes, nil
}

// decodeLedgerCSV reads a ledger CSV. The first record is the header. Lines
// whose field count differs from the header are skipped and counted.
func decodeLedgerCSV(r io.Reader) (csvDecodeResult, error) {
	var result csvDecodeResult

	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return result, fmt.Errorf("%w: empty ledger file", ErrMissingColumn)
	}
	if err != nil {
		return result, fmt.Errorf("read ledger header: %w", err)
	}

	indexes, err := resolveLedgerHeader(header)
	if err != nil {
		return result, err
	}

	field := func(record []string, column string) string {
		i, ok := indexes[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				result.SkippedRows++
				continue
			}
			return result, fmt.Errorf("read ledger row: %w", err)
		}
		if len(record) != len(header) {
			result.SkippedRows++
			continue
		}
		result.Rows = append(result.Rows, RawTransactionRow{
			TxnDate:     field(record, "txn_date"),
			Description: field(record, "description"),
			Merchant:    field(record, "merchant"),
			Amount:      field(record, "amount"),
			TxnType:     field(record, "txn_type"),
			Balance:     field(record, "balance"),
		})
	}

	return result, nil
}

// encodeLedgerCSV writes rows with a header in the canonical column order
func encodeLedgerCSV(w io.Writer, rows []RawTransactionRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ledgerColumns); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(ledgerRecord(row)); err != nil {
			return fmt.Errorf("write ledger row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func ledgerRecord(row RawTransactionRow) []string {
	return []string{row.TxnDate, row.Description, row.Merchant, row.Amount, row.TxnType, row.Balance}
}
