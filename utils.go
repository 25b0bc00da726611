package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"

	// Balance assumed before the first QR payment when the ledger has none
	openingBalance = 60000
)

// txnDateLayouts are tried in order. Slash and dash forms are day-first.
var txnDateLayouts = []string{
	dateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"2-1-2006",
	"2/1/2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// transactionNamespace seeds deterministic transaction IDs
var transactionNamespace = uuid.MustParse("6f1c2b7e-4a57-4d43-9a3e-3b2f8f0c1d55")

// Number and date helpers

// parseAmount converts a ledger amount like "1,234.56" to a float. Anything
// that is not a non-negative number is coerced to zero.
func parseAmount(input string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(input), ",", "")
	if cleaned == "" {
		return 0
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil || amount.IsNegative() {
		return 0
	}
	return amount.InexactFloat64()
}

// formatAmount renders an amount for storage in a ledger row
func formatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// toDecimal lifts a parsed amount back to its exact decimal value for summing
func toDecimal(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount)
}

// percentOf returns part/whole*100 rounded to 2 places, whole must be non-zero
func percentOf(part, whole decimal.Decimal) float64 {
	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

// ratio returns a/b rounded to 2 places, or 0 when b is zero
func ratio(a, b decimal.Decimal) float64 {
	if b.IsZero() {
		return 0
	}
	return a.Div(b).Round(2).InexactFloat64()
}

// runningBalance returns the ledger balance after debiting amount. The last
// row with a readable balance is the starting point; a ledger without one
// starts from openingBalance.
func runningBalance(rows []RawTransactionRow, amount float64) string {
	balance := decimal.NewFromInt(openingBalance)
	for _, r := range rows {
		cleaned := strings.ReplaceAll(strings.TrimSpace(r.Balance), ",", "")
		if cleaned == "" {
			continue
		}
		if parsed, err := decimal.NewFromString(cleaned); err == nil {
			balance = parsed
		}
	}
	return balance.Sub(toDecimal(amount)).StringFixed(2)
}

// parseTxnDate parses a ledger date into a timezone-naive calendar date (UTC midnight)
func parseTxnDate(input string) (time.Time, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range txnDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// normalizeTxnType upper-cases the transaction type so "debit" and "DEBIT" agree
func normalizeTxnType(input string) TxnType {
	return TxnType(strings.ToUpper(strings.TrimSpace(input)))
}

// transactionID derives a stable ID from a row's position and content
func transactionID(position int, row RawTransactionRow) string {
	key := strings.Join([]string{
		strconv.Itoa(position), row.TxnDate, row.Description, row.Merchant, row.Amount, row.TxnType,
	}, "\x1f")
	return uuid.NewSHA1(transactionNamespace, []byte(key)).String()
}

// Validation functions

// validateQrPayment validates a QR payment request
func validateQrPayment(request QrPaymentRequest) error {
	if strings.TrimSpace(request.Merchant) == "" {
		return fmt.Errorf("merchant cannot be empty")
	}
	if request.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ledgerErrorStatus converts ledger and decoding errors to HTTP responses
func ledgerErrorStatus(err error) (statusCode int, message string) {
	switch {
	case errors.Is(err, ErrLedgerNotFound):
		return http.StatusNotFound, "Transactions ledger not found. Please upload file first."
	case errors.Is(err, ErrMalformedDate):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, ErrMissingColumn):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}
