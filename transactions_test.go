package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetTransactions tests the GET /api/transactions endpoint
func TestGetTransactions(t *testing.T) {
	t.Run("should return 404 when no ledger was uploaded", func(t *testing.T) {
		useTestLedger(t)

		resp := makeRequest("GET", "/api/transactions", nil)

		assertStatusCode(t, http.StatusNotFound, resp.Code)
		var body map[string]interface{}
		assertNoError(t, parseJSONResponse(resp, &body))
		assert.Equal(t, "Transactions ledger not found. Please upload file first.", body["error"])
	})

	t.Run("should return categorized transactions", func(t *testing.T) {
		l := useTestLedger(t)
		writeTestLedger(t, l,
			"2025-10-20,Dinner order,Swiggy,450.00,DEBIT,",
			"2025-10-18,Monthly bill,Airtel,799,debit,",
		)

		resp := makeRequest("GET", "/api/transactions", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		var transactions []map[string]interface{}
		assertNoError(t, parseJSONResponse(resp, &transactions))
		require.Len(t, transactions, 2)
		assert.Equal(t, "2025-10-20", transactions[0]["txn_date"])
		assert.Equal(t, "Food", transactions[0]["category"])
		assert.Equal(t, 450.0, transactions[0]["amount"])
		assert.Equal(t, "DEBIT", transactions[1]["txn_type"])
		assert.Equal(t, "Utilities", transactions[1]["category"])
		assert.NotEmpty(t, transactions[0]["id"])
	})

	t.Run("should return 422 for a malformed date", func(t *testing.T) {
		l := useTestLedger(t)
		writeTestLedger(t, l, "20th October,Dinner,Swiggy,450.00,DEBIT,")

		resp := makeRequest("GET", "/api/transactions", nil)

		assertStatusCode(t, http.StatusUnprocessableEntity, resp.Code)
	})
}

// TestPayViaQR tests the POST /api/payments/qr endpoint
func TestPayViaQR(t *testing.T) {
	t.Run("should record a debit dated today", func(t *testing.T) {
		l := useTestLedger(t)
		writeTestLedger(t, l,
			"2025-10-18,Cab to office,Uber,300.00,DEBIT,",
			"2025-10-01,Salary,ACME Pvt Ltd,50000,CREDIT,",
		)

		body, err := json.Marshal(QrPaymentRequest{Merchant: "Blue Tokai", UpiID: "bluetokai@upi", Amount: 180, Purpose: "Coffee"})
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/payments/qr", bytes.NewBuffer(body))

		assertStatusCode(t, http.StatusOK, resp.Code)
		var payment QrPaymentResponse
		assertNoError(t, parseJSONResponse(resp, &payment))
		assert.Equal(t, "SUCCESS", payment.Status)
		assert.NotEmpty(t, payment.TransactionID)
		assert.Equal(t, payment.TransactionID, payment.Transaction.ID)
		assert.Equal(t, CategoryFood, payment.Transaction.Category)
		assert.Equal(t, 180.0, payment.Transaction.Amount)
		assert.Equal(t, CategoryFood, payment.Notification.Category)

		rows, err := l.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, RawTransactionRow{
			TxnDate:     "2025-10-20",
			Description: "Coffee",
			Merchant:    "Blue Tokai",
			Amount:      "180.00",
			TxnType:     "DEBIT",
			Balance:     "59820.00",
		}, rows[2])
	})

	t.Run("should carry the running balance forward", func(t *testing.T) {
		l := useTestLedger(t)
		writeTestLedger(t, l,
			"2025-10-01,Salary,ACME Pvt Ltd,50000,CREDIT,51200.50",
			"2025-10-18,Cab to office,Uber,300.00,DEBIT,50900.50",
			"2025-10-19,Adjustment,Bank,0,DEBIT,pending",
		)

		body, err := json.Marshal(QrPaymentRequest{Merchant: "DMart", Amount: 400.25})
		assertNoError(t, err)
		resp := makeRequest("POST", "/api/payments/qr", bytes.NewBuffer(body))

		assertStatusCode(t, http.StatusOK, resp.Code)
		var payment QrPaymentResponse
		assertNoError(t, parseJSONResponse(resp, &payment))
		assert.Equal(t, "50500.25", payment.Transaction.Balance)

		rows, err := l.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "50500.25", rows[3].Balance)
	})

	t.Run("should make the payment the most recent category", func(t *testing.T) {
		l := useTestLedger(t)
		writeTestLedger(t, l, daysAgo(1)+",Cab to office,Uber,3000.00,DEBIT,")

		body, err := json.Marshal(QrPaymentRequest{Merchant: "DMart", Amount: 5})
		assertNoError(t, err)
		resp := makeRequest("POST", "/api/payments/qr", bytes.NewBuffer(body))
		assertStatusCode(t, http.StatusOK, resp.Code)

		notification := makeRequest("GET", "/api/nlp-notification", nil)
		assertStatusCode(t, http.StatusOK, notification.Code)

		var result NotificationResponse
		assertNoError(t, parseJSONResponse(notification, &result))
		require.NotNil(t, result.Signals.MostRecentCategory)
		assert.Equal(t, CategoryGrocery, *result.Signals.MostRecentCategory)
		assert.Equal(t, "Grocery Purchase Recorded", result.Notification.Title)
	})

	t.Run("should default the description", func(t *testing.T) {
		l := useTestLedger(t)

		body, err := json.Marshal(QrPaymentRequest{Merchant: "Corner Shop", Amount: 42.5})
		assertNoError(t, err)
		resp := makeRequest("POST", "/api/payments/qr", bytes.NewBuffer(body))

		assertStatusCode(t, http.StatusOK, resp.Code)
		rows, err := l.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "QR PAYMENT", rows[0].Description)
		assert.Equal(t, "42.50", rows[0].Amount)
		assert.Equal(t, "59957.50", rows[0].Balance)
	})
}
