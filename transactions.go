package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Transaction handler functions

// @Summary Upload CSV file
// @Description Upload a ledger CSV (txn_date,description,merchant,amount,txn_type,balance). The upload replaces the current ledger. Returns the number of stored rows and count of skipped lines.
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file to upload"
// @Success 200 {object} map[string]interface{} "Upload successful - returns message, rows and skipped_rows count"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 422 {object} map[string]interface{} "Malformed transaction date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/upload-csv [post]
func uploadCSV(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	result, err := decodeLedgerCSV(file)
	if err != nil {
		if errors.Is(err, ErrMissingColumn) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading CSV file"})
		return
	}

	// Reject a ledger that could never be decoded before it replaces the good one
	if _, err := decodeTransactions(result.Rows); err != nil {
		respondLedgerError(c, err)
		return
	}

	if err := ledger.Replace(c.Request.Context(), result.Rows); err != nil {
		respondLedgerError(c, err)
		return
	}

	logger.Info().
		Str("file_name", header.Filename).
		Int("rows", len(result.Rows)).
		Int("skipped_rows", result.SkippedRows).
		Msg("ledger replaced from upload")

	c.JSON(http.StatusOK, gin.H{
		"message":      "CSV uploaded successfully",
		"rows":         len(result.Rows),
		"skipped_rows": result.SkippedRows,
	})
}

// @Summary Get all transactions
// @Description Retrieve every ledger transaction with its assigned category
// @Tags transactions
// @Produce json
// @Success 200 {array} Transaction "List of categorized transactions"
// @Failure 404 {object} map[string]interface{} "Ledger not uploaded"
// @Failure 422 {object} map[string]interface{} "Malformed transaction date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [get]
func getTransactions(c *gin.Context) {
	transactions, err := loadTransactions(c.Request.Context(), ledger)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary Pay via QR code
// @Description Record a debit paid by scanning a merchant QR code, dated today, and return the refreshed notification
// @Tags transactions
// @Accept json
// @Produce json
// @Param payment body QrPaymentRequest true "Payment data (merchant and positive amount required)"
// @Success 200 {object} QrPaymentResponse "Recorded payment"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/payments/qr [post]
func payViaQR(c *gin.Context) {
	var request QrPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateQrPayment(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	existing, err := ledger.Load(ctx)
	if err != nil && !errors.Is(err, ErrLedgerNotFound) {
		respondLedgerError(c, err)
		return
	}

	description := strings.TrimSpace(request.Purpose)
	if description == "" {
		description = "QR PAYMENT"
	}
	row := RawTransactionRow{
		TxnDate:     clock().Format(dateLayout),
		Description: description,
		Merchant:    strings.TrimSpace(request.Merchant),
		Amount:      formatAmount(request.Amount),
		TxnType:     string(TxnTypeDebit),
		Balance:     runningBalance(existing, request.Amount),
	}

	if err := ledger.Append(ctx, row); err != nil {
		respondLedgerError(c, err)
		return
	}

	transactions, err := loadTransactions(ctx, ledger)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	if len(transactions) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment was not recorded"})
		return
	}
	recorded := transactions[len(transactions)-1]

	signals := GenerateSignals(debitsOnly(transactions), clock())
	notification := engine.Select(signals)

	logger.Info().
		Str("transaction_id", recorded.ID).
		Str("merchant", recorded.Merchant).
		Str("upi_id", request.UpiID).
		Float64("amount", recorded.Amount).
		Str("balance", row.Balance).
		Str("category", string(recorded.Category)).
		Msg("qr payment recorded")

	c.JSON(http.StatusOK, QrPaymentResponse{
		Status:        "SUCCESS",
		TransactionID: recorded.ID,
		Transaction:   recorded,
		Notification:  notification,
	})
}
