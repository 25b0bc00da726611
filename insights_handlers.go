package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Insights handler functions

// computeInsights loads the ledger and runs the aggregation stage
func computeInsights(ctx context.Context) (InsightsResponse, error) {
	transactions, err := loadTransactions(ctx, ledger)
	if err != nil {
		return InsightsResponse{}, err
	}

	return InsightsResponse{
		Transactions: transactions,
		Insights:     GenerateInsights(transactions),
	}, nil
}

// computeNotification loads the ledger and selects the notification for the current week
func computeNotification(ctx context.Context) (NotificationResponse, error) {
	transactions, err := loadTransactions(ctx, ledger)
	if err != nil {
		return NotificationResponse{}, err
	}

	signals := GenerateSignals(debitsOnly(transactions), clock())
	return NotificationResponse{
		Signals:      signals,
		Notification: engine.Select(signals),
	}, nil
}

func respondLedgerError(c *gin.Context, err error) {
	statusCode, message := ledgerErrorStatus(err)
	if statusCode == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("ledger request failed")
	}
	c.JSON(statusCode, gin.H{"error": message})
}

// @Summary Get insights
// @Description Categorize every ledger transaction and compute the spending report
// @Tags insights
// @Produce json
// @Success 200 {object} InsightsResponse "Categorized transactions and insights report"
// @Failure 404 {object} map[string]interface{} "Ledger not uploaded"
// @Failure 422 {object} map[string]interface{} "Malformed transaction date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/insights [get]
func getInsights(c *gin.Context) {
	response, err := computeInsights(c.Request.Context())
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Recalculate insights
// @Description Recompute the insights report from the current ledger
// @Tags insights
// @Produce json
// @Success 200 {object} InsightsResponse "Categorized transactions and insights report"
// @Failure 404 {object} map[string]interface{} "Ledger not uploaded"
// @Failure 422 {object} map[string]interface{} "Malformed transaction date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/recalculate [post]
func recalculate(c *gin.Context) {
	response, err := computeInsights(c.Request.Context())
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	logger.Info().Int("transactions", len(response.Transactions)).Msg("insights recalculated")
	c.JSON(http.StatusOK, response)
}

// @Summary Get spending notification
// @Description Derive weekly and monthly spending signals and select the single most relevant notification
// @Tags insights
// @Produce json
// @Success 200 {object} NotificationResponse "Signals and selected notification"
// @Failure 404 {object} map[string]interface{} "Ledger not uploaded"
// @Failure 422 {object} map[string]interface{} "Malformed transaction date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/nlp-notification [get]
func getNlpNotification(c *gin.Context) {
	response, err := computeNotification(c.Request.Context())
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is up"
// @Router /healthz [get]
func healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
