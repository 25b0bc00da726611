package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Totals handler functions

// categoryTotals sums debits per category. Every taxonomy category is listed,
// in taxonomy order, including those with no spending.
func categoryTotals(transactions []Transaction) []CategoryTotal {
	totals := make(map[Category]decimal.Decimal)
	counts := make(map[Category]int)
	for _, t := range transactions {
		if !t.IsDebit() {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(toDecimal(t.Amount))
		counts[t.Category]++
	}

	result := make([]CategoryTotal, 0, len(Taxonomy()))
	for _, category := range Taxonomy() {
		result = append(result, CategoryTotal{
			Category: category,
			Total:    totals[category].Round(2).InexactFloat64(),
			Count:    counts[category],
		})
	}
	return result
}

// @Summary Get totals by category
// @Description Get debit totals and transaction counts for each category
// @Tags totals
// @Produce json
// @Success 200 {array} CategoryTotal "List of totals by category"
// @Failure 404 {object} map[string]interface{} "Ledger not uploaded"
// @Failure 422 {object} map[string]interface{} "Malformed transaction date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/totals [get]
func getTotals(c *gin.Context) {
	transactions, err := loadTransactions(c.Request.Context(), ledger)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, categoryTotals(transactions))
}
