package main

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	topN = 5

	// Income is normalized over a fixed 30 day month, not the calendar month
	incomeNormalizationDays = 30
)

// amountGroups sums amounts per key and remembers first-seen key order
type amountGroups struct {
	order  []string
	totals map[string]decimal.Decimal
}

func newAmountGroups() *amountGroups {
	return &amountGroups{totals: make(map[string]decimal.Decimal)}
}

func (g *amountGroups) add(key string, amount decimal.Decimal) {
	total, exists := g.totals[key]
	if !exists {
		g.order = append(g.order, key)
	}
	g.totals[key] = total.Add(amount)
}

// top returns the n largest groups, ties keep first-seen order
func (g *amountGroups) top(n int) RankedAmounts {
	keys := append([]string(nil), g.order...)
	sort.SliceStable(keys, func(i, j int) bool {
		return g.totals[keys[i]].GreaterThan(g.totals[keys[j]])
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	ranked := make(RankedAmounts, 0, len(keys))
	for _, key := range keys {
		ranked = append(ranked, RankedAmount{Name: key, Amount: g.totals[key].InexactFloat64()})
	}
	return ranked
}

// isoWeekLabel returns the Monday/Sunday span of the ISO week containing date
func isoWeekLabel(date time.Time) string {
	offset := (int(date.Weekday()) + 6) % 7 // days since Monday
	monday := date.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(dateLayout) + "/" + sunday.Format(dateLayout)
}

// GenerateInsights derives the aggregate report for a categorized ledger.
// Debits are spending and credits are income. Every ratio and average falls
// back to zero when its denominator is zero, so an empty ledger yields an
// all-zero report.
func GenerateInsights(transactions []Transaction) InsightsReport {
	report := InsightsReport{
		CategoryTotals:         make(map[Category]float64),
		TopMerchants:           RankedAmounts{},
		WeeklySpend:            make(map[string]float64),
		TopCategories:          RankedAmounts{},
		DailyCategoryBreakdown: make(map[string]map[Category]float64),
	}

	var debits, credits []Transaction
	for _, t := range transactions {
		switch {
		case t.IsDebit():
			debits = append(debits, t)
		case t.IsCredit():
			credits = append(credits, t)
		}
	}

	categories := newAmountGroups()
	merchants := newAmountGroups()
	weeks := newAmountGroups()
	daily := make(map[string]map[Category]decimal.Decimal)
	var spend, income, investment, emi, sip decimal.Decimal
	for _, t := range debits {
		amount := toDecimal(t.Amount)
		categories.add(string(t.Category), amount)
		// Rows without a merchant are not ranked as a merchant
		if t.Merchant != "" {
			merchants.add(t.Merchant, amount)
		}
		spend = spend.Add(amount)
		weeks.add(isoWeekLabel(t.TxnDate), amount)

		day := t.TxnDate.Format(dateLayout)
		if daily[day] == nil {
			daily[day] = make(map[Category]decimal.Decimal)
		}
		daily[day][t.Category] = daily[day][t.Category].Add(amount)

		switch t.Category {
		case CategoryInvestment:
			investment = investment.Add(amount)
		case CategoryEMI:
			emi = emi.Add(amount)
		case CategorySIP:
			sip = sip.Add(amount)
		}
	}
	for _, t := range credits {
		income = income.Add(toDecimal(t.Amount))
	}

	for _, name := range categories.order {
		report.CategoryTotals[Category(name)] = categories.totals[name].InexactFloat64()
	}
	for _, label := range weeks.order {
		report.WeeklySpend[label] = weeks.totals[label].InexactFloat64()
	}
	report.TopCategories = categories.top(topN)
	report.TopMerchants = merchants.top(topN)
	if len(report.TopCategories) > 0 {
		report.HighestSpendingCategory = report.TopCategories[0].Name
	}
	if len(report.TopMerchants) > 0 {
		report.HighestSpendingMerchant = report.TopMerchants[0].Name
	}

	// Zero-amount categories are dropped, the day itself stays
	for day, byCategory := range daily {
		amounts := make(map[Category]float64, len(byCategory))
		for category, amount := range byCategory {
			if amount.IsPositive() {
				amounts[category] = amount.InexactFloat64()
			}
		}
		report.DailyCategoryBreakdown[day] = amounts
	}

	savings := income.Sub(spend)
	report.MonthlySpend = spend.InexactFloat64()
	report.TotalIncome = income.InexactFloat64()
	report.TotalSavings = savings.InexactFloat64()
	report.MonthlyInvestment = investment.InexactFloat64()
	report.MonthlyEMI = emi.InexactFloat64()
	report.MonthlySIP = sip.InexactFloat64()
	if income.IsPositive() {
		report.SavingsRate = percentOf(savings, income)
		report.ExpenseToIncomeRatio = ratio(spend, income)
	}

	report.TotalExpenseTransactions = len(debits)
	report.TotalIncomeTransactions = len(credits)
	report.TotalTransactions = len(transactions)

	if len(debits) > 0 {
		report.AvgTransactionValue = ratio(spend, decimal.NewFromInt(int64(len(debits))))

		first, last := dateSpan(debits)
		days := int64(last.Sub(first).Hours()/24) + 1
		report.DailyAvgSpend = ratio(spend, decimal.NewFromInt(days))

		report.MaxTransactionAmount = debits[0].Amount
		report.MinTransactionAmount = debits[0].Amount
		for _, t := range debits[1:] {
			if t.Amount > report.MaxTransactionAmount {
				report.MaxTransactionAmount = t.Amount
			}
			if t.Amount < report.MinTransactionAmount {
				report.MinTransactionAmount = t.Amount
			}
		}
	}
	if len(credits) > 0 {
		report.DailyAvgIncome = ratio(income, decimal.NewFromInt(incomeNormalizationDays))
	}

	if typed := len(debits) + len(credits); typed > 0 {
		report.TransactionTypeDistribution = TypeDistribution{
			DebitPercentage:  percentOf(decimal.NewFromInt(int64(len(debits))), decimal.NewFromInt(int64(typed))),
			CreditPercentage: percentOf(decimal.NewFromInt(int64(len(credits))), decimal.NewFromInt(int64(typed))),
		}
	}

	if len(transactions) > 0 {
		first, last := dateSpan(transactions)
		report.DateRange = DateRange{
			StartDate: first.Format(dateLayout),
			EndDate:   last.Format(dateLayout),
		}
	}

	return report
}

// dateSpan returns the earliest and latest dates, transactions must not be empty
func dateSpan(transactions []Transaction) (time.Time, time.Time) {
	first, last := transactions[0].TxnDate, transactions[0].TxnDate
	for _, t := range transactions[1:] {
		if t.TxnDate.Before(first) {
			first = t.TxnDate
		}
		if t.TxnDate.After(last) {
			last = t.TxnDate
		}
	}
	return first, last
}
