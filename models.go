package main

import (
	"bytes"
	"encoding/json"
	"time"
)

// Category is one label of the fixed spending taxonomy
type Category string

const (
	CategoryInvestment    Category = "Investment"
	CategorySIP           Category = "SIP"
	CategoryEMI           Category = "EMI"
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryClothing      Category = "Clothing"
	CategoryGrocery       Category = "Grocery"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategoryUtilities     Category = "Utilities"
	CategoryShopping      Category = "Shopping"
	CategorySalary        Category = "Salary"
	CategoryOthers        Category = "Others"

	// CategoryOverall is only used by notifications about total spending
	CategoryOverall Category = "Overall"
)

// Taxonomy returns every category in priority order. Others is always last.
func Taxonomy() []Category {
	return []Category{
		CategoryInvestment,
		CategorySIP,
		CategoryEMI,
		CategoryFood,
		CategoryTravel,
		CategoryClothing,
		CategoryGrocery,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryEducation,
		CategoryUtilities,
		CategoryShopping,
		CategorySalary,
		CategoryOthers,
	}
}

// TxnType tells spending from income
type TxnType string

const (
	TxnTypeDebit  TxnType = "DEBIT"
	TxnTypeCredit TxnType = "CREDIT"
)

// RawTransactionRow is a ledger row exactly as the storage backend holds it
type RawTransactionRow struct {
	TxnDate     string `json:"txn_date"`
	Description string `json:"description"`
	Merchant    string `json:"merchant"`
	Amount      string `json:"amount"`
	TxnType     string `json:"txn_type"`
	Balance     string `json:"balance,omitempty"`
}

// Transaction represents a decoded and categorized ledger row
type Transaction struct {
	ID          string    `json:"id"`
	TxnDate     time.Time `json:"-"`
	Amount      float64   `json:"amount"`
	TxnType     TxnType   `json:"txn_type"`
	Merchant    string    `json:"merchant"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Balance     string    `json:"balance,omitempty"`
}

// IsDebit reports whether the transaction is spending
func (t Transaction) IsDebit() bool { return t.TxnType == TxnTypeDebit }

// IsCredit reports whether the transaction is income
func (t Transaction) IsCredit() bool { return t.TxnType == TxnTypeCredit }

// MarshalJSON renders txn_date as a plain calendar date
func (t Transaction) MarshalJSON() ([]byte, error) {
	type alias Transaction
	return json.Marshal(struct {
		alias
		TxnDate string `json:"txn_date"`
	}{
		alias:   alias(t),
		TxnDate: t.TxnDate.Format(dateLayout),
	})
}

// RankedAmount is one entry of a top-N breakdown
type RankedAmount struct {
	Name   string
	Amount float64
}

// RankedAmounts is an ordered name -> amount mapping. It marshals to a JSON
// object whose keys keep the rank order.
type RankedAmounts []RankedAmount

// MarshalJSON writes the entries as an object in slice order
func (r RankedAmounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Amount)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TypeDistribution is the share of debit and credit rows in the ledger
type TypeDistribution struct {
	DebitPercentage  float64 `json:"debit_percentage"`
	CreditPercentage float64 `json:"credit_percentage"`
}

// DateRange spans the earliest and latest transaction dates
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// InsightsReport holds the aggregate statistics derived from one ledger snapshot
type InsightsReport struct {
	CategoryTotals              map[Category]float64            `json:"category_totals"`
	MonthlySpend                float64                         `json:"monthly_spend"`
	TotalIncome                 float64                         `json:"total_income"`
	TopMerchants                RankedAmounts                   `json:"top_merchants"`
	WeeklySpend                 map[string]float64              `json:"weekly_spend"`
	TopCategories               RankedAmounts                   `json:"top_categories"`
	TotalSavings                float64                         `json:"total_savings"`
	SavingsRate                 float64                         `json:"savings_rate"`
	AvgTransactionValue         float64                         `json:"avg_transaction_value"`
	TotalExpenseTransactions    int                             `json:"total_expense_transactions"`
	TotalIncomeTransactions     int                             `json:"total_income_transactions"`
	TotalTransactions           int                             `json:"total_transactions"`
	DailyAvgSpend               float64                         `json:"daily_avg_spend"`
	DailyAvgIncome              float64                         `json:"daily_avg_income"`
	HighestSpendingCategory     string                          `json:"highest_spending_category,omitempty"`
	HighestSpendingMerchant     string                          `json:"highest_spending_merchant,omitempty"`
	DailyCategoryBreakdown      map[string]map[Category]float64 `json:"daily_category_breakdown"`
	TransactionTypeDistribution TypeDistribution                `json:"transaction_type_distribution"`
	ExpenseToIncomeRatio        float64                         `json:"expense_to_income_ratio"`
	MaxTransactionAmount        float64                         `json:"max_transaction_amount"`
	MinTransactionAmount        float64                         `json:"min_transaction_amount"`
	DateRange                   DateRange                       `json:"date_range"`
	MonthlyInvestment           float64                         `json:"monthly_investment"`
	MonthlyEMI                  float64                         `json:"monthly_emi"`
	MonthlySIP                  float64                         `json:"monthly_sip"`
}

// CategorySignal compares a category's current week with its 4-week baseline
type CategorySignal struct {
	WeeklySpend       float64 `json:"weekly_spend"`
	MonthlySpend      float64 `json:"monthly_spend"`
	WeeklyAvg         float64 `json:"weekly_avg"`
	SpikePercent      float64 `json:"spike_percent"`
	PercentageOfTotal float64 `json:"percentage_of_total"`
}

// SignalSet is the full set of week-over-baseline signals for a ledger
type SignalSet struct {
	TotalWeeklySpend   float64                     `json:"total_weekly_spend"`
	TotalMonthlySpend  float64                     `json:"total_monthly_spend"`
	WeeklyAvg          float64                     `json:"weekly_avg"`
	MostRecentCategory *Category                   `json:"most_recent_category"`
	Categories         map[Category]CategorySignal `json:"categories"`
}

// Severity ranks how urgent a notification is
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
	SeverityInfo     Severity = "INFO"
	SeveritySuccess  Severity = "SUCCESS"
)

// Rank orders severities, lower is more critical
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	case SeveritySuccess:
		return 3
	}
	return 99
}

// Confidence of a rule-based notification
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// ModeRuleBased is the only notification mode produced today
const ModeRuleBased = "RULE_BASED"

// Notification is the single message surfaced to the user
type Notification struct {
	Mode         string     `json:"mode"`
	Severity     Severity   `json:"severity"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	Confidence   Confidence `json:"confidence"`
	Category     Category   `json:"category"`
	Priority     int        `json:"priority"`
	SpikePercent float64    `json:"spike_percent,omitempty"`
	WeeklySpend  float64    `json:"weekly_spend,omitempty"`
	Percentage   float64    `json:"percentage,omitempty"`
}

// InsightsResponse is the combined transactions + insights view
type InsightsResponse struct {
	Transactions []Transaction  `json:"transactions"`
	Insights     InsightsReport `json:"insights"`
}

// NotificationResponse is the alerting view
type NotificationResponse struct {
	Signals      SignalSet    `json:"signals"`
	Notification Notification `json:"notification"`
}

// QrPaymentRequest represents a payment made by scanning a merchant QR code
type QrPaymentRequest struct {
	Merchant string  `json:"merchant"`
	UpiID    string  `json:"upi_id"`
	Amount   float64 `json:"amount"`
	Purpose  string  `json:"purpose"`
}

// QrPaymentResponse is returned after a QR payment is recorded
type QrPaymentResponse struct {
	Status        string       `json:"status"`
	TransactionID string       `json:"transaction_id"`
	Transaction   Transaction  `json:"transaction"`
	Notification  Notification `json:"notification"`
}

// CategoryInfo describes one taxonomy entry
type CategoryInfo struct {
	Name     Category `json:"name"`
	Priority int      `json:"priority"`
	Keywords int      `json:"keywords"`
}

// CategoryTotal represents the debit total for a category
type CategoryTotal struct {
	Category Category `json:"category"`
	Total    float64  `json:"total"`
	Count    int      `json:"count"`
}
