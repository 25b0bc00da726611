package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryPtr(c Category) *Category {
	return &c
}

func TestNotificationEngineSelect(t *testing.T) {
	engine := NewNotificationEngine("₹")

	t.Run("should report no data for empty signals", func(t *testing.T) {
		n := engine.Select(GenerateSignals(nil, testNow))

		assert.Equal(t, "Spending Status", n.Title)
		assert.Equal(t, "No spending data available", n.Message)
		assert.Equal(t, SeverityInfo, n.Severity)
		assert.Equal(t, ConfidenceLow, n.Confidence)
		assert.Equal(t, CategoryOverall, n.Category)
		assert.Equal(t, ModeRuleBased, n.Mode)
	})

	t.Run("should surface dominance of the most recent category", func(t *testing.T) {
		signals := GenerateSignals(debitsOnly(sampleLedger()), testNow)
		n := engine.Select(signals)

		assert.Equal(t, SeverityWarning, n.Severity)
		assert.Equal(t, "Food Heavily Dominates Budget", n.Title)
		assert.Equal(t, "Food represents 100.0% of your total spending this week (₹35.00).", n.Message)
		assert.Equal(t, CategoryFood, n.Category)
		assert.Equal(t, 2, n.Priority)
		assert.Equal(t, 100.0, n.Percentage)
	})

	t.Run("should raise a critical spike", func(t *testing.T) {
		signals := GenerateSignals([]Transaction{
			newTransaction(daysAgo(0), 200, TxnTypeDebit, CategoryFood, "Swiggy"),
			newTransaction(daysAgo(19), 100, TxnTypeDebit, CategoryFood, "Zomato"),
		}, testNow)
		n := engine.Select(signals)

		assert.Equal(t, SeverityCritical, n.Severity)
		assert.Equal(t, "Critical Food Spending Spike", n.Title)
		assert.Equal(t, "Your Food spending surged by 166.7% (₹125.00 more than usual). Weekly total: ₹200.00.", n.Message)
		assert.Equal(t, ConfidenceHigh, n.Confidence)
		assert.Equal(t, 1, n.Priority)
		assert.Equal(t, 166.67, n.SpikePercent)
	})

	t.Run("should not treat a 50 unit increase as a spike", func(t *testing.T) {
		signals := GenerateSignals([]Transaction{
			newTransaction(daysAgo(0), 150, TxnTypeDebit, CategoryFood, "Swiggy"),
			newTransaction(daysAgo(19), 250, TxnTypeDebit, CategoryFood, "Zomato"),
		}, testNow)
		n := engine.Select(signals)

		assert.Equal(t, "Food Heavily Dominates Budget", n.Title)
	})

	t.Run("should not treat an exact 50 unit increase in cents as a spike", func(t *testing.T) {
		signals := GenerateSignals([]Transaction{
			newTransaction(daysAgo(0), 65.9, TxnTypeDebit, CategoryFood, "Swiggy"),
			newTransaction(daysAgo(1), 0.9, TxnTypeDebit, CategoryFood, "Zomato"),
			newTransaction(daysAgo(20), 0.4, TxnTypeDebit, CategoryFood, "Zomato"),
		}, testNow)
		require.Equal(t, 66.8, signals.Categories[CategoryFood].WeeklySpend)
		require.Equal(t, 16.8, signals.Categories[CategoryFood].WeeklyAvg)

		n := engine.Select(signals)

		assert.Equal(t, "Food Heavily Dominates Budget", n.Title)
		assert.Equal(t, "Food represents 100.0% of your total spending this week (₹66.80).", n.Message)
	})

	t.Run("should prefer the most recent category over more urgent ones", func(t *testing.T) {
		signals := SignalSet{
			TotalWeeklySpend:   105,
			TotalMonthlySpend:  105,
			WeeklyAvg:          26.25,
			MostRecentCategory: categoryPtr(CategoryFood),
			Categories: map[Category]CategorySignal{
				CategoryFood:   {WeeklySpend: 5, MonthlySpend: 5, WeeklyAvg: 1.25, SpikePercent: 300, PercentageOfTotal: 4.76},
				CategoryTravel: {WeeklySpend: 100, MonthlySpend: 100, WeeklyAvg: 25, SpikePercent: 300, PercentageOfTotal: 95.24},
			},
		}
		n := engine.Select(signals)

		assert.Equal(t, "Food Purchase Recorded", n.Title)
		assert.Equal(t, "Your Food spending this week is ₹5.00. Looking good!", n.Message)
		assert.Equal(t, SeverityInfo, n.Severity)
		assert.Equal(t, ConfidenceMedium, n.Confidence)
		assert.Equal(t, CategoryFood, n.Category)
		assert.Equal(t, 5, n.Priority)
	})

	t.Run("should order candidates by priority, severity and weekly spend", func(t *testing.T) {
		signals := SignalSet{
			TotalWeeklySpend:  105,
			TotalMonthlySpend: 105,
			WeeklyAvg:         26.25,
			Categories: map[Category]CategorySignal{
				CategoryFood:   {WeeklySpend: 5, MonthlySpend: 5, WeeklyAvg: 1.25, SpikePercent: 300, PercentageOfTotal: 4.76},
				CategoryTravel: {WeeklySpend: 100, MonthlySpend: 100, WeeklyAvg: 25, SpikePercent: 300, PercentageOfTotal: 95.24},
			},
		}
		n := engine.Select(signals)

		// Travel and Overall are both critical; Overall has the larger weekly spend
		assert.Equal(t, CategoryOverall, n.Category)
		assert.Equal(t, "Extreme Spending Alert", n.Title)
		assert.Equal(t, SeverityCritical, n.Severity)
	})

	t.Run("should fall back to the most urgent candidate when the recent category is quiet", func(t *testing.T) {
		signals := SignalSet{
			TotalWeeklySpend:   100,
			TotalMonthlySpend:  180,
			WeeklyAvg:          45,
			MostRecentCategory: categoryPtr(CategoryGrocery),
			Categories: map[Category]CategorySignal{
				CategoryTravel:  {WeeklySpend: 100, MonthlySpend: 100, WeeklyAvg: 25, SpikePercent: 300, PercentageOfTotal: 100},
				CategoryGrocery: {MonthlySpend: 80, WeeklyAvg: 20, SpikePercent: -100},
			},
		}
		n := engine.Select(signals)

		assert.Equal(t, CategoryTravel, n.Category)
		assert.Equal(t, SeverityCritical, n.Severity)
	})

	t.Run("should report spending on track when nothing fires", func(t *testing.T) {
		signals := SignalSet{
			TotalWeeklySpend:  5,
			TotalMonthlySpend: 5,
			WeeklyAvg:         1.25,
			Categories: map[Category]CategorySignal{
				CategoryFood: {WeeklySpend: 5, MonthlySpend: 5, WeeklyAvg: 1.25, SpikePercent: 300, PercentageOfTotal: 100},
			},
		}
		n := engine.Select(signals)

		assert.Equal(t, "Spending on Track", n.Title)
		assert.Equal(t, "Your spending is well-managed this week (₹5.00).", n.Message)
		assert.Equal(t, CategoryOverall, n.Category)
		assert.Equal(t, ConfidenceMedium, n.Confidence)
	})

	t.Run("should report no activity when the week is empty", func(t *testing.T) {
		signals := SignalSet{
			TotalMonthlySpend: 80,
			WeeklyAvg:         20,
			Categories: map[Category]CategorySignal{
				CategoryGrocery: {MonthlySpend: 80, WeeklyAvg: 20, SpikePercent: -100},
			},
		}
		n := engine.Select(signals)

		assert.Equal(t, "Spending Status", n.Title)
		assert.Equal(t, "No significant spending activity this week", n.Message)
		assert.Equal(t, ConfidenceLow, n.Confidence)
	})

	t.Run("should render the configured currency", func(t *testing.T) {
		n := NewNotificationEngine("$").Select(SignalSet{
			TotalWeeklySpend: 5,
			Categories: map[Category]CategorySignal{
				CategoryFood: {WeeklySpend: 5, PercentageOfTotal: 100},
			},
		})

		assert.Equal(t, "Your spending is well-managed this week ($5.00).", n.Message)
	})
}

func TestSpikeCandidate(t *testing.T) {
	engine := NewNotificationEngine("₹")

	tests := []struct {
		name     string
		data     CategorySignal
		fires    bool
		severity Severity
		title    string
		priority int
	}{
		{"critical", CategorySignal{WeeklySpend: 200, WeeklyAvg: 75, SpikePercent: 166.67}, true, SeverityCritical, "Critical Food Spending Spike", 1},
		{"high", CategorySignal{WeeklySpend: 200, WeeklyAvg: 140, SpikePercent: 42.86}, true, SeverityWarning, "High Food Spending", 2},
		{"increase", CategorySignal{WeeklySpend: 300, WeeklyAvg: 235, SpikePercent: 27.66}, true, SeverityInfo, "Food Spending Increase", 3},
		{"small percentage", CategorySignal{WeeklySpend: 1000, WeeklyAvg: 900, SpikePercent: 11.11}, false, "", "", 0},
		{"increase of exactly 50", CategorySignal{WeeklySpend: 150, WeeklyAvg: 100, SpikePercent: 50}, false, "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := engine.spikeCandidate(CategoryFood, tt.data)

			require.Equal(t, tt.fires, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.severity, n.Severity)
			assert.Equal(t, tt.title, n.Title)
			assert.Equal(t, tt.priority, n.Priority)
			assert.Equal(t, tt.data.SpikePercent, n.SpikePercent)
		})
	}
}

func TestDominanceCandidate(t *testing.T) {
	engine := NewNotificationEngine("₹")

	t.Run("should warn above 60 percent", func(t *testing.T) {
		n, ok := engine.dominanceCandidate(CategoryTravel, CategorySignal{WeeklySpend: 700, PercentageOfTotal: 70})

		require.True(t, ok)
		assert.Equal(t, SeverityWarning, n.Severity)
		assert.Equal(t, "Travel Heavily Dominates Budget", n.Title)
		assert.Equal(t, "Travel represents 70.0% of your total spending this week (₹700.00).", n.Message)
	})

	t.Run("should inform above 50 percent", func(t *testing.T) {
		n, ok := engine.dominanceCandidate(CategoryTravel, CategorySignal{WeeklySpend: 20, PercentageOfTotal: 55})

		require.True(t, ok)
		assert.Equal(t, SeverityInfo, n.Severity)
		assert.Equal(t, "Travel Dominates Spending", n.Title)
		assert.Equal(t, 3, n.Priority)
	})

	t.Run("should ignore small weekly spend", func(t *testing.T) {
		_, ok := engine.dominanceCandidate(CategoryTravel, CategorySignal{WeeklySpend: 10, PercentageOfTotal: 100})

		assert.False(t, ok)
	})

	t.Run("should ignore an even split", func(t *testing.T) {
		_, ok := engine.dominanceCandidate(CategoryTravel, CategorySignal{WeeklySpend: 100, PercentageOfTotal: 50})

		assert.False(t, ok)
	})
}

func TestOverallCandidate(t *testing.T) {
	engine := NewNotificationEngine("₹")

	tests := []struct {
		name     string
		total    float64
		baseline float64
		fires    bool
		title    string
		priority int
	}{
		{"extreme", 160, 100, true, "Extreme Spending Alert", 1},
		{"large percentage, small increase", 80, 50, true, "Overall Spending Alert", 2},
		{"alert", 140, 100, true, "Overall Spending Alert", 2},
		{"update", 120, 100, true, "Spending Update", 3},
		{"savings", 70, 100, true, "Great Savings Week", 4},
		{"small rise", 11, 10, false, "", 0},
		{"steady", 105, 100, false, "", 0},
		{"no baseline", 50, 0, false, "", 0},
		{"tiny total", 10, 2, false, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := engine.overallCandidate(SignalSet{TotalWeeklySpend: tt.total, WeeklyAvg: tt.baseline})

			require.Equal(t, tt.fires, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.title, n.Title)
			assert.Equal(t, tt.priority, n.Priority)
			assert.Equal(t, CategoryOverall, n.Category)
		})
	}

	t.Run("should describe savings as a positive percentage", func(t *testing.T) {
		n, ok := engine.overallCandidate(SignalSet{TotalWeeklySpend: 70, WeeklyAvg: 100})

		require.True(t, ok)
		assert.Equal(t, "Your spending is 30.0% lower than usual (₹70.00). Keep it up!", n.Message)
	})
}

func TestDeduplicateNotifications(t *testing.T) {
	t.Run("should keep the lowest priority per category", func(t *testing.T) {
		result := deduplicateNotifications([]Notification{
			{Category: CategoryTravel, Priority: 3, Title: "travel info"},
			{Category: CategoryFood, Priority: 2, Title: "food warning"},
			{Category: CategoryTravel, Priority: 2, Title: "travel warning"},
		})

		require.Len(t, result, 2)
		assert.Equal(t, "travel warning", result[0].Title)
		assert.Equal(t, "food warning", result[1].Title)
	})

	t.Run("should keep the earlier candidate on equal priority", func(t *testing.T) {
		result := deduplicateNotifications([]Notification{
			{Category: CategoryFood, Priority: 2, Title: "first"},
			{Category: CategoryFood, Priority: 2, Title: "second"},
		})

		require.Len(t, result, 1)
		assert.Equal(t, "first", result[0].Title)
	})

	t.Run("should return nothing for no candidates", func(t *testing.T) {
		assert.Empty(t, deduplicateNotifications(nil))
	})
}
