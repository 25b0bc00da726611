package main

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	weeklyWindow  = 7 * 24 * time.Hour
	monthlyWindow = 28 * 24 * time.Hour

	// The monthly window is exactly four weeks so the weekly baseline is monthly/4
	weeksPerMonthlyWindow = 4
)

// wallClock drops the zone from now, keeping its calendar date and time of day.
// Ledger dates carry no zone and are stored as UTC midnight.
func wallClock(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
}

// GenerateSignals compares the last 7 days of spending against the trailing
// 28-day weekly average, overall and per category. Only debits are
// considered; other rows are ignored. now is the reference time for both
// windows, read as a local wall clock.
func GenerateSignals(transactions []Transaction, now time.Time) SignalSet {
	signals := SignalSet{
		Categories: make(map[Category]CategorySignal),
	}

	now = wallClock(now)
	weekStart := now.Add(-weeklyWindow)
	monthStart := now.Add(-monthlyWindow)

	weekly := make(map[Category]decimal.Decimal)
	monthly := make(map[Category]decimal.Decimal)
	var totalWeekly, totalMonthly decimal.Decimal
	var monthlyCount int
	var mostRecent *Transaction

	for i := range transactions {
		t := &transactions[i]
		if !t.IsDebit() {
			continue
		}

		// Latest date wins, ties go to the later row
		if mostRecent == nil || !t.TxnDate.Before(mostRecent.TxnDate) {
			mostRecent = t
		}

		amount := toDecimal(t.Amount)
		if !t.TxnDate.Before(weekStart) {
			weekly[t.Category] = weekly[t.Category].Add(amount)
			totalWeekly = totalWeekly.Add(amount)
		}
		if !t.TxnDate.Before(monthStart) {
			monthly[t.Category] = monthly[t.Category].Add(amount)
			totalMonthly = totalMonthly.Add(amount)
			monthlyCount++
		}
	}

	weeks := decimal.NewFromInt(weeksPerMonthlyWindow)
	signals.TotalWeeklySpend = totalWeekly.InexactFloat64()
	signals.TotalMonthlySpend = totalMonthly.InexactFloat64()
	if mostRecent != nil {
		category := mostRecent.Category
		signals.MostRecentCategory = &category
	}
	if monthlyCount > 0 {
		signals.WeeklyAvg = totalMonthly.Div(weeks).InexactFloat64()
	}

	for _, category := range Taxonomy() {
		weeklySpend, inWeek := weekly[category]
		monthlySpend, inMonth := monthly[category]
		if !inWeek && !inMonth {
			continue
		}

		avg := monthlySpend.Div(weeks)
		signal := CategorySignal{
			WeeklySpend:  weeklySpend.InexactFloat64(),
			MonthlySpend: monthlySpend.InexactFloat64(),
			WeeklyAvg:    avg.InexactFloat64(),
		}
		if avg.IsPositive() {
			signal.SpikePercent = percentOf(weeklySpend.Sub(avg), avg)
		}
		if totalWeekly.IsPositive() {
			signal.PercentageOfTotal = percentOf(weeklySpend, totalWeekly)
		}
		signals.Categories[category] = signal
	}

	return signals
}

// debitsOnly filters a ledger down to spending rows
func debitsOnly(transactions []Transaction) []Transaction {
	debits := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.IsDebit() {
			debits = append(debits, t)
		}
	}
	return debits
}
