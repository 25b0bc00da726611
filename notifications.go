package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

const (
	// Weekly spend below this is noise and never produces a notification
	minAmountThreshold = 10.0
	// A spike must also be at least this much above the baseline in absolute terms
	minSpikeAmount = 50.0

	priorityCritical = 1
	priorityWarning  = 2
	priorityInfo     = 3
	priorityPositive = 4
	priorityNeutral  = 5
)

// NotificationEngine turns a signal set into a single rule-based notification
type NotificationEngine struct {
	currency string
}

// NewNotificationEngine creates an engine that renders amounts with the given currency symbol
func NewNotificationEngine(currencySymbol string) *NotificationEngine {
	return &NotificationEngine{currency: currencySymbol}
}

func (e *NotificationEngine) money(amount float64) string {
	return fmt.Sprintf("%s%.2f", e.currency, amount)
}

// Select picks the notification to surface. A candidate about the category of
// the most recent transaction always wins; otherwise the most urgent candidate
// is returned, and when nothing fired a neutral status message is produced.
func (e *NotificationEngine) Select(signals SignalSet) Notification {
	if len(signals.Categories) == 0 {
		return defaultNotification("No spending data available")
	}

	candidates := deduplicateNotifications(e.candidates(signals))

	if signals.MostRecentCategory != nil {
		recent := *signals.MostRecentCategory
		for _, n := range candidates {
			if n.Category == recent {
				return n
			}
		}

		if spend := signals.Categories[recent].WeeklySpend; spend > 0 {
			return Notification{
				Mode:       ModeRuleBased,
				Severity:   SeverityInfo,
				Title:      fmt.Sprintf("%s Purchase Recorded", recent),
				Message:    fmt.Sprintf("Your %s spending this week is %s. Looking good!", recent, e.money(spend)),
				Confidence: ConfidenceMedium,
				Category:   recent,
				Priority:   priorityNeutral,
			}
		}
	}

	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.Priority != b.Priority {
				return a.Priority < b.Priority
			}
			if a.Severity.Rank() != b.Severity.Rank() {
				return a.Severity.Rank() < b.Severity.Rank()
			}
			return a.WeeklySpend > b.WeeklySpend
		})
		return candidates[0]
	}

	if signals.TotalWeeklySpend > 0 {
		return Notification{
			Mode:       ModeRuleBased,
			Severity:   SeverityInfo,
			Title:      "Spending on Track",
			Message:    fmt.Sprintf("Your spending is well-managed this week (%s).", e.money(signals.TotalWeeklySpend)),
			Confidence: ConfidenceMedium,
			Category:   CategoryOverall,
			Priority:   priorityNeutral,
		}
	}

	return defaultNotification("No significant spending activity this week")
}

// candidates evaluates every rule independently. A category can yield both a
// spike and a dominance candidate.
func (e *NotificationEngine) candidates(signals SignalSet) []Notification {
	var notifications []Notification

	for _, category := range Taxonomy() {
		data, ok := signals.Categories[category]
		if !ok || data.WeeklySpend < minAmountThreshold {
			continue
		}
		if n, ok := e.spikeCandidate(category, data); ok {
			notifications = append(notifications, n)
		}
		if n, ok := e.dominanceCandidate(category, data); ok {
			notifications = append(notifications, n)
		}
	}

	if n, ok := e.overallCandidate(signals); ok {
		notifications = append(notifications, n)
	}

	return notifications
}

func (e *NotificationEngine) spikeCandidate(category Category, data CategorySignal) (Notification, bool) {
	increase := toDecimal(data.WeeklySpend).Sub(toDecimal(data.WeeklyAvg)).InexactFloat64()
	if increase <= minSpikeAmount {
		return Notification{}, false
	}

	n := Notification{
		Mode:         ModeRuleBased,
		Category:     category,
		SpikePercent: data.SpikePercent,
		WeeklySpend:  data.WeeklySpend,
	}
	switch {
	case data.SpikePercent > 50:
		n.Severity, n.Confidence, n.Priority = SeverityCritical, ConfidenceHigh, priorityCritical
		n.Title = fmt.Sprintf("Critical %s Spending Spike", category)
		n.Message = fmt.Sprintf("Your %s spending surged by %.1f%% (%s more than usual). Weekly total: %s.",
			category, data.SpikePercent, e.money(increase), e.money(data.WeeklySpend))
	case data.SpikePercent > 40:
		n.Severity, n.Confidence, n.Priority = SeverityWarning, ConfidenceHigh, priorityWarning
		n.Title = fmt.Sprintf("High %s Spending", category)
		n.Message = fmt.Sprintf("You spent %.1f%% more on %s this week (%s, up %s).",
			data.SpikePercent, category, e.money(data.WeeklySpend), e.money(increase))
	case data.SpikePercent > 25:
		n.Severity, n.Confidence, n.Priority = SeverityInfo, ConfidenceMedium, priorityInfo
		n.Title = fmt.Sprintf("%s Spending Increase", category)
		n.Message = fmt.Sprintf("Your %s spending increased by %.1f%% this week (%s).",
			category, data.SpikePercent, e.money(data.WeeklySpend))
	default:
		return Notification{}, false
	}
	return n, true
}

func (e *NotificationEngine) dominanceCandidate(category Category, data CategorySignal) (Notification, bool) {
	if data.WeeklySpend <= minAmountThreshold {
		return Notification{}, false
	}

	n := Notification{
		Mode:        ModeRuleBased,
		Confidence:  ConfidenceHigh,
		Category:    category,
		Percentage:  data.PercentageOfTotal,
		WeeklySpend: data.WeeklySpend,
	}
	switch {
	case data.PercentageOfTotal > 60:
		n.Severity, n.Priority = SeverityWarning, priorityWarning
		n.Title = fmt.Sprintf("%s Heavily Dominates Budget", category)
		n.Message = fmt.Sprintf("%s represents %.1f%% of your total spending this week (%s).",
			category, data.PercentageOfTotal, e.money(data.WeeklySpend))
	case data.PercentageOfTotal > 50:
		n.Severity, n.Priority = SeverityInfo, priorityInfo
		n.Title = fmt.Sprintf("%s Dominates Spending", category)
		n.Message = fmt.Sprintf("%s accounts for %.1f%% of your total spending this week (%s).",
			category, data.PercentageOfTotal, e.money(data.WeeklySpend))
	default:
		return Notification{}, false
	}
	return n, true
}

// overallCandidate compares total weekly spend with the overall weekly
// baseline. It needs a non-zero baseline and a total above the noise floor.
func (e *NotificationEngine) overallCandidate(signals SignalSet) (Notification, bool) {
	baseline, total := signals.WeeklyAvg, signals.TotalWeeklySpend
	if baseline <= 0 || total <= minAmountThreshold {
		return Notification{}, false
	}

	change := toDecimal(total).Sub(toDecimal(baseline))
	increase := change.InexactFloat64()
	percent := change.Div(toDecimal(baseline)).Mul(decimal.NewFromInt(100)).InexactFloat64()

	n := Notification{
		Mode:        ModeRuleBased,
		Category:    CategoryOverall,
		WeeklySpend: total,
	}
	switch {
	case percent > 50 && increase > minSpikeAmount:
		n.Severity, n.Confidence, n.Priority = SeverityCritical, ConfidenceHigh, priorityCritical
		n.Title = "Extreme Spending Alert"
		n.Message = fmt.Sprintf("Your total spending is %.1f%% higher than usual (%s, up %s).",
			percent, e.money(total), e.money(increase))
	case percent > 30:
		n.Severity, n.Confidence, n.Priority = SeverityWarning, ConfidenceHigh, priorityWarning
		n.Title = "Overall Spending Alert"
		n.Message = fmt.Sprintf("Your total spending is %.1f%% higher than usual this week (%s).",
			percent, e.money(total))
	case percent > 15:
		n.Severity, n.Confidence, n.Priority = SeverityInfo, ConfidenceMedium, priorityInfo
		n.Title = "Spending Update"
		n.Message = fmt.Sprintf("Your spending is %.1f%% higher than usual this week (%s).",
			percent, e.money(total))
	case percent < -20 && baseline > minAmountThreshold:
		n.Severity, n.Confidence, n.Priority = SeverityInfo, ConfidenceMedium, priorityPositive
		n.Title = "Great Savings Week"
		n.Message = fmt.Sprintf("Your spending is %.1f%% lower than usual (%s). Keep it up!",
			math.Abs(percent), e.money(total))
	default:
		return Notification{}, false
	}
	return n, true
}

// deduplicateNotifications keeps one notification per category, the one with
// the lowest priority number. Output order follows each category's first
// appearance; on equal priority the earlier candidate is kept.
func deduplicateNotifications(notifications []Notification) []Notification {
	index := make(map[Category]int)
	var result []Notification

	for _, n := range notifications {
		i, seen := index[n.Category]
		if !seen {
			index[n.Category] = len(result)
			result = append(result, n)
			continue
		}
		if n.Priority < result[i].Priority {
			result[i] = n
		}
	}
	return result
}

func defaultNotification(message string) Notification {
	return Notification{
		Mode:       ModeRuleBased,
		Severity:   SeverityInfo,
		Title:      "Spending Status",
		Message:    message,
		Confidence: ConfidenceLow,
		Category:   CategoryOverall,
		Priority:   priorityNeutral,
	}
}
