package patterns

import (
	"math"
	"sort"

	"fraudScope/internal/model"
)

// Report is the matcher output: every applicable rule that fired, plus the
// score aggregates consumed by the risk aggregator.
type Report struct {
	Detected []model.RiskFactor
	Count    int
	MaxScore float64
	AvgScore float64
}

// Matcher evaluates the deterministic fraud-pattern rules against an address
// and its activity. Rules are independent; all applicable rules fire.
type Matcher struct {
	registry *Registry
}

func NewMatcher(registry *Registry) *Matcher {
	if registry == nil {
		registry = NewRegistry(nil)
	}
	return &Matcher{registry: registry}
}

// Match runs every rule and returns the detected patterns. activity may be
// nil, in which case only the blacklist rule applies.
func (m *Matcher) Match(address string, activity *model.WalletActivity) Report {
	rules := m.registry.Current()

	var detected []model.RiskFactor
	var scores []float64

	record := func(factor model.RiskFactor) {
		detected = append(detected, factor)
		scores = append(scores, factor.RiskScore)
	}

	if rules.IsBlacklisted(address) {
		record(model.RiskFactor{
			Pattern:     PatternBlacklisted,
			Description: "Address found in fraud blacklist",
			Severity:    model.SeverityCritical,
			RiskScore:   95,
		})
	}

	var txs []model.TransactionRecord
	if activity != nil {
		txs = activity.Transactions
	}

	if len(txs) > rules.RapidWindowTxs && rapidWindow(txs, rules.RapidWindowTxs, rules.RapidWindowSecs) {
		record(model.RiskFactor{
			Pattern:     PatternRapidTransfers,
			Description: "Multiple transactions in short time period",
			Severity:    model.SeverityHigh,
			RiskScore:   70,
		})
	}

	if len(txs) > 0 && roundAmountShare(txs, rules.RoundUnit) > rules.RoundShare {
		record(model.RiskFactor{
			Pattern:     PatternUnusualAmounts,
			Description: "High frequency of round number transactions",
			Severity:    model.SeverityMedium,
			RiskScore:   60,
		})
	}

	if activity != nil && activity.AgeDays < rules.NewWalletMaxAge && len(txs) > rules.NewWalletMinTxs {
		record(model.RiskFactor{
			Pattern:     PatternNewWalletBurst,
			Description: "High activity from recently created wallet",
			Severity:    model.SeverityMedium,
			RiskScore:   50,
		})
	}

	report := Report{
		Detected: detected,
		Count:    len(detected),
	}
	if len(scores) > 0 {
		var sum float64
		for _, score := range scores {
			if score > report.MaxScore {
				report.MaxScore = score
			}
			sum += score
		}
		report.AvgScore = sum / float64(len(scores))
	}

	return report
}

// rapidWindow reports whether the windowTxs most recent transactions all fall
// within windowSecs of each other. Recency is derived from timestamps.
func rapidWindow(txs []model.TransactionRecord, windowTxs int, windowSecs int64) bool {
	timestamps := make([]int64, 0, len(txs))
	for _, tx := range txs {
		timestamps = append(timestamps, tx.Timestamp)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] > timestamps[j] })

	if len(timestamps) < windowTxs {
		return false
	}
	window := timestamps[:windowTxs]
	return window[0]-window[windowTxs-1] < windowSecs
}

func roundAmountShare(txs []model.TransactionRecord, unit float64) float64 {
	if unit <= 0 {
		return 0
	}
	var round int
	for _, tx := range txs {
		if math.Mod(tx.Value, unit) == 0 {
			round++
		}
	}
	return float64(round) / float64(len(txs))
}
