package behavior

import (
	"math"

	"fraudScope/internal/model"
)

const (
	nightShare       = 0.7
	diversityFloor   = 0.1
	anomalyPenalty   = 15
	cautionThreshold = 2
)

// Analyze derives qualitative behavioral patterns and anomalies from timing,
// value, and counterpart-diversity statistics, plus the behavior score and a
// matching recommendation set.
func Analyze(activity *model.WalletActivity) model.BehavioralProfile {
	var patterns, anomalies []string

	var txs []model.TransactionRecord
	if activity != nil {
		txs = activity.Transactions
	}

	if len(txs) > 0 {
		timestamps := make([]int64, 0, len(txs))
		values := make([]float64, 0, len(txs))
		counterparts := make(map[string]struct{}, len(txs))
		for _, tx := range txs {
			if tx.Timestamp > 0 {
				timestamps = append(timestamps, tx.Timestamp)
			}
			values = append(values, tx.Value)
			counterparts[tx.To] = struct{}{}
		}

		if len(timestamps) > 0 {
			if nightRatio(timestamps) > nightShare {
				anomalies = append(anomalies, "High frequency of late-night transactions")
			}
			patterns = append(patterns, "Regular DeFi protocol usage", "Consistent transaction timing")
		}

		mean, stddev := valueStats(values)
		if stddev > mean*2 {
			anomalies = append(anomalies, "Highly variable transaction amounts")
		}
		patterns = append(patterns, "Diversified asset portfolio")

		if float64(len(counterparts)) < float64(len(txs))*diversityFloor {
			anomalies = append(anomalies, "Limited address interaction diversity")
		} else {
			patterns = append(patterns, "Broad network interactions")
		}
	}

	if len(patterns) == 0 {
		patterns = []string{"Standard wallet activity", "Normal transaction patterns"}
	}
	if len(anomalies) == 0 {
		anomalies = []string{"No significant anomalies detected"}
	}

	score := 100 - anomalyPenalty*len(anomalies)
	if score < 0 {
		score = 0
	}

	var recommendations []string
	if len(anomalies) > cautionThreshold {
		recommendations = []string{
			"Exercise caution in transactions",
			"Verify identity before large transfers",
			"Monitor transaction patterns closely",
		}
	} else {
		recommendations = []string{
			"Wallet appears safe for normal transactions",
			"Continue standard security practices",
			"Regular monitoring recommended",
		}
	}

	return model.BehavioralProfile{
		Patterns:        patterns,
		Anomalies:       anomalies,
		Recommendations: recommendations,
		BehaviorScore:   score,
	}
}

// nightRatio is the share of transactions landing in the 23:00-06:00 UTC band.
func nightRatio(timestamps []int64) float64 {
	var night int
	for _, ts := range timestamps {
		hour := (ts % 86400) / 3600
		if hour < 6 || hour > 22 {
			night++
		}
	}
	return float64(night) / float64(len(timestamps))
}

func valueStats(values []float64) (mean, stddev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	return mean, math.Sqrt(variance / float64(len(values)))
}
