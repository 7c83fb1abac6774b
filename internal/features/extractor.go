package features

import (
	"sort"

	"fraudScope/internal/model"
)

// Extract converts wallet activity into the fixed-length feature vector used
// by anomaly scoring and threshold assessment. It never fails: an empty or
// malformed transaction list yields zeros for all volume, frequency, and
// interval features while balance, age, and interaction counts still populate
// from the activity record.
func Extract(activity *model.WalletActivity) model.FeatureVector {
	var vec model.FeatureVector
	if activity == nil {
		return vec
	}

	txs := activity.Transactions
	if len(txs) > 0 {
		var totalVolume, maxValue float64
		counterparts := make(map[string]struct{}, len(txs))
		timestamps := make([]int64, 0, len(txs))

		for _, tx := range txs {
			totalVolume += tx.Value
			if tx.Value > maxValue {
				maxValue = tx.Value
			}
			counterparts[tx.To] = struct{}{}
			if tx.Timestamp > 0 {
				timestamps = append(timestamps, tx.Timestamp)
			}
		}

		avgInterval, minInterval := intervalStats(timestamps)

		vec[model.FeatureTotalVolume] = totalVolume
		vec[model.FeatureAvgValue] = totalVolume / float64(len(txs))
		vec[model.FeatureMaxValue] = maxValue
		vec[model.FeatureTxCount] = float64(len(txs))
		vec[model.FeatureUniqueCounterparts] = float64(len(counterparts))
		vec[model.FeatureAvgInterval] = avgInterval
		vec[model.FeatureMinInterval] = minInterval
	}

	vec[model.FeatureBalance] = activity.Balance
	vec[model.FeatureAgeDays] = activity.AgeDays
	vec[model.FeatureContractInteractions] = float64(activity.ContractInteractions)
	vec[model.FeatureDefiInteractions] = float64(activity.DefiInteractions)

	return vec
}

func intervalStats(timestamps []int64) (avg float64, min float64) {
	if len(timestamps) < 2 {
		return 0, 0
	}

	sorted := make([]int64, len(timestamps))
	copy(sorted, timestamps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum float64
	min = float64(sorted[1] - sorted[0])
	for i := 1; i < len(sorted); i++ {
		interval := float64(sorted[i] - sorted[i-1])
		sum += interval
		if interval < min {
			min = interval
		}
	}

	return sum / float64(len(sorted)-1), min
}
