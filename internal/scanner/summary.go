package scanner

import (
	"time"

	"fraudScope/internal/model"
)

const dateLayout = "2006-01-02"

// Summarize builds the human-facing transaction digest for an activity
// record. Zero transactions yield the canonical empty summary.
func Summarize(activity *model.WalletActivity) model.TransactionSummary {
	summary := model.TransactionSummary{
		TotalVolume:   model.FormatUSD(0),
		FirstActivity: "N/A",
		LastActivity:  "N/A",
	}
	if activity == nil || len(activity.Transactions) == 0 {
		return summary
	}

	var totalVolume float64
	var first, last int64
	counterparts := make(map[string]struct{}, len(activity.Transactions))

	for _, tx := range activity.Transactions {
		totalVolume += tx.Value
		counterparts[tx.To] = struct{}{}
		if tx.Timestamp <= 0 {
			continue
		}
		if first == 0 || tx.Timestamp < first {
			first = tx.Timestamp
		}
		if tx.Timestamp > last {
			last = tx.Timestamp
		}
	}

	summary.TotalTransactions = len(activity.Transactions)
	summary.TotalVolume = model.FormatUSD(totalVolume)
	summary.UniqueAddresses = len(counterparts)
	if first > 0 {
		summary.FirstActivity = time.Unix(first, 0).UTC().Format(dateLayout)
		summary.LastActivity = time.Unix(last, 0).UTC().Format(dateLayout)
	}

	return summary
}
