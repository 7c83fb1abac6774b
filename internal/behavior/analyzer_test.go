package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraudScope/internal/model"
)

// dayTS returns a timestamp at the given UTC hour.
func dayTS(hour int64, offset int64) int64 {
	return 1_700_000_000 - (1_700_000_000 % 86400) + hour*3600 + offset
}

func TestEmptyActivityDefaults(t *testing.T) {
	profile := Analyze(&model.WalletActivity{})

	assert.Equal(t, []string{"Standard wallet activity", "Normal transaction patterns"}, profile.Patterns)
	assert.Equal(t, []string{"No significant anomalies detected"}, profile.Anomalies)
	assert.Equal(t, 85, profile.BehaviorScore)
	require.Len(t, profile.Recommendations, 3)
	assert.Equal(t, "Wallet appears safe for normal transactions", profile.Recommendations[0])
}

func TestNilActivityDefaults(t *testing.T) {
	profile := Analyze(nil)
	assert.Equal(t, 85, profile.BehaviorScore)
}

func TestNightActivityAnomaly(t *testing.T) {
	// 8 of 10 transactions between 23:00 and 06:00.
	txs := make([]model.TransactionRecord, 0, 10)
	for i := 0; i < 8; i++ {
		txs = append(txs, model.TransactionRecord{To: "0xaa", Value: 1, Timestamp: dayTS(23, int64(i)*60)})
	}
	txs = append(txs,
		model.TransactionRecord{To: "0xbb", Value: 1, Timestamp: dayTS(12, 0)},
		model.TransactionRecord{To: "0xcc", Value: 1, Timestamp: dayTS(14, 0)},
	)

	profile := Analyze(&model.WalletActivity{Transactions: txs})
	assert.Contains(t, profile.Anomalies, "High frequency of late-night transactions")
}

func TestDaytimeActivityNoNightAnomaly(t *testing.T) {
	txs := make([]model.TransactionRecord, 0, 10)
	for i := 0; i < 10; i++ {
		txs = append(txs, model.TransactionRecord{To: "0xaa", Value: 1, Timestamp: dayTS(10, int64(i)*60)})
	}

	profile := Analyze(&model.WalletActivity{Transactions: txs})
	assert.NotContains(t, profile.Anomalies, "High frequency of late-night transactions")
	assert.Contains(t, profile.Patterns, "Regular DeFi protocol usage")
}

func TestValueDispersionAnomaly(t *testing.T) {
	// One extreme outlier among nine flat values pushes stdev beyond 2x mean.
	txs := make([]model.TransactionRecord, 0, 10)
	for i := 0; i < 9; i++ {
		txs = append(txs, model.TransactionRecord{
			To:        string(rune('a'+i)) + "counterpart",
			Value:     1,
			Timestamp: dayTS(10, int64(i)*60),
		})
	}
	txs = append(txs, model.TransactionRecord{To: "0xee", Value: 10_000, Timestamp: dayTS(14, 0)})

	profile := Analyze(&model.WalletActivity{Transactions: txs})
	assert.Contains(t, profile.Anomalies, "Highly variable transaction amounts")
}

func TestCounterpartDiversity(t *testing.T) {
	// 20 transactions, single counterpart: 1/20 < 0.1.
	limited := make([]model.TransactionRecord, 0, 20)
	for i := 0; i < 20; i++ {
		limited = append(limited, model.TransactionRecord{To: "0xaa", Value: 1, Timestamp: dayTS(10, int64(i)*60)})
	}
	profile := Analyze(&model.WalletActivity{Transactions: limited})
	assert.Contains(t, profile.Anomalies, "Limited address interaction diversity")
	assert.NotContains(t, profile.Patterns, "Broad network interactions")

	// Distinct counterparts instead.
	broad := make([]model.TransactionRecord, 0, 20)
	for i := 0; i < 20; i++ {
		broad = append(broad, model.TransactionRecord{
			To:        string(rune('a'+i)) + "counterpart",
			Value:     1,
			Timestamp: dayTS(10, int64(i)*60),
		})
	}
	profile = Analyze(&model.WalletActivity{Transactions: broad})
	assert.Contains(t, profile.Patterns, "Broad network interactions")
}

func TestBehaviorScorePenalty(t *testing.T) {
	// Night burst to one counterpart with a value outlier: three anomalies.
	txs := make([]model.TransactionRecord, 0, 20)
	for i := 0; i < 19; i++ {
		txs = append(txs, model.TransactionRecord{To: "0xaa", Value: 1, Timestamp: dayTS(23, int64(i)*60)})
	}
	txs = append(txs, model.TransactionRecord{To: "0xaa", Value: 100_000, Timestamp: dayTS(23, 3000)})

	profile := Analyze(&model.WalletActivity{Transactions: txs})
	require.Len(t, profile.Anomalies, 3)
	assert.Equal(t, 55, profile.BehaviorScore)
	assert.Equal(t, "Exercise caution in transactions", profile.Recommendations[0])
}
