package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraudScope/internal/model"
)

const blacklistedAddr = "0x1234567890123456789012345678901234567890"

func newTestMatcher() *Matcher {
	return NewMatcher(NewRegistry(DefaultRuleset()))
}

func patternIDs(report Report) []string {
	ids := make([]string, 0, len(report.Detected))
	for _, factor := range report.Detected {
		ids = append(ids, factor.Pattern)
	}
	return ids
}

func TestBlacklistAlwaysFires(t *testing.T) {
	matcher := newTestMatcher()

	// Regardless of activity, including nil.
	for _, activity := range []*model.WalletActivity{
		nil,
		{},
		{Transactions: []model.TransactionRecord{{To: "0xaa", Value: 1, Timestamp: 1000}}},
	} {
		report := matcher.Match(blacklistedAddr, activity)
		require.NotEmpty(t, report.Detected)
		assert.Equal(t, PatternBlacklisted, report.Detected[0].Pattern)
		assert.Equal(t, model.SeverityCritical, report.Detected[0].Severity)
		assert.Equal(t, 95.0, report.Detected[0].RiskScore)
		assert.Equal(t, 95.0, report.MaxScore)
	}
}

func TestBlacklistCaseInsensitive(t *testing.T) {
	matcher := newTestMatcher()
	report := matcher.Match("0x1234567890123456789012345678901234567890", nil)
	require.Equal(t, 1, report.Count)

	upper := matcher.Match("0X1234567890123456789012345678901234567890", nil)
	assert.Equal(t, 1, upper.Count)
}

func TestRapidTransfersScenario(t *testing.T) {
	// 11 transactions within one hour, wallet age 2 days, no round values:
	// exactly rapid_transfers must fire (new-wallet rule needs count > 50).
	txs := make([]model.TransactionRecord, 0, 11)
	for i := 0; i < 11; i++ {
		txs = append(txs, model.TransactionRecord{
			To:        "0xaa",
			Value:     1.5 + float64(i)*0.01,
			Timestamp: 1_700_000_000 + int64(i)*300,
		})
	}

	matcher := newTestMatcher()
	report := matcher.Match("0x5555555555555555555555555555555555555555", &model.WalletActivity{
		AgeDays:      2,
		Transactions: txs,
	})

	assert.Equal(t, []string{PatternRapidTransfers}, patternIDs(report))
	assert.Equal(t, 70.0, report.MaxScore)
	assert.Equal(t, 70.0, report.AvgScore)
}

func TestRapidTransfersNeedsMoreThanWindow(t *testing.T) {
	// Exactly 10 transactions never trigger the rule.
	txs := make([]model.TransactionRecord, 0, 10)
	for i := 0; i < 10; i++ {
		txs = append(txs, model.TransactionRecord{To: "0xaa", Value: 1.5, Timestamp: 1_700_000_000 + int64(i)})
	}

	matcher := newTestMatcher()
	report := matcher.Match("0x5555555555555555555555555555555555555555", &model.WalletActivity{
		AgeDays:      100,
		Transactions: txs,
	})
	assert.NotContains(t, patternIDs(report), PatternRapidTransfers)
}

func TestRapidTransfersUsesMostRecentWindow(t *testing.T) {
	// Old spread-out history plus a burst of 10 recent transactions.
	txs := []model.TransactionRecord{
		{To: "0xaa", Value: 1.5, Timestamp: 1_000_000_000},
		{To: "0xaa", Value: 1.5, Timestamp: 1_100_000_000},
	}
	for i := 0; i < 10; i++ {
		txs = append(txs, model.TransactionRecord{To: "0xaa", Value: 1.5, Timestamp: 1_700_000_000 + int64(i)*60})
	}

	matcher := newTestMatcher()
	report := matcher.Match("0x5555555555555555555555555555555555555555", &model.WalletActivity{
		AgeDays:      1000,
		Transactions: txs,
	})
	assert.Contains(t, patternIDs(report), PatternRapidTransfers)
}

func TestUnusualAmounts(t *testing.T) {
	matcher := newTestMatcher()

	// 3 of 4 values are exact multiples of 1,000,000.
	report := matcher.Match("0x5555555555555555555555555555555555555555", &model.WalletActivity{
		AgeDays: 500,
		Transactions: []model.TransactionRecord{
			{To: "0xaa", Value: 1_000_000, Timestamp: 1000},
			{To: "0xaa", Value: 2_000_000, Timestamp: 90_000},
			{To: "0xaa", Value: 5_000_000, Timestamp: 180_000},
			{To: "0xaa", Value: 1.7, Timestamp: 270_000},
		},
	})
	assert.Contains(t, patternIDs(report), PatternUnusualAmounts)

	// Exactly half is not enough: the share must exceed 50%.
	even := matcher.Match("0x5555555555555555555555555555555555555555", &model.WalletActivity{
		AgeDays: 500,
		Transactions: []model.TransactionRecord{
			{To: "0xaa", Value: 1_000_000, Timestamp: 1000},
			{To: "0xaa", Value: 1.7, Timestamp: 90_000},
		},
	})
	assert.NotContains(t, patternIDs(even), PatternUnusualAmounts)
}

func TestNewWalletBurst(t *testing.T) {
	txs := make([]model.TransactionRecord, 0, 60)
	for i := 0; i < 60; i++ {
		txs = append(txs, model.TransactionRecord{
			To:        "0xaa",
			Value:     1.3,
			Timestamp: 1_700_000_000 + int64(i)*7200,
		})
	}

	matcher := newTestMatcher()
	report := matcher.Match("0x5555555555555555555555555555555555555555", &model.WalletActivity{
		AgeDays:      3,
		Transactions: txs,
	})
	assert.Contains(t, patternIDs(report), PatternNewWalletBurst)

	aged := matcher.Match("0x5555555555555555555555555555555555555555", &model.WalletActivity{
		AgeDays:      30,
		Transactions: txs,
	})
	assert.NotContains(t, patternIDs(aged), PatternNewWalletBurst)
}

func TestReportAggregates(t *testing.T) {
	// Blacklisted, new wallet, burst inside an hour: three rules fire.
	txs := make([]model.TransactionRecord, 0, 60)
	for i := 0; i < 60; i++ {
		txs = append(txs, model.TransactionRecord{To: "0xaa", Value: 1.3, Timestamp: 1_700_000_000 + int64(i)})
	}

	matcher := newTestMatcher()
	report := matcher.Match(blacklistedAddr, &model.WalletActivity{AgeDays: 1, Transactions: txs})

	require.Equal(t, 3, report.Count)
	assert.Equal(t, 95.0, report.MaxScore)
	assert.InDelta(t, (95.0+70.0+50.0)/3.0, report.AvgScore, 1e-9)
}

func TestEmptyReport(t *testing.T) {
	matcher := newTestMatcher()
	report := matcher.Match("0x5555555555555555555555555555555555555555", &model.WalletActivity{AgeDays: 100})
	assert.Zero(t, report.Count)
	assert.Zero(t, report.MaxScore)
	assert.Zero(t, report.AvgScore)
}

func TestRulesetReload(t *testing.T) {
	registry := NewRegistry(DefaultRuleset())
	matcher := NewMatcher(registry)

	custom := "0x9999999999999999999999999999999999999999"
	assert.Zero(t, matcher.Match(custom, nil).Count)

	updated := DefaultRuleset()
	updated.Version = "v2"
	updated.Blacklist[custom] = struct{}{}
	registry.Reload(updated)

	assert.Equal(t, 1, matcher.Match(custom, nil).Count)
	assert.Equal(t, "v2", registry.Current().Version)
}
