package model

import (
	"fmt"
	"strings"
)

// Severity labels a risk factor.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// RiskLevel is the coarse category derived from the safety score.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// RiskLevelForScore maps a safety score to its risk level. Safety scores run
// the inverse direction of risk: higher means safer.
func RiskLevelForScore(safetyScore int) RiskLevel {
	switch {
	case safetyScore >= 80:
		return RiskLevelLow
	case safetyScore >= 60:
		return RiskLevelMedium
	case safetyScore >= 40:
		return RiskLevelHigh
	default:
		return RiskLevelCritical
	}
}

// RiskFactor is a named contributor to the aggregate risk verdict. Detected
// patterns, threshold assessments, and behavioral findings all share this shape.
type RiskFactor struct {
	Pattern     string   `json:"pattern"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	RiskScore   float64  `json:"risk_score"`
}

// BehavioralProfile holds qualitative findings plus the derived behavior score.
type BehavioralProfile struct {
	Patterns        []string `json:"patterns"`
	Anomalies       []string `json:"anomalies"`
	Recommendations []string `json:"recommendations"`
	BehaviorScore   int      `json:"behavior_score"`
}

// TransactionSummary is the human-facing activity digest.
type TransactionSummary struct {
	TotalTransactions int    `json:"total_transactions"`
	TotalVolume       string `json:"total_volume"`
	FirstActivity     string `json:"first_activity"`
	LastActivity      string `json:"last_activity"`
	UniqueAddresses   int    `json:"unique_addresses"`
}

// ScanResult is the complete verdict for one wallet scan. Created once per
// scan and immutable thereafter.
type ScanResult struct {
	ScanID             string             `json:"scan_id"`
	WalletAddress      string             `json:"wallet_address"`
	RiskLevel          RiskLevel          `json:"risk_level"`
	SafetyScore        int                `json:"safety_score"`
	RiskFactors        []RiskFactor       `json:"risk_factors"`
	BehavioralAnalysis BehavioralProfile  `json:"behavioral_analysis"`
	TransactionSummary TransactionSummary `json:"transaction_summary"`
	Recommendations    []string           `json:"recommendations"`
	ScanTimestamp      string             `json:"scan_timestamp"`
	ModelVersion       string             `json:"model_version"`
}

// HasCriticalFactor reports whether any risk factor carries critical severity.
func (r *ScanResult) HasCriticalFactor() bool {
	for _, factor := range r.RiskFactors {
		if factor.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// FormatUSD renders a value as "$#,##0.00" with comma-grouped thousands.
func FormatUSD(value float64) string {
	if value < 0 {
		value = 0
	}

	whole := fmt.Sprintf("%.2f", value)
	dot := strings.IndexByte(whole, '.')
	intPart, fracPart := whole[:dot], whole[dot+1:]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return "$" + grouped.String() + "." + fracPart
}
