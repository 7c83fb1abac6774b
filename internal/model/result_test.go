package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestScanResultJSONRoundTrip(t *testing.T) {
	original := ScanResult{
		ScanID:        "FRAI-1700000000-deadbeef",
		WalletAddress: "0x1111111111111111111111111111111111111111",
		RiskLevel:     RiskLevelHigh,
		SafetyScore:   43,
		RiskFactors: []RiskFactor{
			{Pattern: "blacklisted_address", Description: "Address found in fraud blacklist", Severity: SeverityCritical, RiskScore: 95},
		},
		BehavioralAnalysis: BehavioralProfile{
			Patterns:        []string{"Standard wallet activity"},
			Anomalies:       []string{"No significant anomalies detected"},
			Recommendations: []string{"Continue standard security practices"},
			BehaviorScore:   85,
		},
		TransactionSummary: TransactionSummary{
			TotalTransactions: 0,
			TotalVolume:       "$0.00",
			FirstActivity:     "N/A",
			LastActivity:      "N/A",
		},
		Recommendations: []string{"High caution recommended"},
		ScanTimestamp:   "2024-01-01T00:00:00Z",
		ModelVersion:    "1.0.0",
	}

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded ScanResult
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round-trip mismatch: %+v != %+v", original, decoded)
	}
}

func TestRiskLevelForScore(t *testing.T) {
	cases := []struct {
		score int
		want  RiskLevel
	}{
		{100, RiskLevelLow},
		{80, RiskLevelLow},
		{79, RiskLevelMedium},
		{60, RiskLevelMedium},
		{59, RiskLevelHigh},
		{43, RiskLevelHigh},
		{40, RiskLevelHigh},
		{39, RiskLevelCritical},
		{0, RiskLevelCritical},
	}

	for _, tc := range cases {
		if got := RiskLevelForScore(tc.score); got != tc.want {
			t.Fatalf("score %d: got %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestNormalizeAddress(t *testing.T) {
	got, err := NormalizeAddress("0xABCDEFabcdefABCDEFabcdefABCDEFabcdefABCD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd" {
		t.Fatalf("unexpected normalization: %s", got)
	}

	invalid := []string{
		"",
		"abc",
		"1234567890123456789012345678901234567890",   // missing prefix
		"0x12345678901234567890123456789012345678",   // too short
		"0x123456789012345678901234567890123456789z", // non-hex
	}
	for _, input := range invalid {
		if _, err := NormalizeAddress(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{1000, "$1,000.00"},
		{1234567.891, "$1,234,567.89"},
		{115000, "$115,000.00"},
	}

	for _, tc := range cases {
		if got := FormatUSD(tc.value); got != tc.want {
			t.Fatalf("FormatUSD(%v) = %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestAddressSeedStable(t *testing.T) {
	a := AddressSeed("0x1111111111111111111111111111111111111111")
	b := AddressSeed("0x1111111111111111111111111111111111111111")
	if a != b {
		t.Fatalf("seed not stable: %d != %d", a, b)
	}
	if a == AddressSeed("0x2222222222222222222222222222222222222222") {
		t.Fatalf("different addresses produced identical seed")
	}
}
