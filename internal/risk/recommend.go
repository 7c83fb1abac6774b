package risk

import "fraudScope/internal/model"

// Recommendations maps a safety score and its risk factors to user-facing
// guidance. Any critical-severity factor prepends an immediate-action notice.
func Recommendations(safetyScore int, factors []model.RiskFactor) []string {
	var recommendations []string

	switch {
	case safetyScore >= 80:
		recommendations = []string{
			"Wallet appears safe for normal transactions",
			"Continue standard security practices",
			"Regular monitoring recommended",
		}
	case safetyScore >= 60:
		recommendations = []string{
			"Exercise caution in transactions",
			"Verify identity before large transfers",
			"Monitor transaction patterns",
		}
	case safetyScore >= 40:
		recommendations = []string{
			"High caution recommended",
			"Avoid large transactions",
			"Consider additional verification",
			"Monitor for suspicious activity",
		}
	default:
		recommendations = []string{
			"Avoid transacting with this wallet",
			"Report to relevant authorities",
			"Monitor for future suspicious activity",
			"Consider blocking this address",
		}
	}

	for _, factor := range factors {
		if factor.Severity == model.SeverityCritical {
			return append([]string{"CRITICAL: Immediate action required"}, recommendations...)
		}
	}

	return recommendations
}
