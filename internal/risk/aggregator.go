package risk

import (
	"fraudScope/internal/model"
	"fraudScope/internal/patterns"
)

// Component weights for the final score.
const (
	weightAnomaly    = 0.3
	weightPatterns   = 0.4
	weightBehavior   = 0.2
	weightAssessment = 0.1

	baselineAssessment = 10

	highFrequencyThreshold = 1000
	largeValueThreshold    = 1_000_000

	behaviorConcernFloor = 70
)

// Assessment is the stage-A feature-threshold result. Its score runs in the
// risk direction (higher = riskier); it stays internal to aggregation and is
// inverted into the safety score in Aggregate.
type Assessment struct {
	Factors []model.RiskFactor
	Score   float64
}

// Assess applies the feature-threshold rules to a vector.
func Assess(vec model.FeatureVector) Assessment {
	var factors []model.RiskFactor
	var scores []float64

	if vec[model.FeatureTxCount] > highFrequencyThreshold {
		factors = append(factors, model.RiskFactor{
			Pattern:     "high_frequency",
			Description: "Unusually high transaction frequency",
			Severity:    model.SeverityMedium,
			RiskScore:   40,
		})
		scores = append(scores, 40)
	}

	if vec[model.FeatureMaxValue] > largeValueThreshold {
		factors = append(factors, model.RiskFactor{
			Pattern:     "large_transactions",
			Description: "Large transaction values detected",
			Severity:    model.SeverityLow,
			RiskScore:   30,
		})
		scores = append(scores, 30)
	}

	if len(scores) == 0 {
		return Assessment{Score: baselineAssessment}
	}

	var max, sum float64
	for _, score := range scores {
		if score > max {
			max = score
		}
		sum += score
	}
	mean := sum / float64(len(scores))

	return Assessment{
		Factors: factors,
		Score:   max*0.7 + mean*0.3,
	}
}

// Verdict is the aggregated outcome: the safety score, its derived risk
// level, and the ordered union of every contributing factor.
type Verdict struct {
	SafetyScore int
	RiskLevel   model.RiskLevel
	RiskFactors []model.RiskFactor
}

// Aggregate combines the anomaly score, the pattern report, the behavioral
// profile, and the stage-A assessment into the final weighted verdict.
// The safety score is the inverse of the weighted risk, truncated to an
// integer and clamped to [0,100]; the risk level always follows from it.
func Aggregate(anomalyScore float64, report patterns.Report, profile model.BehavioralProfile, assessment Assessment) Verdict {
	behaviorRisk := float64(100 - profile.BehaviorScore)

	weightedRisk := anomalyScore*100*weightAnomaly +
		report.MaxScore*weightPatterns +
		behaviorRisk*weightBehavior +
		assessment.Score*weightAssessment

	safety := 100 - weightedRisk
	if safety < 0 {
		safety = 0
	}
	if safety > 100 {
		safety = 100
	}
	safetyScore := int(safety)

	factors := make([]model.RiskFactor, 0, len(report.Detected)+len(assessment.Factors)+1)
	factors = append(factors, report.Detected...)
	factors = append(factors, assessment.Factors...)

	if profile.BehaviorScore < behaviorConcernFloor {
		factors = append(factors, model.RiskFactor{
			Pattern:     "behavioral_anomalies",
			Description: "Concerning behavioral patterns detected",
			Severity:    model.SeverityMedium,
			RiskScore:   behaviorRisk,
		})
	}

	if len(factors) == 0 {
		factors = append(factors, model.RiskFactor{
			Pattern:     "standard_activity",
			Description: "Normal DeFi protocol interactions detected",
			Severity:    model.SeverityInfo,
			RiskScore:   0,
		})
	}

	return Verdict{
		SafetyScore: safetyScore,
		RiskLevel:   model.RiskLevelForScore(safetyScore),
		RiskFactors: factors,
	}
}
