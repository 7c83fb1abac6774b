package model

// Feature indexes into a FeatureVector. The order is part of the trained
// artifact contract and must not change between training and scoring.
const (
	FeatureTotalVolume = iota
	FeatureAvgValue
	FeatureMaxValue
	FeatureTxCount
	FeatureUniqueCounterparts
	FeatureAvgInterval
	FeatureMinInterval
	FeatureBalance
	FeatureAgeDays
	FeatureContractInteractions
	FeatureDefiInteractions

	FeatureCount
)

// FeatureVector is the fixed-length numeric representation of wallet activity.
type FeatureVector [FeatureCount]float64
