package service

import "math"

const (
	RiskLevelAtRisk   = "at-risk"
	RiskLevelModerate = "moderate"
	RiskLevelHealthy  = "healthy"
)

// Band ceilings on the 7-42 per-dimension raw score scale.
const (
	AtRiskMaxScore   float64 = 18.0
	ModerateMaxScore float64 = 30.0
)

// ClassifyRiskLevel maps an unrounded dimension average to its risk band.
// Scores between bands (18.01, 30.01) fall into the upper band.
func ClassifyRiskLevel(average float64) string {
	switch {
	case average <= AtRiskMaxScore:
		return RiskLevelAtRisk
	case average <= ModerateMaxScore:
		return RiskLevelModerate
	default:
		return RiskLevelHealthy
	}
}

// roundScore rounds to two decimals for storage and display.
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
