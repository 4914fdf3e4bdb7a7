package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRiskLevel(t *testing.T) {
	tests := []struct {
		average float64
		want    string
	}{
		{7, RiskLevelAtRisk},
		{18.0, RiskLevelAtRisk},
		{18.01, RiskLevelModerate},
		{19, RiskLevelModerate},
		{30.0, RiskLevelModerate},
		{30.01, RiskLevelHealthy},
		{31, RiskLevelHealthy},
		{42, RiskLevelHealthy},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifyRiskLevel(tc.average), "average %v", tc.average)
	}
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 18.33, roundScore(55.0/3))
	assert.Equal(t, 30.0, roundScore(30))
	assert.Equal(t, 21.67, roundScore(65.0/3))
}
