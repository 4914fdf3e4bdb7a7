package model

// Assessment variants. Each variant has its own submission table.
const (
	AssessmentTypeRyff42 = "ryff_42"
	AssessmentTypeRyff84 = "ryff_84"
)

// Ryff well-being dimensions, in reporting order.
const (
	DimensionAutonomy             = "autonomy"
	DimensionEnvironmentalMastery = "environmental_mastery"
	DimensionPersonalGrowth       = "personal_growth"
	DimensionPositiveRelations    = "positive_relations"
	DimensionPurposeInLife        = "purpose_in_life"
	DimensionSelfAcceptance       = "self_acceptance"
)

var Dimensions = []string{
	DimensionAutonomy,
	DimensionEnvironmentalMastery,
	DimensionPersonalGrowth,
	DimensionPositiveRelations,
	DimensionPurposeInLife,
	DimensionSelfAcceptance,
}

var AssessmentTypes = []string{AssessmentTypeRyff42, AssessmentTypeRyff84}

func IsAssessmentType(t string) bool {
	return t == AssessmentTypeRyff42 || t == AssessmentTypeRyff84
}
