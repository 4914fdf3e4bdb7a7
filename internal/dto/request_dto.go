package dto

// ComputeCollegeScoresRequest triggers the write path for one cohort.
// CollegeName is optional and restricts the recomputation to one college.
type ComputeCollegeScoresRequest struct {
	CollegeName    string `json:"college_name"`
	AssessmentType string `json:"assessment_type" validate:"required,oneof=ryff_42 ryff_84"`
	AssessmentName string `json:"assessment_name" validate:"required,notblank"`
}

// BackfillRequest recomputes every cohort, or only those of AssessmentType.
type BackfillRequest struct {
	AssessmentType string `json:"assessment_type" validate:"omitempty,oneof=ryff_42 ryff_84"`
}

// CollegeScoreQuery carries the optional read filters. YearLevel or Section
// forces on-demand aggregation.
type CollegeScoreQuery struct {
	College        string `form:"college" json:"college"`
	AssessmentType string `form:"assessment_type" json:"assessment_type" validate:"omitempty,oneof=ryff_42 ryff_84"`
	AssessmentName string `form:"assessment_name" json:"assessment_name"`
	YearLevel      *int   `form:"year_level" json:"year_level" validate:"omitempty,gte=1"`
	Section        string `form:"section" json:"section"`
}

type CompletionQuery struct {
	AssessmentName string `form:"assessment_name" json:"assessment_name"`
	YearLevel      *int   `form:"year_level" json:"year_level" validate:"omitempty,gte=1"`
	Section        string `form:"section" json:"section"`
}
