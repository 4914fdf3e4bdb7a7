package dto

import "time"

// ErrorResponse is the failure envelope shared by every endpoint.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// CollegeScoreRowDTO mirrors one persisted college_scores row.
type CollegeScoreRowDTO struct {
	CollegeName    string    `json:"college_name"`
	DimensionName  string    `json:"dimension_name"`
	AssessmentType string    `json:"assessment_type"`
	AssessmentName string    `json:"assessment_name"`
	RawScore       float64   `json:"raw_score"`
	StudentCount   int       `json:"student_count"`
	RiskLevel      string    `json:"risk_level"`
	LastCalculated time.Time `json:"last_calculated"`
}

type ComputeCollegeScoresResult struct {
	Success        bool                 `json:"success"`
	Message        string               `json:"message"`
	AssessmentType string               `json:"assessmentType"`
	AssessmentName string               `json:"assessmentName"`
	CollegeCount   int                  `json:"collegeCount"`
	ScoreCount     int                  `json:"scoreCount"`
	Scores         []CollegeScoreRowDTO `json:"scores,omitempty"`
}

type BackfillResult struct {
	Success      bool                         `json:"success"`
	Message      string                       `json:"message"`
	CohortCount  int                          `json:"cohortCount"`
	CollegeCount int                          `json:"collegeCount"`
	ScoreCount   int                          `json:"scoreCount"`
	Results      []ComputeCollegeScoresResult `json:"results"`
}

// CompletionStatsDTO counts assignments for one (college, assessment name).
type CompletionStatsDTO struct {
	Total          int    `json:"total"`
	Completed      int    `json:"completed"`
	AssessmentType string `json:"assessment_type,omitempty"`
}

// CompletionByCollege is keyed by college, then by assessment name.
type CompletionByCollege map[string]map[string]CompletionStatsDTO

type CompletionResponse struct {
	Success bool                `json:"success"`
	Data    CompletionByCollege `json:"data"`
}

type DimensionScoreDTO struct {
	Score        float64 `json:"score"`
	RiskLevel    string  `json:"riskLevel"`
	StudentCount int     `json:"studentCount"`
}

type CollegeScoresDTO struct {
	Name                       string                        `json:"name"`
	Dimensions                 map[string]DimensionScoreDTO  `json:"dimensions"`
	StudentCount               int                           `json:"studentCount"`
	LastCalculated             *time.Time                    `json:"lastCalculated"`
	CompletionData             CompletionStatsDTO            `json:"completionData"`
	CompletionDataByAssessment map[string]CompletionStatsDTO `json:"completionDataByAssessment"`
}

// Score sources reported by the reader.
const (
	ScoreSourcePersisted   = "persisted"
	ScoreSourceDynamic     = "dynamic"
	ScoreSourcePlaceholder = "placeholder"
)

type CollegeScoresResponse struct {
	Success  bool               `json:"success"`
	Source   string             `json:"source"`
	Colleges []CollegeScoresDTO `json:"colleges"`
}
