package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DimensionScores maps a Ryff dimension to its raw score.
type DimensionScores map[string]float64

// Submission is one completed individual assessment. The 42-item and 84-item
// variants share this shape but live in separate tables.
type Submission struct {
	ID             uuid.UUID                           `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID      uuid.UUID                           `json:"student_id" gorm:"type:uuid;not null;index"`
	AssignmentID   *uuid.UUID                          `json:"assignment_id,omitempty" gorm:"type:uuid;index"`
	AssessmentType string                              `json:"assessment_type" gorm:"not null"`
	Scores         datatypes.JSONType[DimensionScores] `json:"scores"`
	OverallScore   float64                             `json:"overall_score"`
	RiskLevel      string                              `json:"risk_level"`
	CompletedAt    time.Time                           `json:"completed_at" gorm:"index"`
	CreatedAt      time.Time                           `json:"created_at"`
	UpdatedAt      time.Time                           `json:"updated_at"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// DimensionScores returns the decoded score map, which may be empty.
func (s Submission) DimensionScores() DimensionScores {
	return s.Scores.Data()
}

type Ryff42Submission struct {
	Submission
}

func (Ryff42Submission) TableName() string { return "assessments_42items" }

type Ryff84Submission struct {
	Submission
}

func (Ryff84Submission) TableName() string { return "assessments_84items" }

// SubmissionTable returns the table holding submissions of the given type.
func SubmissionTable(assessmentType string) (string, bool) {
	switch assessmentType {
	case AssessmentTypeRyff42:
		return Ryff42Submission{}.TableName(), true
	case AssessmentTypeRyff84:
		return Ryff84Submission{}.TableName(), true
	}
	return "", false
}
