package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollegeScore is the persisted average of one dimension for one college
// within one (assessment type, assessment name) cohort.
type CollegeScore struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CollegeName    string    `json:"college_name" gorm:"not null;uniqueIndex:idx_college_scores_identity,priority:1"`
	DimensionName  string    `json:"dimension_name" gorm:"not null;uniqueIndex:idx_college_scores_identity,priority:2"`
	AssessmentType string    `json:"assessment_type" gorm:"not null;uniqueIndex:idx_college_scores_identity,priority:3"`
	AssessmentName string    `json:"assessment_name" gorm:"not null;uniqueIndex:idx_college_scores_identity,priority:4"`
	RawScore       float64   `json:"raw_score" gorm:"type:numeric(6,2);not null"`
	StudentCount   int       `json:"student_count" gorm:"not null"`
	RiskLevel      string    `json:"risk_level" gorm:"not null"`
	LastCalculated time.Time `json:"last_calculated" gorm:"index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (CollegeScore) TableName() string { return "college_scores" }

func (c *CollegeScore) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
