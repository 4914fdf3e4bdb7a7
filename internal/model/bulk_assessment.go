package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BulkAssessment is an assessment campaign sent to a cohort. Names are only
// unique together with the assessment type.
type BulkAssessment struct {
	ID               uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	AssessmentName   string                       `json:"assessment_name" gorm:"not null;index"`
	AssessmentType   string                       `json:"assessment_type" gorm:"not null;index"` // ryff_42 | ryff_84
	TargetColleges   datatypes.JSONType[[]string] `json:"target_colleges"`
	TargetYearLevels datatypes.JSONType[[]int]    `json:"target_year_levels"`
	TargetSections   datatypes.JSONType[[]string] `json:"target_sections"`
	Status           string                       `json:"status" gorm:"default:'active'"`
	CreatedAt        time.Time                    `json:"created_at"`
	UpdatedAt        time.Time                    `json:"updated_at"`
}

func (b *BulkAssessment) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
