package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AssignmentStatusAssigned  = "assigned"
	AssignmentStatusCompleted = "completed"
	AssignmentStatusExpired   = "expired"
)

// AssessmentAssignment links one student to one bulk assessment.
type AssessmentAssignment struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	BulkAssessmentID uuid.UUID  `json:"bulk_assessment_id" gorm:"type:uuid;not null;index"`
	StudentID        uuid.UUID  `json:"student_id" gorm:"type:uuid;not null;index"`
	Status           string     `json:"status" gorm:"default:'assigned';index"`
	AssignedAt       time.Time  `json:"assigned_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (a *AssessmentAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (a AssessmentAssignment) IsCompleted() bool {
	return a.Status == AssignmentStatusCompleted
}
