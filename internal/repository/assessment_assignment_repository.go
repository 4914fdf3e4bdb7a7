package repository

import (
	"context"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Find(ctx context.Context, filter AssignmentFilter) ([]model.AssessmentAssignment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.AssessmentAssignment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Find(ctx context.Context, filter AssignmentFilter) ([]model.AssessmentAssignment, error) {
	var assignments []model.AssessmentAssignment
	query := r.db.WithContext(ctx).Select("id", "bulk_assessment_id", "student_id", "status", "assigned_at", "completed_at")
	if filter.BulkAssessmentIDs != nil {
		if len(filter.BulkAssessmentIDs) == 0 {
			return assignments, nil
		}
		query = query.Where("bulk_assessment_id IN ?", filter.BulkAssessmentIDs)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	err := query.Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AssessmentAssignment, error) {
	var assignment model.AssessmentAssignment
	if err := r.db.WithContext(ctx).First(&assignment, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &assignment, nil
}
