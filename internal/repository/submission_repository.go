package repository

import (
	"context"
	"fmt"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	// Find returns submissions with non-null scores from the table of
	// filter.AssessmentType.
	Find(ctx context.Context, filter SubmissionFilter) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Find(ctx context.Context, filter SubmissionFilter) ([]model.Submission, error) {
	table, ok := model.SubmissionTable(filter.AssessmentType)
	if !ok {
		return nil, fmt.Errorf("unknown assessment type %q", filter.AssessmentType)
	}

	var submissions []model.Submission
	query := r.db.WithContext(ctx).Table(table).Where("scores IS NOT NULL")
	if filter.AssignmentIDs != nil {
		if len(filter.AssignmentIDs) == 0 {
			return submissions, nil
		}
		query = query.Where("assignment_id IN ?", filter.AssignmentIDs)
	}
	err := query.Order("completed_at ASC").Find(&submissions).Error
	return submissions, err
}
