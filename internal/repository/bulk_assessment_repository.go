package repository

import (
	"context"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BulkAssessmentRepository interface {
	Find(ctx context.Context, filter BulkAssessmentFilter) ([]model.BulkAssessment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.BulkAssessment, error)
	// FindCohorts lists the distinct (type, name) pairs, optionally for one type.
	FindCohorts(ctx context.Context, assessmentType string) ([]Cohort, error)
}

type bulkAssessmentRepository struct {
	db *gorm.DB
}

func NewBulkAssessmentRepository(db *gorm.DB) BulkAssessmentRepository {
	return &bulkAssessmentRepository{db: db}
}

func (r *bulkAssessmentRepository) Find(ctx context.Context, filter BulkAssessmentFilter) ([]model.BulkAssessment, error) {
	var assessments []model.BulkAssessment
	query := r.db.WithContext(ctx)
	if filter.IDs != nil {
		if len(filter.IDs) == 0 {
			return assessments, nil
		}
		query = query.Where("id IN ?", filter.IDs)
	}
	if filter.AssessmentName != "" {
		query = query.Where("assessment_name = ?", filter.AssessmentName)
	}
	if filter.AssessmentType != "" {
		query = query.Where("assessment_type = ?", filter.AssessmentType)
	}
	err := query.Order("created_at ASC").Find(&assessments).Error
	return assessments, err
}

func (r *bulkAssessmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BulkAssessment, error) {
	var assessment model.BulkAssessment
	if err := r.db.WithContext(ctx).First(&assessment, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &assessment, nil
}

func (r *bulkAssessmentRepository) FindCohorts(ctx context.Context, assessmentType string) ([]Cohort, error) {
	var cohorts []Cohort
	query := r.db.WithContext(ctx).Model(&model.BulkAssessment{}).
		Distinct("assessment_type", "assessment_name")
	if assessmentType != "" {
		query = query.Where("assessment_type = ?", assessmentType)
	}
	err := query.Order("assessment_type ASC, assessment_name ASC").Scan(&cohorts).Error
	return cohorts, err
}
