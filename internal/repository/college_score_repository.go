package repository

import (
	"context"
	"fmt"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"gorm.io/gorm"
)

type CollegeScoreRepository interface {
	Find(ctx context.Context, filter CollegeScoreFilter) ([]model.CollegeScore, error)
	// ReplaceCohort deletes the rows of cohort for the given colleges and
	// inserts rows in their place, atomically.
	ReplaceCohort(ctx context.Context, cohort Cohort, colleges []string, rows []model.CollegeScore) error
}

type collegeScoreRepository struct {
	db *gorm.DB
}

func NewCollegeScoreRepository(db *gorm.DB) CollegeScoreRepository {
	return &collegeScoreRepository{db: db}
}

func (r *collegeScoreRepository) Find(ctx context.Context, filter CollegeScoreFilter) ([]model.CollegeScore, error) {
	var scores []model.CollegeScore
	query := r.db.WithContext(ctx)
	if filter.CollegeName != "" {
		query = query.Where("college_name = ?", filter.CollegeName)
	}
	if filter.AssessmentType != "" {
		query = query.Where("assessment_type = ?", filter.AssessmentType)
	}
	if filter.AssessmentName != "" {
		query = query.Where("assessment_name = ?", filter.AssessmentName)
	}
	err := query.Order("college_name ASC, last_calculated ASC, dimension_name ASC").Find(&scores).Error
	return scores, err
}

func (r *collegeScoreRepository) ReplaceCohort(ctx context.Context, cohort Cohort, colleges []string, rows []model.CollegeScore) error {
	if len(colleges) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("college_name IN ? AND assessment_type = ? AND assessment_name = ?",
			colleges, cohort.AssessmentType, cohort.AssessmentName).
			Delete(&model.CollegeScore{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete existing college scores: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert college scores: %w", err)
		}
		return nil
	})
}
