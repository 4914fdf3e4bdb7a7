package repository

import (
	"context"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentRepository interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID, filter StudentFilter) ([]model.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, filter StudentFilter) ([]model.Student, error) {
	var students []model.Student
	if len(ids) == 0 {
		return students, nil
	}
	query := r.db.WithContext(ctx).Where("id IN ?", ids)
	if filter.YearLevel != nil {
		query = query.Where("year_level = ?", *filter.YearLevel)
	}
	if filter.Section != "" {
		query = query.Where("section = ?", filter.Section)
	}
	if filter.ActiveOnly {
		query = query.Where("status = ?", model.StudentStatusActive)
	}
	err := query.Find(&students).Error
	return students, err
}
