package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/repository"
	"github.com/google/uuid"
)

var (
	_ repository.StudentRepository        = (*studentRepository)(nil)
	_ repository.BulkAssessmentRepository = (*bulkAssessmentRepository)(nil)
	_ repository.AssignmentRepository     = (*assignmentRepository)(nil)
	_ repository.SubmissionRepository     = (*submissionRepository)(nil)
	_ repository.CollegeScoreRepository   = (*collegeScoreRepository)(nil)
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindByIDs(_ context.Context, ids []uuid.UUID, filter repository.StudentFilter) ([]model.Student, error) {
	r.db.students.RLock()
	defer r.db.students.RUnlock()

	var students []model.Student
	for _, id := range repository.DistinctIDs(ids) {
		s, ok := r.db.students.table[id]
		if !ok {
			continue
		}
		if filter.YearLevel != nil && s.YearLevel != *filter.YearLevel {
			continue
		}
		if filter.Section != "" && s.Section != filter.Section {
			continue
		}
		if filter.ActiveOnly && s.Status != model.StudentStatusActive {
			continue
		}
		students = append(students, s)
	}
	return students, nil
}

type bulkAssessmentRepository struct {
	db *DB
}

func NewBulkAssessmentRepository(db *DB) repository.BulkAssessmentRepository {
	return &bulkAssessmentRepository{db: db}
}

func (r *bulkAssessmentRepository) Find(_ context.Context, filter repository.BulkAssessmentFilter) ([]model.BulkAssessment, error) {
	r.db.bulkAssessment.RLock()
	defer r.db.bulkAssessment.RUnlock()

	var assessments []model.BulkAssessment
	for _, b := range r.db.bulkAssessment.table {
		if filter.IDs != nil && !containsID(filter.IDs, b.ID) {
			continue
		}
		if filter.AssessmentName != "" && b.AssessmentName != filter.AssessmentName {
			continue
		}
		if filter.AssessmentType != "" && b.AssessmentType != filter.AssessmentType {
			continue
		}
		assessments = append(assessments, b)
	}
	sort.Slice(assessments, func(i, j int) bool {
		return assessments[i].CreatedAt.Before(assessments[j].CreatedAt)
	})
	return assessments, nil
}

func (r *bulkAssessmentRepository) FindByID(_ context.Context, id uuid.UUID) (*model.BulkAssessment, error) {
	r.db.bulkAssessment.RLock()
	defer r.db.bulkAssessment.RUnlock()

	b, ok := r.db.bulkAssessment.table[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r *bulkAssessmentRepository) FindCohorts(_ context.Context, assessmentType string) ([]repository.Cohort, error) {
	r.db.bulkAssessment.RLock()
	defer r.db.bulkAssessment.RUnlock()

	seen := make(map[repository.Cohort]struct{})
	var cohorts []repository.Cohort
	for _, b := range r.db.bulkAssessment.table {
		if assessmentType != "" && b.AssessmentType != assessmentType {
			continue
		}
		c := repository.Cohort{AssessmentType: b.AssessmentType, AssessmentName: b.AssessmentName}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cohorts = append(cohorts, c)
	}
	sort.Slice(cohorts, func(i, j int) bool {
		if cohorts[i].AssessmentType != cohorts[j].AssessmentType {
			return cohorts[i].AssessmentType < cohorts[j].AssessmentType
		}
		return cohorts[i].AssessmentName < cohorts[j].AssessmentName
	})
	return cohorts, nil
}

type assignmentRepository struct {
	db *DB
}

func NewAssignmentRepository(db *DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Find(_ context.Context, filter repository.AssignmentFilter) ([]model.AssessmentAssignment, error) {
	r.db.assignment.RLock()
	defer r.db.assignment.RUnlock()

	var assignments []model.AssessmentAssignment
	for _, a := range r.db.assignment.table {
		if filter.BulkAssessmentIDs != nil && !containsID(filter.BulkAssessmentIDs, a.BulkAssessmentID) {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

func (r *assignmentRepository) FindByID(_ context.Context, id uuid.UUID) (*model.AssessmentAssignment, error) {
	r.db.assignment.RLock()
	defer r.db.assignment.RUnlock()

	a, ok := r.db.assignment.table[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

type submissionRepository struct {
	db *DB
}

func NewSubmissionRepository(db *DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Find(_ context.Context, filter repository.SubmissionFilter) ([]model.Submission, error) {
	if !model.IsAssessmentType(filter.AssessmentType) {
		return nil, fmt.Errorf("unknown assessment type %q", filter.AssessmentType)
	}

	r.db.submission.RLock()
	defer r.db.submission.RUnlock()

	var submissions []model.Submission
	for _, s := range r.db.submission.table[filter.AssessmentType] {
		if s.Scores.Data() == nil {
			continue
		}
		if filter.AssignmentIDs != nil && (s.AssignmentID == nil || !containsID(filter.AssignmentIDs, *s.AssignmentID)) {
			continue
		}
		submissions = append(submissions, s)
	}
	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].CompletedAt.Before(submissions[j].CompletedAt)
	})
	return submissions, nil
}

type collegeScoreRepository struct {
	db *DB
}

func NewCollegeScoreRepository(db *DB) repository.CollegeScoreRepository {
	return &collegeScoreRepository{db: db}
}

func (r *collegeScoreRepository) Find(_ context.Context, filter repository.CollegeScoreFilter) ([]model.CollegeScore, error) {
	r.db.collegeScore.RLock()
	defer r.db.collegeScore.RUnlock()

	var scores []model.CollegeScore
	for _, row := range r.db.collegeScore.rows {
		if filter.CollegeName != "" && row.CollegeName != filter.CollegeName {
			continue
		}
		if filter.AssessmentType != "" && row.AssessmentType != filter.AssessmentType {
			continue
		}
		if filter.AssessmentName != "" && row.AssessmentName != filter.AssessmentName {
			continue
		}
		scores = append(scores, row)
	}
	sort.SliceStable(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.CollegeName != b.CollegeName {
			return a.CollegeName < b.CollegeName
		}
		if !a.LastCalculated.Equal(b.LastCalculated) {
			return a.LastCalculated.Before(b.LastCalculated)
		}
		return a.DimensionName < b.DimensionName
	})
	return scores, nil
}

type scoreKey struct {
	college, dimension, assessmentType, assessmentName string
}

func keyOf(row model.CollegeScore) scoreKey {
	return scoreKey{row.CollegeName, row.DimensionName, row.AssessmentType, row.AssessmentName}
}

func (r *collegeScoreRepository) ReplaceCohort(_ context.Context, cohort repository.Cohort, colleges []string, rows []model.CollegeScore) error {
	if len(colleges) == 0 {
		return nil
	}
	touched := make(map[string]struct{}, len(colleges))
	for _, c := range colleges {
		touched[c] = struct{}{}
	}

	r.db.collegeScore.Lock()
	defer r.db.collegeScore.Unlock()

	kept := make([]model.CollegeScore, 0, len(r.db.collegeScore.rows)+len(rows))
	existing := make(map[scoreKey]struct{}, len(r.db.collegeScore.rows))
	for _, row := range r.db.collegeScore.rows {
		_, hit := touched[row.CollegeName]
		if hit && row.AssessmentType == cohort.AssessmentType && row.AssessmentName == cohort.AssessmentName {
			continue
		}
		kept = append(kept, row)
		existing[keyOf(row)] = struct{}{}
	}
	for _, row := range rows {
		k := keyOf(row)
		if _, dup := existing[k]; dup {
			// mirrors the unique index; the table is left untouched
			return fmt.Errorf("duplicate college score %s/%s for %s %q", row.CollegeName, row.DimensionName, row.AssessmentType, row.AssessmentName)
		}
		existing[k] = struct{}{}
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		kept = append(kept, row)
	}
	r.db.collegeScore.rows = kept
	return nil
}
