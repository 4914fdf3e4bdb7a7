package service

import (
	"context"
	"testing"
	"time"

	"github.com/LrenceLapating/Eunoiaa-sub002/config"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/repository"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var fixedNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type fixture struct {
	t          *testing.T
	db         *memory.DB
	scores     repository.CollegeScoreRepository
	completion CompletionService
	svc        *collegeScoreService
	clock      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := memory.Open()
	students := memory.NewStudentRepository(db)
	bulks := memory.NewBulkAssessmentRepository(db)
	assignments := memory.NewAssignmentRepository(db)
	scores := memory.NewCollegeScoreRepository(db)

	completion := NewCompletionService(assignments, bulks, students)
	cfg := &config.Config{Scoring: config.Scoring{BackfillWorkers: 2}}
	svc := NewCollegeScoreService(students, bulks, assignments, memory.NewSubmissionRepository(db), scores, completion, cfg).(*collegeScoreService)
	svc.now = func() time.Time { return fixedNow }

	return &fixture{t: t, db: db, scores: scores, completion: completion, svc: svc, clock: fixedNow.Add(-24 * time.Hour)}
}

func (f *fixture) student(college string, yearLevel int, section, status string) model.Student {
	s := model.Student{
		ID:        uuid.New(),
		Name:      "Student " + college,
		College:   college,
		YearLevel: yearLevel,
		Section:   section,
		Status:    status,
	}
	f.db.AddStudents(s)
	return s
}

func (f *fixture) activeStudent(college string) model.Student {
	return f.student(college, 1, "A", model.StudentStatusActive)
}

func (f *fixture) bulk(name, assessmentType string) model.BulkAssessment {
	b := model.BulkAssessment{
		ID:             uuid.New(),
		AssessmentName: name,
		AssessmentType: assessmentType,
		CreatedAt:      f.clock,
	}
	f.db.AddBulkAssessments(b)
	return b
}

// assign creates an assignment that has not been completed yet.
func (f *fixture) assign(b model.BulkAssessment, s model.Student) model.AssessmentAssignment {
	a := model.AssessmentAssignment{
		ID:               uuid.New(),
		BulkAssessmentID: b.ID,
		StudentID:        s.ID,
		Status:           model.AssignmentStatusAssigned,
		AssignedAt:       f.clock,
	}
	f.db.AddAssignments(a)
	return a
}

// complete records a completed assignment and its scored submission.
func (f *fixture) complete(b model.BulkAssessment, s model.Student, scores model.DimensionScores) model.AssessmentAssignment {
	f.clock = f.clock.Add(time.Minute)
	completedAt := f.clock
	a := model.AssessmentAssignment{
		ID:               uuid.New(),
		BulkAssessmentID: b.ID,
		StudentID:        s.ID,
		Status:           model.AssignmentStatusCompleted,
		AssignedAt:       completedAt.Add(-time.Hour),
		CompletedAt:      &completedAt,
	}
	f.db.AddAssignments(a)
	f.db.AddSubmissions(model.Submission{
		ID:             uuid.New(),
		StudentID:      s.ID,
		AssignmentID:   &a.ID,
		AssessmentType: b.AssessmentType,
		Scores:         datatypes.NewJSONType(scores),
		CompletedAt:    completedAt,
	})
	return a
}

func (f *fixture) storedRows() []model.CollegeScore {
	f.t.Helper()
	rows, err := f.scores.Find(context.Background(), repository.CollegeScoreFilter{})
	require.NoError(f.t, err)
	return rows
}

func uniformScores(v float64) model.DimensionScores {
	scores := make(model.DimensionScores, len(model.Dimensions))
	for _, d := range model.Dimensions {
		scores[d] = v
	}
	return scores
}
