// Package memory is a map-backed store implementing every repository
// interface. It backs the "memory" database driver and the service tests.
package memory

import (
	"sync"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/google/uuid"
)

type (
	DB struct {
		students       *studentTable
		bulkAssessment *bulkAssessmentTable
		assignment     *assignmentTable
		submission     *submissionTable
		collegeScore   *collegeScoreTable
	}

	studentTable struct {
		sync.RWMutex
		table map[uuid.UUID]model.Student
	}

	bulkAssessmentTable struct {
		sync.RWMutex
		table map[uuid.UUID]model.BulkAssessment
	}

	assignmentTable struct {
		sync.RWMutex
		table map[uuid.UUID]model.AssessmentAssignment
	}

	// submissionTable keeps one slice per assessment type, in insertion order.
	submissionTable struct {
		sync.RWMutex
		table map[string][]model.Submission
	}

	collegeScoreTable struct {
		sync.RWMutex
		rows []model.CollegeScore
	}
)

func Open() *DB {
	return &DB{
		students:       &studentTable{table: make(map[uuid.UUID]model.Student)},
		bulkAssessment: &bulkAssessmentTable{table: make(map[uuid.UUID]model.BulkAssessment)},
		assignment:     &assignmentTable{table: make(map[uuid.UUID]model.AssessmentAssignment)},
		submission:     &submissionTable{table: make(map[string][]model.Submission)},
		collegeScore:   &collegeScoreTable{},
	}
}

func (db *DB) AddStudents(students ...model.Student) {
	db.students.Lock()
	defer db.students.Unlock()
	for _, s := range students {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		if s.Status == "" {
			s.Status = model.StudentStatusActive
		}
		db.students.table[s.ID] = s
	}
}

func (db *DB) AddBulkAssessments(assessments ...model.BulkAssessment) {
	db.bulkAssessment.Lock()
	defer db.bulkAssessment.Unlock()
	for _, b := range assessments {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
		db.bulkAssessment.table[b.ID] = b
	}
}

func (db *DB) AddAssignments(assignments ...model.AssessmentAssignment) {
	db.assignment.Lock()
	defer db.assignment.Unlock()
	for _, a := range assignments {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		db.assignment.table[a.ID] = a
	}
}

// AddSubmissions files each submission under its AssessmentType.
func (db *DB) AddSubmissions(submissions ...model.Submission) {
	db.submission.Lock()
	defer db.submission.Unlock()
	for _, s := range submissions {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		db.submission.table[s.AssessmentType] = append(db.submission.table[s.AssessmentType], s)
	}
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
