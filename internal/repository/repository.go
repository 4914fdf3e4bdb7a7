package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned by single-record lookups that match nothing.
var ErrNotFound = errors.New("record not found")

// StudentFilter narrows a student lookup. Zero values mean "no restriction".
type StudentFilter struct {
	YearLevel  *int
	Section    string
	ActiveOnly bool
}

// BulkAssessmentFilter narrows a bulk assessment lookup. IDs restricts the
// result only when non-nil; an empty non-nil slice matches nothing.
type BulkAssessmentFilter struct {
	IDs            []uuid.UUID
	AssessmentName string
	AssessmentType string
}

type AssignmentFilter struct {
	BulkAssessmentIDs []uuid.UUID
	Status            string
}

type SubmissionFilter struct {
	AssessmentType string
	AssignmentIDs  []uuid.UUID
}

type CollegeScoreFilter struct {
	CollegeName    string
	AssessmentType string
	AssessmentName string
}

// Cohort identifies the set of submissions a college score is computed from.
type Cohort struct {
	AssessmentType string
	AssessmentName string
}

// DistinctIDs drops duplicates while keeping first-seen order.
func DistinctIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
