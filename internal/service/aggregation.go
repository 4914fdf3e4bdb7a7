package service

import (
	"sort"
	"time"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/google/uuid"
)

type dimensionAverage struct {
	Average      float64
	StudentCount int
}

// collegeAggregate holds the unrounded per-dimension averages of one college.
type collegeAggregate struct {
	College          string
	Dimensions       map[string]dimensionAverage
	StudentCount     int
	LatestSubmission time.Time
	// IncompleteSubmissions counts submissions whose score map lacks at least
	// one of model.Dimensions.
	IncompleteSubmissions int
	// MissingDimensions lists the dimensions no submission of the college carried.
	MissingDimensions []string
}

// aggregateByCollege joins submissions to students, keeps the latest
// submission per student and averages each dimension per college. Students
// missing from the lookup or without a college are dropped. When college is
// non-empty only that college is aggregated. The result is sorted by college.
func aggregateByCollege(submissions []model.Submission, students map[uuid.UUID]model.Student, college string) []collegeAggregate {
	latest := make(map[string]map[uuid.UUID]model.Submission)
	for _, sub := range submissions {
		student, ok := students[sub.StudentID]
		if !ok || student.College == "" {
			continue
		}
		if college != "" && student.College != college {
			continue
		}
		byStudent, ok := latest[student.College]
		if !ok {
			byStudent = make(map[uuid.UUID]model.Submission)
			latest[student.College] = byStudent
		}
		if prev, seen := byStudent[sub.StudentID]; seen && sub.CompletedAt.Before(prev.CompletedAt) {
			continue
		}
		byStudent[sub.StudentID] = sub
	}

	aggregates := make([]collegeAggregate, 0, len(latest))
	for name, byStudent := range latest {
		sums := make(map[string]float64, len(model.Dimensions))
		counts := make(map[string]int, len(model.Dimensions))
		agg := collegeAggregate{College: name, StudentCount: len(byStudent)}

		for _, sub := range byStudent {
			scores := sub.DimensionScores()
			complete := true
			for _, dim := range model.Dimensions {
				v, ok := scores[dim]
				if !ok {
					complete = false
					continue
				}
				sums[dim] += v
				counts[dim]++
			}
			if !complete {
				agg.IncompleteSubmissions++
			}
			if sub.CompletedAt.After(agg.LatestSubmission) {
				agg.LatestSubmission = sub.CompletedAt
			}
		}

		agg.Dimensions = make(map[string]dimensionAverage, len(model.Dimensions))
		for _, dim := range model.Dimensions {
			if counts[dim] == 0 {
				agg.MissingDimensions = append(agg.MissingDimensions, dim)
				continue
			}
			agg.Dimensions[dim] = dimensionAverage{
				Average:      sums[dim] / float64(counts[dim]),
				StudentCount: counts[dim],
			}
		}
		aggregates = append(aggregates, agg)
	}

	sort.Slice(aggregates, func(i, j int) bool { return aggregates[i].College < aggregates[j].College })
	return aggregates
}

func studentIDs(submissions []model.Submission) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(submissions))
	for _, s := range submissions {
		ids = append(ids, s.StudentID)
	}
	return ids
}
