package service

import (
	"context"
	"fmt"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/dto"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// CompletionService tallies assigned vs completed assessments per college.
type CompletionService interface {
	CountCompletions(ctx context.Context, query dto.CompletionQuery) (dto.CompletionByCollege, error)
}

type completionService struct {
	assignmentRepo repository.AssignmentRepository
	bulkRepo       repository.BulkAssessmentRepository
	studentRepo    repository.StudentRepository
	validator      *requestValidator
}

func NewCompletionService(
	assignmentRepo repository.AssignmentRepository,
	bulkRepo repository.BulkAssessmentRepository,
	studentRepo repository.StudentRepository,
) CompletionService {
	return &completionService{
		assignmentRepo: assignmentRepo,
		bulkRepo:       bulkRepo,
		studentRepo:    studentRepo,
		validator:      newRequestValidator(),
	}
}

// CountCompletions joins assignments to their bulk assessment and student in
// memory. Student status is not checked: inactive students still count.
func (s *completionService) CountCompletions(ctx context.Context, query dto.CompletionQuery) (dto.CompletionByCollege, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, err
	}

	result := make(dto.CompletionByCollege)

	assignments, err := s.assignmentRepo.Find(ctx, repository.AssignmentFilter{})
	if err != nil {
		log.Error().Err(err).Msg("CountCompletions: failed to fetch assignments")
		return nil, fmt.Errorf("error fetching assignments: %w", err)
	}
	if len(assignments) == 0 {
		return result, nil
	}

	bulkIDs := make([]uuid.UUID, 0, len(assignments))
	studentRefs := make([]uuid.UUID, 0, len(assignments))
	for _, a := range assignments {
		bulkIDs = append(bulkIDs, a.BulkAssessmentID)
		studentRefs = append(studentRefs, a.StudentID)
	}

	var (
		bulkByID    map[uuid.UUID]model.BulkAssessment
		studentByID map[uuid.UUID]model.Student
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bulks, err := s.bulkRepo.Find(gctx, repository.BulkAssessmentFilter{
			IDs:            repository.DistinctIDs(bulkIDs),
			AssessmentName: query.AssessmentName,
		})
		if err != nil {
			return fmt.Errorf("error fetching bulk assessments: %w", err)
		}
		bulkByID = make(map[uuid.UUID]model.BulkAssessment, len(bulks))
		for _, b := range bulks {
			bulkByID[b.ID] = b
		}
		return nil
	})
	g.Go(func() error {
		students, err := s.studentRepo.FindByIDs(gctx, repository.DistinctIDs(studentRefs), repository.StudentFilter{
			YearLevel: query.YearLevel,
			Section:   query.Section,
		})
		if err != nil {
			return fmt.Errorf("error fetching students: %w", err)
		}
		studentByID = make(map[uuid.UUID]model.Student, len(students))
		for _, st := range students {
			studentByID[st.ID] = st
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("assessmentName", query.AssessmentName).Msg("CountCompletions: lookup failed")
		return nil, err
	}

	for _, a := range assignments {
		bulk, ok := bulkByID[a.BulkAssessmentID]
		if !ok {
			continue
		}
		student, ok := studentByID[a.StudentID]
		if !ok || student.College == "" {
			continue
		}
		byName, ok := result[student.College]
		if !ok {
			byName = make(map[string]dto.CompletionStatsDTO)
			result[student.College] = byName
		}
		stats := byName[bulk.AssessmentName]
		stats.AssessmentType = preferredType(stats.AssessmentType, bulk.AssessmentType)
		stats.Total++
		if a.IsCompleted() {
			stats.Completed++
		}
		byName[bulk.AssessmentName] = stats
	}
	return result, nil
}

// preferredType picks the reported type when one name is shared by several
// variants: ryff_42 first, then the order of model.AssessmentTypes.
func preferredType(current, candidate string) string {
	if current == "" {
		return candidate
	}
	rc, rn := typeRank(current), typeRank(candidate)
	if rn < rc || (rn == rc && candidate < current) {
		return candidate
	}
	return current
}

func typeRank(t string) int {
	for i, known := range model.AssessmentTypes {
		if t == known {
			return i
		}
	}
	return len(model.AssessmentTypes)
}
