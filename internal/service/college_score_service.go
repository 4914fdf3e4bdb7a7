package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LrenceLapating/Eunoiaa-sub002/config"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/dto"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// CollegeScoreService computes, persists and serves per-college Ryff dimension scores.
type CollegeScoreService interface {
	ComputeAndStore(ctx context.Context, req dto.ComputeCollegeScoresRequest) (*dto.ComputeCollegeScoresResult, error)
	RecomputeForAssignment(ctx context.Context, assignmentID uuid.UUID) (*dto.ComputeCollegeScoresResult, error)
	Backfill(ctx context.Context, req dto.BackfillRequest) (*dto.BackfillResult, error)
	GetCollegeScores(ctx context.Context, query dto.CollegeScoreQuery) (*dto.CollegeScoresResponse, error)
}

type collegeScoreService struct {
	studentRepo    repository.StudentRepository
	bulkRepo       repository.BulkAssessmentRepository
	assignmentRepo repository.AssignmentRepository
	submissionRepo repository.SubmissionRepository
	scoreRepo      repository.CollegeScoreRepository
	completion     CompletionService
	validator      *requestValidator
	backfillLimit  int
	now            func() time.Time
}

func NewCollegeScoreService(
	studentRepo repository.StudentRepository,
	bulkRepo repository.BulkAssessmentRepository,
	assignmentRepo repository.AssignmentRepository,
	submissionRepo repository.SubmissionRepository,
	scoreRepo repository.CollegeScoreRepository,
	completion CompletionService,
	cfg *config.Config,
) CollegeScoreService {
	limit := 1
	if cfg != nil && cfg.Scoring.BackfillWorkers > 0 {
		limit = cfg.Scoring.BackfillWorkers
	}
	return &collegeScoreService{
		studentRepo:    studentRepo,
		bulkRepo:       bulkRepo,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		scoreRepo:      scoreRepo,
		completion:     completion,
		validator:      newRequestValidator(),
		backfillLimit:  limit,
		now:            time.Now,
	}
}

// ComputeAndStore recomputes the six dimension rows of every college in the
// cohort (or of req.CollegeName only) and replaces the stored rows.
func (s *collegeScoreService) ComputeAndStore(ctx context.Context, req dto.ComputeCollegeScoresRequest) (*dto.ComputeCollegeScoresResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	cohort := repository.Cohort{AssessmentType: req.AssessmentType, AssessmentName: req.AssessmentName}
	result := &dto.ComputeCollegeScoresResult{
		Success:        true,
		AssessmentType: cohort.AssessmentType,
		AssessmentName: cohort.AssessmentName,
	}
	logger := log.With().
		Str("assessmentType", cohort.AssessmentType).
		Str("assessmentName", cohort.AssessmentName).
		Str("college", req.CollegeName).
		Logger()

	submissions, err := s.cohortSubmissions(ctx, cohort)
	if err != nil {
		logger.Error().Err(err).Msg("ComputeAndStore: failed to resolve cohort submissions")
		return nil, err
	}
	if len(submissions) == 0 {
		result.Message = fmt.Sprintf("No completed %s submissions found for %q", cohort.AssessmentType, cohort.AssessmentName)
		return result, nil
	}

	students, err := s.lookupStudents(ctx, submissions, repository.StudentFilter{})
	if err != nil {
		logger.Error().Err(err).Msg("ComputeAndStore: failed to fetch students")
		return nil, err
	}

	aggregates := aggregateByCollege(submissions, students, req.CollegeName)
	calculatedAt := s.now().UTC()
	rows, colleges := buildScoreRows(aggregates, cohort, calculatedAt)
	if len(rows) == 0 {
		result.Message = "No college could be resolved for the submitted assessments"
		return result, nil
	}

	if err := s.scoreRepo.ReplaceCohort(ctx, cohort, colleges, rows); err != nil {
		logger.Error().Err(err).Int("rows", len(rows)).Msg("ComputeAndStore: failed to persist college scores")
		return nil, fmt.Errorf("error storing college scores: %w", err)
	}

	result.CollegeCount = len(colleges)
	result.ScoreCount = len(rows)
	result.Message = fmt.Sprintf("Computed %d scores for %d colleges", result.ScoreCount, result.CollegeCount)
	if err := copier.Copy(&result.Scores, &rows); err != nil {
		logger.Error().Err(err).Msg("ComputeAndStore: failed to copy score rows to response")
		return nil, fmt.Errorf("error preparing college scores response: %w", err)
	}
	logger.Info().Int("colleges", result.CollegeCount).Int("scores", result.ScoreCount).Msg("College scores stored")
	return result, nil
}

// buildScoreRows turns aggregates into rows with rounded scores and risk
// levels classified on the unrounded average.
func buildScoreRows(aggregates []collegeAggregate, cohort repository.Cohort, calculatedAt time.Time) ([]model.CollegeScore, []string) {
	var (
		rows     []model.CollegeScore
		colleges []string
	)
	for _, agg := range aggregates {
		if len(agg.Dimensions) == 0 {
			continue
		}
		colleges = append(colleges, agg.College)
		if agg.IncompleteSubmissions > 0 {
			log.Warn().
				Str("college", agg.College).
				Str("assessmentType", cohort.AssessmentType).
				Str("assessmentName", cohort.AssessmentName).
				Int("incompleteSubmissions", agg.IncompleteSubmissions).
				Strs("missingDimensions", agg.MissingDimensions).
				Int("rows", len(model.Dimensions)-len(agg.MissingDimensions)).
				Msg("buildScoreRows: submissions lack dimension scores")
		}
		for _, dim := range model.Dimensions {
			avg, ok := agg.Dimensions[dim]
			if !ok {
				continue
			}
			rows = append(rows, model.CollegeScore{
				CollegeName:    agg.College,
				DimensionName:  dim,
				AssessmentType: cohort.AssessmentType,
				AssessmentName: cohort.AssessmentName,
				RawScore:       roundScore(avg.Average),
				StudentCount:   avg.StudentCount,
				RiskLevel:      ClassifyRiskLevel(avg.Average),
				LastCalculated: calculatedAt,
			})
		}
	}
	return rows, colleges
}

// cohortSubmissions returns the submissions of a cohort. With a name, the
// name is resolved through completed assignments of bulk assessments of the
// same type; without one, every scored submission of the type is returned.
func (s *collegeScoreService) cohortSubmissions(ctx context.Context, cohort repository.Cohort) ([]model.Submission, error) {
	if cohort.AssessmentName == "" {
		subs, err := s.submissionRepo.Find(ctx, repository.SubmissionFilter{AssessmentType: cohort.AssessmentType})
		if err != nil {
			return nil, fmt.Errorf("error fetching %s submissions: %w", cohort.AssessmentType, err)
		}
		return subs, nil
	}

	bulks, err := s.bulkRepo.Find(ctx, repository.BulkAssessmentFilter{
		AssessmentName: cohort.AssessmentName,
		AssessmentType: cohort.AssessmentType,
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching bulk assessments: %w", err)
	}
	if len(bulks) == 0 {
		return nil, nil
	}
	bulkIDs := make([]uuid.UUID, 0, len(bulks))
	for _, b := range bulks {
		bulkIDs = append(bulkIDs, b.ID)
	}

	assignments, err := s.assignmentRepo.Find(ctx, repository.AssignmentFilter{
		BulkAssessmentIDs: bulkIDs,
		Status:            model.AssignmentStatusCompleted,
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching completed assignments: %w", err)
	}
	if len(assignments) == 0 {
		return nil, nil
	}
	assignmentIDs := make([]uuid.UUID, 0, len(assignments))
	for _, a := range assignments {
		assignmentIDs = append(assignmentIDs, a.ID)
	}

	subs, err := s.submissionRepo.Find(ctx, repository.SubmissionFilter{
		AssessmentType: cohort.AssessmentType,
		AssignmentIDs:  assignmentIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching %s submissions: %w", cohort.AssessmentType, err)
	}
	return subs, nil
}

func (s *collegeScoreService) lookupStudents(ctx context.Context, submissions []model.Submission, filter repository.StudentFilter) (map[uuid.UUID]model.Student, error) {
	students, err := s.studentRepo.FindByIDs(ctx, repository.DistinctIDs(studentIDs(submissions)), filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching students: %w", err)
	}
	byID := make(map[uuid.UUID]model.Student, len(students))
	for _, st := range students {
		byID[st.ID] = st
	}
	return byID, nil
}

// RecomputeForAssignment refreshes the scores of the college of the student
// who completed the assignment.
func (s *collegeScoreService) RecomputeForAssignment(ctx context.Context, assignmentID uuid.UUID) (*dto.ComputeCollegeScoresResult, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("assignment %s: %w", assignmentID, ErrNotFound)
		}
		log.Error().Err(err).Str("assignmentID", assignmentID.String()).Msg("RecomputeForAssignment: failed to fetch assignment")
		return nil, fmt.Errorf("error fetching assignment: %w", err)
	}
	if !assignment.IsCompleted() {
		return &dto.ComputeCollegeScoresResult{
			Success: true,
			Message: fmt.Sprintf("Assignment is %s; nothing to recompute", assignment.Status),
		}, nil
	}

	bulk, err := s.bulkRepo.FindByID(ctx, assignment.BulkAssessmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("bulk assessment %s: %w", assignment.BulkAssessmentID, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching bulk assessment: %w", err)
	}

	students, err := s.studentRepo.FindByIDs(ctx, []uuid.UUID{assignment.StudentID}, repository.StudentFilter{})
	if err != nil {
		return nil, fmt.Errorf("error fetching student: %w", err)
	}
	if len(students) == 0 || students[0].College == "" {
		return &dto.ComputeCollegeScoresResult{
			Success:        true,
			AssessmentType: bulk.AssessmentType,
			AssessmentName: bulk.AssessmentName,
			Message:        "Student has no college; nothing to recompute",
		}, nil
	}

	return s.ComputeAndStore(ctx, dto.ComputeCollegeScoresRequest{
		CollegeName:    students[0].College,
		AssessmentType: bulk.AssessmentType,
		AssessmentName: bulk.AssessmentName,
	})
}

// Backfill recomputes every known cohort. Cohorts touch disjoint keys, so
// they run concurrently up to the configured limit.
func (s *collegeScoreService) Backfill(ctx context.Context, req dto.BackfillRequest) (*dto.BackfillResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	cohorts, err := s.bulkRepo.FindCohorts(ctx, req.AssessmentType)
	if err != nil {
		log.Error().Err(err).Msg("Backfill: failed to list cohorts")
		return nil, fmt.Errorf("error listing assessment cohorts: %w", err)
	}

	var runnable []repository.Cohort
	for _, c := range cohorts {
		if strings.TrimSpace(c.AssessmentName) == "" || !model.IsAssessmentType(c.AssessmentType) {
			log.Warn().Str("assessmentType", c.AssessmentType).Str("assessmentName", c.AssessmentName).Msg("Backfill: skipping cohort without a usable type or name")
			continue
		}
		runnable = append(runnable, c)
	}

	results := make([]dto.ComputeCollegeScoresResult, len(runnable))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.backfillLimit)
	for i, c := range runnable {
		g.Go(func() error {
			res, err := s.ComputeAndStore(gctx, dto.ComputeCollegeScoresRequest{
				AssessmentType: c.AssessmentType,
				AssessmentName: c.AssessmentName,
			})
			if err != nil {
				return fmt.Errorf("cohort %s %q: %w", c.AssessmentType, c.AssessmentName, err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Backfill: aborted")
		return nil, err
	}

	out := &dto.BackfillResult{Success: true, CohortCount: len(runnable), Results: results}
	for _, r := range results {
		out.CollegeCount += r.CollegeCount
		out.ScoreCount += r.ScoreCount
	}
	out.Message = fmt.Sprintf("Recomputed %d cohorts", out.CohortCount)
	return out, nil
}
