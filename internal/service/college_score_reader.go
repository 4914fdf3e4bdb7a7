package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/dto"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// GetCollegeScores serves stored scores, recomputing on the fly when year
// level or section is requested or when a named cohort has nothing stored.
// Completion counts are merged into every college entry.
func (s *collegeScoreService) GetCollegeScores(ctx context.Context, query dto.CollegeScoreQuery) (*dto.CollegeScoresResponse, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, err
	}

	var (
		colleges   []dto.CollegeScoresDTO
		source     string
		completion dto.CompletionByCollege
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		colleges, source, err = s.lookupScores(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		completion, err = s.completion.CountCompletions(gctx, dto.CompletionQuery{
			AssessmentName: query.AssessmentName,
			YearLevel:      query.YearLevel,
			Section:        query.Section,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Interface("query", query).Msg("GetCollegeScores: failed")
		return nil, err
	}

	if len(colleges) == 0 && query.AssessmentName != "" && source == dto.ScoreSourceDynamic {
		if placeholders := placeholderColleges(completion, query); len(placeholders) > 0 {
			colleges, source = placeholders, dto.ScoreSourcePlaceholder
		}
	}

	for i := range colleges {
		mergeCompletion(&colleges[i], completion, query.AssessmentName)
	}
	if colleges == nil {
		colleges = []dto.CollegeScoresDTO{}
	}
	return &dto.CollegeScoresResponse{Success: true, Source: source, Colleges: colleges}, nil
}

func (s *collegeScoreService) lookupScores(ctx context.Context, query dto.CollegeScoreQuery) ([]dto.CollegeScoresDTO, string, error) {
	if query.YearLevel != nil || query.Section != "" {
		colleges, err := s.computeDynamic(ctx, query)
		return colleges, dto.ScoreSourceDynamic, err
	}

	rows, err := s.scoreRepo.Find(ctx, repository.CollegeScoreFilter{
		CollegeName:    query.College,
		AssessmentType: query.AssessmentType,
		AssessmentName: query.AssessmentName,
	})
	if err != nil {
		return nil, "", fmt.Errorf("error fetching college scores: %w", err)
	}
	if len(rows) == 0 && query.AssessmentName != "" {
		colleges, err := s.computeDynamic(ctx, query)
		return colleges, dto.ScoreSourceDynamic, err
	}
	return collegesFromRows(rows), dto.ScoreSourcePersisted, nil
}

// computeDynamic aggregates active students' submissions without storing anything.
func (s *collegeScoreService) computeDynamic(ctx context.Context, query dto.CollegeScoreQuery) ([]dto.CollegeScoresDTO, error) {
	assessmentType := query.AssessmentType
	if assessmentType == "" {
		var err error
		if assessmentType, err = s.inferAssessmentType(ctx, query.AssessmentName); err != nil {
			return nil, err
		}
	}

	submissions, err := s.cohortSubmissions(ctx, repository.Cohort{
		AssessmentType: assessmentType,
		AssessmentName: query.AssessmentName,
	})
	if err != nil || len(submissions) == 0 {
		return nil, err
	}

	students, err := s.lookupStudents(ctx, submissions, repository.StudentFilter{
		YearLevel:  query.YearLevel,
		Section:    query.Section,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}

	aggregates := aggregateByCollege(submissions, students, query.College)
	colleges := make([]dto.CollegeScoresDTO, 0, len(aggregates))
	for _, agg := range aggregates {
		entry := dto.CollegeScoresDTO{
			Name:         agg.College,
			Dimensions:   make(map[string]dto.DimensionScoreDTO, len(agg.Dimensions)),
			StudentCount: agg.StudentCount,
		}
		if !agg.LatestSubmission.IsZero() {
			latest := agg.LatestSubmission
			entry.LastCalculated = &latest
		}
		for dim, avg := range agg.Dimensions {
			entry.Dimensions[dim] = dto.DimensionScoreDTO{
				Score:        roundScore(avg.Average),
				RiskLevel:    ClassifyRiskLevel(avg.Average),
				StudentCount: avg.StudentCount,
			}
		}
		colleges = append(colleges, entry)
	}
	return colleges, nil
}

// inferAssessmentType picks the variant for a dynamic read without a type:
// the type of the named bulk assessment, preferring ryff_42 when both exist.
func (s *collegeScoreService) inferAssessmentType(ctx context.Context, name string) (string, error) {
	if name == "" {
		return model.AssessmentTypeRyff42, nil
	}
	bulks, err := s.bulkRepo.Find(ctx, repository.BulkAssessmentFilter{AssessmentName: name})
	if err != nil {
		return "", fmt.Errorf("error fetching bulk assessments: %w", err)
	}
	inferred := model.AssessmentTypeRyff42
	for i, b := range bulks {
		if b.AssessmentType == model.AssessmentTypeRyff42 {
			return b.AssessmentType, nil
		}
		if i == 0 && model.IsAssessmentType(b.AssessmentType) {
			inferred = b.AssessmentType
		}
	}
	return inferred, nil
}

// collegesFromRows folds stored rows into one entry per college. Rows arrive
// ordered by college then last_calculated, so for a dimension present in
// several cohorts the most recent row wins.
func collegesFromRows(rows []model.CollegeScore) []dto.CollegeScoresDTO {
	var colleges []dto.CollegeScoresDTO
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.CollegeName]
		if !ok {
			i = len(colleges)
			index[row.CollegeName] = i
			colleges = append(colleges, dto.CollegeScoresDTO{
				Name:       row.CollegeName,
				Dimensions: make(map[string]dto.DimensionScoreDTO, len(model.Dimensions)),
			})
		}
		entry := &colleges[i]
		entry.Dimensions[row.DimensionName] = dto.DimensionScoreDTO{
			Score:        row.RawScore,
			RiskLevel:    row.RiskLevel,
			StudentCount: row.StudentCount,
		}
		if entry.LastCalculated == nil || row.LastCalculated.After(*entry.LastCalculated) {
			calculated := row.LastCalculated
			entry.LastCalculated = &calculated
		}
	}
	for i := range colleges {
		for _, d := range colleges[i].Dimensions {
			if d.StudentCount > colleges[i].StudentCount {
				colleges[i].StudentCount = d.StudentCount
			}
		}
	}
	sort.Slice(colleges, func(i, j int) bool { return colleges[i].Name < colleges[j].Name })
	return colleges
}

// placeholderColleges lists colleges that were assigned the named assessment
// but have no scores yet.
func placeholderColleges(completion dto.CompletionByCollege, query dto.CollegeScoreQuery) []dto.CollegeScoresDTO {
	var colleges []dto.CollegeScoresDTO
	for name, byAssessment := range completion {
		if query.College != "" && name != query.College {
			continue
		}
		if _, ok := byAssessment[query.AssessmentName]; !ok {
			continue
		}
		colleges = append(colleges, dto.CollegeScoresDTO{
			Name:       name,
			Dimensions: map[string]dto.DimensionScoreDTO{},
		})
	}
	sort.Slice(colleges, func(i, j int) bool { return colleges[i].Name < colleges[j].Name })
	return colleges
}

// mergeCompletion attaches completion counts: the named assessment's tuple
// when a name is pinned, otherwise the sum over every assessment.
func mergeCompletion(entry *dto.CollegeScoresDTO, completion dto.CompletionByCollege, assessmentName string) {
	byAssessment := completion[entry.Name]
	entry.CompletionDataByAssessment = make(map[string]dto.CompletionStatsDTO, len(byAssessment))
	for name, stats := range byAssessment {
		entry.CompletionDataByAssessment[name] = stats
	}

	if assessmentName != "" {
		entry.CompletionData = byAssessment[assessmentName]
		return
	}
	var total dto.CompletionStatsDTO
	for _, stats := range byAssessment {
		total.Total += stats.Total
		total.Completed += stats.Completed
	}
	entry.CompletionData = total
}
