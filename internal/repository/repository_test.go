package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to ":memory:" is a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Student{},
		&model.BulkAssessment{},
		&model.AssessmentAssignment{},
		&model.Ryff42Submission{},
		&model.Ryff84Submission{},
		&model.CollegeScore{},
	))
	return db
}

func scoreRow(college, dim, name string, raw float64) model.CollegeScore {
	return model.CollegeScore{
		CollegeName:    college,
		DimensionName:  dim,
		AssessmentType: model.AssessmentTypeRyff42,
		AssessmentName: name,
		RawScore:       raw,
		StudentCount:   1,
		RiskLevel:      "moderate",
		LastCalculated: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCollegeScoreRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: replace swaps only the cohort rows of touched colleges", func(t *testing.T) {
		repo := repository.NewCollegeScoreRepository(openTestDB(t))
		mid := repository.Cohort{AssessmentType: model.AssessmentTypeRyff42, AssessmentName: "Midterm"}
		final := repository.Cohort{AssessmentType: model.AssessmentTypeRyff42, AssessmentName: "Finals"}

		require.NoError(t, repo.ReplaceCohort(ctx, mid, []string{"CCS", "CBA"}, []model.CollegeScore{
			scoreRow("CCS", model.DimensionAutonomy, "Midterm", 20),
			scoreRow("CBA", model.DimensionAutonomy, "Midterm", 21),
		}))
		require.NoError(t, repo.ReplaceCohort(ctx, final, []string{"CCS"}, []model.CollegeScore{
			scoreRow("CCS", model.DimensionAutonomy, "Finals", 22),
		}))
		require.NoError(t, repo.ReplaceCohort(ctx, mid, []string{"CCS"}, []model.CollegeScore{
			scoreRow("CCS", model.DimensionAutonomy, "Midterm", 25),
		}))

		rows, err := repo.Find(ctx, repository.CollegeScoreFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 3)

		got := map[string]float64{}
		for _, r := range rows {
			got[r.CollegeName+"/"+r.AssessmentName] = r.RawScore
			assert.NotEqual(t, uuid.Nil, r.ID)
		}
		assert.Equal(t, map[string]float64{"CCS/Midterm": 25, "CBA/Midterm": 21, "CCS/Finals": 22}, got)
	})

	t.Run("Error: duplicate rows roll the delete back", func(t *testing.T) {
		repo := repository.NewCollegeScoreRepository(openTestDB(t))
		mid := repository.Cohort{AssessmentType: model.AssessmentTypeRyff42, AssessmentName: "Midterm"}
		require.NoError(t, repo.ReplaceCohort(ctx, mid, []string{"CCS"}, []model.CollegeScore{
			scoreRow("CCS", model.DimensionAutonomy, "Midterm", 20),
		}))

		err := repo.ReplaceCohort(ctx, mid, []string{"CCS"}, []model.CollegeScore{
			scoreRow("CCS", model.DimensionAutonomy, "Midterm", 30),
			scoreRow("CCS", model.DimensionAutonomy, "Midterm", 31),
		})
		require.Error(t, err)

		rows, err := repo.Find(ctx, repository.CollegeScoreFilter{CollegeName: "CCS"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 20.0, rows[0].RawScore)
	})

	t.Run("Success: filters", func(t *testing.T) {
		repo := repository.NewCollegeScoreRepository(openTestDB(t))
		mid := repository.Cohort{AssessmentType: model.AssessmentTypeRyff42, AssessmentName: "Midterm"}
		require.NoError(t, repo.ReplaceCohort(ctx, mid, []string{"CCS", "CBA"}, []model.CollegeScore{
			scoreRow("CCS", model.DimensionAutonomy, "Midterm", 20),
			scoreRow("CBA", model.DimensionAutonomy, "Midterm", 21),
		}))

		rows, err := repo.Find(ctx, repository.CollegeScoreFilter{CollegeName: "CBA", AssessmentName: "Midterm"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "CBA", rows[0].CollegeName)

		rows, err = repo.Find(ctx, repository.CollegeScoreFilter{AssessmentType: model.AssessmentTypeRyff84})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestSourceRepositories(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	active := model.Student{Name: "Ana", College: "CCS", YearLevel: 2, Section: "A", Status: model.StudentStatusActive}
	inactive := model.Student{Name: "Ben", College: "CCS", YearLevel: 2, Section: "A", Status: model.StudentStatusInactive}
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&inactive).Error)

	mid := model.BulkAssessment{AssessmentName: "Midterm", AssessmentType: model.AssessmentTypeRyff42}
	long := model.BulkAssessment{AssessmentName: "Midterm", AssessmentType: model.AssessmentTypeRyff84}
	require.NoError(t, db.Create(&mid).Error)
	require.NoError(t, db.Create(&long).Error)

	now := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	done := model.AssessmentAssignment{BulkAssessmentID: mid.ID, StudentID: active.ID, Status: model.AssignmentStatusCompleted, AssignedAt: now, CompletedAt: &now}
	pending := model.AssessmentAssignment{BulkAssessmentID: mid.ID, StudentID: inactive.ID, Status: model.AssignmentStatusAssigned, AssignedAt: now}
	require.NoError(t, db.Create(&done).Error)
	require.NoError(t, db.Create(&pending).Error)

	sub := model.Ryff42Submission{Submission: model.Submission{
		StudentID:      active.ID,
		AssignmentID:   &done.ID,
		AssessmentType: model.AssessmentTypeRyff42,
		Scores:         datatypes.NewJSONType(model.DimensionScores{model.DimensionAutonomy: 33}),
		CompletedAt:    now,
	}}
	require.NoError(t, db.Create(&sub).Error)

	t.Run("Success: students honour year, section and status", func(t *testing.T) {
		repo := repository.NewStudentRepository(db)
		year := 2
		all, err := repo.FindByIDs(ctx, []uuid.UUID{active.ID, inactive.ID}, repository.StudentFilter{YearLevel: &year, Section: "A"})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		onlyActive, err := repo.FindByIDs(ctx, []uuid.UUID{active.ID, inactive.ID}, repository.StudentFilter{ActiveOnly: true})
		require.NoError(t, err)
		require.Len(t, onlyActive, 1)
		assert.Equal(t, active.ID, onlyActive[0].ID)
	})

	t.Run("Success: bulk assessments by name and type", func(t *testing.T) {
		repo := repository.NewBulkAssessmentRepository(db)
		found, err := repo.Find(ctx, repository.BulkAssessmentFilter{AssessmentName: "Midterm", AssessmentType: model.AssessmentTypeRyff84})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, long.ID, found[0].ID)

		none, err := repo.Find(ctx, repository.BulkAssessmentFilter{IDs: []uuid.UUID{}})
		require.NoError(t, err)
		assert.Empty(t, none)

		cohorts, err := repo.FindCohorts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []repository.Cohort{
			{AssessmentType: model.AssessmentTypeRyff42, AssessmentName: "Midterm"},
			{AssessmentType: model.AssessmentTypeRyff84, AssessmentName: "Midterm"},
		}, cohorts)

		_, err = repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Success: completed assignments only", func(t *testing.T) {
		repo := repository.NewAssignmentRepository(db)
		completed, err := repo.Find(ctx, repository.AssignmentFilter{
			BulkAssessmentIDs: []uuid.UUID{mid.ID},
			Status:            model.AssignmentStatusCompleted,
		})
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, done.ID, completed[0].ID)

		all, err := repo.Find(ctx, repository.AssignmentFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Success: submissions come from the table of the type", func(t *testing.T) {
		repo := repository.NewSubmissionRepository(db)
		got, err := repo.Find(ctx, repository.SubmissionFilter{
			AssessmentType: model.AssessmentTypeRyff42,
			AssignmentIDs:  []uuid.UUID{done.ID},
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 33.0, got[0].DimensionScores()[model.DimensionAutonomy])

		other, err := repo.Find(ctx, repository.SubmissionFilter{AssessmentType: model.AssessmentTypeRyff84})
		require.NoError(t, err)
		assert.Empty(t, other)

		_, err = repo.Find(ctx, repository.SubmissionFilter{AssessmentType: "ryff_7"})
		assert.Error(t, err)
	})
}
