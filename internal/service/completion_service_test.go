package service

import (
	"context"
	"testing"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/dto"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountCompletions(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: counts per college and assessment", func(t *testing.T) {
		f := newFixture(t)
		mid := f.bulk(midterm, model.AssessmentTypeRyff42)
		long := f.bulk("Annual Survey", model.AssessmentTypeRyff84)
		f.complete(mid, f.activeStudent("CCS"), uniformScores(20))
		f.assign(mid, f.activeStudent("CCS"))
		f.assign(long, f.activeStudent("CBA"))

		got, err := f.completion.CountCompletions(ctx, dto.CompletionQuery{})
		require.NoError(t, err)
		assert.Equal(t, dto.CompletionByCollege{
			"CCS": {midterm: {Total: 2, Completed: 1, AssessmentType: model.AssessmentTypeRyff42}},
			"CBA": {"Annual Survey": {Total: 1, Completed: 0, AssessmentType: model.AssessmentTypeRyff84}},
		}, got)
	})

	t.Run("Success: unknown name gives an empty map", func(t *testing.T) {
		f := newFixture(t)
		f.assign(f.bulk(midterm, model.AssessmentTypeRyff42), f.activeStudent("CCS"))

		got, err := f.completion.CountCompletions(ctx, dto.CompletionQuery{AssessmentName: "Nope"})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Success: year level and section narrow the students", func(t *testing.T) {
		f := newFixture(t)
		b := f.bulk(midterm, model.AssessmentTypeRyff42)
		f.assign(b, f.student("CCS", 1, "A", model.StudentStatusActive))
		f.assign(b, f.student("CCS", 2, "A", model.StudentStatusActive))
		f.assign(b, f.student("CCS", 2, "B", model.StudentStatusActive))

		year := 2
		got, err := f.completion.CountCompletions(ctx, dto.CompletionQuery{YearLevel: &year, Section: "A"})
		require.NoError(t, err)
		assert.Equal(t, 1, got["CCS"][midterm].Total)
	})

	t.Run("Success: inactive students are still counted", func(t *testing.T) {
		f := newFixture(t)
		b := f.bulk(midterm, model.AssessmentTypeRyff42)
		f.complete(b, f.student("CCS", 1, "A", model.StudentStatusInactive), uniformScores(20))

		got, err := f.completion.CountCompletions(ctx, dto.CompletionQuery{AssessmentName: midterm})
		require.NoError(t, err)
		assert.Equal(t, 1, got["CCS"][midterm].Completed)
	})

	t.Run("Success: a name shared by both variants reports ryff_42", func(t *testing.T) {
		f := newFixture(t)
		short := f.bulk(midterm, model.AssessmentTypeRyff42)
		long := f.bulk(midterm, model.AssessmentTypeRyff84)
		for i := 0; i < 5; i++ {
			f.assign(short, f.activeStudent("CCS"))
			f.assign(long, f.activeStudent("CCS"))
		}

		for i := 0; i < 20; i++ {
			got, err := f.completion.CountCompletions(ctx, dto.CompletionQuery{AssessmentName: midterm})
			require.NoError(t, err)
			assert.Equal(t, dto.CompletionStatsDTO{Total: 10, AssessmentType: model.AssessmentTypeRyff42}, got["CCS"][midterm])
		}
	})

	t.Run("Error: invalid year level", func(t *testing.T) {
		f := newFixture(t)
		year := 0
		_, err := f.completion.CountCompletions(ctx, dto.CompletionQuery{YearLevel: &year})
		assert.True(t, IsValidationError(err))
	})
}

func TestPreferredType(t *testing.T) {
	assert.Equal(t, model.AssessmentTypeRyff84, preferredType("", model.AssessmentTypeRyff84))
	assert.Equal(t, model.AssessmentTypeRyff42, preferredType(model.AssessmentTypeRyff84, model.AssessmentTypeRyff42))
	assert.Equal(t, model.AssessmentTypeRyff42, preferredType(model.AssessmentTypeRyff42, model.AssessmentTypeRyff84))
	assert.Equal(t, model.AssessmentTypeRyff84, preferredType("legacy", model.AssessmentTypeRyff84))
}
