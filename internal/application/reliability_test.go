package app

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"thermal-vision/internal/domain/entity"
	"thermal-vision/internal/infrastructure/storage"
)

func successResult() *entity.DetectionResult {
	return &entity.DetectionResult{
		Status:        entity.StatusSuccess,
		Confidence:    0.9,
		CrudoRatio:    0.39,
		EmulsionRatio: 0.20,
		AguaRatio:     0.41,
		GradientMax:   9.0,
		GradientStd:   1.5,
	}
}

// matchingReference эталон, средние которого совпадают с результатом.
func matchingReference(r *entity.DetectionResult) *entity.ReferenceStatistics {
	return &entity.ReferenceStatistics{Profiles: map[string]entity.ReferenceProfile{
		entity.RefGradientMax:   {Mean: r.GradientMax, Std: 0.5},
		entity.RefConfidence:    {Mean: r.Confidence, Std: 0.05},
		entity.RefCrudoRatio:    {Mean: r.CrudoRatio, Std: 0.02},
		entity.RefEmulsionRatio: {Mean: r.EmulsionRatio, Std: 0.02},
		entity.RefAguaRatio:     {Mean: r.AguaRatio, Std: 0.02},
	}}
}

func TestScoreWithMatchingReference(t *testing.T) {
	result := successResult()

	score := ScoreWithReference(result, matchingReference(result))
	require.GreaterOrEqual(t, score.Score, 80.0)
	require.Equal(t, entity.CategoryAlta, score.Category)
}

func TestScoreWithDistantReferenceIsLower(t *testing.T) {
	result := successResult()
	matching := ScoreWithReference(result, matchingReference(result))

	distant := &entity.ReferenceStatistics{Profiles: map[string]entity.ReferenceProfile{
		entity.RefGradientMax:   {Mean: 40, Std: 0.5},
		entity.RefConfidence:    {Mean: 0.2, Std: 0.01},
		entity.RefCrudoRatio:    {Mean: 0.9, Std: 0.01},
		entity.RefEmulsionRatio: {Mean: 0.8, Std: 0.01},
		entity.RefAguaRatio:     {Mean: 0.05, Std: 0.01},
	}}
	far := ScoreWithReference(result, distant)

	require.Less(t, far.Score, matching.Score)
}

func TestScoreWithoutReferenceUsesConfidence(t *testing.T) {
	score := ScoreWithReference(successResult(), nil)
	require.InDelta(t, 90, score.Score, 1e-9)
	require.Equal(t, entity.CategoryAlta, score.Category)
}

func TestScoreNonSuccessIsZero(t *testing.T) {
	for _, status := range []entity.Status{
		entity.StatusNotFound,
		entity.StatusNoInterfaces,
		entity.StatusProcessingError,
	} {
		score := ScoreWithReference(entity.NewDefaultResult(status), nil)
		require.Zero(t, score.Score)
		require.Equal(t, entity.CategoryBaja, score.Category)
	}
	score := ScoreWithReference(nil, nil)
	require.Zero(t, score.Score)
}

func TestScoreStaysInBounds(t *testing.T) {
	result := successResult()
	result.Confidence = 1.5

	score := ScoreWithReference(result, nil)
	require.LessOrEqual(t, score.Score, 100.0)
	require.GreaterOrEqual(t, score.Score, 0.0)
}

func TestBuildReferenceSkipsFailedResults(t *testing.T) {
	a := successResult()
	b := successResult()
	b.CrudoRatio = 0.30
	a.CrudoRatio = 0.40

	failed := entity.NewDefaultResult(entity.StatusNotFound)
	failed.CrudoRatio = 99

	ref := BuildReference([]*entity.DetectionResult{a, b, failed, nil})
	require.False(t, ref.Empty())

	profile, ok := ref.Profiles[entity.RefCrudoRatio]
	require.True(t, ok)
	require.InDelta(t, 0.35, profile.Mean, 1e-9)
	require.Greater(t, profile.Std, 0.0)
	require.LessOrEqual(t, profile.Q25, profile.Median)
	require.LessOrEqual(t, profile.Median, profile.Q75)
}

func TestReliabilityService_UpdateAndScore(t *testing.T) {
	repo := storage.NewMemoryReferenceRepository()
	svc := NewReliabilityService(repo, zerolog.Nop())
	ctx := context.Background()

	history := []*entity.DetectionResult{successResult(), successResult()}
	ref, err := svc.UpdateReference(ctx, history)
	require.NoError(t, err)
	require.False(t, ref.Empty())

	score := svc.Score(ctx, successResult())
	require.GreaterOrEqual(t, score.Score, 80.0)
	require.Equal(t, entity.CategoryAlta, score.Category)
}
