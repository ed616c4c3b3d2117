package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryForScore(t *testing.T) {
	require.Equal(t, CategoryAlta, CategoryForScore(100))
	require.Equal(t, CategoryAlta, CategoryForScore(80))
	require.Equal(t, CategoryMedia, CategoryForScore(79.9))
	require.Equal(t, CategoryMedia, CategoryForScore(60))
	require.Equal(t, CategoryBaja, CategoryForScore(59.9))
	require.Equal(t, CategoryBaja, CategoryForScore(0))
}

func TestReferenceStatisticsEmpty(t *testing.T) {
	var s *ReferenceStatistics
	require.True(t, s.Empty())
	require.True(t, (&ReferenceStatistics{}).Empty())

	s = &ReferenceStatistics{Profiles: map[string]ReferenceProfile{
		RefConfidence: {Mean: 0.9},
	}}
	require.False(t, s.Empty())
}
