package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTemperatureRangesAreContiguous(t *testing.T) {
	ranges := DefaultTemperatureRanges()

	require.InDelta(t, ranges[LayerAire].Hi, ranges[LayerAgua].Lo, 1e-12)
	require.InDelta(t, ranges[LayerAgua].Hi, ranges[LayerEmulsion].Lo, 1e-12)
	require.InDelta(t, ranges[LayerEmulsion].Hi, ranges[LayerCrudo].Lo, 1e-12)
}

func TestTempRangeContainsBounds(t *testing.T) {
	ranges := DefaultTemperatureRanges()

	require.True(t, ranges[LayerAire].Contains(0))
	require.False(t, ranges[LayerAire].Contains(70))
	require.True(t, ranges[LayerAgua].Contains(70))
	require.False(t, ranges[LayerAgua].Contains(130))
	require.True(t, ranges[LayerEmulsion].Contains(179.9))
	require.True(t, ranges[LayerCrudo].Contains(180))
	require.True(t, ranges[LayerCrudo].Contains(255))
}

func TestInterfaceCombinationSpan(t *testing.T) {
	c := InterfaceCombination{TopRow: 100, BottomRow: 150}
	require.Equal(t, 50, c.Span())
}

func TestNewDefaultResult(t *testing.T) {
	r := NewDefaultResult(StatusNotFound)

	require.Equal(t, StatusNotFound, r.Status)
	require.Zero(t, r.TopPx)
	require.Zero(t, r.BottomPx)
	require.Zero(t, r.Confidence)
	require.Zero(t, r.CrudoRatio)
	require.Zero(t, r.GradientMax)
	require.Zero(t, r.RatioSum())
}
