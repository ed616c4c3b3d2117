package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"thermal-vision/internal/domain/entity"
)

// stepProfile строит синтетический профиль из пар (значение, число строк).
func stepProfile(steps ...[2]float64) entity.ThermalProfile {
	var p entity.ThermalProfile
	for _, s := range steps {
		for i := 0; i < int(s[1]); i++ {
			p = append(p, s[0])
		}
	}
	return p
}

// scenarioAProfile резервуар 256 строк: нефть 220, эмульсия 150, вода 90.
func scenarioAProfile() entity.ThermalProfile {
	return stepProfile([2]float64{220, 100}, [2]float64{150, 50}, [2]float64{90, 106})
}

func TestFindCandidatesStepProfile(t *testing.T) {
	d := NewInterfaceDetector()
	profile := scenarioAProfile().Smooth(3)

	candidates := d.FindCandidates(profile)
	require.Len(t, candidates, 2)
	require.InDelta(t, 100, candidates[0].Row, 2)
	require.InDelta(t, 150, candidates[1].Row, 2)
	require.Greater(t, candidates[0].Magnitude, candidates[1].Magnitude)
}

func TestFindCandidatesFlatProfile(t *testing.T) {
	d := NewInterfaceDetector()
	profile := stepProfile([2]float64{120, 256})

	require.Empty(t, d.FindCandidates(profile))
}

func TestFindCandidatesRisingProfileHasNoDrops(t *testing.T) {
	d := NewInterfaceDetector()
	profile := stepProfile([2]float64{90, 100}, [2]float64{150, 50}, [2]float64{220, 106}).Smooth(3)

	require.Empty(t, d.FindCandidates(profile))
}

func TestMergeCloseKeepsStrongerCandidate(t *testing.T) {
	merged := mergeClose([]entity.InterfaceCandidate{
		{Row: 100, Magnitude: 5},
		{Row: 105, Magnitude: 9},
		{Row: 130, Magnitude: 4},
	}, 15)

	require.Len(t, merged, 2)
	require.Equal(t, 105, merged[0].Row)
	require.InDelta(t, 9, merged[0].Magnitude, 1e-12)
	require.Equal(t, 130, merged[1].Row)
}

func TestCapCandidatesKeepsTopByMagnitude(t *testing.T) {
	var candidates []entity.InterfaceCandidate
	for i := 0; i < 8; i++ {
		candidates = append(candidates, entity.InterfaceCandidate{
			Row:       20 * (i + 1),
			Magnitude: float64(i + 1),
		})
	}

	kept := capCandidates(candidates, 3)
	require.Len(t, kept, 3)
	require.Equal(t, 120, kept[0].Row)
	require.Equal(t, 140, kept[1].Row)
	require.Equal(t, 160, kept[2].Row)

	require.Len(t, capCandidates(candidates, 0), 8)
	require.Len(t, capCandidates(candidates, 20), 8)
}
