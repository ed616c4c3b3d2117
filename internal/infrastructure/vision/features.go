package vision

import (
	"gonum.org/v1/gonum/stat"

	"thermal-vision/internal/domain/entity"
)

// AssembleFeatures строит итоговый результат по выбранной комбинации:
// толщины и доли слоёв, средние температуры сегментов, статистику градиента
// всего профиля и confidence, равный score комбинации, ограниченному [0,1].
func (d *InterfaceDetector) AssembleFeatures(profile entity.ThermalProfile, comb entity.InterfaceCombination) *entity.DetectionResult {
	height := len(profile)
	gradient := profile.Gradient()

	confidence := comb.Coherence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	result := &entity.DetectionResult{
		Status:           entity.StatusSuccess,
		TopPx:            comb.TopRow,
		BottomPx:         comb.BottomRow,
		Confidence:       confidence,
		CrudoPx:          comb.TopRow,
		EmulsionPx:       comb.Span(),
		AguaPx:           height - comb.BottomRow,
		CrudoRatio:       float64(comb.TopRow) / float64(height),
		EmulsionRatio:    float64(comb.Span()) / float64(height),
		AguaRatio:        float64(height-comb.BottomRow) / float64(height),
		TempCrudoMean:    segmentMean(profile[:comb.TopRow]),
		TempEmulsionMean: segmentMean(profile[comb.TopRow:comb.BottomRow]),
		TempAguaMean:     segmentMean(profile[comb.BottomRow:]),
		GradientMax:      gradient.MaxAbs(),
	}
	if len(gradient) > 1 {
		result.GradientStd = stat.StdDev(gradient, nil)
	}
	return result
}

// segmentMean возвращает среднюю интенсивность сегмента, 0 для пустого.
func segmentMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
