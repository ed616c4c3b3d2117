package vision

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"thermal-vision/internal/domain/entity"
)

// orderScale управляет скоростью деградации order-fit при нарушении
// порядка температур (в единицах интенсивности).
const orderScale = 15.0

// ScoreCombinations перебирает упорядоченные пары кандидатов и возвращает
// комбинацию с максимальным score согласованности. При равных score
// предпочитается более тонкая эмульсия. Второй результат false, если ни одна
// комбинация не достигла порога MinScore.
func (d *InterfaceDetector) ScoreCombinations(profile entity.ThermalProfile, candidates []entity.InterfaceCandidate) (entity.InterfaceCombination, bool) {
	candidates = capCandidates(candidates, d.MaxCandidates)
	if len(candidates) < 2 {
		return entity.InterfaceCombination{}, false
	}

	maxAbs := profile.Gradient().MaxAbs()
	if maxAbs <= 0 {
		return entity.InterfaceCombination{}, false
	}

	best := entity.InterfaceCombination{Coherence: -1}
	for i, top := range candidates {
		for _, bottom := range candidates[i+1:] {
			if top.Row >= bottom.Row {
				continue
			}
			score := d.scorePair(profile, top, bottom, maxAbs)
			current := entity.InterfaceCombination{
				TopRow:    top.Row,
				BottomRow: bottom.Row,
				Coherence: score,
			}
			if score > best.Coherence+1e-9 {
				best = current
				continue
			}
			if math.Abs(score-best.Coherence) <= 1e-9 && current.Span() < best.Span() {
				best = current
			}
		}
	}

	if best.Coherence < d.MinScore {
		return entity.InterfaceCombination{}, false
	}
	return best, true
}

// scorePair оценивает пару границ взвешенной комбинацией трёх факторов,
// каждый в [0,1]: попадание сегментов в калиброванные диапазоны, порядок
// температур crudo > emulsion > agua и резкость переходов на границах.
func (d *InterfaceDetector) scorePair(profile entity.ThermalProfile, top, bottom entity.InterfaceCandidate, maxAbs float64) float64 {
	layers := []entity.Layer{entity.LayerCrudo, entity.LayerEmulsion, entity.LayerAgua}
	segments := [][]float64{
		profile[:top.Row],
		profile[top.Row:bottom.Row],
		profile[bottom.Row:],
	}

	var rangeSum float64
	var present int
	var means []float64
	for i, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		rangeSum += segmentRangeFit(seg, d.Ranges[layers[i]])
		means = append(means, stat.Mean(seg, nil))
		present++
	}
	if present == 0 {
		return 0
	}
	rangeFit := rangeSum / float64(present)
	order := orderFit(means)

	sharpness := (top.Magnitude + bottom.Magnitude) / (2 * maxAbs)
	if sharpness > 1 {
		sharpness = 1
	}

	total := d.WeightRange + d.WeightOrder + d.WeightSharpness
	if total <= 0 {
		return 0
	}
	return (d.WeightRange*rangeFit + d.WeightOrder*order + d.WeightSharpness*sharpness) / total
}

// segmentRangeFit сочетает долю значений сегмента внутри ожидаемого диапазона
// и близость среднего к диапазону.
func segmentRangeFit(values []float64, r entity.TempRange) float64 {
	var inside int
	for _, v := range values {
		if r.Contains(v) {
			inside++
		}
	}
	frac := float64(inside) / float64(len(values))

	mean := stat.Mean(values, nil)
	meanFit := 1.0
	if !r.Contains(mean) {
		dist := r.Lo - mean
		if mean >= r.Hi {
			dist = mean - r.Hi
		}
		meanFit = math.Exp(-dist / r.Width())
	}

	return 0.5*frac + 0.5*meanFit
}

// orderFit равен 1 при строгом убывании температур сверху вниз и плавно
// стремится к нулю с ростом нарушений, никогда не уходя в минус.
func orderFit(means []float64) float64 {
	if len(means) < 2 {
		return 1
	}
	var sum float64
	pairs := 0
	for i := 1; i < len(means); i++ {
		diff := means[i-1] - means[i]
		if diff > 0 {
			sum += 1
		} else {
			sum += math.Exp(diff / orderScale)
		}
		pairs++
	}
	return sum / float64(pairs)
}
