package vision

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"thermal-vision/internal/domain/entity"
)

// InterfaceDetector ищет границы слоёв на тепловом профиле.
// Все параметры фиксируются при создании, состояние между вызовами не хранится,
// поэтому несколько детекторов с разной калибровкой могут работать параллельно.
type InterfaceDetector struct {
	Ranges           entity.TemperatureRanges
	NoiseFloorFactor float64 // доля sigma градиента, ниже которой падение считается шумом
	MinSeparation    int     // минимальное расстояние между кандидатами в строках
	MaxCandidates    int     // ограничение перебора: top-K кандидатов по величине
	MinScore         float64 // порог принятия лучшей комбинации
	WeightRange      float64
	WeightOrder      float64
	WeightSharpness  float64
}

// NewInterfaceDetector создаёт детектор со штатной калибровкой.
func NewInterfaceDetector() *InterfaceDetector {
	return &InterfaceDetector{
		Ranges:           entity.DefaultTemperatureRanges(),
		NoiseFloorFactor: 0.4,
		MinSeparation:    15,
		MaxCandidates:    6,
		MinScore:         0.45,
		WeightRange:      0.40,
		WeightOrder:      0.35,
		WeightSharpness:  0.25,
	}
}

// FindCandidates возвращает кандидатов на границы: строки, где градиент
// образует локальный отрицательный экстремум с величиной выше шумового порога.
// Кандидаты отсортированы по строке; пустой результат допустим.
func (d *InterfaceDetector) FindCandidates(profile entity.ThermalProfile) []entity.InterfaceCandidate {
	gradient := profile.Gradient()
	if len(gradient) < 3 {
		return nil
	}

	// Порог масштабируется с контрастом изображения.
	floor := d.NoiseFloorFactor * stat.StdDev(gradient, nil)

	var found []entity.InterfaceCandidate
	for i := 1; i < len(gradient)-1; i++ {
		if gradient[i] >= 0 {
			continue
		}
		if gradient[i] >= gradient[i-1] || gradient[i] > gradient[i+1] {
			continue
		}
		magnitude := -gradient[i]
		if magnitude <= floor {
			continue
		}
		// Падение между строками i и i+1 относим к первой строке холодного слоя.
		found = append(found, entity.InterfaceCandidate{Row: i + 1, Magnitude: magnitude})
	}

	return mergeClose(found, d.MinSeparation)
}

// mergeClose объединяет кандидатов ближе minSep строк друг к другу,
// оставляя кандидата с большей величиной падения.
func mergeClose(candidates []entity.InterfaceCandidate, minSep int) []entity.InterfaceCandidate {
	if len(candidates) == 0 {
		return nil
	}

	merged := []entity.InterfaceCandidate{candidates[0]}
	for _, c := range candidates[1:] {
		last := &merged[len(merged)-1]
		if c.Row-last.Row < minSep {
			if c.Magnitude > last.Magnitude {
				*last = c
			}
			continue
		}
		merged = append(merged, c)
	}
	return merged
}

// capCandidates оставляет top-K кандидатов по величине падения,
// сохраняя порядок по строкам.
func capCandidates(candidates []entity.InterfaceCandidate, limit int) []entity.InterfaceCandidate {
	if limit <= 0 || len(candidates) <= limit {
		return candidates
	}

	byMagnitude := make([]entity.InterfaceCandidate, len(candidates))
	copy(byMagnitude, candidates)
	sort.Slice(byMagnitude, func(i, j int) bool {
		return byMagnitude[i].Magnitude > byMagnitude[j].Magnitude
	})

	kept := byMagnitude[:limit]
	sort.Slice(kept, func(i, j int) bool { return kept[i].Row < kept[j].Row })
	return kept
}
