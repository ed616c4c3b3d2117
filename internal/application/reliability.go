package app

import (
	"context"
	"math"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"thermal-vision/internal/domain/entity"
	"thermal-vision/internal/domain/port"
)

// Веса переменных при сравнении с эталоном. Порядок фиксирован,
// чтобы итоговая сумма была побитово воспроизводимой.
var referenceWeights = []struct {
	name   string
	weight float64
}{
	{entity.RefGradientMax, 0.25},
	{entity.RefConfidence, 0.30},
	{entity.RefEmulsionRatio, 0.20},
	{entity.RefAguaRatio, 0.15},
	{entity.RefCrudoRatio, 0.10},
}

// Доли компонент итогового балла при наличии эталона.
const (
	confidenceShare = 0.4
	similarityShare = 0.6
)

// ReliabilityService вычисляет балл надёжности 0-100 для результата детекции.
type ReliabilityService struct {
	refs port.ReferenceRepository
	log  zerolog.Logger
}

// NewReliabilityService создаёт сервис оценки надёжности.
func NewReliabilityService(refs port.ReferenceRepository, log zerolog.Logger) *ReliabilityService {
	return &ReliabilityService{refs: refs, log: log}
}

// Score оценивает результат относительно эталона из хранилища.
func (s *ReliabilityService) Score(ctx context.Context, result *entity.DetectionResult) entity.ReliabilityScore {
	var ref *entity.ReferenceStatistics
	if s.refs != nil {
		stored, err := s.refs.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("reference statistics unavailable")
		} else {
			ref = stored
		}
	}
	score := ScoreWithReference(result, ref)
	s.log.Debug().Float64("score", score.Score).Str("category", string(score.Category)).Msg("reliability scored")
	return score
}

// UpdateReference строит эталон по историческим результатам и сохраняет его.
func (s *ReliabilityService) UpdateReference(ctx context.Context, results []*entity.DetectionResult) (*entity.ReferenceStatistics, error) {
	ref := BuildReference(results)
	if err := s.refs.Save(ctx, ref); err != nil {
		return nil, err
	}
	s.log.Info().Int("variables", len(ref.Profiles)).Msg("reference statistics updated")
	return ref, nil
}

// ScoreWithReference сводит балл из двух компонент: собственной confidence
// детекции и близости к эталонному распределению. Без эталона балл
// определяется только confidence, масштабированной к [0,100].
func ScoreWithReference(result *entity.DetectionResult, ref *entity.ReferenceStatistics) entity.ReliabilityScore {
	if result == nil || result.Status != entity.StatusSuccess {
		return entity.ReliabilityScore{Score: 0, Category: entity.CategoryBaja}
	}

	confidence := clamp01(result.Confidence)

	var score float64
	if ref.Empty() {
		score = 100 * confidence
	} else {
		score = 100 * (confidenceShare*confidence + similarityShare*similarity(result, ref))
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return entity.ReliabilityScore{Score: score, Category: entity.CategoryForScore(score)}
}

// similarity возвращает близость результата к эталону в [0,1]:
// 1 при совпадении со средними эталона, убывает с ростом z-оценки.
func similarity(result *entity.DetectionResult, ref *entity.ReferenceStatistics) float64 {
	var sum, total float64
	for _, rv := range referenceWeights {
		profile, ok := ref.Profiles[rv.name]
		if !ok {
			continue
		}
		value, ok := referenceValue(result, rv.name)
		if !ok {
			continue
		}

		var s float64
		if profile.Std == 0 {
			// Эталон без разброса: сравнение напрямую.
			if math.Abs(value-profile.Mean) < 0.01 {
				s = 1
			} else {
				s = 0.5
			}
		} else {
			z := math.Abs(value-profile.Mean) / profile.Std
			s = math.Exp(-z / 2)
		}
		sum += s * rv.weight
		total += rv.weight
	}
	if total == 0 {
		return 0.5
	}
	return sum / total
}

// referenceValue извлекает из результата значение эталонной переменной.
func referenceValue(result *entity.DetectionResult, name string) (float64, bool) {
	switch name {
	case entity.RefGradientMax:
		return result.GradientMax, true
	case entity.RefGradientStd:
		return result.GradientStd, true
	case entity.RefCrudoRatio:
		return result.CrudoRatio, true
	case entity.RefEmulsionRatio:
		return result.EmulsionRatio, true
	case entity.RefAguaRatio:
		return result.AguaRatio, true
	case entity.RefConfidence:
		return result.Confidence, true
	}
	return 0, false
}

// BuildReference строит сводное распределение по успешным результатам.
func BuildReference(results []*entity.DetectionResult) *entity.ReferenceStatistics {
	variables := []string{
		entity.RefGradientMax,
		entity.RefGradientStd,
		entity.RefCrudoRatio,
		entity.RefEmulsionRatio,
		entity.RefAguaRatio,
		entity.RefConfidence,
	}

	ref := &entity.ReferenceStatistics{Profiles: make(map[string]entity.ReferenceProfile)}
	for _, name := range variables {
		var values []float64
		for _, r := range results {
			if r == nil || r.Status != entity.StatusSuccess {
				continue
			}
			if v, ok := referenceValue(r, name); ok {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}

		sort.Float64s(values)
		profile := entity.ReferenceProfile{
			Mean:   stat.Mean(values, nil),
			Median: stat.Quantile(0.5, stat.Empirical, values, nil),
			Q25:    stat.Quantile(0.25, stat.Empirical, values, nil),
			Q75:    stat.Quantile(0.75, stat.Empirical, values, nil),
		}
		if len(values) > 1 {
			profile.Std = stat.StdDev(values, nil)
		}
		ref.Profiles[name] = profile
	}
	return ref
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
