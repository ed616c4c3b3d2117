package entity

// ReliabilityCategory операционная категория надёжности детекции
type ReliabilityCategory string

const (
	CategoryAlta  ReliabilityCategory = "alta"  // score >= 80
	CategoryMedia ReliabilityCategory = "media" // 60 <= score < 80
	CategoryBaja  ReliabilityCategory = "baja"  // score < 60
)

// CategoryForScore возвращает категорию для итогового балла 0-100.
func CategoryForScore(score float64) ReliabilityCategory {
	switch {
	case score >= 80:
		return CategoryAlta
	case score >= 60:
		return CategoryMedia
	default:
		return CategoryBaja
	}
}

// ReliabilityScore итоговая оценка надёжности детекции
type ReliabilityScore struct {
	Score    float64             `json:"reliability_score"`
	Category ReliabilityCategory `json:"reliability_category"`
}

// Имена переменных эталонного распределения. Совпадают с полями CSV-контракта.
const (
	RefGradientMax   = "thermal_gradient_max"
	RefGradientStd   = "thermal_gradient_std"
	RefCrudoRatio    = "thermal_crudo_ratio"
	RefEmulsionRatio = "thermal_emulsion_ratio"
	RefAguaRatio     = "thermal_agua_ratio"
	RefConfidence    = "thermal_interface_confidence"
)

// ReferenceProfile сводная статистика одной переменной по историческим данным
type ReferenceProfile struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// ReferenceStatistics эталонное распределение стабильных партий.
// Строится внешним историческим анализом, ядром не изменяется.
type ReferenceStatistics struct {
	Profiles map[string]ReferenceProfile `json:"profiles"`
}

// Empty сообщает, что эталон не содержит ни одной переменной.
func (s *ReferenceStatistics) Empty() bool {
	return s == nil || len(s.Profiles) == 0
}
