package entity

import "time"

// Layer физический слой резервуара
type Layer string

const (
	LayerAire     Layer = "aire"     // Воздух над продуктом
	LayerAgua     Layer = "agua"     // Слой воды
	LayerEmulsion Layer = "emulsion" // Слой эмульсии
	LayerCrudo    Layer = "crudo"    // Слой нефти
)

// TempRange калиброванный диапазон интенсивности слоя, [Lo, Hi).
// Верхняя граница последнего слоя (255) включается.
type TempRange struct {
	Lo float64
	Hi float64
}

// Contains сообщает, попадает ли значение в диапазон.
func (r TempRange) Contains(v float64) bool {
	if r.Hi >= 255 {
		return v >= r.Lo
	}
	return v >= r.Lo && v < r.Hi
}

// Width возвращает ширину диапазона.
func (r TempRange) Width() float64 {
	return r.Hi - r.Lo
}

// TemperatureRanges калибровка слоёв по шкале пикселей 0-255
type TemperatureRanges map[Layer]TempRange

// DefaultTemperatureRanges возвращает штатную калибровку:
// диапазоны смежны, не пересекаются и упорядочены aire < agua < emulsion < crudo.
func DefaultTemperatureRanges() TemperatureRanges {
	return TemperatureRanges{
		LayerAire:     {Lo: 0, Hi: 70},
		LayerAgua:     {Lo: 70, Hi: 130},
		LayerEmulsion: {Lo: 130, Hi: 180},
		LayerCrudo:    {Lo: 180, Hi: 255},
	}
}

// Status итог обработки изображения
type Status string

const (
	StatusSuccess         Status = "success"                // Интерфейсы найдены
	StatusNotFound        Status = "not_found"              // Изображение не загрузилось
	StatusNoInterfaces    Status = "no_interfaces_detected" // Границы не обнаружены
	StatusProcessingError Status = "processing_error"       // Непредвиденная ошибка обработки
)

// InterfaceCombination выбранная пара границ слоёв
type InterfaceCombination struct {
	TopRow    int     // граница нефть/эмульсия
	BottomRow int     // граница эмульсия/вода
	Coherence float64 // итоговый score согласованности
}

// Span возвращает толщину эмульсии в строках.
func (c InterfaceCombination) Span() int {
	return c.BottomRow - c.TopRow
}

// DetectionResult полный результат детекции для одного изображения.
// Имена JSON-полей совпадают с историческим CSV-контрактом системы.
type DetectionResult struct {
	Status           Status     `json:"status"`
	TopPx            int        `json:"thermal_interface_top_px"`
	BottomPx         int        `json:"thermal_interface_bottom_px"`
	Confidence       float64    `json:"thermal_interface_confidence"`
	CrudoPx          int        `json:"thermal_crudo_px"`
	EmulsionPx       int        `json:"thermal_emulsion_px"`
	AguaPx           int        `json:"thermal_agua_px"`
	CrudoRatio       float64    `json:"thermal_crudo_ratio"`
	EmulsionRatio    float64    `json:"thermal_emulsion_ratio"`
	AguaRatio        float64    `json:"thermal_agua_ratio"`
	TempCrudoMean    float64    `json:"thermal_temp_crudo_mean"`
	TempEmulsionMean float64    `json:"thermal_temp_emulsion_mean"`
	TempAguaMean     float64    `json:"thermal_temp_agua_mean"`
	GradientMax      float64    `json:"thermal_gradient_max"`
	GradientStd      float64    `json:"thermal_gradient_std"`
	ProcessingTime   float64    `json:"processing_time"`
	ImageFilename    string     `json:"image_filename,omitempty"`
	Timestamp        *time.Time `json:"timestamp,omitempty"`
}

// NewDefaultResult возвращает результат с нулевыми полями и заданным статусом.
// Вызывающий всегда может читать любое поле, проверив только Status.
func NewDefaultResult(status Status) *DetectionResult {
	return &DetectionResult{Status: status}
}

// RatioSum возвращает сумму долей слоёв.
func (r *DetectionResult) RatioSum() float64 {
	return r.CrudoRatio + r.EmulsionRatio + r.AguaRatio
}
