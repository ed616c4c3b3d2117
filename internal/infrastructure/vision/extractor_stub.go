//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"thermal-vision/internal/domain/entity"
	"thermal-vision/internal/domain/port"
)

// Проверка реализации интерфейса
var _ port.ProfileExtractor = (*GoCVExtractor)(nil)

// GoCVExtractor заглушка экстрактора профиля (сборка без OpenCV).
type GoCVExtractor struct {
	ImgHeight      int
	ImgWidth       int
	SmoothingSigma float64
	Normalize      bool
	ColdThreshold  float64
}

// NewGoCVExtractor создаёт экстрактор-заглушку (без OpenCV).
func NewGoCVExtractor(height, width int, sigma float64, normalize bool) *GoCVExtractor {
	return &GoCVExtractor{
		ImgHeight:      height,
		ImgWidth:       width,
		SmoothingSigma: sigma,
		Normalize:      normalize,
		ColdThreshold:  20,
	}
}

// Extract возвращает ошибку, если сборка без тега gocv.
func (e *GoCVExtractor) Extract(ctx context.Context, imageData []byte) (entity.ThermalProfile, error) {
	_ = ctx
	_ = imageData
	return nil, errors.New("gocv build tag is not enabled")
}

// ExtractFile возвращает ошибку, если сборка без тега gocv.
func (e *GoCVExtractor) ExtractFile(ctx context.Context, path string) (entity.ThermalProfile, error) {
	_ = ctx
	_ = path
	return nil, errors.New("gocv build tag is not enabled")
}
