//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"

	"thermal-vision/internal/domain/entity"
	"thermal-vision/internal/domain/port"
)

// Проверка реализации интерфейса
var _ port.ProfileExtractor = (*GoCVExtractor)(nil)

// GoCVExtractor извлекает вертикальный тепловой профиль через OpenCV.
type GoCVExtractor struct {
	ImgHeight      int     // высота после ресайза, задаёт разрешение всех порогов
	ImgWidth       int     // ширина после ресайза
	SmoothingSigma float64 // sigma гауссова сглаживания по обеим осям
	Normalize      bool    // растягивать ли интенсивности на весь диапазон [0,255]
	ColdThreshold  float64 // порог подавления холодных краёв кадра
}

// NewGoCVExtractor создаёт экстрактор с заданным разрешением обработки.
func NewGoCVExtractor(height, width int, sigma float64, normalize bool) *GoCVExtractor {
	return &GoCVExtractor{
		ImgHeight:      height,
		ImgWidth:       width,
		SmoothingSigma: sigma,
		Normalize:      normalize,
		ColdThreshold:  20,
	}
}

// Extract декодирует изображение и сводит каждую строку к среднему значению.
func (e *GoCVExtractor) Extract(ctx context.Context, imageData []byte) (entity.ThermalProfile, error) {
	_ = ctx

	mat, err := gocv.IMDecode(imageData, gocv.IMReadGrayScale)
	if err != nil || mat.Empty() {
		if !mat.Empty() {
			mat.Close()
		}
		return nil, fmt.Errorf("%w: cannot decode image", ErrImageLoad)
	}
	defer mat.Close()

	// Фиксированное разрешение: все калиброванные пороги выражены
	// в строках ресайзнутого изображения.
	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(mat, &resized, image.Pt(e.ImgWidth, e.ImgHeight), 0, 0, gocv.InterpolationLinear)

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(resized, &blurred, image.Pt(0, 0), e.SmoothingSigma, e.SmoothingSigma, gocv.BorderDefault)

	// Холодные края кадра (фон) обнуляются, чтобы не искажать нормализацию.
	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(blurred, &mask, float32(e.ColdThreshold), 255, gocv.ThresholdBinary)

	masked := gocv.NewMat()
	defer masked.Close()
	gocv.BitwiseAnd(blurred, mask, &masked)

	work := masked
	normalized := gocv.NewMat()
	defer normalized.Close()
	if e.Normalize {
		gocv.Normalize(masked, &normalized, 0, 255, gocv.NormMinMax)
		work = normalized
	}

	profile := make(entity.ThermalProfile, work.Rows())
	cols := work.Cols()
	for y := 0; y < work.Rows(); y++ {
		var sum float64
		for x := 0; x < cols; x++ {
			sum += float64(work.GetUCharAt(y, x))
		}
		profile[y] = sum / float64(cols)
	}
	return profile, nil
}

// ExtractFile читает файл изображения и строит профиль.
func (e *GoCVExtractor) ExtractFile(ctx context.Context, path string) (entity.ThermalProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	return e.Extract(ctx, data)
}
