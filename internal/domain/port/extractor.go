package port

import (
	"context"

	"thermal-vision/internal/domain/entity"
)

// ProfileExtractor интерфейс извлечения вертикального теплового профиля
type ProfileExtractor interface {
	// Extract строит профиль из байтов изображения
	Extract(ctx context.Context, imageData []byte) (entity.ThermalProfile, error)

	// ExtractFile строит профиль из файла изображения
	ExtractFile(ctx context.Context, path string) (entity.ThermalProfile, error)
}
