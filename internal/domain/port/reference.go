package port

import (
	"context"

	"thermal-vision/internal/domain/entity"
)

// ReferenceRepository интерфейс хранилища эталонной статистики
type ReferenceRepository interface {
	// Get возвращает эталонное распределение или nil, если оно не загружено
	Get(ctx context.Context) (*entity.ReferenceStatistics, error)

	// Save сохраняет эталонное распределение
	Save(ctx context.Context, stats *entity.ReferenceStatistics) error
}
