package storage

import (
	"context"
	"sync"

	"thermal-vision/internal/domain/entity"
	"thermal-vision/internal/domain/port"
)

// MemoryReferenceRepository in-memory хранилище эталонной статистики
type MemoryReferenceRepository struct {
	mu    sync.RWMutex
	stats *entity.ReferenceStatistics
}

// NewMemoryReferenceRepository создаёт новое in-memory хранилище
func NewMemoryReferenceRepository() *MemoryReferenceRepository {
	return &MemoryReferenceRepository{}
}

// Get возвращает эталонное распределение, nil если оно ещё не загружено
func (r *MemoryReferenceRepository) Get(ctx context.Context) (*entity.ReferenceStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.stats, nil
}

// Save сохраняет эталонное распределение
func (r *MemoryReferenceRepository) Save(ctx context.Context, stats *entity.ReferenceStatistics) error {
	r.mu.Lock()
	r.stats = stats
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.ReferenceRepository = (*MemoryReferenceRepository)(nil)
