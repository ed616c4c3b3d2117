package app

import (
	"context"
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"thermal-vision/internal/domain/entity"
)

// BatchService обрабатывает набор изображений пулом воркеров.
// Изображения независимы, поэтому синхронизация нужна только при сборе
// результатов: каждый воркер пишет в свой индекс выходного среза.
type BatchService struct {
	analysis *AnalysisService
	workers  int
	log      zerolog.Logger
}

// NewBatchService создаёт сервис пакетной обработки.
// workers <= 0 означает "по числу CPU".
func NewBatchService(analysis *AnalysisService, workers int, log zerolog.Logger) *BatchService {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchService{analysis: analysis, workers: workers, log: log}
}

// ProcessFiles обрабатывает файлы изображений и возвращает результаты
// в порядке исходных путей.
func (s *BatchService) ProcessFiles(ctx context.Context, paths []string) []*entity.DetectionResult {
	results := make([]*entity.DetectionResult, len(paths))
	if len(paths) == 0 {
		return results
	}

	s.log.Info().Int("images", len(paths)).Int("workers", s.workers).Msg("batch processing started")

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.analysis.ProcessImageFile(ctx, paths[i])
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	s.log.Info().Int("images", len(paths)).Msg("batch processing finished")
	return results
}
