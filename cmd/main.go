package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rs/zerolog"

	"thermal-vision/config"
	"thermal-vision/internal/container"
	"thermal-vision/internal/domain/entity"
	"thermal-vision/internal/infrastructure/storage"
)

// prediction объединяет результат детекции и балл надёжности
// в одну JSON-строку для внешних потребителей.
type prediction struct {
	*entity.DetectionResult
	entity.ReliabilityScore
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	paths := os.Args[1:]
	if len(paths) == 0 {
		log.Fatal().Msg("usage: thermal-vision <image> [image ...]")
	}

	// Эталонная статистика поставляется внешним историческим анализом;
	// без неё балл определяется только confidence детекции.
	refs := storage.NewMemoryReferenceRepository()
	c := container.New(cfg, refs, log)

	ctx := context.Background()
	results := c.Batch.ProcessFiles(ctx, paths)

	enc := json.NewEncoder(os.Stdout)
	for _, result := range results {
		score := c.Reliability.Score(ctx, result)
		if err := enc.Encode(prediction{DetectionResult: result, ReliabilityScore: score}); err != nil {
			log.Error().Err(err).Msg("failed to encode result")
		}
	}
}
