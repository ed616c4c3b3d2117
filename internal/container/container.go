package container

import (
	"github.com/rs/zerolog"

	"thermal-vision/config"
	app "thermal-vision/internal/application"
	"thermal-vision/internal/domain/port"
	"thermal-vision/internal/infrastructure/vision"
)

type Container struct {
	Analysis    *app.AnalysisService
	Reliability *app.ReliabilityService
	Batch       *app.BatchService
}

// New собирает сервисы приложения по конфигурации.
func New(cfg *config.Config, refs port.ReferenceRepository, log zerolog.Logger) *Container {
	extractor := vision.NewGoCVExtractor(cfg.ImgHeight, cfg.ImgWidth, cfg.SmoothingSigma, cfg.Normalize)

	detector := vision.NewInterfaceDetector()
	detector.NoiseFloorFactor = cfg.NoiseFloorFactor
	detector.MinSeparation = cfg.MinSeparation
	detector.MaxCandidates = cfg.MaxCandidates
	detector.MinScore = cfg.MinScore
	detector.WeightRange = cfg.WeightRange
	detector.WeightOrder = cfg.WeightOrder
	detector.WeightSharpness = cfg.WeightSharpness

	analysis := app.NewAnalysisService(extractor, detector, log)
	analysis.Sigma = cfg.SmoothingSigma
	analysis.TimeLimit = cfg.ProcessingTimeLimit
	analysis.PlotDir = cfg.PlotDir

	reliability := app.NewReliabilityService(refs, log)
	batch := app.NewBatchService(analysis, cfg.Workers, log)

	return &Container{
		Analysis:    analysis,
		Reliability: reliability,
		Batch:       batch,
	}
}
