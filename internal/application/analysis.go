package app

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"thermal-vision/internal/domain/entity"
	"thermal-vision/internal/domain/port"
	"thermal-vision/internal/infrastructure/vision"
)

// Шаблон имени файла с меткой времени: tanque_YYYYMMDD_HHMMSS.jpg
var filenameTimestamp = regexp.MustCompile(`(?i)tanque_(\d{8})_(\d{6})\.(jpg|jpeg|png)$`)

// AnalysisService управляет полным циклом анализа теплового изображения:
// извлечение профиля, поиск кандидатов, выбор комбинации, сборка признаков.
// Ошибки пайплайна не пробрасываются наружу, а отражаются в Status результата.
type AnalysisService struct {
	Sigma     float64       // sigma сглаживания профиля перед поиском градиентов
	TimeLimit time.Duration // бюджет обработки одного изображения
	PlotDir   string        // каталог для PNG-визуализаций, пусто — не рисовать

	extractor port.ProfileExtractor
	detector  *vision.InterfaceDetector
	log       zerolog.Logger
}

// NewAnalysisService создаёт сервис анализа изображений.
func NewAnalysisService(extractor port.ProfileExtractor, detector *vision.InterfaceDetector, log zerolog.Logger) *AnalysisService {
	return &AnalysisService{
		Sigma:     3,
		TimeLimit: 5 * time.Second,
		extractor: extractor,
		detector:  detector,
		log:       log,
	}
}

// ProcessImage анализирует изображение из памяти.
func (s *AnalysisService) ProcessImage(ctx context.Context, imageData []byte) *entity.DetectionResult {
	return s.run(ctx, "", func() (entity.ThermalProfile, error) {
		return s.extractor.Extract(ctx, imageData)
	})
}

// ProcessImageFile анализирует изображение из файла и дополняет результат
// именем файла и меткой времени из имени, если она парсится.
func (s *AnalysisService) ProcessImageFile(ctx context.Context, path string) *entity.DetectionResult {
	return s.run(ctx, path, func() (entity.ThermalProfile, error) {
		return s.extractor.ExtractFile(ctx, path)
	})
}

// run выполняет пайплайн и переводит таксономию ошибок в статусы.
func (s *AnalysisService) run(ctx context.Context, path string, extract func() (entity.ThermalProfile, error)) (result *entity.DetectionResult) {
	_ = ctx
	start := time.Now()
	name := filepath.Base(path)
	if path == "" {
		name = ""
	}

	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error().Interface("panic", rec).Str("image", name).Msg("panic during image processing")
			result = entity.NewDefaultResult(entity.StatusProcessingError)
		}
		result.ProcessingTime = time.Since(start).Seconds()
		result.ImageFilename = name
		if ts, ok := TimestampFromFilename(name); ok {
			result.Timestamp = &ts
		}
		if limit := s.TimeLimit.Seconds(); limit > 0 && result.ProcessingTime > limit {
			s.log.Warn().Str("image", name).Float64("elapsed", result.ProcessingTime).Msg("processing time limit exceeded")
		}
	}()

	profile, err := extract()
	if err != nil {
		if errors.Is(err, vision.ErrImageLoad) {
			s.log.Warn().Str("image", name).Err(err).Msg("image not loaded")
			return entity.NewDefaultResult(entity.StatusNotFound)
		}
		s.log.Error().Str("image", name).Err(err).Msg("profile extraction failed")
		return entity.NewDefaultResult(entity.StatusProcessingError)
	}

	smoothed := profile.Smooth(s.Sigma)
	candidates := s.detector.FindCandidates(smoothed)
	combination, ok := s.detector.ScoreCombinations(smoothed, candidates)
	if !ok {
		s.log.Info().Str("image", name).Int("candidates", len(candidates)).Msg("no interfaces detected")
		return entity.NewDefaultResult(entity.StatusNoInterfaces)
	}

	result = s.detector.AssembleFeatures(smoothed, combination)
	s.log.Info().
		Str("image", name).
		Int("top_px", result.TopPx).
		Int("bottom_px", result.BottomPx).
		Float64("confidence", result.Confidence).
		Msg("interfaces detected")

	if s.PlotDir != "" && name != "" {
		out := filepath.Join(s.PlotDir, strings.TrimSuffix(name, filepath.Ext(name))+"_perfil.png")
		if err := vision.RenderProfile(smoothed, result, out); err != nil {
			s.log.Warn().Str("path", out).Err(err).Msg("profile plot not saved")
		}
	}
	return result
}

// TimestampFromFilename извлекает метку времени из имени файла изображения.
func TimestampFromFilename(name string) (time.Time, bool) {
	m := filenameTimestamp.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	ts, err := time.Parse("20060102_150405", m[1]+"_"+m[2])
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
