package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config неизменяемая конфигурация анализатора. Передаётся компонентам
// при создании, глобального состояния нет: анализаторы с разной калибровкой
// могут сосуществовать.
type Config struct {
	ImgHeight      int     // высота обработки, задаёт вертикальное разрешение порогов
	ImgWidth       int     // ширина обработки
	SmoothingSigma float64 // sigma гауссова сглаживания
	Normalize      bool    // растягивать интенсивности на [0,255]

	NoiseFloorFactor float64 // множитель шумового порога кандидатов
	MinSeparation    int     // минимальное расстояние между кандидатами, строки
	MaxCandidates    int     // ограничение перебора пар
	MinScore         float64 // порог принятия комбинации
	WeightRange      float64 // вес попадания в диапазоны
	WeightOrder      float64 // вес порядка температур
	WeightSharpness  float64 // вес резкости границ

	ProcessingTimeLimit time.Duration // бюджет обработки одного изображения
	Workers             int           // размер пула пакетной обработки, 0 — по числу CPU
	PlotDir             string        // каталог PNG-визуализаций, пусто — отключено
}

// Load читает конфигурацию из окружения и .env файла.
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		ImgHeight:           envInt("IMG_HEIGHT", 512),
		ImgWidth:            envInt("IMG_WIDTH", 640),
		SmoothingSigma:      envFloat("SMOOTHING_SIGMA", 3),
		Normalize:           envBool("NORMALIZE", true),
		NoiseFloorFactor:    envFloat("NOISE_FLOOR_FACTOR", 0.4),
		MinSeparation:       envInt("MIN_SEPARATION", 15),
		MaxCandidates:       envInt("MAX_CANDIDATES", 6),
		MinScore:            envFloat("MIN_SCORE", 0.45),
		WeightRange:         envFloat("SCORE_WEIGHT_RANGE", 0.40),
		WeightOrder:         envFloat("SCORE_WEIGHT_ORDER", 0.35),
		WeightSharpness:     envFloat("SCORE_WEIGHT_SHARPNESS", 0.25),
		ProcessingTimeLimit: time.Duration(envFloat("PROCESSING_TIME_LIMIT", 5) * float64(time.Second)),
		Workers:             envInt("WORKERS", 0),
		PlotDir:             os.Getenv("PLOT_DIR"),
	}

	if cfg.ImgHeight <= 0 || cfg.ImgWidth <= 0 {
		return nil, fmt.Errorf("invalid processing resolution %dx%d", cfg.ImgWidth, cfg.ImgHeight)
	}
	if cfg.WeightRange+cfg.WeightOrder+cfg.WeightSharpness <= 0 {
		return nil, fmt.Errorf("score weights must not all be zero")
	}

	return cfg, nil
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
