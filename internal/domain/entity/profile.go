package entity

import "math"

// ThermalProfile вертикальный температурный профиль изображения:
// одно значение (среднее по строке, шкала 0-255) на каждую строку,
// индекс 0 соответствует верху резервуара.
type ThermalProfile []float64

// GradientProfile дискретная первая разность профиля,
// на один элемент короче исходного профиля.
type GradientProfile []float64

// InterfaceCandidate кандидат на границу между слоями
type InterfaceCandidate struct {
	Row       int     // строка резкого падения температуры
	Magnitude float64 // абсолютная величина падения
}

// Gradient возвращает разности соседних значений профиля.
// Отрицательное значение — падение температуры сверху вниз.
func (p ThermalProfile) Gradient() GradientProfile {
	if len(p) < 2 {
		return nil
	}
	g := make(GradientProfile, len(p)-1)
	for i := 1; i < len(p); i++ {
		g[i-1] = p[i] - p[i-1]
	}
	return g
}

// Smooth применяет одномерное гауссово сглаживание с параметром sigma.
// Границы профиля отражаются, чтобы не занижать крайние значения.
func (p ThermalProfile) Smooth(sigma float64) ThermalProfile {
	if sigma <= 0 || len(p) == 0 {
		out := make(ThermalProfile, len(p))
		copy(out, p)
		return out
	}

	radius := int(4*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	n := len(p)
	out := make(ThermalProfile, n)
	for i := 0; i < n; i++ {
		var acc float64
		for k := -radius; k <= radius; k++ {
			j := i + k
			for j < 0 || j >= n {
				if j < 0 {
					j = -j - 1
				}
				if j >= n {
					j = 2*n - j - 1
				}
			}
			acc += p[j] * kernel[k+radius]
		}
		out[i] = acc
	}
	return out
}

// MaxAbs возвращает максимальную абсолютную величину градиента.
func (g GradientProfile) MaxAbs() float64 {
	var m float64
	for _, v := range g {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
