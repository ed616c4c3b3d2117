package vision

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"thermal-vision/internal/domain/entity"
)

// RenderProfile сохраняет PNG с тепловым профилем и найденными границами.
// Используется для визуальной проверки детекции, на пайплайн не влияет.
func RenderProfile(profile entity.ThermalProfile, result *entity.DetectionResult, path string) error {
	if len(profile) == 0 {
		return fmt.Errorf("empty profile")
	}

	p := plot.New()
	p.Title.Text = "Perfil termico vertical"
	p.X.Label.Text = "Fila (px)"
	p.Y.Label.Text = "Intensidad (0-255)"

	curve := make(plotter.XYs, len(profile))
	for i, v := range profile {
		curve[i].X = float64(i)
		curve[i].Y = v
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("perfil", line)

	if result != nil && result.Status == entity.StatusSuccess {
		top, err := interfaceMarker(result.TopPx, color.RGBA{R: 0, G: 180, B: 180, A: 255})
		if err != nil {
			return err
		}
		bottom, err := interfaceMarker(result.BottomPx, color.RGBA{R: 0, G: 0, B: 200, A: 255})
		if err != nil {
			return err
		}
		p.Add(top, bottom)
		p.Legend.Add("interfaz superior", top)
		p.Legend.Add("interfaz inferior", bottom)
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// interfaceMarker строит вертикальную линию на строке границы.
func interfaceMarker(row int, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{
		{X: float64(row), Y: 0},
		{X: float64(row), Y: 255},
	})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = c
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	return line, nil
}
