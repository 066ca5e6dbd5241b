package chartgeom

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontMetrics measures axis labels.
type FontMetrics interface {
	Height() float64
	Width(string) float64
}

// FaceMetrics measures text with a font face.
type FaceMetrics struct {
	Face font.Face
}

func DefaultMetrics() FaceMetrics {
	return FaceMetrics{
		Face: basicfont.Face7x13,
	}
}

func (m FaceMetrics) Height() float64 {
	return float64(m.Face.Metrics().Height.Round())
}

func (m FaceMetrics) Width(str string) float64 {
	return float64(font.MeasureString(m.Face, str).Round())
}
