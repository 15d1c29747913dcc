package mandelbrot

import (
	"image/color"

	"MandelbrotBitmap/task"
)

// Boundary is the squared escape radius.
const Boundary = 4.0

type Mandelbrot struct {
	settings Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	return Mandelbrot{settings: settings}
}

// ConvertPixelCoordinateToComplexCoordinate maps the (column, row) pixel onto the viewport of the settings.
func (m *Mandelbrot) ConvertPixelCoordinateToComplexCoordinate(c task.Coordinate) (float64, float64) {
	return PixelToComplex(c.Column, c.Row, m.settings.Width, m.settings.Height, m.settings.RealRange, m.settings.ImaginaryRange)
}

func (m *Mandelbrot) EscapeTime(x0 float64, y0 float64) uint {
	return EscapeTime(x0, y0, m.settings.MaxIterations)
}

func (m *Mandelbrot) GetColor(iterations uint) color.RGBA {
	return Color(iterations, m.settings.MaxIterations, m.settings.ColorScheme)
}

// PixelToComplex linearly maps a pixel onto the complex plane. The left and top edges of the image land exactly on
// re.Min and im.Min; the pixel is not centred.
func PixelToComplex(column uint, row uint, width uint, height uint, re Range, im Range) (float64, float64) {
	x := float64(column)*(re.Max-re.Min)/float64(width) + re.Min
	y := float64(row)*(im.Max-im.Min)/float64(height) + im.Min
	return x, y
}

// EscapeTime iterates z = z^2 + c from z = 0 and returns the number of iterations taken before |z|^2 exceeds
// Boundary, or maxIterations if it never does. NaN fails the bound test and ends the loop.
func EscapeTime(x0 float64, y0 float64, maxIterations uint) uint {
	x, y := 0.0, 0.0
	var iteration uint
	for float64(x*x)+float64(y*y) <= Boundary && iteration < maxIterations {
		// explicit conversions round each product and keep the compiler from fusing multiply-adds
		xTemp := float64(x*x) - float64(y*y) + x0
		y = float64(2*x*y) + y0
		x = xTemp
		iteration++
	}
	return iteration
}
