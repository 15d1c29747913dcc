package mandelbrot

import (
	"errors"
	"fmt"

	"MandelbrotBitmap/bitmap"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	DefaultWidth         = 8000
	DefaultHeight        = 4571
	DefaultMaxIterations = 1000
)

var (
	DefaultRealRange      = Range{Min: -2.5, Max: 1.0}
	DefaultImaginaryRange = Range{Min: -1.0, Max: 1.0}
)

// Range is a closed interval on one axis of the complex plane.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Span() float64 {
	return r.Max - r.Min
}

type Settings struct {
	logger bslogger.Logger

	ColorScheme    ColorScheme
	Height         uint
	ImaginaryRange Range
	MaxIterations  uint
	OutputPath     string
	RealRange      Range
	Width          uint
}

// NewSettings returns the default settings, already verified.
func NewSettings() Settings {
	s := Settings{}
	// The zero value only ever gets defaults so Verify cannot fail here
	_ = s.Verify()
	return s
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Color Scheme: %s\n", s.ColorScheme)
	output += fmt.Sprintf("Height: %d\n", s.Height)
	output += fmt.Sprintf("Imaginary Range: [%f, %f]\n", s.ImaginaryRange.Min, s.ImaginaryRange.Max)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Output Path: %s\n", s.OutputPath)
	output += fmt.Sprintf("Real Range: [%f, %f]\n", s.RealRange.Min, s.RealRange.Max)
	output += fmt.Sprintf("Width: %d\n", s.Width)
	return output
}

// Verify fills unset fields with their defaults and rejects values that cannot be rendered. A uint cannot tell an
// unset MaxIterations from 0, so 0 means the default here; call EscapeTime directly for a cap of 0.
func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.ColorScheme == 0 {
		s.ColorScheme = Banded
	}
	if !s.ColorScheme.Valid() {
		return fmt.Errorf("unknown color scheme %d", s.ColorScheme)
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.ImaginaryRange == (Range{}) {
		s.ImaginaryRange = DefaultImaginaryRange
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = DefaultMaxIterations
	}
	if s.OutputPath == "" {
		s.OutputPath = fmt.Sprintf("mandelbrot_%d.bmp", s.ColorScheme)
	}
	if s.RealRange == (Range{}) {
		s.RealRange = DefaultRealRange
	}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}

	if _, err := bitmap.PixelBytes(s.Width, s.Height); err != nil {
		return err
	}
	if !(s.RealRange.Min < s.RealRange.Max) {
		return errors.New("real range must have min < max")
	}
	if !(s.ImaginaryRange.Min < s.ImaginaryRange.Max) {
		return errors.New("imaginary range must have min < max")
	}

	s.logger.Debugf("Verified settings: %s", s.String())
	return nil
}
