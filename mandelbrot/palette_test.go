package mandelbrot

import (
	"image/color"
	"testing"
)

func TestColorBoundaries(t *testing.T) {
	tests := []struct {
		scheme        ColorScheme
		first, capped color.RGBA
	}{
		{Sine, color.RGBA{R: 255, G: 0, B: 0, A: 255}, color.RGBA{R: 0, G: 255, B: 115, A: 255}},
		{Banded, color.RGBA{R: 0, G: 0, B: 0, A: 255}, color.RGBA{R: 0, G: 255, B: 255, A: 255}},
		{SquaredGrayscale, color.RGBA{R: 0, G: 0, B: 0, A: 255}, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{SineMirror, color.RGBA{R: 0, G: 0, B: 0, A: 255}, color.RGBA{R: 255, G: 255, B: 115, A: 255}},
		{Grayscale, color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBA{R: 0, G: 0, B: 0, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.scheme.String(), func(t *testing.T) {
			if got := Color(0, 1000, tt.scheme); got != tt.first {
				t.Errorf("Color(0) = %v, expected %v", got, tt.first)
			}
			if got := Color(1000, 1000, tt.scheme); got != tt.capped {
				t.Errorf("Color(max) = %v, expected %v", got, tt.capped)
			}
		})
	}
}

func TestColorIsOpaqueForEveryIteration(t *testing.T) {
	const maxIterations = 300
	for _, scheme := range ColorSchemes {
		var i uint
		for i = 0; i <= maxIterations; i++ {
			if got := Color(i, maxIterations, scheme); got.A != 255 {
				t.Fatalf("%s Color(%d) = %v is not opaque", scheme, i, got)
			}
		}
	}
}

func TestBandedColor(t *testing.T) {
	tests := []struct {
		iterations uint
		expected   color.RGBA
	}{
		{10, color.RGBA{R: 105, G: 7, B: 28, A: 255}},
		{100, color.RGBA{R: 0, G: 76, B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := Color(tt.iterations, 1000, Banded); got != tt.expected {
			t.Errorf("Color(%d) = %v, expected %v", tt.iterations, got, tt.expected)
		}
	}
}

func TestSquaredGrayscaleSaturates(t *testing.T) {
	// (10/1000*255)^2 = 6.5025 and from 63 iterations on the square passes 255
	if got := Color(10, 1000, SquaredGrayscale); got.R != 6 || got.G != 6 || got.B != 6 {
		t.Errorf("Color(10) = %v, expected gray 6", got)
	}
	if got := Color(63, 1000, SquaredGrayscale); got.R != 255 {
		t.Errorf("Color(63) = %v, expected saturated white", got)
	}
}

func TestGrayscaleIsMonotonic(t *testing.T) {
	previous := Color(0, 100, Grayscale)
	var i uint
	for i = 1; i <= 100; i++ {
		current := Color(i, 100, Grayscale)
		if current.R > previous.R {
			t.Fatalf("Color(%d) = %v is brighter than %v", i, current, previous)
		}
		previous = current
	}
}

func TestColorWithoutIterations(t *testing.T) {
	// a zero cap means the point reached it
	if got, expected := Color(0, 0, Grayscale), Color(10, 10, Grayscale); got != expected {
		t.Errorf("Color(0, 0) = %v, expected %v", got, expected)
	}
}

func TestUnknownColorScheme(t *testing.T) {
	if got := Color(5, 10, ColorScheme(42)); got != (color.RGBA{A: 255}) {
		t.Errorf("unknown scheme gave %v, expected black", got)
	}
	if ColorScheme(0).Valid() || ColorScheme(6).Valid() {
		t.Error("out of range schemes reported as valid")
	}
	if got := ColorScheme(42).String(); got != "ColorScheme(42)" {
		t.Errorf("String() = %q", got)
	}
	if got := Banded.String(); got != "Banded" {
		t.Errorf("String() = %q", got)
	}
}
