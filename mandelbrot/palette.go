package mandelbrot

import (
	"fmt"
	"image/color"
	"math"

	"MandelbrotBitmap/misc"
)

// ColorScheme selects how an iteration count becomes a colour. The ids are stable and show up in default file
// names, so new schemes are only ever appended.
type ColorScheme int

const (
	Sine ColorScheme = iota + 1
	Banded
	SquaredGrayscale
	SineMirror
	Grayscale
)

var ColorSchemes = []ColorScheme{Sine, Banded, SquaredGrayscale, SineMirror, Grayscale}

func (cs ColorScheme) String() string {
	if !cs.Valid() {
		return fmt.Sprintf("ColorScheme(%d)", int(cs))
	}
	return []string{
		"Sine", "Banded", "SquaredGrayscale", "SineMirror", "Grayscale",
	}[cs-1]
}

func (cs ColorScheme) Valid() bool {
	return cs >= Sine && cs <= Grayscale
}

// Color maps an iteration count to an opaque colour using the given scheme. Unknown schemes yield black.
func Color(iterations uint, maxIterations uint, scheme ColorScheme) color.RGBA {
	fraction := escapeFraction(iterations, maxIterations)

	switch scheme {
	case Sine:
		return sineColor(fraction, false)
	case Banded:
		return bandedColor(fraction)
	case SquaredGrayscale:
		v := misc.ClampUint8(math.Trunc(math.Pow(fraction*255.0, 2)))
		return color.RGBA{R: v, G: v, B: v, A: 255}
	case SineMirror:
		return sineColor(fraction, true)
	case Grayscale:
		v := misc.ClampUint8(255 - fraction*255.0)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return color.RGBA{A: 255}
}

// escapeFraction is iterations/maxIterations. A zero cap means every point hit it, which is a fraction of 1.
func escapeFraction(iterations uint, maxIterations uint) float64 {
	if maxIterations == 0 {
		return 1
	}
	return float64(iterations) / float64(maxIterations)
}

func bandedColor(fraction float64) color.RGBA {
	green := misc.ClampUint8(fraction * 255.0 * 3)
	blue := misc.ClampInt(int(green) * 4)
	// blue/3 is integer division on purpose, it sets the band width
	red := misc.ClampUint8(math.Sin(float64(int(blue)/3)) * 255)
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}

func sineColor(fraction float64, mirror bool) color.RGBA {
	blue := misc.ClampUint8(math.Sin(255-fraction) * 255.0)
	green := misc.ClampUint8(float64(blue) + math.Sin(float64(blue))*255)
	red := misc.ClampUint8(math.Cos(float64(green)) * 255)
	if mirror {
		red = green
	}
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}
