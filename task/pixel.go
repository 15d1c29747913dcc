package task

import (
	"fmt"
	"image/color"
)

// BytesPerPixel is the size of one pixel in the buffer, stored blue, green, red.
const BytesPerPixel = 3

type Pixel struct {
	Color  color.RGBA
	Column uint
	Row    uint
}

func (p *Pixel) String() string {
	output := "{Pixel "
	output += fmt.Sprintf("Color: %v ", p.Color)
	output += fmt.Sprintf("Column: %d ", p.Column)
	output += fmt.Sprintf("Row: %d}", p.Row)
	return output
}

// BGR returns the pixel in the channel order of the bitmap pixel array.
func (p *Pixel) BGR() [BytesPerPixel]byte {
	return [BytesPerPixel]byte{p.Color.B, p.Color.G, p.Color.R}
}
