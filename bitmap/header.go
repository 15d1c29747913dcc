// Package bitmap writes 24-bit uncompressed bitmap files.
//
// Pixel rows are written exactly as handed over: no padding to a 4 byte boundary and no reordering, so the first
// row of the buffer is the first row in the file.
package bitmap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	PixelOffset    = FileHeaderSize + InfoHeaderSize

	BitsPerPixel  = 24
	BytesPerPixel = BitsPerPixel / 8

	// 72 dpi
	horizontalPixelsPerMeter = 2835
)

// FileHeader is the BITMAPFILEHEADER block.
type FileHeader struct {
	Type      [2]byte // "BM"
	Size      uint32  // whole file in bytes
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32 // offset of the pixel array
}

// InfoHeader is the BITMAPINFOHEADER block.
type InfoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32 // pixel array in bytes
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

var (
	ErrTooLarge     = errors.New("image does not fit the 32-bit header fields")
	ErrSizeMismatch = errors.New("pixel data does not match the image size")
)

// PixelBytes is the length of the unpadded pixel array of a width x height image. It fails when the width, height
// or file size would not fit their header fields.
func PixelBytes(width uint, height uint) (int, error) {
	if uint64(width) > math.MaxInt32 || uint64(height) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	size := uint64(width) * uint64(height) * BytesPerPixel
	if size+PixelOffset > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %dx%d needs %d bytes", ErrTooLarge, width, height, size+PixelOffset)
	}
	return int(size), nil
}

// NewHeaders builds the two headers for a width x height image whose pixel array is pixelBytes long. The pixel
// array must be exactly BytesPerPixel * width * height bytes.
func NewHeaders(width uint, height uint, pixelBytes int) (FileHeader, InfoHeader, error) {
	expected, err := PixelBytes(width, height)
	if err != nil {
		return FileHeader{}, InfoHeader{}, err
	}
	if pixelBytes != expected {
		return FileHeader{}, InfoHeader{}, fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrSizeMismatch, width, height, expected, pixelBytes)
	}

	fh := FileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(PixelOffset + pixelBytes),
		OffBits: PixelOffset,
	}
	ih := InfoHeader{
		Size:        InfoHeaderSize,
		Width:       int32(width),
		Height:      int32(height),
		Planes:      1,
		BitCount:    BitsPerPixel,
		SizeImage:   uint32(pixelBytes),
		XPixelsPerM: horizontalPixelsPerMeter,
	}
	return fh, ih, nil
}

func (fh FileHeader) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, fh); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (ih InfoHeader) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, ih); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
