package bitmap

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// ErrOutputOpen is returned when the destination file cannot be created. It is not worth retrying.
var ErrOutputOpen = errors.New("unable to open output file")

// checkHeaders makes sure both size fields describe the pixel array that follows them.
func checkHeaders(fh FileHeader, ih InfoHeader, pixels []byte) error {
	if uint64(fh.Size) != uint64(PixelOffset+len(pixels)) || uint64(ih.SizeImage) != uint64(len(pixels)) {
		return fmt.Errorf("%w: headers describe %d and %d bytes, got %d pixel bytes", ErrSizeMismatch, fh.Size, ih.SizeImage, len(pixels))
	}
	return nil
}

// Encode writes the file header, the info header and then the pixel array to w.
func Encode(w io.Writer, fh FileHeader, ih InfoHeader, pixels []byte) error {
	if err := checkHeaders(fh, ih, pixels); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, fh); err != nil {
		return fmt.Errorf("unable to write file header - %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, ih); err != nil {
		return fmt.Errorf("unable to write info header - %w", err)
	}
	if _, err := w.Write(pixels); err != nil {
		return fmt.Errorf("unable to write pixel data - %w", err)
	}
	return nil
}

// Write creates or truncates the file at path and encodes the bitmap into it. A failure to open the file wraps
// ErrOutputOpen, anything after that is returned as is.
func Write(path string, fh FileHeader, ih InfoHeader, pixels []byte) (err error) {
	if path == "" {
		return fmt.Errorf("%w: no filename supplied", ErrOutputOpen)
	}
	if err := checkHeaders(fh, ih, pixels); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrOutputOpen, path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("unable to close file %s - %w", path, closeErr)
		}
	}()

	w := bufio.NewWriter(file)
	if err = Encode(w, fh, ih, pixels); err != nil {
		return fmt.Errorf("unable to write file %s - %w", path, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("unable to write file %s - %w", path, err)
	}
	return nil
}

// WritePixels is Write with headers derived from the image size.
func WritePixels(path string, width uint, height uint, pixels []byte) error {
	fh, ih, err := NewHeaders(width, height, len(pixels))
	if err != nil {
		return err
	}
	return Write(path, fh, ih, pixels)
}

// ReadConfig decodes the headers of a bitmap file on disk.
func ReadConfig(path string) (image.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("unable to open %s - %w", path, err)
	}
	defer file.Close()

	config, err := bmp.DecodeConfig(bufio.NewReader(file))
	if err != nil {
		return image.Config{}, fmt.Errorf("unable to decode %s - %w", path, err)
	}
	return config, nil
}
