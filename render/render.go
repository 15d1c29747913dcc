package render

import (
	"fmt"
	"image"
	"io"
	"time"

	"MandelbrotBitmap/bitmap"
	"MandelbrotBitmap/mandelbrot"
	"MandelbrotBitmap/task"

	"github.com/BrugadaSyndrome/bslogger"
)

// ProgressInterval is how many rows pass between progress updates.
const ProgressInterval = 50

type Result struct {
	Elapsed        time.Duration
	Height         uint
	MeanIterations float64
	Pixels         []byte
	Width          uint
}

type Renderer struct {
	logger     bslogger.Logger
	mandelbrot mandelbrot.Mandelbrot
	progress   io.Writer
	readConfig func(path string) (image.Config, error)
	settings   mandelbrot.Settings
}

// NewRenderer verifies the settings and prepares a renderer. Progress lines go to progress, which may be nil.
func NewRenderer(settings mandelbrot.Settings, progress io.Writer, logger bslogger.Logger) (Renderer, error) {
	if err := settings.Verify(); err != nil {
		return Renderer{}, fmt.Errorf("invalid settings - %w", err)
	}
	if progress == nil {
		progress = io.Discard
	}
	return Renderer{
		logger:     logger,
		mandelbrot: mandelbrot.NewMandelbrot(settings),
		progress:   progress,
		readConfig: bitmap.ReadConfig,
		settings:   settings,
	}, nil
}

// Render evaluates every pixel in scan order and returns the assembled pixel buffer.
func (r *Renderer) Render() (Result, error) {
	startTime := time.Now()
	width, height := r.settings.Width, r.settings.Height

	tasks, err := task.Generate(task.Row, width, height)
	if err != nil {
		return Result{}, err
	}
	r.logger.Debugf("Generated %d tasks for a %dx%d image", len(tasks), width, height)

	var totalIterations uint64
	for i := range tasks {
		if tasks[i].StartRow%ProgressInterval == 0 {
			r.reportProgress(height - tasks[i].StartRow)
		}
		iterations, err := r.processTask(&tasks[i])
		if err != nil {
			return Result{}, err
		}
		totalIterations += iterations
	}
	r.reportProgress(0)
	fmt.Fprintln(r.progress)

	pixels, err := task.Assemble(tasks)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Elapsed: time.Since(startTime),
		Height:  height,
		Pixels:  pixels,
		Width:   width,
	}
	if pixelCount := uint64(width) * uint64(height); pixelCount > 0 {
		result.MeanIterations = float64(totalIterations) / float64(pixelCount)
	}
	r.logger.Debugf("Rendered %d bytes in %s", len(pixels), result.Elapsed)
	return result, nil
}

// processTask fills in every pixel of the task and returns the sum of their iteration counts.
func (r *Renderer) processTask(t *task.Task) (uint64, error) {
	var total uint64
	for {
		coordinate, err := t.GetNextCoordinate()
		if err != nil {
			break
		}

		x0, y0 := r.mandelbrot.ConvertPixelCoordinateToComplexCoordinate(coordinate)
		iterations := r.mandelbrot.EscapeTime(x0, y0)
		total += uint64(iterations)

		pixel := task.Pixel{
			Color:  r.mandelbrot.GetColor(iterations),
			Column: coordinate.Column,
			Row:    coordinate.Row,
		}
		if err := t.AddResult(pixel); err != nil {
			return total, err
		}
	}
	return total, nil
}

func (r *Renderer) reportProgress(remaining uint) {
	fmt.Fprintf(r.progress, "\rLines remaining: %d out of %d ", remaining, r.settings.Height)
}

// Save writes the result to the configured output path and reads the headers back as a sanity check.
func (r *Renderer) Save(result Result) error {
	path := r.settings.OutputPath
	if err := bitmap.WritePixels(path, result.Width, result.Height, result.Pixels); err != nil {
		return err
	}

	config, err := r.readConfig(path)
	if err != nil {
		return fmt.Errorf("unable to verify saved bitmap - %w", err)
	}
	if config.Width != int(result.Width) || config.Height != int(result.Height) {
		return fmt.Errorf("saved bitmap %s is %dx%d, expected %dx%d", path, config.Width, config.Height, result.Width, result.Height)
	}
	r.logger.Infof("Saved image to %s", path)
	return nil
}
