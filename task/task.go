package task

import (
	"errors"
	"fmt"
	"sort"
)

const (
	Row Generation = iota
	Image
)

type Generation int

func (g Generation) String() string {
	if g < Row || g > Image {
		return fmt.Sprintf("Generation(%d)", int(g))
	}
	return []string{
		"Row", "Image",
	}[g]
}

var (
	ErrNoMoreCoordinates = errors.New("no more coordinates")
	ErrOutOfOrder        = errors.New("result out of scan order")
)

// Task is a band of whole rows [StartRow, EndRow). Results are appended in scan order, column fastest, so the
// buffers of tasks covering disjoint bands concatenate into the image in row order.
type Task struct {
	CurrentCoordinate uint
	EndRow            uint
	ID                uint
	Results           []byte
	StartRow          uint
	Width             uint
}

func NewTask(id uint, startRow uint, endRow uint, width uint) Task {
	return Task{
		EndRow:   endRow,
		ID:       id,
		Results:  make([]byte, 0, int(endRow-startRow)*int(width)*BytesPerPixel),
		StartRow: startRow,
		Width:    width,
	}
}

// Generate splits a width x height image into tasks using the requested generation.
func Generate(generation Generation, width uint, height uint) ([]Task, error) {
	switch generation {
	case Row:
		tasks := make([]Task, 0, height)
		var r uint
		for r = 0; r < height; r++ {
			tasks = append(tasks, NewTask(r, r, r+1, width))
		}
		return tasks, nil
	case Image:
		return []Task{NewTask(0, 0, height, width)}, nil
	}
	return nil, fmt.Errorf("unknown generation type: %d", generation)
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Rows: [%d, %d) ", t.StartRow, t.EndRow)
	output += fmt.Sprintf("Result Count: %d ", len(t.Results)/BytesPerPixel)
	output += fmt.Sprintf("Pixel Count: %d}", t.PixelCount())
	return output
}

func (t *Task) PixelCount() uint {
	return (t.EndRow - t.StartRow) * t.Width
}

func (t *Task) Done() bool {
	return t.CurrentCoordinate >= t.PixelCount()
}

// GetNextCoordinate
// Returns the coordinate to be processed next. Hand the result to AddResult before calling this method again.
func (t *Task) GetNextCoordinate() (Coordinate, error) {
	if t.Done() {
		return Coordinate{}, ErrNoMoreCoordinates
	}
	return Coordinate{
		Column: t.CurrentCoordinate % t.Width,
		Row:    t.StartRow + t.CurrentCoordinate/t.Width,
	}, nil
}

// AddResult
// Appends the pixel to the result buffer and moves on to the next coordinate. The pixel must be the one
// GetNextCoordinate returned.
func (t *Task) AddResult(pixel Pixel) error {
	expected, err := t.GetNextCoordinate()
	if err != nil {
		return err
	}
	if expected.Column != pixel.Column || expected.Row != pixel.Row {
		return fmt.Errorf("%w: expected %s got %s", ErrOutOfOrder, expected.String(), pixel.String())
	}
	bgr := pixel.BGR()
	t.Results = append(t.Results, bgr[:]...)
	t.CurrentCoordinate++
	return nil
}

// Assemble concatenates the results of completed tasks in row order. The tasks must tile the rows from 0 without
// gaps or overlaps.
func Assemble(tasks []Task) ([]byte, error) {
	ordered := make([]Task, len(tasks))
	copy(ordered, tasks)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].StartRow < ordered[j].StartRow
	})

	if len(ordered) == 1 && ordered[0].StartRow == 0 && ordered[0].Done() {
		return ordered[0].Results, nil
	}

	size := 0
	for _, t := range ordered {
		size += len(t.Results)
	}
	buffer := make([]byte, 0, size)

	var nextRow uint
	for i := range ordered {
		t := &ordered[i]
		if t.StartRow != nextRow {
			return nil, fmt.Errorf("task %d starts at row %d, expected row %d", t.ID, t.StartRow, nextRow)
		}
		if !t.Done() {
			return nil, fmt.Errorf("task %d is incomplete: %s", t.ID, t.String())
		}
		buffer = append(buffer, t.Results...)
		nextRow = t.EndRow
	}
	return buffer, nil
}
