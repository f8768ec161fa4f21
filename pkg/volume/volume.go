// Package volume provides the dense 3D sample volume that the gap filler
// operates on, plus raw binary reading and writing for headerless
// raster-stack products.
package volume

import (
	"fmt"
)

// Volume represents a stack of equally-spaced 2D rasters as a dense 3D
// array of signed 16-bit samples, indexed by (time, row, col).
type Volume struct {
	// Data is the sample data as a 1D array in time-major order:
	// index = t*Rows*Cols + r*Cols + c
	Data []int16

	// TimeSteps is the number of rasters in the stack (the time extent)
	TimeSteps int

	// Rows is the number of rows in each raster
	Rows int

	// Cols is the number of columns in each raster
	Cols int
}

// New allocates a zero-filled volume with the given dimensions.
//
// Returns an error if any dimension is negative or the total sample
// count would overflow int.
func New(timeSteps, rows, cols int) (*Volume, error) {
	if timeSteps < 0 || rows < 0 || cols < 0 {
		return nil, fmt.Errorf("volume dimensions must be non-negative, got (%d, %d, %d)", timeSteps, rows, cols)
	}
	n := timeSteps * rows * cols
	if timeSteps > 0 && rows > 0 && n/timeSteps/rows != cols {
		return nil, fmt.Errorf("volume dimensions (%d, %d, %d) overflow", timeSteps, rows, cols)
	}
	return &Volume{
		Data:      make([]int16, n),
		TimeSteps: timeSteps,
		Rows:      rows,
		Cols:      cols,
	}, nil
}

// index converts a (time, row, col) coordinate to a flat Data offset.
func (v *Volume) index(t, r, c int) int {
	return t*v.Rows*v.Cols + r*v.Cols + c
}

// At returns the sample at (t, r, c).
func (v *Volume) At(t, r, c int) int16 {
	return v.Data[v.index(t, r, c)]
}

// Set stores a sample at (t, r, c).
func (v *Volume) Set(t, r, c int, value int16) {
	v.Data[v.index(t, r, c)] = value
}

// NumTraces returns the number of independent pixel traces (Rows * Cols).
func (v *Volume) NumTraces() int {
	return v.Rows * v.Cols
}

// CopyTrace copies the pixel trace at (r, c) into dst, which must have
// length TimeSteps. The trace is the 1D sequence of samples at a fixed
// spatial location across the whole time axis.
func (v *Volume) CopyTrace(r, c int, dst []int16) {
	stride := v.Rows * v.Cols
	off := r*v.Cols + c
	for t := 0; t < v.TimeSteps; t++ {
		dst[t] = v.Data[off]
		off += stride
	}
}

// SetTrace writes src, which must have length TimeSteps, as the pixel
// trace at (r, c).
func (v *Volume) SetTrace(r, c int, src []int16) {
	stride := v.Rows * v.Cols
	off := r*v.Cols + c
	for t := 0; t < v.TimeSteps; t++ {
		v.Data[off] = src[t]
		off += stride
	}
}

// Clone returns a deep copy of the volume.
func (v *Volume) Clone() *Volume {
	out := &Volume{
		Data:      make([]int16, len(v.Data)),
		TimeSteps: v.TimeSteps,
		Rows:      v.Rows,
		Cols:      v.Cols,
	}
	copy(out.Data, v.Data)
	return out
}
