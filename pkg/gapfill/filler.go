// Package gapfill fills missing samples in stacks of equally-spaced pixel
// time series extracted from a 3D volume (time, row, col).
//
// Each pixel trace is processed independently: an interior no-data sample
// is replaced by the truncated mean of the nearest valid neighbour on each
// side, looking at most two time steps away. Gaps without bracketing valid
// data within that radius keep their sentinel, and the first and last
// samples of a trace are never touched. All neighbour lookups read the
// original input, so the result does not depend on processing order.
package gapfill

import (
	"math"

	"timefill/pkg/volume"
)

// DefaultSentinel is the classic 16-bit no-data marker.
const DefaultSentinel = -32768

// Fill runs the gap-filling kernel over every pixel trace of vol and
// returns a newly allocated volume of the same shape. The input is never
// modified. Samples equal to sentinel in the output are gaps the kernel
// deliberately left unresolved, not failures.
//
// Fill returns an *InvalidShapeError when the time extent is below 3 and
// a *TypeOverflowError when sentinel does not fit the sample type; both
// are detected before any output is allocated.
func Fill(vol *volume.Volume, sentinel int) (*volume.Volume, error) {
	out, s, err := prepare(vol, sentinel)
	if err != nil {
		return nil, err
	}

	src := make([]int16, vol.TimeSteps)
	dst := make([]int16, vol.TimeSteps)
	for r := 0; r < vol.Rows; r++ {
		for c := 0; c < vol.Cols; c++ {
			vol.CopyTrace(r, c, src)
			fillTrace(dst, src, s)
			out.SetTrace(r, c, dst)
		}
	}

	return out, nil
}

// prepare validates the whole-volume call and allocates the output.
// Validation happens up front so a bad input never yields partial output.
func prepare(vol *volume.Volume, sentinel int) (*volume.Volume, int16, error) {
	if vol.TimeSteps < 3 {
		return nil, 0, &InvalidShapeError{TimeSteps: vol.TimeSteps}
	}
	if sentinel < math.MinInt16 || sentinel > math.MaxInt16 {
		return nil, 0, &TypeOverflowError{Sentinel: sentinel}
	}

	out, err := volume.New(vol.TimeSteps, vol.Rows, vol.Cols)
	if err != nil {
		return nil, 0, err
	}
	return out, int16(sentinel), nil
}

// fillTrace fills a single pixel trace from src into dst. Both slices
// must have the trace length. Neighbour lookups always read src, never
// the partially written dst.
func fillTrace(dst, src []int16, sentinel int16) {
	n := len(src)

	// Boundary samples are copied verbatim, sentinel or not. There is
	// no extrapolation off the ends of the series.
	dst[0] = src[0]
	dst[n-1] = src[n-1]

	for z := 1; z < n-1; z++ {
		if src[z] != sentinel {
			dst[z] = src[z]
			continue
		}
		dst[z] = resolve(src, z, sentinel)
	}
}

// resolve estimates a value for the gap at interior position z, reading
// at most the four samples within two steps of z. It returns the sentinel
// unchanged when no bracketing valid pair exists inside that radius.
func resolve(src []int16, z int, sentinel int16) int16 {
	left, right := src[z-1], src[z+1]
	leftValid := left != sentinel
	rightValid := right != sentinel

	switch {
	case leftValid && rightValid:
		return average(left, right)

	case rightValid:
		// Immediate left is a gap too; try two steps left.
		if z < 2 {
			return sentinel
		}
		if moreLeft := src[z-2]; moreLeft != sentinel {
			return average(moreLeft, right)
		}

	case leftValid:
		// Mirror image: try two steps right.
		if z > len(src)-3 {
			return sentinel
		}
		if moreRight := src[z+2]; moreRight != sentinel {
			return average(left, moreRight)
		}

	default:
		// Gaps on both sides; only a valid pair two steps out on both
		// sides can bracket this one.
		if z < 2 || z > len(src)-3 {
			return sentinel
		}
		moreLeft, moreRight := src[z-2], src[z+2]
		if moreLeft != sentinel && moreRight != sentinel {
			return average(moreLeft, moreRight)
		}
	}

	return sentinel
}

// average halves the sum of two samples using Go's truncate-toward-zero
// integer division, so the mean of two negative samples rounds up towards
// zero. The sum is widened first so it cannot wrap the sample type.
func average(a, b int16) int16 {
	return int16((int32(a) + int32(b)) / 2)
}
