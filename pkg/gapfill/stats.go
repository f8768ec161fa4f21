package gapfill

import (
	"gonum.org/v1/gonum/stat"

	"timefill/pkg/volume"
)

// FillStats summarizes what one fill pass did to a volume.
type FillStats struct {
	// Total is the number of samples in the volume
	Total int

	// Gaps is the number of interior no-data samples in the input.
	// Boundary sentinels are not gaps; the kernel never touches them.
	Gaps int

	// Filled is how many gaps received an estimated value
	Filled int

	// Unresolved is how many gaps kept the sentinel because no valid
	// neighbours bracketed them within two time steps
	Unresolved int

	// FilledMean and FilledStdDev describe the distribution of the
	// estimated values written into former gaps
	FilledMean   float64
	FilledStdDev float64
}

// Stats compares a fill pass's input and output and reports how many gaps
// were resolved. It is pure accounting over the two volumes and never
// feeds back into the kernel.
func Stats(input, output *volume.Volume, sentinel int) FillStats {
	s := int16(sentinel)
	plane := input.Rows * input.Cols
	res := FillStats{Total: len(input.Data)}

	var filled []float64
	for i, orig := range input.Data {
		if orig != s {
			continue
		}
		t := 0
		if plane > 0 {
			t = i / plane
		}
		if t == 0 || t == input.TimeSteps-1 {
			continue
		}
		res.Gaps++
		if got := output.Data[i]; got != s {
			res.Filled++
			filled = append(filled, float64(got))
		}
	}
	res.Unresolved = res.Gaps - res.Filled

	if len(filled) > 0 {
		res.FilledMean = stat.Mean(filled, nil)
	}
	if len(filled) > 1 {
		res.FilledStdDev = stat.StdDev(filled, nil)
	}
	return res
}
