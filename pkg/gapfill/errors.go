package gapfill

import "fmt"

// InvalidShapeError reports a volume whose time extent is too small for
// the boundary logic: a trace needs a first sample, a last sample and at
// least one interior sample.
type InvalidShapeError struct {
	// TimeSteps is the rejected time extent
	TimeSteps int
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("gapfill: time extent %d is too small, need at least 3 samples per trace", e.TimeSteps)
}

// TypeOverflowError reports a configured sentinel that cannot be
// represented in the volume's 16-bit sample type.
type TypeOverflowError struct {
	// Sentinel is the rejected no-data value
	Sentinel int
}

func (e *TypeOverflowError) Error() string {
	return fmt.Sprintf("gapfill: sentinel %d is not representable as a 16-bit sample", e.Sentinel)
}
