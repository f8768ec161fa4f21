package volume

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadRaw reads a headerless raster stack from r: TimeSteps*Rows*Cols
// little-endian int16 samples in time-major order. The dimensions must be
// supplied by the caller because the raw product carries no header.
func ReadRaw(r io.Reader, timeSteps, rows, cols int) (*Volume, error) {
	v, err := New(timeSteps, rows, cols)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 2*len(v.Data))
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("reading %d samples: %w", len(v.Data), err)
	}
	for i := range v.Data {
		v.Data[i] = int16(binary.LittleEndian.Uint16(buf[2*i:]))
	}

	return v, nil
}

// WriteRaw writes the volume to w in the same flat little-endian int16
// layout that ReadRaw consumes.
func (v *Volume) WriteRaw(w io.Writer) error {
	buf := make([]byte, 2*len(v.Data))
	for i, s := range v.Data {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("writing %d samples: %w", len(v.Data), err)
	}
	return nil
}
