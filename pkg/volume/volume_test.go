package volume

import (
	"testing"
)

func TestNew(t *testing.T) {
	v, err := New(4, 3, 2)
	if err != nil {
		t.Fatalf("Failed to create volume: %v", err)
	}

	if v.TimeSteps != 4 || v.Rows != 3 || v.Cols != 2 {
		t.Errorf("Wrong dimensions: got (%d, %d, %d)", v.TimeSteps, v.Rows, v.Cols)
	}
	if len(v.Data) != 24 {
		t.Errorf("Expected 24 samples, got %d", len(v.Data))
	}
	for i, s := range v.Data {
		if s != 0 {
			t.Fatalf("New volume should be zero-filled, offset %d is %d", i, s)
		}
	}
}

func TestNewRejectsNegativeDimensions(t *testing.T) {
	for _, dims := range [][3]int{{-1, 2, 2}, {2, -1, 2}, {2, 2, -1}} {
		if _, err := New(dims[0], dims[1], dims[2]); err == nil {
			t.Errorf("Expected error for dimensions %v", dims)
		}
	}
}

func TestAtSet(t *testing.T) {
	v, err := New(3, 2, 2)
	if err != nil {
		t.Fatalf("Failed to create volume: %v", err)
	}

	v.Set(2, 1, 0, -7)
	if got := v.At(2, 1, 0); got != -7 {
		t.Errorf("At(2,1,0): got %d, want -7", got)
	}

	// Time-major layout: t*Rows*Cols + r*Cols + c
	if got := v.Data[2*4+1*2+0]; got != -7 {
		t.Errorf("Flat offset holds %d, want -7", got)
	}
}

func TestTraceRoundTrip(t *testing.T) {
	v, err := New(5, 2, 3)
	if err != nil {
		t.Fatalf("Failed to create volume: %v", err)
	}

	trace := []int16{10, -20, 30, -40, 50}
	v.SetTrace(1, 2, trace)

	got := make([]int16, v.TimeSteps)
	v.CopyTrace(1, 2, got)
	for z := range trace {
		if got[z] != trace[z] {
			t.Errorf("Position %d: got %d, want %d", z, got[z], trace[z])
		}
	}

	// The neighbouring trace must be untouched.
	v.CopyTrace(1, 1, got)
	for z, s := range got {
		if s != 0 {
			t.Errorf("Neighbouring trace modified at position %d: %d", z, s)
		}
	}
}

func TestNumTraces(t *testing.T) {
	v, err := New(3, 4, 5)
	if err != nil {
		t.Fatalf("Failed to create volume: %v", err)
	}
	if got := v.NumTraces(); got != 20 {
		t.Errorf("NumTraces: got %d, want 20", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	v, err := New(3, 1, 1)
	if err != nil {
		t.Fatalf("Failed to create volume: %v", err)
	}
	v.Set(0, 0, 0, 5)

	clone := v.Clone()
	clone.Set(0, 0, 0, 9)

	if got := v.At(0, 0, 0); got != 5 {
		t.Errorf("Clone write leaked into original: got %d, want 5", got)
	}
}
