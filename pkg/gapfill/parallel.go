package gapfill

import (
	"context"
	"runtime"
	"sync"

	"timefill/pkg/volume"
)

// FillParallel behaves exactly like Fill but partitions the row space
// across a fixed pool of workers. Every pixel trace is an independent
// unit of work that reads its own column of the input and writes its own
// column of the preallocated output, so workers never contend.
//
// workers <= 0 means one worker per CPU. Cancellation is checked between
// traces; when ctx is cancelled FillParallel returns ctx.Err() and no
// output volume.
func FillParallel(ctx context.Context, vol *volume.Volume, sentinel, workers int) (*volume.Volume, error) {
	out, s, err := prepare(vol, sentinel)
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > vol.Rows && vol.Rows > 0 {
		workers = vol.Rows
	}

	// Divide the rows into contiguous tiles, one tile per worker,
	// using ceiling division so every row is covered.
	rowsPerWorker := (vol.Rows + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func(workerID int) {
			defer wg.Done()

			startRow := workerID * rowsPerWorker
			endRow := startRow + rowsPerWorker
			if endRow > vol.Rows {
				endRow = vol.Rows
			}
			if startRow >= vol.Rows {
				return
			}

			src := make([]int16, vol.TimeSteps)
			dst := make([]int16, vol.TimeSteps)
			for r := startRow; r < endRow; r++ {
				for c := 0; c < vol.Cols; c++ {
					if ctx.Err() != nil {
						return
					}
					vol.CopyTrace(r, c, src)
					fillTrace(dst, src, s)
					out.SetTrace(r, c, dst)
				}
			}
		}(w)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
