package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-tracer/pkg/geometry"
)

// renderRows renders every row of the buffer and returns the total hit count
// and the number of workers used. Each row is written by exactly one
// goroutine, so rows need no locking; the group's Wait is the only join.
func (rt *Raytracer) renderRows(ctx context.Context, camera *Camera, shapes []geometry.Shape, buffer *PixelBuffer) (int, int, error) {
	numWorkers := rt.config.Workers
	if numWorkers < 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > rt.height {
		numWorkers = rt.height
	}

	if numWorkers <= 1 {
		total := 0
		for y := 0; y < rt.height; y++ {
			if err := ctx.Err(); err != nil {
				return 0, 0, err
			}
			hits, err := rt.renderRow(y, camera, shapes, buffer)
			if err != nil {
				return 0, 0, err
			}
			total += hits
		}
		return total, 1, nil
	}

	rowHits := make([]int, rt.height)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for y := 0; y < rt.height; y++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hits, err := rt.renderRow(y, camera, shapes, buffer)
			rowHits[y] = hits
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	total := 0
	for _, hits := range rowHits {
		total += hits
	}
	return total, numWorkers, nil
}
