package renderer

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/sampler"
)

// Job is everything a render needs. The scene, camera, tracer and pattern
// are only read during the render; the buffer receives the tiles.
type Job struct {
	Scene   core.Scene
	Camera  core.Camera
	Tracer  core.Tracer
	Pattern *sampler.Pattern
	Buffer  *RenderBuffer
}

// Scheduler renders jobs with a fixed pool of workers. Workers claim
// whole tiles through a shared atomic counter until none are left.
type Scheduler struct {
	numWorkers int
	logger     core.Logger
}

// NewScheduler creates a scheduler with numWorkers workers, or one per CPU when numWorkers <= 0
func NewScheduler(numWorkers int, logger core.Logger) *Scheduler {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Scheduler{numWorkers: numWorkers, logger: logger}
}

// NumWorkers returns the size of the worker pool
func (s *Scheduler) NumWorkers() int {
	return s.numWorkers
}

// Render fills job.Buffer. Cancelling ctx stops workers before their next
// tile and returns ErrInterrupted; tiles already started are finished.
// A panic while shading is not recovered.
func (s *Scheduler) Render(ctx context.Context, job Job) (RenderStats, error) {
	tiles := job.Buffer.Tiles()
	renderer := NewTileRenderer(job.Scene, job.Camera, job.Tracer, job.Pattern, job.Buffer.Width())
	numWorkers := min(s.numWorkers, len(tiles))
	s.logger.Printf("rendering %d tiles with %d workers", len(tiles), numWorkers)

	var nextTile atomic.Int64
	workers := make([]WorkerStats, numWorkers)
	start := time.Now()

	group, ctx := errgroup.WithContext(ctx)
	for w := 0; w < numWorkers; w++ {
		stats := &workers[w]
		stats.Worker = w
		group.Go(func() error {
			for {
				if ctx.Err() != nil {
					return xerrors.Errorf("worker %d after %d tiles: %w", stats.Worker, stats.Tiles, ErrInterrupted)
				}
				index := nextTile.Add(1) - 1
				if index >= int64(len(tiles)) {
					return nil
				}

				tile := tiles[index]
				tileStart := time.Now()
				pixels, tileStats := renderer.RenderTile(tile)
				job.Buffer.Commit(tile, pixels)
				stats.add(tileStats, time.Since(tileStart))
			}
		})
	}

	err := group.Wait()
	result := collectStats(workers, time.Since(start))
	if err != nil {
		return result, err
	}
	s.logger.Printf("rendered %d pixels (%d samples) in %v", result.Pixels, result.Samples, result.Duration)
	return result, nil
}
