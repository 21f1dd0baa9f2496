package renderer

import "time"

// TileStats counts the work done for one tile
type TileStats struct {
	Pixels  int
	Samples int
}

// WorkerStats summarizes one worker's share of a render
type WorkerStats struct {
	Worker  int           // Worker number
	Tiles   int           // Tiles rendered
	Pixels  int           // Pixels rendered
	Samples int           // Primary rays traced
	Busy    time.Duration // Time spent rendering tiles
}

func (ws *WorkerStats) add(ts TileStats, elapsed time.Duration) {
	ws.Tiles++
	ws.Pixels += ts.Pixels
	ws.Samples += ts.Samples
	ws.Busy += elapsed
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Tiles    int           // Tiles rendered
	Pixels   int           // Pixels rendered
	Samples  int           // Primary rays traced
	Duration time.Duration // Wall-clock render time
	Workers  []WorkerStats // Per-worker breakdown
}

// SamplesPerSecond returns primary ray throughput
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.Samples) / rs.Duration.Seconds()
}

func collectStats(workers []WorkerStats, duration time.Duration) RenderStats {
	stats := RenderStats{Duration: duration, Workers: workers}
	for _, ws := range workers {
		stats.Tiles += ws.Tiles
		stats.Pixels += ws.Pixels
		stats.Samples += ws.Samples
	}
	return stats
}
