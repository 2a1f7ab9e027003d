package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels int           // Number of pixels rendered
	PrimaryRays int64         // Number of camera rays cast
	PrimaryHits int64         // Number of camera rays that hit anything
	Elapsed     time.Duration // Wall-clock render time
}

// HitRate returns the fraction of primary rays that hit scene geometry
func (s RenderStats) HitRate() float64 {
	if s.PrimaryRays == 0 {
		return 0
	}
	return float64(s.PrimaryHits) / float64(s.PrimaryRays)
}
