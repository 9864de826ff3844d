package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose ray hit a shape
	Shapes      int           // Shapes tested per ray
	Workers     int           // Goroutines used for rows
	Duration    time.Duration // Wall time of the render loop
}

// Coverage returns the fraction of pixels that hit a shape
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
