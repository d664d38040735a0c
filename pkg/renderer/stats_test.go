package renderer

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPixelStats_GetColor(t *testing.T) {
	var ps PixelStats
	if got := ps.GetColor(); got != (core.Vec3{}) {
		t.Errorf("Expected black with no samples, got %v", got)
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	ps.AddSample(core.NewVec3(0, 0, 1))
	ps.AddSample(core.NewVec3(1, 1, 1))

	if ps.SampleCount != 4 {
		t.Errorf("Expected 4 samples, got %d", ps.SampleCount)
	}
	if got := ps.GetColor(); !vecNear(got, core.NewVec3(0.5, 0.5, 0.5), 1e-12) {
		t.Errorf("Expected mean (0.5, 0.5, 0.5), got %v", got)
	}
}

func TestRenderStats_Finalize(t *testing.T) {
	var stats RenderStats
	stats.add(RenderStats{TotalPixels: 10, TotalSamples: 40})
	stats.add(RenderStats{TotalPixels: 6, TotalSamples: 24})
	stats.finalize()

	if stats.TotalPixels != 16 || stats.TotalSamples != 64 {
		t.Errorf("Expected 16 pixels and 64 samples, got %d and %d", stats.TotalPixels, stats.TotalSamples)
	}
	if stats.AverageSamples != 4 {
		t.Errorf("Expected average 4, got %f", stats.AverageSamples)
	}
}
