package renderer

import (
	"testing"

	"github.com/maikh/pathtracer/pkg/core"
	"github.com/maikh/pathtracer/pkg/geometry"
	"github.com/maikh/pathtracer/pkg/material"
)

// testScene is a minimal renderer.Scene for driver tests
type testScene struct {
	camera     *Camera
	background Background
	world      core.Surface
}

func (s *testScene) GetCamera() *Camera        { return s.camera }
func (s *testScene) GetBackground() Background { return s.background }
func (s *testScene) GetWorld() core.Surface    { return s.world }

func newTestScene() *testScene {
	config := DefaultCameraConfig()
	return &testScene{
		camera:     NewCamera(config),
		background: DefaultBackground(),
		world: geometry.NewSurfaceList(
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		),
	}
}

func testSettings() RenderSettings {
	return RenderSettings{
		Width:           64,
		Height:          36,
		SamplesPerPixel: 4,
		MaxDepth:        10,
		Seed:            42,
		Workers:         2,
	}
}

func TestRaytracer_RenderDimensions(t *testing.T) {
	rt := NewRaytracer(newTestScene(), testSettings(), nil)
	fb := rt.Render()

	if fb.Width != 64 || fb.Height != 36 {
		t.Fatalf("Expected 64x36 framebuffer, got %dx%d", fb.Width, fb.Height)
	}
	if len(fb.Pixels) != 64*36 {
		t.Fatalf("Expected %d pixels, got %d", 64*36, len(fb.Pixels))
	}
}

func TestRaytracer_PixelsInDisplayRange(t *testing.T) {
	rt := NewRaytracer(newTestScene(), testSettings(), nil)
	fb := rt.Render()

	for i, c := range fb.Pixels {
		if c.X < 0 || c.X > 0.999 || c.Y < 0 || c.Y > 0.999 || c.Z < 0 || c.Z > 0.999 {
			t.Fatalf("Pixel %d = %v outside [0, 0.999]", i, c)
		}
	}
}

func TestRaytracer_TopRowIsSky(t *testing.T) {
	rt := NewRaytracer(newTestScene(), testSettings(), nil)
	fb := rt.Render()

	// The first scanline is the top of the image; with the default
	// camera it sees only sky, which is bluer than it is red
	top := fb.Pixel(32, 0)
	if top.Z <= top.X {
		t.Errorf("Expected sky at top scanline, got %v", top)
	}
}

func TestRaytracer_DeterministicForFixedSeed(t *testing.T) {
	first := NewRaytracer(newTestScene(), testSettings(), nil).Render()
	second := NewRaytracer(newTestScene(), testSettings(), nil).Render()

	for i := range first.Pixels {
		if first.Pixels[i] != second.Pixels[i] {
			t.Fatalf("Pixel %d differs between identical renders: %v vs %v",
				i, first.Pixels[i], second.Pixels[i])
		}
	}
}

func TestRaytracer_WorkerCountDoesNotChangeOutput(t *testing.T) {
	serial := testSettings()
	serial.Workers = 1
	parallel := testSettings()
	parallel.Workers = 8

	one := NewRaytracer(newTestScene(), serial, nil).Render()
	many := NewRaytracer(newTestScene(), parallel, nil).Render()

	for i := range one.Pixels {
		if one.Pixels[i] != many.Pixels[i] {
			t.Fatalf("Pixel %d differs between 1 and 8 workers: %v vs %v",
				i, one.Pixels[i], many.Pixels[i])
		}
	}
}

func TestBandCount(t *testing.T) {
	tests := []struct {
		height   int
		expected int
	}{
		{1, 1},
		{16, 1},
		{17, 2},
		{36, 3},
		{225, 15},
	}

	for _, tt := range tests {
		if got := bandCount(tt.height); got != tt.expected {
			t.Errorf("bandCount(%d) = %d, want %d", tt.height, got, tt.expected)
		}
	}
}
