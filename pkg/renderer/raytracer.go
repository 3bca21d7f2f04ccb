package renderer

import (
	"math/rand"
	"runtime"

	"github.com/maikh/pathtracer/pkg/core"
)

// RenderSettings contains the rendering configuration
type RenderSettings struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of jittered rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for per-band random sources
	Workers         int   // Worker goroutines; 0 means runtime.NumCPU()
}

// DefaultRenderSettings returns sensible default values
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Scene is what the raytracer needs from a scene description.
// Declared here to avoid a circular import with the scene package.
type Scene interface {
	GetCamera() *Camera
	GetBackground() Background
	GetWorld() core.Surface
}

// Framebuffer holds the final pixel colors in scan order: the top
// scanline (image row v = height-1) first, left to right. Values are
// sample-averaged, gamma-2 corrected and clamped to [0, 0.999].
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFramebuffer allocates a framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// Pixel returns the color at column x and row y, with y counted from the
// top of the image
func (fb *Framebuffer) Pixel(x, y int) core.Color {
	return fb.Pixels[y*fb.Width+x]
}

// Raytracer drives the per-pixel sampling loop over a scene
type Raytracer struct {
	scene    Scene
	settings RenderSettings
	logger   core.Logger
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(scene Scene, settings RenderSettings, logger core.Logger) *Raytracer {
	if settings.Workers <= 0 {
		settings.Workers = runtime.NumCPU()
	}
	return &Raytracer{scene: scene, settings: settings, logger: logger}
}

// Settings returns the effective render settings
func (rt *Raytracer) Settings() RenderSettings {
	return rt.settings
}

// Render computes the full image. The image is split into fixed row
// bands rendered in parallel; each band owns its slice of the
// framebuffer and a random source seeded from Seed plus the band index,
// so the output is identical for any worker count.
func (rt *Raytracer) Render() *Framebuffer {
	fb := NewFramebuffer(rt.settings.Width, rt.settings.Height)

	pool := newWorkerPool(rt, fb, rt.settings.Workers)
	pool.start()

	bands := bandCount(rt.settings.Height)
	for index := 0; index < bands; index++ {
		rowMin := index * bandRows
		rowMax := min(rowMin+bandRows, rt.settings.Height)
		pool.submit(bandTask{
			index:  index,
			rowMin: rowMin,
			rowMax: rowMax,
			random: rand.New(rand.NewSource(rt.settings.Seed + int64(index))),
		})
	}
	pool.finish()

	completed := 0
	for result := range pool.results {
		completed++
		if rt.logger != nil {
			rt.logger.Printf("band %d/%d done (%d rows in %v)",
				completed, bands, result.rows, result.elapsed)
		}
	}

	return fb
}

// renderBand renders image rows [rowMin, rowMax), counted from the top
func (rt *Raytracer) renderBand(task bandTask, fb *Framebuffer) {
	sampler := core.NewRandomSampler(task.random)
	for row := task.rowMin; row < task.rowMax; row++ {
		// Scan order is top to bottom, so image coordinate v counts down
		j := rt.settings.Height - 1 - row
		for i := 0; i < rt.settings.Width; i++ {
			fb.Pixels[row*fb.Width+i] = rt.renderPixel(i, j, sampler)
		}
	}
}

// renderPixel averages jittered samples through pixel (i, j) and applies
// gamma-2 correction and clamping
func (rt *Raytracer) renderPixel(i, j int, sampler core.Sampler) core.Color {
	camera, world, background := rt.scene.GetCamera(), rt.scene.GetWorld(), rt.scene.GetBackground()

	accum := core.NewVec3(0, 0, 0)
	for sample := 0; sample < rt.settings.SamplesPerPixel; sample++ {
		s := (float64(i) + sampler.Get1D()) / float64(rt.settings.Width-1)
		t := (float64(j) + sampler.Get1D()) / float64(rt.settings.Height-1)

		ray := camera.GetRay(s, t, sampler)
		accum = accum.Add(RayColor(ray, world, background, sampler, rt.settings.MaxDepth))
	}

	averaged := accum.Multiply(1.0 / float64(rt.settings.SamplesPerPixel))
	return averaged.GammaCorrect(2.0).Clamp(0.0, 0.999)
}
