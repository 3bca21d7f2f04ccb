package scene

import (
	"math/rand"

	"github.com/maikh/pathtracer/pkg/core"
	"github.com/maikh/pathtracer/pkg/geometry"
	"github.com/maikh/pathtracer/pkg/material"
	"github.com/maikh/pathtracer/pkg/renderer"
)

// NewDefaultScene creates the default scene: three large spheres over a
// ground sphere, with the left sphere a hollow glass shell
func NewDefaultScene() *Scene {
	lookFrom := core.NewVec3(-2, 2, 1)
	lookAt := core.NewVec3(0, 0, -1)

	cameraConfig := renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.0,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	}

	s := NewScene(cameraConfig, renderer.DefaultRenderSettings())

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		// Outer shell plus negative-radius inner shell makes the left
		// sphere a hollow glass bubble
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return s
}

// NewCoverScene creates the cover scene: a randomized grid of small
// spheres around three large ones, deterministic for a given seed
func NewCoverScene(seed int64) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	settings := renderer.DefaultRenderSettings()
	settings.Seed = seed

	s := NewScene(cameraConfig, settings)
	random := rand.New(rand.NewSource(seed))

	groundMat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMat))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the grid clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := randomColor(random).Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}

			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

func randomColor(random *rand.Rand) core.Color {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}
