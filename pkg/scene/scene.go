package scene

import (
	"github.com/maikh/pathtracer/pkg/core"
	"github.com/maikh/pathtracer/pkg/geometry"
	"github.com/maikh/pathtracer/pkg/renderer"
)

// Scene bundles the surfaces, camera and render defaults that describe
// one renderable world. It satisfies renderer.Scene.
type Scene struct {
	CameraConfig renderer.CameraConfig
	Settings     renderer.RenderSettings
	Background   renderer.Background
	World        *geometry.SurfaceList

	camera *renderer.Camera
}

// NewScene creates an empty scene with the given camera and render
// defaults and the standard sky gradient. The camera is built eagerly so
// concurrent render workers share an immutable value.
func NewScene(cameraConfig renderer.CameraConfig, settings renderer.RenderSettings) *Scene {
	return &Scene{
		CameraConfig: cameraConfig,
		Settings:     settings,
		Background:   renderer.DefaultBackground(),
		World:        geometry.NewSurfaceList(),
		camera:       renderer.NewCamera(cameraConfig),
	}
}

// Add appends surfaces to the scene
func (s *Scene) Add(surfaces ...core.Surface) {
	s.World.Add(surfaces...)
}

// GetCamera returns the camera built from the scene's camera config
func (s *Scene) GetCamera() *renderer.Camera {
	return s.camera
}

// GetBackground returns the sky gradient
func (s *Scene) GetBackground() renderer.Background {
	return s.Background
}

// GetWorld returns the surface aggregate
func (s *Scene) GetWorld() core.Surface {
	return s.World
}
