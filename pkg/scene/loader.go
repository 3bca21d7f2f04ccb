package scene

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/maikh/pathtracer/pkg/core"
	"github.com/maikh/pathtracer/pkg/geometry"
	"github.com/maikh/pathtracer/pkg/material"
	"github.com/maikh/pathtracer/pkg/renderer"
)

// sceneFile is the YAML scene description format
type sceneFile struct {
	Render     renderSection           `yaml:"render"`
	Camera     cameraSection           `yaml:"camera"`
	Background *backgroundSection      `yaml:"background"`
	Materials  map[string]materialSpec `yaml:"materials"`
	Spheres    []sphereSpec            `yaml:"spheres"`
}

type renderSection struct {
	Width   int     `yaml:"width"`
	Aspect  float64 `yaml:"aspect"`
	Samples int     `yaml:"samples"`
	Depth   int     `yaml:"depth"`
	Seed    int64   `yaml:"seed"`
	Workers int     `yaml:"workers"`
}

type cameraSection struct {
	From     []float64 `yaml:"from"`
	At       []float64 `yaml:"at"`
	Up       []float64 `yaml:"up"`
	VFov     float64   `yaml:"vfov"`
	Aperture float64   `yaml:"aperture"`
	Focus    float64   `yaml:"focus"`
}

type backgroundSection struct {
	Top    []float64 `yaml:"top"`
	Bottom []float64 `yaml:"bottom"`
}

type materialSpec struct {
	Type   string    `yaml:"type"`
	Albedo []float64 `yaml:"albedo"`
	Fuzz   float64   `yaml:"fuzz"`
	Index  float64   `yaml:"index"`
}

type sphereSpec struct {
	Center   []float64 `yaml:"center"`
	Radius   float64   `yaml:"radius"`
	Material string    `yaml:"material"`
}

// LoadFile reads a YAML scene description from a file
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene file: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading scene file %s: %w", path, err)
	}
	return s, nil
}

// Load parses a YAML scene description
func Load(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	var file sceneFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scene yaml: %w", err)
	}

	settings, err := file.Render.toSettings()
	if err != nil {
		return nil, err
	}

	cameraConfig, err := file.Camera.toConfig()
	if err != nil {
		return nil, err
	}

	s := NewScene(cameraConfig, settings)

	if file.Background != nil {
		top, err := toVec3(file.Background.Top, "background.top")
		if err != nil {
			return nil, err
		}
		bottom, err := toVec3(file.Background.Bottom, "background.bottom")
		if err != nil {
			return nil, err
		}
		s.Background = renderer.Background{Top: top, Bottom: bottom}
	}

	materials := make(map[string]core.Material, len(file.Materials))
	for name, spec := range file.Materials {
		mat, err := spec.toMaterial(name)
		if err != nil {
			return nil, err
		}
		materials[name] = mat
	}

	for i, sphere := range file.Spheres {
		center, err := toVec3(sphere.Center, fmt.Sprintf("spheres[%d].center", i))
		if err != nil {
			return nil, err
		}
		if sphere.Radius == 0 {
			return nil, fmt.Errorf("spheres[%d]: radius must be non-zero", i)
		}
		mat, ok := materials[sphere.Material]
		if !ok {
			return nil, fmt.Errorf("spheres[%d]: unknown material %q", i, sphere.Material)
		}
		s.Add(geometry.NewSphere(center, sphere.Radius, mat))
	}

	return s, nil
}

func (r renderSection) toSettings() (renderer.RenderSettings, error) {
	settings := renderer.DefaultRenderSettings()

	aspect := 16.0 / 9.0
	if r.Aspect > 0 {
		aspect = r.Aspect
	}
	if r.Width < 0 {
		return settings, fmt.Errorf("render.width must be positive")
	}
	if r.Width > 0 {
		settings.Width = r.Width
	}
	settings.Height = int(float64(settings.Width) / aspect)

	if r.Samples > 0 {
		settings.SamplesPerPixel = r.Samples
	}
	if r.Depth > 0 {
		settings.MaxDepth = r.Depth
	}
	if r.Seed != 0 {
		settings.Seed = r.Seed
	}
	settings.Workers = r.Workers

	return settings, nil
}

func (c cameraSection) toConfig() (renderer.CameraConfig, error) {
	config := renderer.DefaultCameraConfig()

	if c.From != nil {
		from, err := toVec3(c.From, "camera.from")
		if err != nil {
			return config, err
		}
		config.LookFrom = from
	}
	if c.At != nil {
		at, err := toVec3(c.At, "camera.at")
		if err != nil {
			return config, err
		}
		config.LookAt = at
	}
	if c.Up != nil {
		up, err := toVec3(c.Up, "camera.up")
		if err != nil {
			return config, err
		}
		config.Up = up
	}
	if c.VFov > 0 {
		config.VFov = c.VFov
	}
	config.Aperture = c.Aperture
	if c.Focus > 0 {
		config.FocusDistance = c.Focus
	} else {
		config.FocusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	return config, nil
}

func (m materialSpec) toMaterial(name string) (core.Material, error) {
	switch m.Type {
	case "lambertian":
		albedo, err := toVec3(m.Albedo, fmt.Sprintf("materials.%s.albedo", name))
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil
	case "metal":
		albedo, err := toVec3(m.Albedo, fmt.Sprintf("materials.%s.albedo", name))
		if err != nil {
			return nil, err
		}
		return material.NewMetal(albedo, m.Fuzz), nil
	case "dielectric":
		if m.Index <= 0 {
			return nil, fmt.Errorf("materials.%s: dielectric needs a positive index", name)
		}
		return material.NewDielectric(m.Index), nil
	default:
		return nil, fmt.Errorf("materials.%s: unknown type %q", name, m.Type)
	}
}

func toVec3(values []float64, field string) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%s: expected 3 components, got %d", field, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
