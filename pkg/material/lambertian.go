package material

import "github.com/maikh/pathtracer/pkg/core"

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Color // Fraction of light retained per bounce
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for diffuse scattering.
// A lambertian surface never absorbs a ray.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	// Scatter toward the normal plus a random unit vector, which
	// approximates a cosine-weighted distribution around the normal
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// The random vector can nearly cancel the normal; fall back to the
	// normal itself rather than propagate a degenerate direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo,
	}, true
}
