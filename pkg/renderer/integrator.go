package renderer

import (
	"math"

	"github.com/maikh/pathtracer/pkg/core"
)

// tMinHit guards against a scattered ray re-hitting the surface it left
// due to floating-point error at t≈0 (shadow acne)
const tMinHit = 0.001

// Background is the vertical sky gradient that terminates escaped rays
type Background struct {
	Top    core.Color // Color at the zenith
	Bottom core.Color // Color toward the ground
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Sample returns the background radiance for a ray, interpolated on the
// y component of its unit direction
func (b Background) Sample(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// RayColor estimates the radiance arriving along a ray by tracing it
// through the scene for at most depth bounces. Each scatter contributes
// multiplicatively through the attenuation product; an absorbed ray or an
// exhausted depth budget terminates the path with black.
//
// This is the recursive estimator written as a loop: the throughput
// accumulator carries the product of attenuations so recursion depth
// never translates into call-stack depth.
func RayColor(ray core.Ray, world core.Surface, background Background, sampler core.Sampler, depth int) core.Color {
	throughput := core.NewVec3(1, 1, 1)
	current := ray

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(current, tMinHit, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(background.Sample(current))
		}

		scatter, didScatter := hit.Material.Scatter(current, *hit, sampler)
		if !didScatter {
			return core.NewVec3(0, 0, 0)
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		current = scatter.Scattered
	}

	// Path-length cutoff: no more light is gathered
	return core.NewVec3(0, 0, 0)
}
