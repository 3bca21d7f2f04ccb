package core

import "math/rand"

// Sampler provides random draws for rendering algorithms.
// It can be swapped out for a deterministic source in tests.
type Sampler interface {
	// Get1D returns a random float64 in [0, 1)
	Get1D() float64
	// Get3D returns three random float64 values in [0, 1)
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInUnitSphere generates a random point inside the unit sphere
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		// Map a sample from [0,1)³ to the [-1,1]³ cube
		p := sampler.Get3D().Multiply(2).Subtract(NewVec3(1, 1, 1))
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniform random direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	return RandomInUnitSphere(sampler).Normalize()
}

// RandomInUnitDisk generates a random point in the unit disk in the
// z=0 plane (used for lens aperture sampling)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := NewVec3(2*sampler.Get1D()-1, 2*sampler.Get1D()-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
