package material

import "github.com/maikh/pathtracer/pkg/core"

// stubSampler returns scripted values so scattering tests are exact
type stubSampler struct {
	values1D []float64
	values3D []core.Vec3
	i1, i3   int
}

func (s *stubSampler) Get1D() float64 {
	v := s.values1D[s.i1%len(s.values1D)]
	s.i1++
	return v
}

func (s *stubSampler) Get3D() core.Vec3 {
	v := s.values3D[s.i3%len(s.values3D)]
	s.i3++
	return v
}

// sampleForSpherePoint returns the Get3D value that makes
// core.RandomInUnitSphere yield p (requires |p| < 1)
func sampleForSpherePoint(p core.Vec3) core.Vec3 {
	return p.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
