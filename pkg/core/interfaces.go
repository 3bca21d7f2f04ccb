package core

// HitRecord contains information about a ray-surface intersection.
// It lives only for the duration of one intersection query and the
// shading of that hit; nothing stores it.
type HitRecord struct {
	Point     Point3   // Point of intersection
	Normal    Vec3     // Surface normal at intersection, oriented against the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit surface
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The stored normal always points against the incoming ray.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Surface interface for objects that can be hit by rays
type Surface interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray   // The scattered ray
	Attenuation Color // Color attenuation applied to light carried back
}

// Material interface for surfaces that can scatter rays.
// Returning false means the ray was absorbed and the path terminates.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Logger is the minimal logging surface the renderer needs for progress
// reporting. *logrus.Logger and the standard *log.Logger both satisfy it.
type Logger interface {
	Printf(format string, args ...interface{})
}
