package geometry

import "github.com/maikh/pathtracer/pkg/core"

// SurfaceList is an unordered collection of surfaces with no spatial
// index; intersection is a linear scan over all members.
type SurfaceList struct {
	Surfaces []core.Surface
}

// NewSurfaceList creates a surface list from the given surfaces
func NewSurfaceList(surfaces ...core.Surface) *SurfaceList {
	return &SurfaceList{Surfaces: surfaces}
}

// Add appends surfaces to the list
func (l *SurfaceList) Add(surfaces ...core.Surface) {
	l.Surfaces = append(l.Surfaces, surfaces...)
}

// Hit returns the nearest intersection along the ray within [tMin, tMax].
// Each surface is tested against a shrinking interval capped at the
// closest hit so far, so the result is the globally nearest hit. When two
// surfaces report exactly equal t, the one tested later wins; that order
// is an implementation detail, not a contract.
func (l *SurfaceList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, surface := range l.Surfaces {
		if hit, isHit := surface.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
