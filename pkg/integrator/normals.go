package integrator

import (
	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/scene"
)

// NormalsIntegrator shades the first hit by its surface normal, mapped
// from [-1,1] to [0,1]. Useful for checking geometry without lighting.
type NormalsIntegrator struct{}

// NewNormalsIntegrator creates a new normals debug integrator
func NewNormalsIntegrator() *NormalsIntegrator {
	return &NormalsIntegrator{}
}

// RayColor implements Integrator
func (ni *NormalsIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	hit, isHit := s.World.Hit(ray, core.PositiveInterval)
	if !isHit {
		return s.Background.Color(ray)
	}
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
