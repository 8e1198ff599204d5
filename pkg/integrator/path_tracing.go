package integrator

import (
	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/material"
	"github.com/PistachioCake/raytracing/pkg/scene"
)

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	MaxDepth int // Maximum number of surface interactions per path
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor follows a single path through the scene. Each bounce adds the
// surface emission weighted by the throughput gathered so far, and a path
// that escapes picks up the background. Paths that run out of depth
// contribute nothing further.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	var color core.Vec3

	for depth := pt.MaxDepth; depth > 0; depth-- {
		hit, isHit := s.World.Hit(ray, core.PositiveInterval)
		if !isHit {
			return color.Add(throughput.MultiplyVec(s.Background.Color(ray)))
		}

		color = color.Add(throughput.MultiplyVec(getEmittedLight(ray, hit)))

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return color
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return color
}

// getEmittedLight returns the emission at a hit, or black for non-emissive materials
func getEmittedLight(ray core.Ray, hit *material.HitRecord) core.Vec3 {
	if emitter, ok := hit.Material.(material.Emitter); ok {
		return emitter.Emit(ray, *hit)
	}
	return core.Vec3{}
}
