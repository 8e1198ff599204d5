package geometry

import (
	"math"

	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/material"
)

// DummyMaterial never scatters
type DummyMaterial struct{}

func (DummyMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// MockShape is a Hittable with a fixed box and a pluggable hit function
type MockShape struct {
	boundingBox core.AABB
	hitFn       func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if m.hitFn == nil {
		return nil, false
	}
	return m.hitFn(ray, rayT)
}

func (m MockShape) BoundingBox() core.AABB {
	return m.boundingBox
}

func boxFromPoints(a, b core.Vec3) core.AABB {
	return core.NewAABBFromPoints(a, b)
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
