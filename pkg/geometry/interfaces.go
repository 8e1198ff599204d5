package geometry

import (
	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/material"
)

// Hittable is anything a ray can intersect. Implementations must be safe
// for concurrent use once constructed.
type Hittable interface {
	// Hit returns the closest intersection with t inside rayT
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
	// BoundingBox returns a box enclosing the object over the whole shutter interval
	BoundingBox() core.AABB
}
