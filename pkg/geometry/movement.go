package geometry

import (
	"github.com/PistachioCake/raytracing/pkg/core"
)

// Movement resolves an object's position at a ray's time
type Movement interface {
	At(time float64) core.Vec3
	// BoundingBox encloses every position over time in [0, 1]
	BoundingBox() core.AABB
}

// Unchanging is a fixed position
type Unchanging struct {
	Point core.Vec3
}

func (u Unchanging) At(time float64) core.Vec3 {
	return u.Point
}

func (u Unchanging) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(u.Point)
}

// Linear moves from From at time 0 to To at time 1
type Linear struct {
	From core.Vec3
	To   core.Vec3
}

func (l Linear) At(time float64) core.Vec3 {
	return l.From.Add(l.To.Subtract(l.From).Multiply(time))
}

func (l Linear) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(l.From, l.To)
}
