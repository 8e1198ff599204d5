package geometry

import (
	"fmt"
	"math"

	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/material"
)

// Translate moves an object by a fixed offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears displaced by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Offset(offset),
	}
}

// Hit moves the ray into object space, then moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	local := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Object.Hit(local, rayT)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// Rotate turns an object about one coordinate axis through the origin
type Rotate struct {
	Object   Hittable
	Axis     int // 0=X, 1=Y, 2=Z
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotate wraps object rotated by degrees about axis, counterclockwise when
// looking down the axis toward the origin. It panics if axis is not 0, 1 or 2.
func NewRotate(object Hittable, axis int, degrees float64) *Rotate {
	if axis < 0 || axis > 2 {
		panic(fmt.Sprintf("geometry: invalid rotation axis %d", axis))
	}

	radians := degrees * math.Pi / 180
	r := &Rotate{
		Object:   object,
		Axis:     axis,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
		bbox:     core.EmptyAABB,
	}

	childBox := object.BoundingBox()
	if childBox.IsEmpty() {
		return r
	}
	for _, corner := range childBox.Corners() {
		r.bbox = r.bbox.Insert(r.RotatePoint(corner))
	}
	return r
}

// NewRotateY rotates object about the Y axis
func NewRotateY(object Hittable, degrees float64) *Rotate {
	return NewRotate(object, 1, degrees)
}

// RotatePoint maps a point from object space to world space
func (r *Rotate) RotatePoint(p core.Vec3) core.Vec3 {
	a1, a2 := (r.Axis+1)%3, (r.Axis+2)%3
	x, y := p.Axis(a1), p.Axis(a2)
	p = p.SetAxis(a1, r.cosTheta*x-r.sinTheta*y)
	return p.SetAxis(a2, r.sinTheta*x+r.cosTheta*y)
}

// UnrotatePoint maps a point from world space to object space
func (r *Rotate) UnrotatePoint(p core.Vec3) core.Vec3 {
	a1, a2 := (r.Axis+1)%3, (r.Axis+2)%3
	x, y := p.Axis(a1), p.Axis(a2)
	p = p.SetAxis(a1, r.cosTheta*x+r.sinTheta*y)
	return p.SetAxis(a2, -r.sinTheta*x+r.cosTheta*y)
}

// Hit rotates the ray into object space and the hit back into world space
func (r *Rotate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	local := core.NewRayAtTime(r.UnrotatePoint(ray.Origin), r.UnrotatePoint(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(local, rayT)
	if !ok {
		return nil, false
	}
	hit.Point = r.RotatePoint(hit.Point)
	hit.Normal = r.RotatePoint(hit.Normal)
	return hit, true
}

func (r *Rotate) BoundingBox() core.AABB {
	return r.bbox
}
