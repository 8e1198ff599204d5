package geometry

import (
	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/material"
)

// HittableList is a flat collection tested by linear scan
type HittableList struct {
	objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the cached bounding box
func (l *HittableList) Add(object Hittable) {
	l.objects = append(l.objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
}

// Clear removes all objects
func (l *HittableList) Clear() {
	l.objects = nil
	l.bbox = core.EmptyAABB
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Objects returns the underlying objects. The slice must not be modified.
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Hit returns the nearest hit among all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	for _, object := range l.objects {
		if hit, ok := object.Hit(ray, rayT); ok {
			rayT.Max = hit.T
			closest = hit
		}
	}
	return closest, closest != nil
}

func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
