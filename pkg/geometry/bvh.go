package geometry

import (
	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/material"
)

// BVHNode is a binary bounding volume hierarchy node. Children are either
// further nodes or the scene objects themselves.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// NewBVHNode builds a hierarchy over objects. It panics with fewer than two
// objects. The caller's slice is not reordered.
func NewBVHNode(objects []Hittable) *BVHNode {
	if len(objects) < 2 {
		panic("geometry: cannot build a BVH node from fewer than 2 objects")
	}

	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, 0)
}

func newBVHPair(left, right Hittable) *BVHNode {
	return &BVHNode{
		Left:  left,
		Right: right,
		bbox:  left.BoundingBox().Union(right.BoundingBox()),
	}
}

// buildBVH splits objects at the median of their bounding box minimum along
// axis, cycling x, y, z by depth
func buildBVH(objects []Hittable, axis int) *BVHNode {
	switch len(objects) {
	case 2:
		return newBVHPair(objects[0], objects[1])
	case 3:
		return newBVHPair(newBVHPair(objects[0], objects[1]), objects[2])
	}

	mid := len(objects) / 2
	selectByAxisMin(objects, mid, axis)

	next := (axis + 1) % 3
	return newBVHPair(buildBVH(objects[:mid], next), buildBVH(objects[mid:], next))
}

// selectByAxisMin partially orders objects so that objects[k] holds the element
// that would be there after sorting by bounding box minimum along axis, with
// nothing greater before it and nothing smaller after it
func selectByAxisMin(objects []Hittable, k, axis int) {
	key := func(i int) float64 {
		return objects[i].BoundingBox().Axis(axis).Min
	}

	lo, hi := 0, len(objects)-1
	for lo < hi {
		pivot := key(lo + (hi-lo)/2)
		i, j := lo, hi
		for i <= j {
			for key(i) < pivot {
				i++
			}
			for key(j) > pivot {
				j--
			}
			if i <= j {
				objects[i], objects[j] = objects[j], objects[i]
				i++
				j--
			}
		}
		switch {
		case k <= j:
			hi = j
		case k >= i:
			lo = i
		default:
			return
		}
	}
}

// Hit tests the left subtree first, then the right subtree with the interval
// shrunk to the left hit, so a right hit is always the closer one
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT)
	if hitLeft {
		rayT.Max = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, rayT); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	InternalNodes int
	Leaves        int
	MaxDepth      int
}

// Stats walks the hierarchy and counts nodes and leaf objects
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(0, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.InternalNodes++
	for _, child := range []Hittable{n.Left, n.Right} {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
			continue
		}
		stats.Leaves++
		if depth+1 > stats.MaxDepth {
			stats.MaxDepth = depth + 1
		}
	}
}
