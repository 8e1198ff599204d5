package core

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// minThickness is the smallest extent Pad leaves on any axis
const minThickness = 0.001

// EmptyAABB contains nothing and is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates a new AABB from one interval per axis
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB
	for _, point := range points {
		box = box.Insert(point)
	}
	return box
}

// Axis returns the interval for axis 0=X, 1=Y, 2=Z
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	}
	panic("core: axis out of range")
}

// Hit tests if a ray intersects with this AABB using the slab method.
// Zero direction components divide to ±Inf, which the comparisons handle.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		origin := ray.Origin.Axis(axis)
		invD := 1.0 / ray.Direction.Axis(axis)

		t0 := (slab.Min - origin) * invD
		t1 := (slab.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: aabb.X.Union(other.X),
		Y: aabb.Y.Union(other.Y),
		Z: aabb.Z.Union(other.Z),
	}
}

// Insert returns an AABB that also bounds the given point
func (aabb AABB) Insert(point Vec3) AABB {
	return AABB{
		X: aabb.X.Insert(point.X),
		Y: aabb.Y.Insert(point.Y),
		Z: aabb.Z.Insert(point.Z),
	}
}

// Expand grows every axis by delta, half on each side
func (aabb AABB) Expand(delta float64) AABB {
	return AABB{
		X: aabb.X.Expand(delta),
		Y: aabb.Y.Expand(delta),
		Z: aabb.Z.Expand(delta),
	}
}

// Pad widens any axis thinner than minThickness so flat boxes still
// produce a usable slab
func (aabb AABB) Pad() AABB {
	pad := func(i Interval) Interval {
		if i.Size() < minThickness {
			return i.Expand(minThickness)
		}
		return i
	}
	return AABB{X: pad(aabb.X), Y: pad(aabb.Y), Z: pad(aabb.Z)}
}

// Offset translates the box by the given vector
func (aabb AABB) Offset(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Offset(offset.X),
		Y: aabb.Y.Offset(offset.Y),
		Z: aabb.Z.Offset(offset.Z),
	}
}

// Corners returns the eight corners of the box. Bit 0 of the index selects
// X max, bit 1 Y max, bit 2 Z max.
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := range corners {
		corner := Vec3{X: aabb.X.Min, Y: aabb.Y.Min, Z: aabb.Z.Min}
		if i&1 != 0 {
			corner.X = aabb.X.Max
		}
		if i&2 != 0 {
			corner.Y = aabb.Y.Max
		}
		if i&4 != 0 {
			corner.Z = aabb.Z.Max
		}
		corners[i] = corner
	}
	return corners
}

// IsEmpty returns true if any axis is empty
func (aabb AABB) IsEmpty() bool {
	return aabb.X.IsEmpty() || aabb.Y.IsEmpty() || aabb.Z.IsEmpty()
}
