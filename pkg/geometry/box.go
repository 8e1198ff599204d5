package geometry

import (
	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/material"
)

// NewBox returns the six outward-facing quads of the axis-aligned box with
// opposite corners a and b
func NewBox(a, b core.Vec3, mat material.Material) *HittableList {
	minPoint := a.Min(b)
	maxPoint := a.Max(b)
	size := maxPoint.Subtract(minPoint)

	edges := [3]core.Vec3{
		core.NewVec3(size.X, 0, 0),
		core.NewVec3(0, size.Y, 0),
		core.NewVec3(0, 0, size.Z),
	}

	box := NewHittableList()
	for axis := 0; axis < 3; axis++ {
		next := edges[(axis+1)%3]
		after := edges[(axis+2)%3]

		// Low face: edges ordered so that u × v points toward -axis
		box.Add(NewQuad(minPoint, after, next, mat))

		// High face: moved to the max plane with u × v toward +axis
		corner := minPoint.SetAxis(axis, maxPoint.Axis(axis))
		box.Add(NewQuad(corner, next, after, mat))
	}
	return box
}
