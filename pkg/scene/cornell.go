package scene

import (
	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/geometry"
	"github.com/PistachioCake/raytracing/pkg/material"
)

// NewCornellScene creates a classic Cornell box scene with quad walls, a
// ceiling light and two rotated boxes
func NewCornellScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	// Cornell box dimensions (standard 555x555x555 units)
	const boxSize = 555.0

	world := geometry.NewHittableList(
		// Right wall (green) at x=555
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), green),
		// Left wall (red) at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		// Ceiling light, just below the ceiling
		geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), white),
	)

	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	world.Add(geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295)))

	shortBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	world.Add(geometry.NewTranslate(geometry.NewRotateY(shortBox, -18), core.NewVec3(130, 0, 65)))

	config := geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Camera outside the open front of the box
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       600,
		AspectRatio: 1.0,
		VFov:        40.0,
	}

	sampling := SamplingConfig{
		SamplesPerPixel: 200,
		MaxDepth:        50,
	}

	return NewScene(world, NewSolidBackground(core.Vec3{}), config, sampling, cameraOverrides...)
}
