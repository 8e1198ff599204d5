package scene

import (
	"math/rand"

	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/geometry"
	"github.com/PistachioCake/raytracing/pkg/material"
)

// NewSimpleLightScene creates marbled spheres lit only by a spherical and a
// rectangular light against a black background
func NewSimpleLightScene(random *rand.Rand, cameraOverrides ...geometry.CameraConfig) *Scene {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, random))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
	)

	config := defaultCameraConfig()
	config.Center = core.NewVec3(26, 3, 6)
	config.LookAt = core.NewVec3(0, 2, 0)
	config.DefocusAngle = 0

	sampling := DefaultSamplingConfig()
	sampling.SamplesPerPixel = 512

	return NewScene(world, NewSolidBackground(core.Vec3{}), config, sampling, cameraOverrides...)
}
