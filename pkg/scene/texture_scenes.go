package scene

import (
	"math/rand"

	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/geometry"
	"github.com/PistachioCake/raytracing/pkg/material"
)

// DefaultEarthTexture is where the earth scene looks for its map
const DefaultEarthTexture = "images/earthmap.jpg"

// NewTwoSpheresScene creates two large spheres sharing a 3D checker texture
func NewTwoSpheresScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(0.8, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)),
	)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return NewScene(world, defaultBackground, defaultCameraConfig(), DefaultSamplingConfig(), cameraOverrides...)
}

// NewEarthScene creates a globe wrapped in an image texture. A missing
// image is logged and renders in the fallback color.
func NewEarthScene(texturePath string, logger core.Logger, cameraOverrides ...geometry.CameraConfig) *Scene {
	surface := material.NewTexturedLambertian(material.LoadImageTexture(texturePath, logger))
	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, surface)

	return NewScene(globe, defaultBackground, defaultCameraConfig(), DefaultSamplingConfig(), cameraOverrides...)
}

// NewTwoPerlinSpheresScene creates a marbled ground and sphere
func NewTwoPerlinSpheresScene(random *rand.Rand, cameraOverrides ...geometry.CameraConfig) *Scene {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, random))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return NewScene(world, defaultBackground, defaultCameraConfig(), DefaultSamplingConfig(), cameraOverrides...)
}
