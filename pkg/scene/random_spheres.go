package scene

import (
	"math/rand"

	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/geometry"
	"github.com/PistachioCake/raytracing/pkg/material"
)

// NewRandomSpheresScene creates the classic field of small random spheres
// around three large ones. Diffuse spheres bounce upward over the shutter
// interval. The layout is fully determined by random.
func NewRandomSpheresScene(random *rand.Rand, cameraOverrides ...geometry.CameraConfig) *Scene {
	objects := make([]geometry.Hittable, 0, 22*22+4)

	ground := material.NewTexturedLambertian(
		material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)),
	)
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				bounce := core.NewVec3(0, 0.5*random.Float64(), 0)
				objects = append(objects, geometry.NewMovingSphere(
					center, center.Add(bounce), 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
				)
				fuzz := 0.5 * random.Float64()
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 1.0)),
	)

	return NewScene(geometry.NewBVHNode(objects), defaultBackground, defaultCameraConfig(),
		DefaultSamplingConfig(), cameraOverrides...)
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}
