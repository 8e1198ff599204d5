package scene

import (
	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/geometry"
)

// Scene contains all the elements needed for rendering. It must not be
// modified once rendering starts.
type Scene struct {
	Camera         *geometry.Camera
	World          geometry.Hittable // Root of the object hierarchy
	Background     Background        // Radiance for rays that escape the scene
	SamplingConfig SamplingConfig
	CameraConfig   geometry.CameraConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig matches the defaults of the demo scenes
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// defaultCameraConfig is the camera shared by the outdoor demo scenes
func defaultCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		DefocusAngle:  0.6,
		FocusDistance: 10,
	}
}

// defaultBackground is the pale blue sky shared by the outdoor demo scenes
var defaultBackground = NewSolidBackground(core.NewVec3(0.7, 0.8, 1.0))

// NewScene assembles a scene, applying camera overrides on top of cameraConfig
func NewScene(world geometry.Hittable, background Background, cameraConfig geometry.CameraConfig,
	samplingConfig SamplingConfig, cameraOverrides ...geometry.CameraConfig) *Scene {
	for _, override := range cameraOverrides {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, override)
	}
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		World:          world,
		Background:     background,
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}
}
