package geometry

import (
	"math"

	"github.com/PistachioCake/raytracing/pkg/core"
)

// CameraConfig describes a thin-lens perspective camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look-from)
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Cone angle in degrees of rays through each pixel; 0 disables depth of field
	FocusDistance float64   // Distance to the plane of perfect focus; 0 uses the look-at distance
}

// Camera generates primary rays for pixels
type Camera struct {
	config        CameraConfig
	width, height int
	pixel00       core.Vec3 // Center of the upper-left pixel
	pixelDeltaU   core.Vec3 // Offset to the pixel on the right
	pixelDeltaV   core.Vec3 // Offset to the pixel below
	defocusDiskU  core.Vec3
	defocusDiskV  core.Vec3
}

// NewCamera precomputes the viewport from config
func NewCamera(config CameraConfig) *Camera {
	width := max(config.Width, 1)
	height := max(int(float64(width)/config.AspectRatio), 1)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	// Orthonormal camera basis: w points backwards, v up, u right
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)
	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	upperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(config.DefocusAngle*math.Pi/360)

	return &Camera{
		config:       config,
		width:        width,
		height:       height,
		pixel00:      upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5)),
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// GetRay returns a ray through a random point of pixel (i, j), counted from
// the top-left, leaving a random point of the defocus disk at a random time
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.config.Center
	if c.config.DefocusAngle > 0 {
		p := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = origin.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// CenterRay returns the ray from the camera center through the middle of
// pixel (i, j) at time 0
func (c *Camera) CenterRay(i, j int) core.Ray {
	pixelCenter := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	return core.NewRay(c.config.Center, pixelCenter.Subtract(c.config.Center))
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}
