package scene

import (
	"github.com/PistachioCake/raytracing/pkg/core"
)

// Background gives the radiance arriving along rays that hit nothing
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SolidBackground is the same color in every direction
type SolidBackground struct {
	Emission core.Vec3
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Emission: color}
}

func (b *SolidBackground) Color(ray core.Ray) core.Vec3 {
	return b.Emission
}

// GradientBackground blends from BottomColor looking straight down to
// TopColor looking straight up
type GradientBackground struct {
	TopColor    core.Vec3
	BottomColor core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(topColor, bottomColor core.Vec3) *GradientBackground {
	return &GradientBackground{TopColor: topColor, BottomColor: bottomColor}
}

// NewSkyBackground is white at the horizon below fading to light blue above
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

func (b *GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return b.BottomColor.Multiply(1.0 - a).Add(b.TopColor.Multiply(a))
}
