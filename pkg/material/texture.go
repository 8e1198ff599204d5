package material

import (
	"math"

	"github.com/PistachioCake/raytracing/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures in a 3D lattice of cubes with
// edge length scale, keyed on the world-space hit point.
type Checker struct {
	invScale float64
	Even     Texture
	Odd      Texture
}

// NewChecker creates a checker pattern from two textures
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks the even or odd texture by the parity of the cell index sum
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(point.X * c.invScale))
	y := int(math.Floor(point.Y * c.invScale))
	z := int(math.Floor(point.Z * c.invScale))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
