package material

import (
	"math"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/PistachioCake/raytracing/pkg/core"
)

// TestImageTextureEvaluate tests basic texture sampling
func TestImageTextureEvaluate(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	texture := NewImageTexture(2, 2, []core.Vec3{white, black, black, white})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"bottom-left", core.NewVec2(0.1, 0.1), black},
		{"bottom-right", core.NewVec2(0.9, 0.1), white},
		{"top-left", core.NewVec2(0.1, 0.9), white},
		{"top-right", core.NewVec2(0.9, 0.9), black},
		{"u=1 v=1 clamps to last column, first row", core.NewVec2(1, 1), black},
		{"u=0 v=0 is last row", core.NewVec2(0, 0), black},
		{"outside range clamps", core.NewVec2(-3, 7), white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv, core.Vec3{}); got != tt.expected {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, got)
			}
		})
	}
}

func TestImageTextureMissingImage(t *testing.T) {
	texture := LoadImageTexture(filepath.Join(t.TempDir(), "missing.png"), core.NopLogger{})
	if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); got != missingTextureColor {
		t.Errorf("missing image should evaluate to %v, got %v", missingTextureColor, got)
	}
}

func TestSolidColor(t *testing.T) {
	color := core.NewVec3(0.7, 0.3, 0.1)
	solid := NewSolidColor(color)

	testCases := []struct {
		uv    core.Vec2
		point core.Vec3
	}{
		{core.NewVec2(0, 0), core.NewVec3(0, 0, 0)},
		{core.NewVec2(1, 1), core.NewVec3(5, 3, -2)},
		{core.NewVec2(0.5, 0.5), core.NewVec3(-1, -1, -1)},
	}

	for _, tc := range testCases {
		if result := solid.Evaluate(tc.uv, tc.point); result != color {
			t.Errorf("SolidColor at UV%v, Point%v: expected %v, got %v",
				tc.uv, tc.point, color, result)
		}
	}
}

func TestChecker(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewCheckerColors(0.5, even, odd)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"origin cell", core.NewVec3(0.1, 0.1, 0.1), even},
		{"one step in x", core.NewVec3(0.6, 0.1, 0.1), odd},
		{"two steps", core.NewVec3(0.6, 0.6, 0.1), even},
		{"negative cell", core.NewVec3(-0.1, 0.1, 0.1), odd},
		{"two negative steps", core.NewVec3(-0.1, -0.1, 0.1), even},
		{"three negative steps", core.NewVec3(-0.1, -0.1, -0.1), odd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Evaluate(core.Vec2{}, tt.point); got != tt.expected {
				t.Errorf("Checker at %v = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestNoiseTexture(t *testing.T) {
	a := NewNoiseTexture(4, rand.New(rand.NewSource(3)))
	b := NewNoiseTexture(4, rand.New(rand.NewSource(3)))
	random := rand.New(rand.NewSource(99))

	for i := 0; i < 200; i++ {
		p := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		c := a.Evaluate(core.Vec2{}, p)
		if c.X != c.Y || c.Y != c.Z {
			t.Fatalf("noise at %v is not gray: %v", p, c)
		}
		if c.X < 0 || c.X > 1 || math.IsNaN(c.X) {
			t.Fatalf("noise at %v out of range: %v", p, c)
		}
		if c != b.Evaluate(core.Vec2{}, p) {
			t.Fatalf("same seed produced different noise at %v", p)
		}
	}
}

func TestPerlinNoiseVanishesOnLattice(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(5)))
	for _, p := range []core.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 2, Z: 3}, {X: -4, Y: 7, Z: -1}} {
		if n := perlin.Noise(p); math.Abs(n) > 1e-12 {
			t.Errorf("Noise at lattice point %v = %g, want 0", p, n)
		}
	}
}
