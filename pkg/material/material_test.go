package material

import (
	"math"
	"testing"

	"github.com/PistachioCake/raytracing/pkg/core"
)

// fixedSampler returns the same value for every dimension
type fixedSampler struct {
	value float64
}

func (s fixedSampler) Get1D() float64 { return s.value }
func (s fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.value, s.value)
}
func (s fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.value, s.value, s.value)
}

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	tests := []struct {
		name      string
		direction core.Vec3
		frontFace bool
		normal    core.Vec3
	}{
		{"ray from outside", core.NewVec3(0, 0, -1), true, outward},
		{"ray from inside", core.NewVec3(0, 0, 1), false, core.NewVec3(0, 0, -1)},
		{"oblique from outside", core.NewVec3(1, 1, -0.1), true, outward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit HitRecord
			hit.SetFaceNormal(core.NewRay(core.Vec3{}, tt.direction), outward)
			if hit.FrontFace != tt.frontFace {
				t.Errorf("Expected FrontFace=%v, got %v", tt.frontFace, hit.FrontFace)
			}
			if hit.Normal != tt.normal {
				t.Errorf("Expected normal %v, got %v", tt.normal, hit.Normal)
			}
		})
	}
}
