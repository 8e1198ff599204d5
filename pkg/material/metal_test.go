package material

import (
	"math/rand"
	"testing"

	"github.com/PistachioCake/raytracing/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	if !vecClose(scatter.Scattered.Direction, expected, 1e-12) {
		t.Errorf("Expected reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzyReflectionStaysNearMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1)}
	mirror := core.NewVec3(0, -1, 1).Normalize()

	for i := 0; i < 100; i++ {
		scatter, _ := metal.Scatter(rayIn, hit, sampler)
		offset := scatter.Scattered.Direction.Subtract(mirror).Length()
		if offset > 0.3+1e-9 {
			t.Fatalf("Fuzzed direction %v deviates %f from mirror", scatter.Scattered.Direction, offset)
		}
	}
}

func TestMetal_GrazingFuzzIsNotRejected(t *testing.T) {
	// Full fuzz at a grazing angle can push the ray under the surface; it is still returned
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	rayIn := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0)}

	for seed := int64(0); seed < 50; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		if _, ok := metal.Scatter(rayIn, hit, sampler); !ok {
			t.Fatalf("seed %d: metal scatter was rejected", seed)
		}
	}
}
