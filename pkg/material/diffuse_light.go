package material

import (
	"github.com/PistachioCake/raytracing/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emission Texture // Emitted light color/intensity
}

// NewDiffuseLight creates a new emissive material with a solid color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a new emissive material driven by a texture
func NewTexturedDiffuseLight(emission Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements the Material interface for emissive materials
// Emissive materials don't scatter rays - they only emit light
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emitted light at the hit point, on either face
func (e *DiffuseLight) Emit(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return e.Emission.Evaluate(hit.UV, hit.Point)
}
