package material

import (
	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/loaders"
)

// missingTextureColor is returned by textures without image data so that
// missing assets stand out in the render.
var missingTextureColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// LoadImageTexture loads an image from disk. A load failure is logged and
// yields an empty texture that evaluates to the fallback color.
func LoadImageTexture(filename string, logger core.Logger) *ImageTexture {
	data, err := loaders.LoadImage(filename)
	if err != nil {
		logger.Printf("image texture %q: %v\n", filename, err)
		return &ImageTexture{}
	}
	return NewImageTexture(data.Width, data.Height, data.Pixels)
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Height <= 0 || t.Width <= 0 || len(t.Pixels) < t.Width*t.Height {
		return missingTextureColor
	}

	// Clamp UV coordinates to [0, 1]
	unit := core.NewInterval(0.0, 1.0)
	u := unit.Clamp(uv.X)
	v := unit.Clamp(uv.Y)

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	// u or v of exactly 1 lands one past the last pixel
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
