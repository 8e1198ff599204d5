package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/integrator"
	"github.com/PistachioCake/raytracing/pkg/scene"
)

// RenderConfig contains settings that affect scheduling and randomness
// but not the scene itself
type RenderConfig struct {
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; row j samples from a generator seeded with Seed+rowSeedOffset+j
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,  // Auto-detect CPU count
		Seed:       42, // Deterministic output unless asked otherwise
	}
}

// Raytracer renders a scene with an integrator
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards progress output.
func NewRaytracer(scene *scene.Scene, integrator integrator.Integrator, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      scene,
		integrator: integrator,
		config:     config,
		logger:     logger,
	}
}

// Render renders the full image using a pool of row workers. The result
// depends only on the scene and the seed, not on worker count or scheduling.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	width, height := rt.scene.Camera.Width(), rt.scene.Camera.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	pool := NewWorkerPool(rt, height, rt.config.NumWorkers)
	pool.Start(ctx)

	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{Row: j, Image: img})
	}

	var stats RenderStats
	var firstErr error
	for completed := 0; completed < height; completed++ {
		result, ok := pool.GetResult()
		if !ok {
			pool.Stop()
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.Add(result.Stats)
		rt.logger.Printf("Scanlines remaining: %d\n", height-completed-1)
	}
	pool.Stop()

	if firstErr != nil {
		rt.logger.Printf("Rendering cancelled\n")
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", firstErr)
	}

	stats.Duration = time.Since(startTime)
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	if stats.NonFiniteSamples > 0 {
		rt.logger.Printf("Replaced %d non-finite samples with black\n", stats.NonFiniteSamples)
	}
	rt.logger.Printf("Done.\n")

	return img, stats, nil
}

// rowSeedOffset keeps row generators off the scene layout stream, which is
// seeded with Seed itself
const rowSeedOffset = 42

func (rt *Raytracer) rowSeed(j int) int64 {
	return rt.config.Seed + rowSeedOffset + int64(j)
}

// RenderRow renders scanline j into img. Each row draws from its own
// generator, so rows can be rendered in any order or concurrently.
func (rt *Raytracer) RenderRow(img *image.RGBA, j int) RenderStats {
	camera := rt.scene.Camera
	samplesPerPixel := max(rt.scene.SamplingConfig.SamplesPerPixel, 1)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(rt.rowSeed(j))))

	var stats RenderStats
	for i := 0; i < camera.Width(); i++ {
		var pixel PixelStats
		for sample := 0; sample < samplesPerPixel; sample++ {
			ray := camera.GetRay(i, j, sampler)
			pixel.AddSample(rt.integrator.RayColor(ray, rt.scene, sampler))
		}

		img.SetRGBA(i, j, vec3ToColor(pixel.GetColor()))

		stats.TotalPixels++
		stats.TotalSamples += pixel.SampleCount
		stats.NonFiniteSamples += pixel.NonFinite
	}

	return stats
}

// vec3ToColor converts a linear Vec3 color to RGBA with clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Clamp first so the square root never sees a negative component
	colorVec = colorVec.Clamp(0.0, 1.0).GammaCorrect(2.0)

	return color.RGBA{
		R: quantize(colorVec.X),
		G: quantize(colorVec.Y),
		B: quantize(colorVec.Z),
		A: 255,
	}
}

// quantize maps [0,1] onto 0..255 with equal-width buckets
func quantize(c float64) uint8 {
	return uint8(255.999 * c)
}
