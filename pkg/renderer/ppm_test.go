package renderer

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PistachioCake/raytracing/pkg/geometry"
	"github.com/PistachioCake/raytracing/pkg/integrator"
	"github.com/PistachioCake/raytracing/pkg/scene"
)

var update = flag.Bool("update", false, "rewrite golden files in testdata")

func TestEncodePPM(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{12, 34, 56, 255})

	var buf bytes.Buffer
	if err := EncodePPM(&buf, img); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	want := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n12 34 56\n"
	if buf.String() != want {
		t.Errorf("Unexpected PPM output:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

// failingWriter fails every write
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncodePPM_WriteError(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := EncodePPM(failingWriter{}, img); err == nil {
		t.Error("Expected an error from a failing writer")
	}
}

// TestGoldenTwoSpheres guards the full pipeline against unintended changes.
// Run with -update to regenerate the golden file after an intended change.
func TestGoldenTwoSpheres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping golden render in short mode")
	}

	sc, err := scene.Build("two-spheres", 1, nil, geometry.CameraConfig{Width: 40})
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}
	if sc.Camera.Width() != 40 || sc.Camera.Height() != 22 {
		t.Fatalf("Expected 40x22 image, got %dx%d", sc.Camera.Width(), sc.Camera.Height())
	}

	rt := NewRaytracer(sc, integrator.NewPathTracingIntegrator(sc.SamplingConfig.MaxDepth),
		RenderConfig{NumWorkers: 4, Seed: 1}, nil)
	img, _, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodePPM(&buf, img); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	golden := filepath.Join("testdata", "two_spheres_40x22.ppm")
	if *update {
		if err := os.MkdirAll("testdata", 0755); err != nil {
			t.Fatalf("Failed to create testdata: %v", err)
		}
		if err := os.WriteFile(golden, buf.Bytes(), 0644); err != nil {
			t.Fatalf("Failed to write golden file: %v", err)
		}
		t.Logf("wrote %s", golden)
		return
	}

	want, err := os.ReadFile(golden)
	if err != nil {
		t.Fatalf("Failed to read golden file (run with -update to create it): %v", err)
	}

	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Render differs from %s; first lines:\n%s", golden,
			strings.Join(strings.SplitN(buf.String(), "\n", 6)[:5], "\n"))
	}
}
