package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/PistachioCake/raytracing/pkg/core"
	"github.com/PistachioCake/raytracing/pkg/geometry"
	"github.com/PistachioCake/raytracing/pkg/integrator"
	"github.com/PistachioCake/raytracing/pkg/renderer"
	"github.com/PistachioCake/raytracing/pkg/scene"
)

// options holds the command line settings after merging the config file
type options struct {
	sceneName  string
	width      int
	samples    int // 0 keeps the scene default
	depth      int // 0 keeps the scene default
	seed       int64
	workers    int
	output     string
	configPath string
	integrator string
	list       bool
	help       bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so it can be tested
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.help {
		printHelp(stdout)
		return nil
	}
	if opts.list {
		for _, info := range scene.ListScenes() {
			fmt.Fprintf(stdout, "  %-20s %s\n", info.ID, info.Description)
		}
		return nil
	}

	logger := renderer.NewWriterLogger(stderr)

	selectedScene, err := createScene(opts, logger)
	if err != nil {
		return err
	}

	if bvh, ok := selectedScene.World.(*geometry.BVHNode); ok {
		stats := bvh.Stats()
		logger.Printf("BVH: %d internal nodes, %d leaves, depth %d\n",
			stats.InternalNodes, stats.Leaves, stats.MaxDepth)
	}

	selectedIntegrator, err := createIntegrator(opts.integrator, selectedScene.SamplingConfig.MaxDepth)
	if err != nil {
		return err
	}

	logger.Printf("Rendering %s at %dx%d, %d samples per pixel, max depth %d\n",
		opts.sceneName, selectedScene.Camera.Width(), selectedScene.Camera.Height(),
		selectedScene.SamplingConfig.SamplesPerPixel, selectedScene.SamplingConfig.MaxDepth)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	raytracer := renderer.NewRaytracer(selectedScene, selectedIntegrator,
		renderer.RenderConfig{NumWorkers: opts.workers, Seed: opts.seed}, logger)
	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	logger.Printf("Render completed in %v (%d samples, average luminance %.3f)\n",
		stats.Duration, stats.TotalSamples, renderer.CalculateAverageLuminance(img))

	outputPath := createOutputPath(opts.output, opts.sceneName, time.Now())
	if err := writeImage(img, outputPath, stdout); err != nil {
		return err
	}
	if outputPath != "-" {
		logger.Printf("Render saved as %s\n", outputPath)
	}
	return nil
}

// parseFlags reads the command line, letting explicitly set flags win over
// values from the -config file
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	defaults := renderer.DefaultRenderConfig()

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.sceneName, "scene", "random-spheres", "Scene to render (see -list)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum ray bounces (0 = scene default)")
	fs.Int64Var(&opts.seed, "seed", defaults.Seed, "Random seed for scene generation and sampling")
	fs.IntVar(&opts.workers, "workers", defaults.NumWorkers, "Number of parallel workers (0 = use CPU count)")
	fs.StringVar(&opts.output, "output", "-", "Output file: '-' writes PPM to stdout, *.png writes PNG, "+
		"a path ending in / gets a timestamped PNG per scene, anything else is PPM")
	fs.StringVar(&opts.configPath, "config", "", "JSON file with render settings")
	fs.StringVar(&opts.integrator, "integrator", "path", "Integrator: 'path' or 'normals'")
	fs.BoolVar(&opts.list, "list", false, "List available scenes")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if opts.configPath != "" {
		cfg, err := renderer.LoadFileConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		applyFileConfig(opts, cfg, set)
	}

	if opts.width < 0 || opts.samples < 0 || opts.depth < 0 || opts.workers < 0 {
		return nil, fmt.Errorf("width, samples, depth and workers must not be negative")
	}

	return opts, nil
}

// applyFileConfig copies the non-zero values of cfg into opts unless the
// matching flag was given on the command line
func applyFileConfig(opts *options, cfg *renderer.FileConfig, set map[string]bool) {
	if cfg.Scene != "" && !set["scene"] {
		opts.sceneName = cfg.Scene
	}
	if cfg.Width != 0 && !set["width"] {
		opts.width = cfg.Width
	}
	if cfg.SamplesPerPixel != 0 && !set["samples"] {
		opts.samples = cfg.SamplesPerPixel
	}
	if cfg.MaxDepth != 0 && !set["depth"] {
		opts.depth = cfg.MaxDepth
	}
	if cfg.Seed != nil && !set["seed"] {
		opts.seed = *cfg.Seed
	}
	if cfg.NumWorkers != 0 && !set["workers"] {
		opts.workers = cfg.NumWorkers
	}
	if cfg.Output != "" && !set["output"] {
		opts.output = cfg.Output
	}
}

// createScene builds the named scene and applies the size and sampling overrides
func createScene(opts *options, logger core.Logger) (*scene.Scene, error) {
	selectedScene, err := scene.Build(opts.sceneName, opts.seed, logger, geometry.CameraConfig{Width: opts.width})
	if err != nil {
		return nil, err
	}

	if opts.samples > 0 {
		selectedScene.SamplingConfig.SamplesPerPixel = opts.samples
	}
	if opts.depth > 0 {
		selectedScene.SamplingConfig.MaxDepth = opts.depth
	}
	return selectedScene, nil
}

// createIntegrator selects the light transport algorithm by name
func createIntegrator(name string, maxDepth int) (integrator.Integrator, error) {
	switch name {
	case "path":
		return integrator.NewPathTracingIntegrator(maxDepth), nil
	case "normals":
		return integrator.NewNormalsIntegrator(), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q (available: path, normals)", name)
	}
}

// createOutputPath resolves a directory output into output/<scene>/render_<timestamp>.png
func createOutputPath(output, sceneName string, now time.Time) string {
	if !strings.HasSuffix(output, "/") {
		return output
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join(output, sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// writeImage writes img to path, picking the format from the extension.
// "-" writes PPM to stdout.
func writeImage(img *image.RGBA, path string, stdout io.Writer) error {
	if path == "-" {
		return renderer.EncodePPM(stdout, img)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		if err := png.Encode(file, img); err != nil {
			return fmt.Errorf("failed to save PNG: %w", err)
		}
	} else if err := renderer.EncodePPM(file, img); err != nil {
		return err
	}

	return file.Close()
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Path Tracing Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-20s %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run with -h for the full list of options.")
	fmt.Fprintln(w, "Progress is written to stderr; with -output - the image goes to stdout as PPM.")
}
