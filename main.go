package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/imageio"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	sceneFile string
	width     int
	height    int
	samples   int
	depth     int
	mode      string
	seed      int64
	workers   int
	output    string
	format    string
	help      bool

	set map[string]bool // flags given explicitly on the command line
}

// newFlagSet registers every command line flag into opts
func newFlagSet(opts *options) *flag.FlagSet {
	defaults := renderer.DefaultRenderConfig()
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)

	fs.StringVar(&opts.sceneName, "scene", "whitted", "Built-in scene: "+strings.Join(scene.Names(), ", "))
	fs.StringVar(&opts.sceneFile, "scene-file", "", "Path to a JSON scene file (overrides -scene)")
	fs.IntVar(&opts.width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&opts.height, "height", defaults.Height, "Image height in pixels")
	fs.IntVar(&opts.samples, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&opts.depth, "depth", defaults.MaxDepth, "Maximum recursion depth")
	fs.StringVar(&opts.mode, "mode", string(defaults.Mode), "Shading mode: normals, shadows or whitted")
	fs.Int64Var(&opts.seed, "seed", defaults.Seed, "Random seed for pixel jitter")
	fs.IntVar(&opts.workers, "workers", defaults.NumWorkers, "Worker goroutines (1 = sequential, 0 = all CPUs)")
	fs.StringVar(&opts.output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	fs.StringVar(&opts.format, "format", "", "Output format: ppm, png, bmp or tiff (default from -output extension, else png)")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	return fs
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// createScene loads the scene file if one is given, otherwise the named built-in scene
func createScene(opts options) (*scene.Scene, error) {
	if opts.sceneFile != "" {
		return loaders.LoadSceneFile(opts.sceneFile)
	}
	return scene.Lookup(opts.sceneName)
}

// buildConfig starts from the scene's recommended settings and applies explicit flags on top
func buildConfig(opts options, sc *scene.Scene) (renderer.RenderConfig, error) {
	config := renderer.DefaultRenderConfig()

	d := sc.Defaults
	if d.Width > 0 && d.Height > 0 {
		config.Width, config.Height = d.Width, d.Height
	}
	if d.SamplesPerPixel > 0 {
		config.SamplesPerPixel = d.SamplesPerPixel
	}
	if d.MaxDepth != nil {
		config.MaxDepth = *d.MaxDepth
	}
	if d.Mode != "" {
		config.Mode = integrator.Mode(d.Mode)
	}

	if opts.set["width"] {
		config.Width = opts.width
	}
	if opts.set["height"] {
		config.Height = opts.height
	}
	if opts.set["samples"] {
		config.SamplesPerPixel = opts.samples
	}
	if opts.set["depth"] {
		config.MaxDepth = opts.depth
	}
	if opts.set["mode"] {
		mode, err := integrator.ParseMode(opts.mode)
		if err != nil {
			return renderer.RenderConfig{}, err
		}
		config.Mode = mode
	}
	config.Seed = opts.seed
	config.NumWorkers = opts.workers

	return config, config.Validate()
}

// outputPath resolves the destination file and its format
func outputPath(opts options, now time.Time) (string, imageio.Format, error) {
	if opts.output != "" {
		if opts.format != "" {
			format, err := imageio.ParseFormat(opts.format)
			if err != nil {
				return "", "", err
			}
			if ext, err := imageio.FormatFromPath(opts.output); err != nil || ext != format {
				return "", "", fmt.Errorf("output %s does not match format %s", opts.output, format)
			}
			return opts.output, format, nil
		}
		format, err := imageio.FormatFromPath(opts.output)
		return opts.output, format, err
	}

	format := imageio.FormatPNG
	if opts.format != "" {
		var err error
		if format, err = imageio.ParseFormat(opts.format); err != nil {
			return "", "", err
		}
	}

	name := opts.sceneName
	if opts.sceneFile != "" {
		name = strings.TrimSuffix(filepath.Base(opts.sceneFile), filepath.Ext(opts.sceneFile))
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.%s", timestamp, format)), format, nil
}

func printHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs := newFlagSet(&options{})
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-8s - %s\n", info.Name, info.Description)
	}
}

func run(opts options) error {
	sc, err := createScene(opts)
	if err != nil {
		return fmt.Errorf("loading scene: %w", err)
	}

	config, err := buildConfig(opts, sc)
	if err != nil {
		return err
	}

	path, _, err := outputPath(opts, time.Now())
	if err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(sc, config, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	frame, stats, err := rt.Render(context.Background())
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	fmt.Printf("Samples per pixel: %.1f, workers: %d\n", stats.AverageSamples, stats.Workers)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	pixels := imageio.Quantize(frame.Pixels, 0, 1)
	if err := imageio.Save(path, frame.Width, frame.Height, pixels); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}

	fmt.Printf("Render saved as %s\n", path)
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if opts.help {
		printHelp()
		return
	}

	fmt.Println("Starting Whitted Raytracer...")
	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
