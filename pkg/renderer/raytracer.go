package renderer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidConfig is returned when a render configuration cannot be used
var ErrInvalidConfig = errors.New("invalid render config")

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width           int             // Image width in pixels
	Height          int             // Image height in pixels
	SamplesPerPixel int             // Number of jittered rays per pixel
	MaxDepth        int             // Maximum recursion depth for the whitted mode
	Mode            integrator.Mode // Shading function invoked per sample
	Seed            int64           // Random seed; identical seeds give identical images
	NumWorkers      int             // 1 = sequential, 0 = use CPU count, >1 = tiled worker pool
	TileSize        int             // Tile edge length for the worker pool (default 32)
	Camera          CameraConfig    // Zero fields derive from the image size
	Bias            integrator.Bias // Ray offsets; zero fields take their integrator.DefaultBias() value
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 16,
		MaxDepth:        5,
		Mode:            integrator.ModeWhitted,
		Seed:            42,
		NumWorkers:      1,
		TileSize:        32,
	}
}

// Validate checks the configuration
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must be non-negative, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count must be non-negative, got %d", ErrInvalidConfig, c.NumWorkers)
	case c.TileSize < 0:
		return fmt.Errorf("%w: tile size must be non-negative, got %d", ErrInvalidConfig, c.TileSize)
	}
	if _, err := integrator.ParseMode(string(c.Mode)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Bias.WithDefaults().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	config     RenderConfig
	camera     *Camera
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(sc *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, fmt.Errorf("%w: scene is nil", scene.ErrInvalidScene)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	integ, err := integrator.New(config.Mode, config.Bias.WithDefaults())
	if err != nil {
		return nil, err
	}

	cameraConfig := config.Camera
	if cameraConfig.AspectRatio <= 0 {
		cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)
	}
	if config.TileSize == 0 {
		config.TileSize = 32
	}

	return &Raytracer{
		scene:      sc,
		config:     config,
		camera:     NewCamera(cameraConfig),
		integrator: integ,
		logger:     logger,
	}, nil
}

// Render is the single-call entry point: it renders the scene and returns a
// row-major buffer of width*height unclamped colors with row 0 at the top.
func Render(sc *scene.Scene, config RenderConfig) ([]core.Vec3, error) {
	rt, err := NewRaytracer(sc, config, nil)
	if err != nil {
		return nil, err
	}
	frame, _, err := rt.Render(context.Background())
	if err != nil {
		return nil, err
	}
	return frame.Pixels, nil
}

// Render renders the full frame. A cancelled context aborts the whole render;
// no partial frame is returned.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	startTime := time.Now()
	frame := NewFrame(rt.config.Width, rt.config.Height)

	workers := rt.config.NumWorkers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	rt.logger.Printf("Rendering %dx%d, %d samples/pixel, mode %s, depth %d, %d worker(s)...\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.Mode, rt.config.MaxDepth, workers)

	var stats RenderStats
	var err error
	if workers == 1 {
		stats, err = rt.renderSequential(ctx, frame)
		stats.Workers = 1
	} else {
		stats, err = rt.renderParallel(ctx, frame, workers)
	}
	if err != nil {
		rt.logger.Printf("Render aborted: %v\n", err)
		return nil, RenderStats{}, err
	}

	stats.Duration = time.Since(startTime)
	stats.finalize()

	rt.logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)
	return frame, stats, nil
}

// renderSequential consumes a single random stream in raster order:
// rows top to bottom, pixels left to right, two draws per sample
func (rt *Raytracer) renderSequential(ctx context.Context, frame *Frame) (RenderStats, error) {
	random := rand.New(rand.NewSource(rt.config.Seed))
	var stats RenderStats

	for j := 0; j < rt.config.Height; j++ {
		if err := ctx.Err(); err != nil {
			return RenderStats{}, err
		}
		for i := 0; i < rt.config.Width; i++ {
			frame.Set(i, j, rt.samplePixel(i, j, random))
		}
		stats.TotalPixels += rt.config.Width
		stats.TotalSamples += rt.config.Width * rt.config.SamplesPerPixel
	}

	return stats, nil
}

// samplePixel averages SamplesPerPixel jittered camera rays through pixel (i, j)
func (rt *Raytracer) samplePixel(i, j int, random *rand.Rand) core.Vec3 {
	var ps PixelStats
	width := float64(rt.config.Width)
	height := float64(rt.config.Height)

	// Image row 0 is the top of the viewport
	row := float64(rt.config.Height - 1 - j)

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(i) + random.Float64()) / width
		v := (row + random.Float64()) / height

		ray := rt.camera.GetRay(u, v)
		ps.AddSample(rt.integrator.RayColor(ray, rt.scene, rt.config.MaxDepth))
	}

	return ps.GetColor()
}
