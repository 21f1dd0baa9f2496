package renderer

import (
	"context"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/sampler"
)

// Config contains rendering configuration
type Config struct {
	Width           int          // Image width in pixels
	Height          int          // Image height in pixels
	TileSize        int          // Edge length of a scheduling tile in pixels
	NumWorkers      int          // Worker goroutines; 0 means one per CPU
	SamplesPerPixel int          // Primary rays per pixel
	SampleSets      int          // Independent sample sets in the pattern
	SamplerKind     sampler.Kind // Sample pattern generator
	MaxDepth        int          // Deepest recursion level for secondary rays
	Seed            uint64       // Seed for the sample pattern
	Gamma           float64      // Display gamma for image output
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          300,
		TileSize:        32,
		NumWorkers:      0,
		SamplesPerPixel: 16,
		SampleSets:      83,
		SamplerKind:     sampler.MultiJittered,
		MaxDepth:        5,
		Seed:            42,
		Gamma:           2.2,
	}
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return xerrors.Errorf("image size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.TileSize <= 0:
		return xerrors.Errorf("tile size %d: %w", c.TileSize, ErrInvalidConfig)
	case c.NumWorkers < 0:
		return xerrors.Errorf("worker count %d: %w", c.NumWorkers, ErrInvalidConfig)
	case c.SamplesPerPixel <= 0:
		return xerrors.Errorf("samples per pixel %d: %w", c.SamplesPerPixel, ErrInvalidConfig)
	case c.SampleSets <= 0:
		return xerrors.Errorf("sample sets %d: %w", c.SampleSets, ErrInvalidConfig)
	case c.MaxDepth <= 0:
		return xerrors.Errorf("max depth %d: %w", c.MaxDepth, ErrInvalidConfig)
	case c.Gamma <= 0:
		return xerrors.Errorf("gamma %g: %w", c.Gamma, ErrInvalidConfig)
	}
	return nil
}

// Raytracer wires a scene, a camera and a configuration into a render
type Raytracer struct {
	scene     core.Scene
	camera    *PinholeCamera
	tracer    *integrator.Whitted
	pattern   *sampler.Pattern
	scheduler *Scheduler
	config    Config
	logger    core.Logger
}

// NewRaytracer validates the configuration and prepares every render
// component. The scene must already be built.
func NewRaytracer(scene core.Scene, cameraConfig CameraConfig, config Config, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	camera, err := NewPinholeCamera(cameraConfig, config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	tracer, err := integrator.NewWhitted(config.MaxDepth)
	if err != nil {
		return nil, xerrors.Errorf("while creating tracer: %w", err)
	}
	pattern, err := sampler.New(config.SamplerKind, config.SamplesPerPixel, config.SampleSets, config.Seed)
	if err != nil {
		return nil, xerrors.Errorf("while creating sample pattern: %w", err)
	}

	return &Raytracer{
		scene:     scene,
		camera:    camera,
		tracer:    tracer,
		pattern:   pattern,
		scheduler: NewScheduler(config.NumWorkers, logger),
		config:    config,
		logger:    logger,
	}, nil
}

// Config returns the configuration the raytracer was created with
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Render renders the full image. On cancellation the partially filled
// buffer is returned along with an error wrapping ErrInterrupted.
func (rt *Raytracer) Render(ctx context.Context) (*RenderBuffer, RenderStats, error) {
	buffer := NewRenderBuffer(rt.config.Width, rt.config.Height, rt.config.TileSize)
	rt.logger.Printf("%dx%d, %d %s samples per pixel, max depth %d",
		rt.config.Width, rt.config.Height, rt.pattern.NumSamples(), rt.pattern.Kind(), rt.tracer.MaxDepth())

	stats, err := rt.scheduler.Render(ctx, Job{
		Scene:   rt.scene,
		Camera:  rt.camera,
		Tracer:  rt.tracer,
		Pattern: rt.pattern,
		Buffer:  buffer,
	})
	if err != nil {
		return buffer, stats, xerrors.Errorf("while rendering: %w", err)
	}
	return buffer, stats, nil
}
