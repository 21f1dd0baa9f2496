package renderer

import (
	"context"
	"testing"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/sampler"
)

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Expected the default config to be valid, got %v", err)
	}

	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero tile size", func(c *Config) { c.TileSize = 0 }},
		{"negative workers", func(c *Config) { c.NumWorkers = -2 }},
		{"zero samples", func(c *Config) { c.SamplesPerPixel = 0 }},
		{"zero sample sets", func(c *Config) { c.SampleSets = 0 }},
		{"zero max depth", func(c *Config) { c.MaxDepth = 0 }},
		{"zero gamma", func(c *Config) { c.Gamma = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if err := config.Validate(); !xerrors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewRaytracer_RejectsBadSampleCount(t *testing.T) {
	config := DefaultConfig()
	config.SamplerKind = sampler.Jittered
	config.SamplesPerPixel = 10

	_, err := NewRaytracer(newTestScene(), testCameraConfig(), config, testLogger{t})
	if !xerrors.Is(err, sampler.ErrInvalidPattern) {
		t.Errorf("Expected ErrInvalidPattern, got %v", err)
	}
}

func TestRaytracer_Render(t *testing.T) {
	config := DefaultConfig()
	config.Width, config.Height = 32, 24
	config.TileSize = 8
	config.NumWorkers = 3
	config.SamplesPerPixel = 4

	camera := testCameraConfig()
	camera.Eye = core.NewVec3(0, 1, 8)
	camera.LookAt = core.NewVec3(0, 1, 0)
	camera.Distance = 40
	camera.ViewWidth = 32

	rt, err := NewRaytracer(newTestScene(), camera, config, testLogger{t})
	if err != nil {
		t.Fatal(err)
	}
	buffer, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if stats.Pixels != 32*24 {
		t.Errorf("Expected %d pixels, got %d", 32*24, stats.Pixels)
	}
	// The sphere fills the middle of the frame
	if center := buffer.Pixel(16, 12); center.X <= center.Z {
		t.Errorf("Expected the reddish sphere at the center, got %v", center)
	}
	// Top corner sees sky
	if corner := buffer.Pixel(0, 0); corner.Subtract(core.NewVec3(0.2, 0.3, 0.5)).Length() > 1e-12 {
		t.Errorf("Expected background in the top corner, got %v", corner)
	}

	img := buffer.Image(config.Gamma)
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("Expected a 32x24 image, got %v", img.Bounds())
	}
}

func TestRaytracer_RenderCancelled(t *testing.T) {
	config := DefaultConfig()
	config.Width, config.Height = 16, 16
	config.SamplesPerPixel = 1

	rt, err := NewRaytracer(newTestScene(), testCameraConfig(), config, testLogger{t})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buffer, _, err := rt.Render(ctx)
	if !xerrors.Is(err, ErrInterrupted) {
		t.Errorf("Expected ErrInterrupted, got %v", err)
	}
	if buffer == nil {
		t.Error("Expected the partial buffer to be returned")
	}
}
