package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/sampler"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestRender_WritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	args := []string{"whitted", "render",
		"--scene", "spheres",
		"--width", "24", "--height", "16",
		"--spp", "1", "--sampler", "regular",
		"--tile-size", "8", "--workers", "2",
		"--out", out,
	}
	if err := NewApp().Run(args); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Expected an output file: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Expected a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 16 {
		t.Errorf("Expected a 24x16 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"unknown scene", []string{"--scene", "teapot"}, scene.ErrUnknownScene},
		{"unknown sampler", []string{"--sampler", "sobol"}, sampler.ErrInvalidPattern},
		{"non-square sample count", []string{"--spp", "5", "--sampler", "jittered"}, sampler.ErrInvalidPattern},
		{"zero width", []string{"--width", "0"}, renderer.ErrInvalidConfig},
		{"negative workers", []string{"--workers", "-2"}, renderer.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "frame.png")
			args := append([]string{"whitted", "render", "--width", "8", "--height", "8", "--out", out}, tt.args...)
			err := NewApp().Run(args)
			if !xerrors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if _, statErr := os.Stat(out); statErr == nil {
				t.Error("Expected no output file after a failed render")
			}
		})
	}
}

func TestScenes_ListsRegistry(t *testing.T) {
	var buf bytes.Buffer
	app := NewApp()
	app.Writer = &buf
	if err := app.Run([]string{"whitted", "scenes"}); err != nil {
		t.Fatalf("scenes failed: %v", err)
	}

	for _, name := range scene.Names() {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("Expected %q in the listing, got:\n%s", name, buf.String())
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	t.Cleanup(func() { log.SetLevel(log.Notice) })

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"verbose", []string{"whitted", "-v", "scenes"}, "occlusion"},
		{"very verbose", []string{"whitted", "-vv", "scenes"}, "occlusion"},
		{"version", []string{"whitted", "--version"}, "0.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := NewApp()
			app.Writer = &buf
			if err := app.Run(tt.args); err != nil {
				t.Fatalf("Expected %v to succeed, got %v", tt.args, err)
			}
			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("Expected %q in the output, got:\n%s", tt.expected, buf.String())
			}
		})
	}
}
