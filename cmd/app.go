// Package cmd implements the command line interface.
package cmd

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/sampler"
)

// NewApp creates the command line application
func NewApp() *cli.App {
	defaults := renderer.DefaultConfig()

	// The default version flag claims -v, which is the verbosity switch here
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes with a Whitted-style raytracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a PNG file",
			Description: `
Build the named scene and its kd-tree, trace every pixel with a pool of
workers and write the gamma-corrected image. Interrupting the render with
Ctrl-C stops the workers and saves whatever tiles were finished.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "spheres",
					Usage: "scene name, see the scenes command",
				},
				cli.IntFlag{
					Name:  "width",
					Value: defaults.Width,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: defaults.Height,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: defaults.SamplesPerPixel,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: defaults.TileSize,
					Usage: "edge length of a render tile in pixels",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 0,
					Usage: "render workers, 0 for one per logical CPU",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: defaults.MaxDepth,
					Usage: "maximum recursion depth for reflected and transmitted rays",
				},
				cli.StringFlag{
					Name:  "sampler",
					Value: defaults.SamplerKind.String(),
					Usage: "sample pattern: " + strings.Join(sampler.Kinds(), ", "),
				},
				cli.Float64Flag{
					Name:  "gamma",
					Value: defaults.Gamma,
					Usage: "display gamma",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: ListScenes,
		},
	}
	return app
}
