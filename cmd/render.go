package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/sampler"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderFrame renders a single frame of a built-in scene
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	config, err := renderConfig(ctx)
	if err != nil {
		return err
	}
	logHostInfo()

	def, err := scene.Load(ctx.String("scene"), core.DefaultKDTreeConfig(), log.Printer(logger, log.Debug))
	if err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(def.Scene, def.Camera, config, log.Printer(logger, log.Info))
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	buffer, stats, err := rt.Render(renderCtx)
	if err != nil {
		if !xerrors.Is(err, renderer.ErrInterrupted) {
			return err
		}
		logger.Warningf("render interrupted, saving %d of %d tiles", stats.Tiles, len(buffer.Tiles()))
	}
	displayRenderStats(stats)

	out := ctx.String("out")
	if err := writePNG(out, buffer, config.Gamma); err != nil {
		return err
	}
	logger.Noticef("frame saved to %s", out)
	return nil
}

func renderConfig(ctx *cli.Context) (renderer.Config, error) {
	config := renderer.DefaultConfig()
	config.Width = ctx.Int("width")
	config.Height = ctx.Int("height")
	config.SamplesPerPixel = ctx.Int("spp")
	config.TileSize = ctx.Int("tile-size")
	config.MaxDepth = ctx.Int("max-depth")
	config.Gamma = ctx.Float64("gamma")

	config.NumWorkers = ctx.Int("workers")
	if config.NumWorkers == 0 {
		config.NumWorkers = defaultWorkers()
	}

	kind, err := sampler.ParseKind(ctx.String("sampler"))
	if err != nil {
		return config, err
	}
	config.SamplerKind = kind

	return config, config.Validate()
}

func writePNG(filename string, buffer *renderer.RenderBuffer, gamma float64) error {
	f, err := os.Create(filename)
	if err != nil {
		return xerrors.Errorf("while creating %s: %w", filename, err)
	}
	defer f.Close()

	if err := png.Encode(f, buffer.Image(gamma)); err != nil {
		return xerrors.Errorf("while encoding %s: %w", filename, err)
	}
	return f.Close()
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "Samples", "Busy"})
	for _, ws := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", ws.Worker),
			fmt.Sprintf("%d", ws.Tiles),
			fmt.Sprintf("%d", ws.Pixels),
			fmt.Sprintf("%d", ws.Samples),
			ws.Busy.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Pixels),
		fmt.Sprintf("%d", stats.Samples),
		stats.Duration.String(),
	})

	table.Render()
	logger.Noticef("render statistics (%.0f samples/s)\n%s", stats.SamplesPerSecond(), buf.String())
}
