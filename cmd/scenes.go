package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ListScenes prints the registered scenes
func ListScenes(ctx *cli.Context) error {
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, name := range scene.Names() {
		entry, err := scene.Lookup(name)
		if err != nil {
			return err
		}
		table.Append([]string{entry.Name, entry.Description})
	}
	table.Render()
	return nil
}
