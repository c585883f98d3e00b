package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/foilplot/foil"
	"github.com/foilplot/foil/plot"
	"github.com/foilplot/foil/plot/raster"
)

func newRenderCmd() *cobra.Command {
	var (
		flags  paramFlags
		width  int
		height int
		margin float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a section to a PNG file",
		Example: `  foilplot render
  foilplot render --camber 0.04 --thickness 0.15 --output section.png
  foilplot render --chord 2.0 --resolution 400 --width 1600 --height 900`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := flags.params()
			profile, err := foil.Generate(params)
			if err != nil {
				return fmt.Errorf("generate profile: %w", err)
			}

			c := raster.New(width, height)
			p := plot.New(float64(width), float64(height), plot.WithMargin(margin))
			if err := p.Render(c, profile, params); err != nil {
				return fmt.Errorf("render profile: %w", err)
			}
			if err := c.SavePNG(output); err != nil {
				return fmt.Errorf("save output: %w", err)
			}

			slog.Info("section rendered",
				"output", output,
				"width", width,
				"height", height,
				"points", len(profile))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&width, "width", 900, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 500, "image height in pixels")
	cmd.Flags().Float64Var(&margin, "margin", plot.DefaultMargin, "drawing area inset in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "foil.png", "output file path")
	return cmd
}
