package main

import (
	"github.com/spf13/cobra"

	"github.com/foilplot/foil/internal/ui"
)

func newViewCmd() *cobra.Command {
	var flags paramFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive viewer",
		Long: `Open a window with the plotted section and four sliders
(camber, thickness, chord, resolution). The profile is regenerated and
redrawn on every parameter change.`,
		Example: `  foilplot view
  foilplot view --camber 0.04 --thickness 0.15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.Run(flags.params())
		},
	}

	flags.register(cmd)
	return cmd
}
