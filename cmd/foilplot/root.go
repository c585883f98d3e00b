package main

import (
	"github.com/spf13/cobra"

	"github.com/foilplot/foil"
)

// paramFlags holds the four geometry inputs shared by all subcommands.
type paramFlags struct {
	camber     float64
	thickness  float64
	chord      float64
	resolution int
}

// params converts the flag values to a foil.Params, clamped to the
// declared ranges so out-of-range flag values behave like an input
// control pinned at its bound.
func (f *paramFlags) params() foil.Params {
	return foil.Params{
		Camber:     f.camber,
		Thickness:  f.thickness,
		Chord:      f.chord,
		Resolution: f.resolution,
	}.Clamp()
}

// register adds the parameter flags to a command.
func (f *paramFlags) register(cmd *cobra.Command) {
	defaults := foil.DefaultParams()
	cmd.Flags().Float64Var(&f.camber, "camber", defaults.Camber,
		"maximum camber as a fraction of chord (0 to 0.1)")
	cmd.Flags().Float64Var(&f.thickness, "thickness", defaults.Thickness,
		"maximum thickness as a fraction of chord (0 to 0.2)")
	cmd.Flags().Float64Var(&f.chord, "chord", defaults.Chord,
		"chord length in length units (0.5 to 2.0)")
	cmd.Flags().IntVar(&f.resolution, "resolution", defaults.Resolution,
		"number of chordwise stations (20 to 500)")
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "foilplot",
		Short:         "Plot NACA 4-digit airfoil sections",
		Long:          `foilplot generates NACA 4-digit airfoil sections and plots them against a reference grid, offline to PNG or live in a window.`,
		Version:       foil.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newViewCmd())
	return cmd
}
