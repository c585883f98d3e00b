// Command foilplot renders NACA 4-digit airfoil sections, either to a
// PNG file or in an interactive window with parameter sliders.
package main

import (
	"log/slog"
	"os"

	"github.com/foilplot/foil"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	foil.SetLogger(logger)

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
