// Package foil generates NACA 4-digit airfoil sections.
//
// # Overview
//
// foil is a pure Go implementation of the classic NACA 4-digit airfoil
// family. It maps four scalar parameters (maximum camber, maximum
// thickness, chord length, chordwise resolution) to an ordered closed
// boundary polyline, ready for plotting or further processing.
//
// # Quick Start
//
//	import "github.com/foilplot/foil"
//
//	params := foil.Params{Camber: 0.02, Thickness: 0.12, Chord: 1.0, Resolution: 100}
//	profile, err := foil.Generate(params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// profile holds 2n+2 points: lower surface trailing edge to leading
//	// edge, then upper surface leading edge to trailing edge.
//
// # Architecture
//
// The module is organized into:
//   - Public API: Params, Point, Profile, Session (this package)
//   - plot: device-independent plotting of profiles onto a Canvas
//   - plot/raster: image-backed Canvas with PNG output
//   - cmd/foilplot: CLI for offline rendering and the interactive viewer
//
// # Coordinate System
//
// Profiles use airfoil coordinates: x runs from 0 (leading edge) to
// chord (trailing edge), y is positive above the chord line. Mapping
// into a y-down pixel surface is the plot package's job.
//
// # Determinism
//
// Generation is a pure function: identical parameters always produce
// identical point sequences. Nothing is cached or mutated in place.
package foil

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
