// Package debugtex generates static SVG debug textures for checking UV
// mapping on 3D models.
//
// # Overview
//
// Three textures are produced:
//   - tex_DebugGrid.svg: a dark canvas with a fine and a coarse grid
//   - tex_DebugUVTiles.svg: a 16x16 checkerboard of color coded, labeled cells
//     with alignment guides
//   - tex_DebugAlignment.svg: the same guides on a flat background
//
// # Architecture
//
// The module is organized into:
//   - debugtex: points, boxes, colors and the immutable Config
//   - recording: ordered primitive records and the Backend interface
//   - recording/backends/svg: serializes a recording to SVG markup
//   - texture: the grid and UV tile generators
//
// Generators never write output directly. They record primitives with a
// recording.Recorder and the resulting Recording is played back to a
// backend, so geometry can be tested without parsing markup.
//
// # Quick Start
//
//	rec, err := texture.UVTiles(debugtex.DefaultConfig(), texture.ModeCells)
//	if err != nil {
//	    // handle error
//	}
//	b := svg.NewBackend()
//	if err := rec.Playback(b); err != nil {
//	    // handle error
//	}
//	err = b.SaveToFile("tex_DebugUVTiles.svg")
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is right, 90 is down
package debugtex
