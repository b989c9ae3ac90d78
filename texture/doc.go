// Package texture draws the debug textures.
//
// Each generator validates a debugtex.Config, records its primitives with a
// recording.Recorder and returns the finished Recording. Generate plays the
// recordings back to a backend and writes one file per texture.
//
// Elements are grouped into named layers (see the Layer* constants) so
// callers can inspect one family of shapes at a time.
package texture
