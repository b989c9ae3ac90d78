package recording

import (
	"io"

	"github.com/gogpu/debugtex"
)

// Backend is the interface that all output backends must implement.
// Backends receive drawing primitives in recording order and translate them
// to their output format.
//
// Drawing methods do not return errors. A backend that fails while drawing
// must remember the first error and return it from End.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Clip lines and circles to the canvas
//
// # Example Backend Registration
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return svg.NewBackend()
//	    })
//	}
type Backend interface {
	// Begin initializes the backend for a canvas of the given dimensions.
	// It must be called before any drawing operation.
	Begin(width, height int) error

	// End finalizes the output. After End, output methods (WriteTo,
	// SaveToFile) can be used. It returns the first error seen since Begin.
	End() error

	// BeginLayer is called at the start of each named element group.
	BeginLayer(name string)

	// FillRect fills a rectangle with a solid color.
	FillRect(rect debugtex.Box, color debugtex.RGBA)

	// Line strokes a segment clipped to the canvas.
	Line(from, to debugtex.Point, stroke Stroke)

	// Circle strokes an unfilled circle clipped to the canvas.
	Circle(center debugtex.Point, radius float64, stroke Stroke)

	// Arc strokes a circular arc from start to end degrees.
	Arc(center debugtex.Point, radius, start, end float64, stroke Stroke)

	// Text draws a label centered on its anchor.
	Text(cmd TextCommand)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}
