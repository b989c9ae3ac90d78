package recording

import "github.com/gogpu/debugtex"

// CommandType identifies the type of a command.
// Each command type corresponds to a specific drawing primitive.
type CommandType uint8

const (
	CmdLayer    CommandType = iota // Start a named element group
	CmdFillRect                    // Fill an axis-aligned rectangle
	CmdLine                        // Stroke a clipped line segment
	CmdCircle                      // Stroke a clipped circle outline
	CmdArc                         // Stroke a circular arc
	CmdText                        // Draw a centered text label
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdLayer:    "Layer",
	CmdFillRect: "FillRect",
	CmdLine:     "Line",
	CmdCircle:   "Circle",
	CmdArc:      "Arc",
	CmdText:     "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Stroke is the outline style of lines, circles and arcs.
type Stroke struct {
	Width float64
	Color debugtex.RGBA
}

// LayerCommand marks the start of a named group of elements.
// Every command up to the next LayerCommand belongs to the group.
type LayerCommand struct {
	Name string
}

// Type implements Command.
func (LayerCommand) Type() CommandType { return CmdLayer }

// FillRectCommand fills a rectangle with a solid color and no outline.
type FillRectCommand struct {
	Rect  debugtex.Box
	Color debugtex.RGBA
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// LineCommand strokes a line segment. Lines are clipped to the canvas,
// so endpoints may lie outside of it.
type LineCommand struct {
	From, To debugtex.Point
	Stroke   Stroke
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// CircleCommand strokes an unfilled circle, clipped to the canvas.
type CircleCommand struct {
	Center debugtex.Point
	Radius float64
	Stroke Stroke
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// ArcCommand strokes the arc of a circle from Start to End degrees.
// Unlike circles, arcs are not clipped.
type ArcCommand struct {
	Center     debugtex.Point
	Radius     float64
	Start, End float64
	Stroke     Stroke
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// TextCommand draws a bold sans-serif label centered on Anchor both
// horizontally and vertically.
type TextCommand struct {
	Anchor   debugtex.Point
	Text     string
	FontSize float64
	// Fill is the glyph color, Outline the glyph stroke color.
	Fill    debugtex.RGBA
	Outline debugtex.RGBA
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }
