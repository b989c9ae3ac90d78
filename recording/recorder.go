package recording

import (
	"github.com/gogpu/debugtex"
)

// Recorder captures drawing primitives as commands, in call order.
// Later commands are drawn over earlier ones. Use FinishRecording to obtain
// an immutable Recording that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(2048, 2048)
//	rec.BeginLayer("background")
//	rec.FillRect(debugtex.Rect(0, 0, 2048, 2048), debugtex.RGB(0.15, 0.15, 0.15))
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

// NewRecorder creates a new Recorder for a canvas of the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Record appends an arbitrary command.
func (r *Recorder) Record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// BeginLayer starts a named group. Commands recorded until the next
// BeginLayer belong to it.
func (r *Recorder) BeginLayer(name string) {
	r.Record(LayerCommand{Name: name})
}

// FillRect fills box with color.
func (r *Recorder) FillRect(box debugtex.Box, color debugtex.RGBA) {
	r.Record(FillRectCommand{Rect: box, Color: color})
}

// Line strokes the segment from (x1, y1) to (x2, y2).
func (r *Recorder) Line(x1, y1, x2, y2 float64, s Stroke) {
	r.Record(LineCommand{From: debugtex.Pt(x1, y1), To: debugtex.Pt(x2, y2), Stroke: s})
}

// Circle strokes the outline of the circle at (cx, cy) with the given radius.
func (r *Recorder) Circle(cx, cy, radius float64, s Stroke) {
	r.Record(CircleCommand{Center: debugtex.Pt(cx, cy), Radius: radius, Stroke: s})
}

// Arc strokes the arc of the circle at (cx, cy) between start and end,
// in degrees.
func (r *Recorder) Arc(cx, cy, radius, start, end float64, s Stroke) {
	r.Record(ArcCommand{Center: debugtex.Pt(cx, cy), Radius: radius, Start: start, End: end, Stroke: s})
}

// Text draws s centered on anchor.
func (r *Recorder) Text(anchor debugtex.Point, s string, fontSize float64, fill, outline debugtex.RGBA) {
	r.Record(TextCommand{Anchor: anchor, Text: s, FontSize: fontSize, Fill: fill, Outline: outline})
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation, any number of times.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands, layer markers included.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Layers returns the layer names in recording order.
func (r *Recording) Layers() []string {
	var names []string
	for _, cmd := range r.commands {
		if l, ok := cmd.(LayerCommand); ok {
			names = append(names, l.Name)
		}
	}
	return names
}

// Layer returns the commands of the named layer, without the layer marker.
// If the name occurs more than once, the groups are concatenated.
// Returns nil if there is no such layer.
func (r *Recording) Layer(name string) []Command {
	var (
		out    []Command
		inside bool
	)
	for _, cmd := range r.commands {
		if l, ok := cmd.(LayerCommand); ok {
			inside = l.Name == name
			continue
		}
		if inside {
			out = append(out, cmd)
		}
	}
	return out
}

// Playback replays the recording to the given backend.
// It returns the first error from Begin or End; backends report
// drawing failures from End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case LayerCommand:
			backend.BeginLayer(c.Name)
		case FillRectCommand:
			backend.FillRect(c.Rect, c.Color)
		case LineCommand:
			backend.Line(c.From, c.To, c.Stroke)
		case CircleCommand:
			backend.Circle(c.Center, c.Radius, c.Stroke)
		case ArcCommand:
			backend.Arc(c.Center, c.Radius, c.Start, c.End, c.Stroke)
		case TextCommand:
			backend.Text(c)
		}
	}

	return backend.End()
}
