package texture

import (
	"github.com/gogpu/debugtex"
	"github.com/gogpu/debugtex/recording"
)

// WrapOffsets returns the positions of a tile and its eight neighbours on a
// canvas of the given size: the tile itself first, then the edge neighbours,
// then the corner neighbours.
func WrapOffsets(size float64) [9]debugtex.Point {
	return [9]debugtex.Point{
		{X: 0, Y: 0},
		{X: -size, Y: 0},
		{X: size, Y: 0},
		{X: 0, Y: -size},
		{X: 0, Y: size},
		{X: -size, Y: -size},
		{X: size, Y: -size},
		{X: -size, Y: size},
		{X: size, Y: size},
	}
}

// wrappedCircle draws a circle centered on the canvas and its copies on the
// eight neighbouring tiles, so the pattern lines up when the texture repeats.
// The copy on the tile itself has radius r; the neighbour copies use
// neighbourR, which brings their arcs back across the shared edges.
func wrappedCircle(rec *recording.Recorder, size, r, neighbourR float64, s recording.Stroke) {
	center := debugtex.Pt(size/2, size/2)
	for i, off := range WrapOffsets(size) {
		c := center.Add(off)
		radius := neighbourR
		if i == 0 {
			radius = r
		}
		rec.Circle(c.X, c.Y, radius, s)
	}
}
