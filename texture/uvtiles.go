package texture

import (
	"github.com/gogpu/debugtex"
	"github.com/gogpu/debugtex/recording"
)

// Mode selects the variant of the UV tile texture.
type Mode uint8

const (
	// ModeCells draws color coded, labeled cells with diagonal accents and
	// quarter-cell ticks under the alignment guides.
	ModeCells Mode = iota

	// ModeAlignment draws only the alignment guides on a flat background.
	ModeAlignment
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeCells:
		return "cells"
	case ModeAlignment:
		return "alignment"
	default:
		return "unknown"
	}
}

// UVTiles records the UV tile texture in the given mode.
//
// Both modes share the cell borders, angle lines, circles, main diagonals
// and frame, which are recorded identically. ModeCells additionally records
// the colored cells, diagonal accents, ticks and labels.
func UVTiles(cfg debugtex.Config, mode Mode) (*recording.Recording, error) {
	if err := cfg.ValidateUVTiles(); err != nil {
		return nil, err
	}
	cells := mode == ModeCells

	rec := recording.NewRecorder(cfg.Canvas, cfg.Canvas)
	if cells {
		drawCells(rec, cfg)
		drawCellDiagonals(rec, cfg)
		drawTicks(rec, cfg)
	} else {
		rec.BeginLayer(LayerBackground)
		rec.FillRect(cfg.Bounds(), cfg.Palette.Black)
	}
	drawBorders(rec, cfg)
	drawAngleLines(rec, cfg)
	drawCircles(rec, cfg)
	drawMainDiagonals(rec, cfg)
	drawFrame(rec, cfg)
	if cells {
		drawLabels(rec, cfg)
	}
	return rec.FinishRecording(), nil
}

// CellColor returns the fill of cell (x, y). Columns blend green to yellow
// along the top row and blue to red along the bottom row, rows blend
// between the two, and odd cells are darkened for a checkerboard.
func CellColor(cfg debugtex.Config, x, y int) debugtex.RGBA {
	pal := cfg.Palette
	n := float64(cfg.Cells - 1)
	tx := float64(x) / n
	ty := float64(y) / n

	top := debugtex.Interpolate(pal.Green, pal.Yellow, tx)
	bottom := debugtex.Interpolate(pal.Blue, pal.Red, tx)
	c := debugtex.Interpolate(top, bottom, ty)
	if (x+y)%2 == 1 {
		c = debugtex.Interpolate(c, pal.Black, 0.25)
	}
	return c
}

func drawCells(rec *recording.Recorder, cfg debugtex.Config) {
	rec.BeginLayer(LayerCells)
	for x := 0; x < cfg.Cells; x++ {
		for y := 0; y < cfg.Cells; y++ {
			rec.FillRect(cfg.Cell(x, y), CellColor(cfg, x, y))
		}
	}
}

// drawCellDiagonals draws 45 degree accents through every other cell
// corner, mirrored so they form an X across the canvas.
func drawCellDiagonals(rec *recording.Recorder, cfg debugtex.Config) {
	rec.BeginLayer(LayerDiagonals)
	size := cfg.Size()
	s := recording.Stroke{Width: cfg.Strokes.Normal, Color: cfg.Palette.Gray3.WithAlpha(0.5)}

	for i := 2; i < cfg.Cells; i += 2 {
		p0 := 0.0
		p1 := float64(i) * cfg.CellSize()
		mp0 := size - p0
		mp1 := size - p1

		rec.Line(p0, p1, p1, p0, s)
		rec.Line(mp0, mp1, mp1, mp0, s)

		rec.Line(p0, p1, mp1, mp0, s)
		rec.Line(p1, p0, mp0, mp1, s)
	}
}

// drawTicks draws the quarter-cell lines inside each cell.
func drawTicks(rec *recording.Recorder, cfg debugtex.Config) {
	rec.BeginLayer(LayerTicks)
	size := cfg.Size()
	quarter := cfg.CellSize() / 4
	s := recording.Stroke{Width: cfg.Strokes.Thin, Color: cfg.Palette.Yellow.WithAlpha(0.5)}

	for i := 0; i < cfg.Cells*4; i++ {
		if i%4 == 0 {
			continue
		}
		p := float64(i) * quarter
		rec.Line(0, p, size, p, s)
		rec.Line(p, 0, p, size, s)
	}
}

func drawBorders(rec *recording.Recorder, cfg debugtex.Config) {
	rec.BeginLayer(LayerBorders)
	size := cfg.Size()
	s := recording.Stroke{Width: cfg.Strokes.Normal, Color: cfg.Palette.Gray2}

	for i := 1; i < cfg.Cells; i++ {
		p := float64(i) * cfg.CellSize()
		rec.Line(0, p, size, p, s)
		rec.Line(p, 0, p, size, s)
	}
}

// drawAngleLines draws lines through the center at 15 and 30 degrees off
// each axis, for checking rotations.
func drawAngleLines(rec *recording.Recorder, cfg debugtex.Config) {
	rec.BeginLayer(LayerAngles)
	s := recording.Stroke{Width: cfg.Strokes.Normal, Color: cfg.Palette.Gray3.WithAlpha(0.75)}

	extent := cfg.Size() / 2
	t15 := extent * debugtex.TanDeg(15)
	t30 := extent * debugtex.TanDeg(30)

	p0 := 0.0
	p1 := extent - t30
	p2 := extent - t15
	p4 := extent + t15
	p5 := extent + t30
	p6 := extent + extent

	rec.Line(p0, p1, p6, p5, s)
	rec.Line(p0, p2, p6, p4, s)
	rec.Line(p0, p4, p6, p2, s)
	rec.Line(p0, p5, p6, p1, s)

	rec.Line(p1, p0, p5, p6, s)
	rec.Line(p2, p0, p4, p6, s)
	rec.Line(p4, p0, p2, p6, s)
	rec.Line(p5, p0, p1, p6, s)
}

// drawCircles draws the half-size markers, corner arcs and the center
// circle with its darker outline. Every family except the corners is wrapped
// onto the neighbouring tiles.
func drawCircles(rec *recording.Recorder, cfg debugtex.Config) {
	rec.BeginLayer(LayerCircles)
	pal := cfg.Palette
	size := cfg.Size()
	extent := size / 2

	yellow := pal.Yellow
	outline := debugtex.Interpolate(pal.Black, yellow, 0.5)
	normal := recording.Stroke{Width: cfg.Strokes.Normal, Color: yellow}

	wrappedCircle(rec, size, extent*0.5, extent*1.5,
		recording.Stroke{Width: cfg.Strokes.Normal, Color: yellow.WithAlpha(0.75)})

	rec.Circle(0, 0, extent, normal)
	rec.Circle(size, 0, extent, normal)
	rec.Circle(size, size, extent, normal)
	rec.Circle(0, size, extent, normal)

	wrappedCircle(rec, size, extent, extent*2,
		recording.Stroke{Width: cfg.Strokes.Normal + 1, Color: outline})
	wrappedCircle(rec, size, extent, extent*2, normal)
}

func drawMainDiagonals(rec *recording.Recorder, cfg debugtex.Config) {
	rec.BeginLayer(LayerMainDiagonals)
	s := recording.Stroke{Width: cfg.Strokes.Thick, Color: cfg.Palette.Gray3}

	p0 := 0.0
	p1 := cfg.Size() / 2
	p2 := cfg.Size()

	rec.Line(p0, p0, p2, p2, s)
	rec.Line(p0, p2, p2, p0, s)

	// diamond
	rec.Line(p0, p1, p1, p0, s)
	rec.Line(p1, p0, p2, p1, s)
	rec.Line(p2, p1, p1, p2, s)
	rec.Line(p1, p2, p0, p1, s)
}

// drawFrame draws the canvas border and the center cross.
func drawFrame(rec *recording.Recorder, cfg debugtex.Config) {
	rec.BeginLayer(LayerFrame)
	s := recording.Stroke{Width: cfg.Strokes.Thick, Color: cfg.Palette.Gray3}

	p0 := 0.0
	p1 := cfg.Size() / 2
	p2 := cfg.Size()

	rec.Line(p0, p0, p2, p0, s)
	rec.Line(p0, p1, p2, p1, s)
	rec.Line(p0, p2, p2, p2, s)

	rec.Line(p0, p0, p0, p2, s)
	rec.Line(p1, p0, p1, p2, s)
	rec.Line(p2, p0, p2, p2, s)
}

func drawLabels(rec *recording.Recorder, cfg debugtex.Config) {
	rec.BeginLayer(LayerLabels)
	pal := cfg.Palette
	fill := pal.White.WithAlpha(0.75)
	outline := pal.Black.WithAlpha(0.75)

	for x := 0; x < cfg.Cells; x++ {
		for y := 0; y < cfg.Cells; y++ {
			cell := cfg.Cell(x, y)
			rec.Text(cell.Center(), CellLabel(cfg.Cells, x, y), cell.Size().Y*cfg.LabelScale, fill, outline)
		}
	}
}
