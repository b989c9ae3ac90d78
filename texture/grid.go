package texture

import (
	"github.com/gogpu/debugtex"
	"github.com/gogpu/debugtex/recording"
)

// Layer names used by the generators.
const (
	LayerBackground    = "background"
	LayerSubgrid       = "subgrid"
	LayerGrid          = "grid"
	LayerCells         = "cells"
	LayerDiagonals     = "diagonals"
	LayerTicks         = "ticks"
	LayerBorders       = "borders"
	LayerAngles        = "angles"
	LayerCircles       = "circles"
	LayerMainDiagonals = "main-diagonals"
	LayerFrame         = "frame"
	LayerLabels        = "labels"
)

// Grid records the debug grid texture: a dark background, a thin sub grid
// and a thick main grid, each line spanning the whole canvas.
// Only the canvas and grid fields of cfg are checked; Cells is ignored.
func Grid(cfg debugtex.Config) (*recording.Recording, error) {
	if err := cfg.ValidateGrid(); err != nil {
		return nil, err
	}

	size := cfg.Size()
	pal := cfg.Palette
	rec := recording.NewRecorder(cfg.Canvas, cfg.Canvas)

	rec.BeginLayer(LayerBackground)
	rec.FillRect(cfg.Bounds(), pal.Black)

	subCells := cfg.GridSubCells * cfg.GridMainCells
	subSize := size / float64(subCells)
	mainSize := size / float64(cfg.GridMainCells)

	rec.BeginLayer(LayerSubgrid)
	thin := recording.Stroke{Width: cfg.Strokes.Thin, Color: pal.Gray2}
	for i := 0; i <= subCells; i++ {
		if i%cfg.GridSubCells == 0 {
			continue // covered by the main grid
		}
		p := float64(i) * subSize
		rec.Line(0, p, size, p, thin)
		rec.Line(p, 0, p, size, thin)
	}

	rec.BeginLayer(LayerGrid)
	thick := recording.Stroke{Width: cfg.Strokes.Thick, Color: pal.Gray3}
	for i := 0; i <= cfg.GridMainCells; i++ {
		p := float64(i) * mainSize
		rec.Line(0, p, size, p, thick)
		rec.Line(p, 0, p, size, thick)
	}

	return rec.FinishRecording(), nil
}
