package debugtex

import "fmt"

// ColumnLetters names the label columns of the UV tile texture, left to right.
const ColumnLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Strokes holds the three stroke width tiers used by the generators.
type Strokes struct {
	Thin   float64
	Normal float64
	Thick  float64
}

// Config describes the canvas, grid partition, strokes and colors a texture
// is drawn with. A Config is a plain value: generators never modify it.
//
// Example:
//
//	cfg := debugtex.DefaultConfig()
//	cfg.Canvas = 256 // small canvas for tests
//	if err := cfg.Validate(); err != nil {
//	    // handle error
//	}
type Config struct {
	// Canvas is the width and height of the square canvas in logical units.
	Canvas int

	// Cells is the number of UV tile cells per axis.
	Cells int

	// GridMainCells and GridSubCells partition the debug grid texture:
	// GridMainCells thick divisions, each split into GridSubCells thin ones.
	GridMainCells int
	GridSubCells  int

	Strokes Strokes
	Palette Palette

	// LabelScale is the cell label font size as a fraction of cell height.
	LabelScale float64
}

// DefaultConfig returns the configuration of the shipped textures:
// a 2048x2048 canvas, 16x16 UV cells and an 8x8 grid of 8 sub cells.
func DefaultConfig() Config {
	return Config{
		Canvas:        2048,
		Cells:         16,
		GridMainCells: 8,
		GridSubCells:  8,
		Strokes: Strokes{
			Thin:   2,
			Normal: 4,
			Thick:  6,
		},
		Palette:    DefaultPalette(),
		LabelScale: 0.3,
	}
}

// Validate reports whether every texture can be drawn with the
// configuration. The returned error wraps one of the Err* sentinels.
func (c Config) Validate() error {
	if err := c.ValidateGrid(); err != nil {
		return err
	}
	return c.ValidateUVTiles()
}

// ValidateGrid checks only the fields the debug grid texture uses: the
// canvas and the grid partition.
func (c Config) ValidateGrid() error {
	if err := c.validateCanvas(); err != nil {
		return err
	}
	if c.GridMainCells < 1 || c.GridSubCells < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, c.GridMainCells, c.GridSubCells)
	}
	return nil
}

// ValidateUVTiles checks only the fields the UV tile textures use: the
// canvas and the cell count.
func (c Config) ValidateUVTiles() error {
	if err := c.validateCanvas(); err != nil {
		return err
	}
	switch {
	case c.Cells <= 1:
		return fmt.Errorf("%w: got %d", ErrTooFewCells, c.Cells)
	case c.Cells > len(ColumnLetters):
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyCells, c.Cells, len(ColumnLetters))
	}
	return nil
}

func (c Config) validateCanvas() error {
	if c.Canvas <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCanvas, c.Canvas)
	}
	return nil
}

// Size returns the canvas size as a float.
func (c Config) Size() float64 {
	return float64(c.Canvas)
}

// CellSize returns the edge length of one UV cell.
func (c Config) CellSize() float64 {
	return c.Size() / float64(c.Cells)
}

// Cell returns the box covering UV cell (x, y), with (0, 0) at the top-left.
func (c Config) Cell(x, y int) Box {
	s := c.CellSize()
	origin := Pt(float64(x)*s, float64(y)*s)
	return Box{Min: origin, Max: origin.Add(Pt(s, s))}
}

// Bounds returns the full canvas box.
func (c Config) Bounds() Box {
	return Rect(0, 0, c.Size(), c.Size())
}
