package debugtex

// Box is an axis-aligned rectangle spanning Min to Max.
// Callers are expected to keep Min <= Max component-wise; it is not enforced.
type Box struct {
	Min, Max Point
}

// Rect creates a Box from its top-left corner and dimensions.
func Rect(x, y, w, h float64) Box {
	return Box{Min: Pt(x, y), Max: Pt(x+w, y+h)}
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Point{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Size returns the width and height of the box as a vector.
func (b Box) Size() Point {
	return b.Max.Sub(b.Min)
}

// WithSize returns the box with Min kept and Max moved so that Size() == size.
func (b Box) WithSize(size Point) Box {
	b.Max = b.Min.Add(size)
	return b
}
