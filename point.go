package debugtex

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// FromPolar returns the point at distance r from (cx, cy) in direction
// angle, given in degrees. Angle 0 points along +X and 90 along +Y, which
// is downward in canvas coordinates.
func FromPolar(cx, cy, r, angle float64) Point {
	rad := Radians(angle)
	return Point{
		X: cx + r*math.Cos(rad),
		Y: cy + r*math.Sin(rad),
	}
}

// TanDeg returns the tangent of an angle given in degrees.
func TanDeg(angle float64) float64 {
	return math.Tan(Radians(angle))
}
