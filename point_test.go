package debugtex

import (
	"math"
	"testing"
)

func TestPoint_AddSub(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)
	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub = %v, want (2, 6)", got)
	}
}

func TestRadians(t *testing.T) {
	tests := []struct {
		deg, want float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-45, -math.Pi / 4},
	}
	for _, tt := range tests {
		if got := Radians(tt.deg); absDiff(got, tt.want) > 1e-12 {
			t.Errorf("Radians(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestFromPolar(t *testing.T) {
	const tolerance = 1e-9
	tests := []struct {
		name  string
		angle float64
		want  Point
	}{
		{"right", 0, Pt(110, 50)},
		{"down", 90, Pt(100, 60)},
		{"left", 180, Pt(90, 50)},
		{"up", 270, Pt(100, 40)},
		{"diagonal", 45, Pt(100+10*math.Sqrt2/2, 50+10*math.Sqrt2/2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromPolar(100, 50, 10, tt.angle)
			if absDiff(got.X, tt.want.X) > tolerance || absDiff(got.Y, tt.want.Y) > tolerance {
				t.Errorf("FromPolar(angle=%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestTanDeg(t *testing.T) {
	if got := TanDeg(45); absDiff(got, 1) > 1e-12 {
		t.Errorf("TanDeg(45) = %v, want 1", got)
	}
	if got := TanDeg(30); absDiff(got, 1/math.Sqrt(3)) > 1e-12 {
		t.Errorf("TanDeg(30) = %v, want %v", got, 1/math.Sqrt(3))
	}
}
