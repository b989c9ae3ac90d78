package debugtex

import (
	"math"
	"testing"
)

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

func colorNear(a, b RGBA) bool {
	const tolerance = 1e-12
	return absDiff(a.R, b.R) < tolerance &&
		absDiff(a.G, b.G) < tolerance &&
		absDiff(a.B, b.B) < tolerance &&
		absDiff(a.A, b.A) < tolerance
}

func TestInterpolate_Endpoints(t *testing.T) {
	c1 := RGBA{0.1, 0.2, 0.3, 0.4}
	c2 := RGBA{0.9, 0.7, 0.5, 1.0}

	if got := Interpolate(c1, c2, 0); got != c1 {
		t.Errorf("Interpolate(t=0) = %v, want %v", got, c1)
	}
	if got := Interpolate(c1, c2, 1); !colorNear(got, c2) {
		t.Errorf("Interpolate(t=1) = %v, want %v", got, c2)
	}
	want := RGBA{0.5, 0.45, 0.4, 0.7}
	if got := Interpolate(c1, c2, 0.5); !colorNear(got, want) {
		t.Errorf("Interpolate(t=0.5) = %v, want %v", got, want)
	}
}

func TestInterpolate_ClampsT(t *testing.T) {
	c1 := RGB(0, 0.5, 1)
	c2 := RGBA{1, 0.5, 0, 0}

	tests := []struct {
		name string
		t    float64
		want RGBA
	}{
		{"below zero", -3, c1},
		{"above one", 7.5, c2},
		{"NaN", math.NaN(), c1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(c1, c2, tt.t); !colorNear(got, tt.want) {
				t.Errorf("Interpolate(t=%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestInterpolate_StaysWithinBounds(t *testing.T) {
	c1 := RGBA{0.2, 0.9, 0.0, 1.0}
	c2 := RGBA{0.8, 0.1, 0.6, 0.25}
	within := func(v, a, b float64) bool {
		lo, hi := math.Min(a, b), math.Max(a, b)
		return v >= lo-1e-12 && v <= hi+1e-12
	}
	for _, tv := range []float64{-10, -0.5, 0, 0.1, 0.33, 0.5, 0.9, 1, 1.5, 100} {
		got := Interpolate(c1, c2, tv)
		if !within(got.R, c1.R, c2.R) || !within(got.G, c1.G, c2.G) ||
			!within(got.B, c1.B, c2.B) || !within(got.A, c1.A, c2.A) {
			t.Errorf("Interpolate(t=%v) = %v, outside [%v, %v]", tv, got, c1, c2)
		}
	}
}

func TestLerp_Unclamped(t *testing.T) {
	got := RGB(0, 0, 0).Lerp(RGB(1, 1, 1), 2)
	if got.R != 2 {
		t.Errorf("Lerp(t=2).R = %v, want 2", got.R)
	}
}

func TestRGBString(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want string
	}{
		{"black", RGB(0, 0, 0), "rgb(0,0,0)"},
		{"white", RGB(1, 1, 1), "rgb(255,255,255)"},
		{"rgb8 round trip", RGB8(39, 39, 39), "rgb(39,39,39)"},
		{"rgb8 channels", RGB8(220, 200, 39), "rgb(220,200,39)"},
		{"truncates", RGB(0.5, 0.5, 0.5), "rgb(127,127,127)"},
		{"far above range", RGB(5.0, 2, 300), "rgb(255,255,255)"},
		{"below range", RGB(-1.0, -0.001, -50), "rgb(0,0,0)"},
		{"NaN", RGB(math.NaN(), 1, 0), "rgb(0,255,0)"},
		{"infinities", RGB(math.Inf(1), math.Inf(-1), 0), "rgb(255,0,0)"},
		{"alpha ignored", RGBA{1, 0, 0, 0.2}, "rgb(255,0,0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.RGBString(); got != tt.want {
				t.Errorf("RGBString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpacity(t *testing.T) {
	tests := []struct {
		a    float64
		want string
	}{
		{1, "1.000"},
		{0.5, "0.500"},
		{0.75, "0.750"},
		{0.1234, "0.123"},
		{0, "0.000"},
		{1.5, "1.000"},
		{-0.2, "0.000"},
		{math.NaN(), "0.000"},
	}
	for _, tt := range tests {
		if got := (RGBA{A: tt.a}).Opacity(); got != tt.want {
			t.Errorf("Opacity(%v) = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(0.1, 0.2, 0.3)
	got := c.WithAlpha(0.5)
	if got.R != c.R || got.G != c.G || got.B != c.B || got.A != 0.5 {
		t.Errorf("WithAlpha(0.5) = %v", got)
	}
	if c.A != 1 {
		t.Errorf("WithAlpha modified receiver: %v", c)
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		name string
		c    RGBA
		want string
	}{
		{"black", p.Black, "rgb(39,39,39)"},
		{"white", p.White, "rgb(232,232,232)"},
		{"gray1", p.Gray1, "rgb(87,87,87)"},
		{"gray2", p.Gray2, "rgb(135,135,135)"},
		{"gray3", p.Gray3, "rgb(183,183,183)"},
		{"red", p.Red, "rgb(180,39,39)"},
		{"green", p.Green, "rgb(39,180,39)"},
		{"blue", p.Blue, "rgb(39,80,180)"},
		{"yellow", p.Yellow, "rgb(220,200,39)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.RGBString(); got != tt.want {
				t.Errorf("RGBString() = %q, want %q", got, tt.want)
			}
			if tt.c.A != 1 {
				t.Errorf("A = %v, want 1", tt.c.A)
			}
		})
	}
}
