package debugtex

import (
	"math"
	"strconv"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Components are nominally in the range [0, 1] but are not clamped on
// construction; clamping happens only when a color is serialized.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGB8 creates an opaque color from 8-bit channel values.
func RGB8(r, g, b uint8) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1.0,
	}
}

// WithAlpha returns c with its alpha replaced by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Lerp performs linear interpolation between two colors.
// t is used as given; see Interpolate for the clamped form.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Interpolate blends c1 toward c2 channel by channel.
// t is clamped to [0, 1], so the result always lies between c1 and c2.
func Interpolate(c1, c2 RGBA, t float64) RGBA {
	return c1.Lerp(c2, clamp01(t))
}

// Channels returns the red, green and blue channels as integers in [0, 255].
// Channels are truncated, not rounded.
func (c RGBA) Channels() (r, g, b int) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}

// RGBString formats the color channels as an rgb(r,g,b) literal.
// Alpha is not included; see Opacity.
func (c RGBA) RGBString() string {
	r, g, b := c.Channels()
	buf := make([]byte, 0, len("rgb(255,255,255)"))
	buf = append(buf, "rgb("...)
	buf = strconv.AppendInt(buf, int64(r), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(g), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(b), 10)
	buf = append(buf, ')')
	return string(buf)
}

// Opacity formats alpha, clamped to [0, 1], with three decimal places.
func (c RGBA) Opacity() string {
	return strconv.FormatFloat(clamp01(c.A), 'f', 3, 64)
}

// channelEpsilon absorbs the rounding error of an RGB8 round trip so that
// RGB8(39, 39, 39) formats as 39 and not 38.
const channelEpsilon = 1e-9

func channel8(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(clamp255(v*255 + channelEpsilon))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

// Palette is the fixed set of colors the debug textures are drawn with.
type Palette struct {
	Black, White        RGBA
	Gray1, Gray2, Gray3 RGBA
	Red, Green          RGBA
	Blue, Yellow        RGBA
}

// DefaultPalette returns the muted palette used for the shipped textures.
func DefaultPalette() Palette {
	black := RGB8(39, 39, 39)
	white := RGB8(232, 232, 232)
	return Palette{
		Black:  black,
		White:  white,
		Gray1:  Interpolate(black, white, 0.25),
		Gray2:  Interpolate(black, white, 0.50),
		Gray3:  Interpolate(black, white, 0.75),
		Red:    RGB8(180, 39, 39),
		Green:  RGB8(39, 180, 39),
		Blue:   RGB8(39, 80, 180),
		Yellow: RGB8(220, 200, 39),
	}
}
