package render

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Rainbow returns n colors evenly spaced along a continuous rainbow ramp,
// first color at t=0 (violet), last at t=1 (red). A single color gets the
// t=0 end of the ramp.
func Rainbow(n int) []drawing.Color {
	out := make([]drawing.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = rainbow(t)
	}
	return out
}

// rainbow maps t in [0,1] to a color by sweeping the hue from violet (270)
// down to red (0) at full saturation and value.
func rainbow(t float64) drawing.Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	r, g, b := hsvToRGB((1-t)*270, 1, 1)
	return drawing.Color{R: r, G: g, B: b, A: 255}
}

// hsvToRGB converts hue (degrees), saturation and value in [0,1] to 8-bit RGB.
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}
