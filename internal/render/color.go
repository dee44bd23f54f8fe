package render

import (
	"image/color"
	"math"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
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

	return toByte((r + m) * 255), toByte((g + m) * 255), toByte((b + m) * 255)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 255)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func alpha(fade float64) uint8 {
	return toByte(255 * fade)
}

// gray returns a straight-alpha gray level scaled by fade.
func gray(level, fade float64) color.NRGBA {
	l := toByte(level)
	return color.NRGBA{R: l, G: l, B: l, A: alpha(fade)}
}

// pupilRed brightens from the resting red towards full red as glow rises.
func pupilRed(glow, fade float64) color.NRGBA {
	v := (pupilRedLevel + (255-pupilRedLevel)*clamp(glow, 0, 1)) / 255
	r, g, b := hsvToRgb(0, 1, v)
	return color.NRGBA{R: r, G: g, B: b, A: alpha(fade)}
}

const pupilRedLevel = 220
