// pkg/render/color.go
package render

import "image/color"

// Darken уменьшает яркость цвета; factor 0..1, альфа не меняется.
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// WithAlpha возвращает тот же цвет с другой прозрачностью.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
