package chart

import "image/color"

// Color palette
var (
	Background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Foreground = color.RGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xff}
	Muted      = color.RGBA{R: 0x6b, G: 0x6b, B: 0x6b, A: 0xff}
	Grid       = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x40} // 25% black
)

// Series colors, cycled by index.
var Series = []color.RGBA{
	{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff}, // blue
	{R: 0xdd, G: 0x84, B: 0x52, A: 0xff}, // orange
	{R: 0x55, G: 0xa8, B: 0x68, A: 0xff}, // green
	{R: 0xc4, G: 0x4e, B: 0x52, A: 0xff}, // red
	{R: 0x81, G: 0x72, B: 0xb3, A: 0xff}, // purple
	{R: 0x93, G: 0x78, B: 0x60, A: 0xff}, // brown
	{R: 0xda, G: 0x8b, B: 0xc3, A: 0xff}, // pink
	{R: 0x8c, G: 0x8c, B: 0x8c, A: 0xff}, // gray
}

// SeriesColor returns the i-th series color.
func SeriesColor(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return Series[i%len(Series)]
}

// withAlpha returns c with its opacity scaled to a (0..1).
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}
