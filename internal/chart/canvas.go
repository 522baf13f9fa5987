// Package chart draws simple statistical figures onto raster images.
//
// Sizes are given in inches and font sizes in points; the canvas converts
// both to pixels with its DPI, so the same figure can be rendered at any
// resolution.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func init() {
	// The Go fonts cover Latin, the IPA extensions and spacing modifiers,
	// which is all the dataset uses.
	var err error
	if regularFont, err = opentype.Parse(goregular.TTF); err != nil {
		slog.Error("Parsing embedded regular font", "error", err)
	}
	if boldFont, err = opentype.Parse(gobold.TTF); err != nil {
		slog.Error("Parsing embedded bold font", "error", err)
	}
}

// Align is the horizontal anchor of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how a text run is drawn.
type TextStyle struct {
	Size  float64 // Points
	Bold  bool
	Color color.Color
	Align Align
}

type faceKey struct {
	size float64
	bold bool
}

// Canvas is an RGBA image with a white background and a fixed DPI.
type Canvas struct {
	img   *image.RGBA
	dpi   float64
	faces map[faceKey]font.Face
}

// NewCanvas creates a canvas of the given size in inches.
func NewCanvas(widthIn, heightIn, dpi float64) *Canvas {
	w := int(widthIn*dpi + 0.5)
	h := int(heightIn*dpi + 0.5)
	c := &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		dpi:   dpi,
		faces: make(map[faceKey]font.Face),
	}
	c.Fill(c.img.Bounds(), Background)
	return c
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the pixel bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Px converts points to pixels.
func (c *Canvas) Px(pt float64) int {
	return int(pt*c.dpi/72 + 0.5)
}

// In converts inches to pixels.
func (c *Canvas) In(inches float64) int {
	return int(inches*c.dpi + 0.5)
}

// Fill paints r with an opaque color.
func (c *Canvas) Fill(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// Blend paints r with col composited over the existing pixels.
func (c *Canvas) Blend(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// HLine draws a horizontal line of the given pixel width centered on y.
func (c *Canvas) HLine(x0, x1, y, width int, col color.Color) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	top := y - width/2
	c.Blend(image.Rect(x0, top, x1+1, top+max(width, 1)), col)
}

// VLine draws a vertical line of the given pixel width centered on x.
func (c *Canvas) VLine(x, y0, y1, width int, col color.Color) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	left := x - width/2
	c.Blend(image.Rect(left, y0, left+max(width, 1), y1+1), col)
}

// StrokeRect outlines r.
func (c *Canvas) StrokeRect(r image.Rectangle, width int, col color.Color) {
	c.HLine(r.Min.X, r.Max.X, r.Min.Y, width, col)
	c.HLine(r.Min.X, r.Max.X, r.Max.Y, width, col)
	c.VLine(r.Min.X, r.Min.Y, r.Max.Y, width, col)
	c.VLine(r.Max.X, r.Min.Y, r.Max.Y, width, col)
}

// Dot draws a filled circle.
func (c *Canvas) Dot(cx, cy, radius int, col color.Color) {
	mask := &circle{center: image.Pt(cx, cy), radius: radius}
	draw.DrawMask(c.img, mask.Bounds(), image.NewUniform(col), image.Point{}, mask, mask.Bounds().Min, draw.Over)
}

// circle is an alpha mask that is opaque inside the radius.
type circle struct {
	center image.Point
	radius int
}

func (m *circle) ColorModel() color.Model { return color.AlphaModel }

func (m *circle) Bounds() image.Rectangle {
	return image.Rect(m.center.X-m.radius, m.center.Y-m.radius, m.center.X+m.radius+1, m.center.Y+m.radius+1)
}

func (m *circle) At(x, y int) color.Color {
	dx, dy := x-m.center.X, y-m.center.Y
	if dx*dx+dy*dy <= m.radius*m.radius {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

func (c *Canvas) face(size float64, bold bool) font.Face {
	key := faceKey{size: size, bold: bold}
	if f, ok := c.faces[key]; ok {
		return f
	}

	fnt := regularFont
	if bold {
		fnt = boldFont
	}

	var face font.Face = basicfont.Face7x13
	if fnt != nil {
		f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    size,
			DPI:     c.dpi,
			Hinting: font.HintingFull,
		})
		if err == nil {
			face = f
		} else {
			slog.Warn("Falling back to bitmap font", "size", size, "error", err)
		}
	}

	c.faces[key] = face
	return face
}

// LineHeight returns the pixel height of one line of text in style ts.
func (c *Canvas) LineHeight(ts TextStyle) int {
	return c.face(ts.Size, ts.Bold).Metrics().Height.Ceil()
}

// TextWidth returns the pixel width of s in style ts.
func (c *Canvas) TextWidth(s string, ts TextStyle) int {
	return font.MeasureString(c.face(ts.Size, ts.Bold), s).Ceil()
}

// Text draws s with its top edge at y. x is the left edge, center or right
// edge depending on ts.Align. It returns the height of the line drawn.
func (c *Canvas) Text(x, y int, s string, ts TextStyle) int {
	face := c.face(ts.Size, ts.Bold)
	metrics := face.Metrics()

	switch ts.Align {
	case AlignCenter:
		x -= c.TextWidth(s, ts) / 2
	case AlignRight:
		x -= c.TextWidth(s, ts)
	}

	col := ts.Color
	if col == nil {
		col = Foreground
	}

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + metrics.Ascent},
	}
	d.DrawString(s)

	return metrics.Height.Ceil()
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Close releases the font faces held by the canvas.
func (c *Canvas) Close() error {
	for key, f := range c.faces {
		if f != basicfont.Face7x13 {
			f.Close()
		}
		delete(c.faces, key)
	}
	return nil
}
