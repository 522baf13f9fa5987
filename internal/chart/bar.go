package chart

import (
	"image"
	"image/color"
)

// Bar is one category of a bar panel.
type Bar struct {
	Label string
	Value float64
	Note  string // Drawn after the end of the bar
}

// BarPanel is a horizontal bar chart.
type BarPanel struct {
	Title  string
	XLabel string
	YLabel string
	Bars   []Bar
}

// BarFigure lays out bar panels in a grid, filling rows left to right.
type BarFigure struct {
	Title          string
	Panels         []BarPanel
	Columns        int     // Panels per row
	PanelWidth     float64 // Inches
	MinPanelHeight float64 // Inches
}

// Render draws the figure at the given DPI.
func (f BarFigure) Render(dpi float64) *Canvas {
	cols := f.Columns
	if cols <= 0 {
		cols = 1
	}
	if len(f.Panels) < cols {
		cols = max(len(f.Panels), 1)
	}
	rows := (len(f.Panels) + cols - 1) / cols
	if rows == 0 {
		rows = 1
	}

	maxBars := 0
	for _, p := range f.Panels {
		maxBars = max(maxBars, len(p.Bars))
	}

	panelW := f.PanelWidth
	if panelW <= 0 {
		panelW = 5
	}
	panelH := max(f.MinPanelHeight, 1.3+0.3*float64(maxBars))

	titleH := 0.0
	if f.Title != "" {
		titleH = 0.5
	}

	c := NewCanvas(panelW*float64(cols), panelH*float64(rows)+titleH, dpi)
	if f.Title != "" {
		c.Text(c.Bounds().Dx()/2, c.In(0.12), f.Title, TextStyle{Size: 14, Bold: true, Align: AlignCenter})
	}

	offset := c.In(titleH)
	pw, ph := c.In(panelW), c.In(panelH)
	for i, p := range f.Panels {
		x := (i % cols) * pw
		y := offset + (i/cols)*ph
		drawBarPanel(c, image.Rect(x, y, x+pw, y+ph), p, SeriesColor(i))
	}

	return c
}

func drawBarPanel(c *Canvas, r image.Rectangle, p BarPanel, col color.Color) {
	titleStyle := TextStyle{Size: 12, Bold: true, Align: AlignCenter}
	labelStyle := TextStyle{Size: 10, Align: AlignRight}
	noteStyle := TextStyle{Size: 9, Color: Muted}
	tickStyle := TextStyle{Size: 9, Color: Muted, Align: AlignCenter}
	axisStyle := TextStyle{Size: 10, Align: AlignCenter}
	pad := c.Px(6)
	centerX := (r.Min.X + r.Max.X) / 2

	top := r.Min.Y + pad
	if p.Title != "" {
		top += c.Text(centerX, top, p.Title, titleStyle) + pad
	}
	if p.YLabel != "" {
		top += c.Text(r.Min.X+pad, top, p.YLabel, TextStyle{Size: 9, Color: Muted}) + pad/2
	}

	bottom := r.Max.Y - pad - c.LineHeight(axisStyle) - pad - c.LineHeight(tickStyle)

	if len(p.Bars) == 0 {
		c.Text(centerX, (top+bottom)/2, "ingen data", TextStyle{Size: 10, Color: Muted, Align: AlignCenter})
		return
	}

	labelW, noteW := 0, 0
	maxV := 0.0
	for _, b := range p.Bars {
		labelW = max(labelW, c.TextWidth(b.Label, labelStyle))
		if b.Note != "" {
			noteW = max(noteW, c.TextWidth(b.Note, noteStyle)+pad)
		}
		maxV = max(maxV, b.Value)
	}

	left := r.Min.X + pad + labelW + pad
	right := r.Max.X - pad - noteW
	if right <= left {
		right = left + 1
	}

	tks := ticks(maxV, 5)
	axisMax := tks[len(tks)-1]
	xOf := func(v float64) int {
		return left + int(v/axisMax*float64(right-left)+0.5)
	}

	for _, t := range tks {
		x := xOf(t)
		c.VLine(x, top, bottom, 1, Grid)
		c.Text(x, bottom+pad/2, formatValue(t), tickStyle)
	}
	c.VLine(left, top, bottom, 1, Foreground)

	band := float64(bottom-top) / float64(len(p.Bars))
	barH := max(int(band*0.7), 1)
	lineH := c.LineHeight(labelStyle)
	noteH := c.LineHeight(noteStyle)

	for i, b := range p.Bars {
		cy := top + int(band*(float64(i)+0.5))
		end := xOf(b.Value)
		c.Fill(image.Rect(left, cy-barH/2, end, cy-barH/2+barH), col)
		c.Text(left-pad, cy-lineH/2, b.Label, labelStyle)
		if b.Note != "" {
			c.Text(end+pad/2, cy-noteH/2, b.Note, noteStyle)
		}
	}

	if p.XLabel != "" {
		c.Text(centerX, bottom+pad+c.LineHeight(tickStyle), p.XLabel, axisStyle)
	}
}
