package chart

import (
	"hash/fnv"
	"image"
	"sort"
)

// Sample is one observation of a strip plot. Key seeds the horizontal
// jitter so that reruns place every point at the same spot.
type Sample struct {
	Key   string
	Value float64
}

// Distribution is one category of a box plot.
type Distribution struct {
	Label   string
	Samples []Sample
}

// BoxStats summarizes a distribution the way a Tukey box plot draws it.
type BoxStats struct {
	Q1, Median, Q3       float64
	WhiskerLo, WhiskerHi float64
}

// Stats computes quartiles and 1.5 IQR whiskers. It returns false for an
// empty distribution.
func (d Distribution) Stats() (BoxStats, bool) {
	if len(d.Samples) == 0 {
		return BoxStats{}, false
	}

	values := make([]float64, len(d.Samples))
	for i, s := range d.Samples {
		values[i] = s.Value
	}
	sort.Float64s(values)

	st := BoxStats{
		Q1:     quantile(values, 0.25),
		Median: quantile(values, 0.5),
		Q3:     quantile(values, 0.75),
	}

	iqr := st.Q3 - st.Q1
	lo, hi := st.Q1-1.5*iqr, st.Q3+1.5*iqr
	st.WhiskerLo, st.WhiskerHi = st.Q1, st.Q3
	for _, v := range values {
		if v >= lo {
			st.WhiskerLo = min(v, st.Q1)
			break
		}
	}
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] <= hi {
			st.WhiskerHi = max(values[i], st.Q3)
			break
		}
	}

	return st, true
}

// BoxPlot is a strip plot with box plots drawn over it, one column per
// distribution.
type BoxPlot struct {
	Title  string
	XLabel string
	YLabel string
	Groups []Distribution
	Width  float64 // Inches
	Height float64 // Inches
}

// Render draws the plot at the given DPI.
func (b BoxPlot) Render(dpi float64) *Canvas {
	w, h := b.Width, b.Height
	if w <= 0 {
		w = 9
	}
	if h <= 0 {
		h = 5
	}

	c := NewCanvas(w, h, dpi)
	r := c.Bounds()

	titleStyle := TextStyle{Size: 13, Bold: true, Align: AlignCenter}
	tickStyle := TextStyle{Size: 9, Color: Muted, Align: AlignRight}
	catStyle := TextStyle{Size: 10, Align: AlignCenter}
	axisStyle := TextStyle{Size: 10, Align: AlignCenter}
	pad := c.Px(8)

	top := r.Min.Y + pad
	if b.Title != "" {
		top += c.Text(r.Dx()/2, top, b.Title, titleStyle) + pad
	}
	if b.YLabel != "" {
		top += c.Text(r.Min.X+pad, top, b.YLabel, TextStyle{Size: 9, Color: Muted}) + pad/2
	}
	bottom := r.Max.Y - pad - c.LineHeight(axisStyle) - pad - c.LineHeight(catStyle)

	maxV := 0.0
	for _, g := range b.Groups {
		for _, s := range g.Samples {
			maxV = max(maxV, s.Value)
		}
	}
	tks := ticks(maxV, 6)
	axisMax := tks[len(tks)-1]

	tickW := 0
	for _, t := range tks {
		tickW = max(tickW, c.TextWidth(formatValue(t), tickStyle))
	}
	left := r.Min.X + pad + tickW + pad
	right := r.Max.X - pad

	yOf := func(v float64) int {
		return bottom - int(v/axisMax*float64(bottom-top)+0.5)
	}

	tickH := c.LineHeight(tickStyle)
	for _, t := range tks {
		y := yOf(t)
		c.HLine(left, right, y, 1, Grid)
		c.Text(left-pad/2, y-tickH/2, formatValue(t), tickStyle)
	}
	c.HLine(left, right, bottom, 1, Foreground)

	if len(b.Groups) == 0 {
		c.Text((left+right)/2, (top+bottom)/2, "ingen data", TextStyle{Size: 10, Color: Muted, Align: AlignCenter})
		return c
	}

	band := float64(right-left) / float64(len(b.Groups))
	dotR := max(c.Px(2.5), 1)
	line := max(c.Px(1.2), 1)

	for i, g := range b.Groups {
		cx := left + int(band*(float64(i)+0.5))
		col := SeriesColor(i)

		for _, s := range g.Samples {
			x := cx + int(jitter(s.Key)*0.25*band)
			c.Dot(x, yOf(s.Value), dotR, withAlpha(col, 0.8))
		}

		if st, ok := g.Stats(); ok {
			half := int(band * 0.35 / 2)
			box := image.Rect(cx-half, yOf(st.Q3), cx+half, yOf(st.Q1))
			c.StrokeRect(box, line, Foreground)
			c.HLine(cx-half, cx+half, yOf(st.Median), line, Foreground)
			c.VLine(cx, yOf(st.WhiskerHi), box.Min.Y, line, Foreground)
			c.VLine(cx, box.Max.Y, yOf(st.WhiskerLo), line, Foreground)
			c.HLine(cx-half/2, cx+half/2, yOf(st.WhiskerHi), line, Foreground)
			c.HLine(cx-half/2, cx+half/2, yOf(st.WhiskerLo), line, Foreground)
		}

		c.Text(cx, bottom+pad/2, g.Label, catStyle)
	}

	if b.XLabel != "" {
		c.Text((left+right)/2, bottom+pad+c.LineHeight(catStyle), b.XLabel, axisStyle)
	}

	return c
}

// jitter maps key to a fixed offset in [-1, 1].
func jitter(key string) float64 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return float64(h.Sum32())/float64(^uint32(0))*2 - 1
}
