package chart

// Card is one block of the card figure.
type Card struct {
	Heading string   // Bold first line
	Summary string   // Indented second line
	Lines   []string // Further indented detail lines
}

// CardFigure renders cards as a column of text.
type CardFigure struct {
	Title string
	Cards []Card
	Width float64 // Inches
}

// Height returns the figure height in inches.
func (f CardFigure) Height() float64 {
	return max(4, 0.9*float64(len(f.Cards))+1)
}

// Render draws the figure at the given DPI. Cards that do not fit are
// left out.
func (f CardFigure) Render(dpi float64) *Canvas {
	w := f.Width
	if w <= 0 {
		w = 11
	}

	c := NewCanvas(w, f.Height(), dpi)
	r := c.Bounds()

	titleStyle := TextStyle{Size: 16, Bold: true}
	headingStyle := TextStyle{Size: 13, Bold: true}
	summaryStyle := TextStyle{Size: 12}
	lineStyle := TextStyle{Size: 10.5, Color: Muted}

	margin := r.Dx() / 100
	limit := r.Max.Y - c.In(0.2)
	y := c.In(0.2)

	y += c.Text(margin, y, f.Title, titleStyle) + c.Px(10)

	for _, card := range f.Cards {
		need := c.LineHeight(headingStyle) + c.LineHeight(summaryStyle) + len(card.Lines)*c.LineHeight(lineStyle)
		if y+need > limit {
			break
		}

		y += c.Text(margin, y, card.Heading, headingStyle)
		y += c.Text(3*margin, y, card.Summary, summaryStyle)
		for _, line := range card.Lines {
			y += c.Text(5*margin, y, line, lineStyle)
		}
		y += c.Px(8)
	}

	return c
}
