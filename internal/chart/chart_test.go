package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNiceStep(t *testing.T) {
	tests := []struct {
		top  float64
		want float64
	}{
		{top: 0, want: 1},
		{top: 3, want: 1},
		{top: 9, want: 2},
		{top: 23, want: 5},
		{top: 80, want: 20},
		{top: 400, want: 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, niceStep(tt.top, 5), "top=%v", tt.top)
	}
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3}, ticks(3, 5))
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, ticks(9, 5))
	assert.Equal(t, []float64{0, 1}, ticks(0, 5))
}

func TestQuantile(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1.0, quantile(values, 0), 1e-9)
	assert.InDelta(t, 1.0, quantile(values, 0.25), 1e-9)
	assert.InDelta(t, 1.5, quantile(values, 0.375), 1e-9)
	assert.InDelta(t, 2.0, quantile(values, 0.5), 1e-9)
	assert.InDelta(t, 4.0, quantile(values, 1), 1e-9)
	assert.Equal(t, 7.0, quantile([]float64{7}, 0.5))
	assert.Equal(t, 0.0, quantile(nil, 0.5))
}

func TestDistributionStats(t *testing.T) {
	d := Distribution{Samples: []Sample{
		{Value: 5}, {Value: 6}, {Value: 6}, {Value: 7}, {Value: 30},
	}}

	st, ok := d.Stats()
	require.True(t, ok)
	assert.InDelta(t, 6.0, st.Median, 1e-9)
	assert.InDelta(t, 5.25, st.Q1, 1e-9)
	assert.InDelta(t, 6.75, st.Q3, 1e-9)
	assert.Equal(t, 5.0, st.WhiskerLo)
	assert.Equal(t, 7.0, st.WhiskerHi, "30 is an outlier")

	_, ok = Distribution{}.Stats()
	assert.False(t, ok)
}

func TestJitter_StableAndBounded(t *testing.T) {
	for _, key := range []string{"", "banan", "sv/banan/1", "ˈbɑːnan"} {
		j := jitter(key)
		assert.Equal(t, j, jitter(key))
		assert.GreaterOrEqual(t, j, -1.0)
		assert.LessOrEqual(t, j, 1.0)
	}
}

func TestCanvas_Size(t *testing.T) {
	c := NewCanvas(2, 1.5, 100)
	defer c.Close()

	assert.Equal(t, 200, c.Bounds().Dx())
	assert.Equal(t, 150, c.Bounds().Dy())
	assert.Equal(t, 100, c.In(1))
	assert.Equal(t, 14, c.Px(10))
}

func TestCanvas_TextDrawsPixels(t *testing.T) {
	c := NewCanvas(2, 1, 72)
	defer c.Close()

	assert.Greater(t, c.TextWidth("baˈnɑːn", TextStyle{Size: 12}), 0)
	h := c.Text(10, 10, "baˈnɑːn", TextStyle{Size: 12})
	assert.Greater(t, h, 0)

	changed := false
	img := c.Image()
	for y := 10; y < 10+h && !changed; y++ {
		for x := 10; x < 100; x++ {
			if img.RGBAAt(x, y) != Background {
				changed = true
				break
			}
		}
	}
	assert.True(t, changed, "text left no ink")
}

func TestRender_ProducesDecodablePNG(t *testing.T) {
	figures := map[string]*Canvas{
		"bars": BarFigure{
			Title:   "Uttal per ord",
			Columns: 2,
			Panels: []BarPanel{
				{Title: "sv", XLabel: "antal", Bars: []Bar{{Label: "banan", Value: 2, Note: "2 IPA"}}},
				{Title: "en", Bars: []Bar{{Label: "lead", Value: 2}, {Label: "read", Value: 3}}},
				{Title: "da"},
			},
		}.Render(50),
		"box": BoxPlot{
			Title:  "IPA",
			Groups: []Distribution{{Label: "sv", Samples: []Sample{{Key: "a", Value: 6}, {Key: "b", Value: 7}}}},
		}.Render(50),
		"empty box": BoxPlot{Title: "IPA"}.Render(50),
		"cards": CardFigure{
			Title: "Exempelord",
			Cards: []Card{{Heading: "[sv] banan", Summary: "baˈnɑːn / ˈbɑːnan", Lines: []string{"baˈnɑːn: frukt"}}},
		}.Render(50),
	}

	for name, c := range figures {
		t.Run(name, func(t *testing.T) {
			defer c.Close()

			var buf bytes.Buffer
			require.NoError(t, c.EncodePNG(&buf))

			img, err := png.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, c.Bounds(), img.Bounds())
		})
	}
}

func TestBarFigure_Layout(t *testing.T) {
	fig := BarFigure{
		Columns:        2,
		PanelWidth:     5,
		MinPanelHeight: 3,
		Panels:         make([]BarPanel, 3),
	}

	c := fig.Render(10)
	defer c.Close()

	assert.Equal(t, 100, c.Bounds().Dx())
	assert.Equal(t, 60, c.Bounds().Dy())
}

func TestCardFigure_Height(t *testing.T) {
	assert.Equal(t, 4.0, CardFigure{}.Height())
	assert.InDelta(t, 11.8, CardFigure{Cards: make([]Card, 12)}.Height(), 1e-9)
}
