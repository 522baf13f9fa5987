package figure

import (
	"testing"

	"github.com/f3rmion/homograf/internal/chart"
	"github.com/f3rmion/homograf/internal/heteronym"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput(records []heteronym.Record) input {
	groups := heteronym.FilterGroups(heteronym.GroupWords(records), false)
	return input{
		records:  heteronym.FilterRecords(records, groups),
		groups:   groups,
		maxCards: 12,
	}
}

func TestWordCountsView_PanelsPerLanguage(t *testing.T) {
	records := append(sampleRecords(),
		heteronym.Record{Language: "en", Word: "lead", SenseID: "1", IPA: "liːd"},
		heteronym.Record{Language: "en", Word: "lead", SenseID: "2", IPA: "lɛd"},
	)

	fig, ok := wordCountsView(testInput(records))
	require.True(t, ok)

	bars := fig.(chart.BarFigure)
	require.Len(t, bars.Panels, 2)
	assert.Equal(t, "en", bars.Panels[0].Title)
	assert.Equal(t, "sv", bars.Panels[1].Title)

	require.Len(t, bars.Panels[1].Bars, 1, "stol has a single sense")
	assert.Equal(t, chart.Bar{Label: "banan", Value: 2, Note: "2 uttal"}, bars.Panels[1].Bars[0])
}

func TestWordCountsView_TopWords(t *testing.T) {
	var records []heteronym.Record
	for _, w := range []string{"a", "b", "c"} {
		records = append(records,
			heteronym.Record{Language: "sv", Word: w, SenseID: "1"},
			heteronym.Record{Language: "sv", Word: w, SenseID: "2"},
		)
	}

	in := testInput(records)
	in.topWords = 2
	fig, ok := wordCountsView(in)
	require.True(t, ok)
	assert.Len(t, fig.(chart.BarFigure).Panels[0].Bars, 2)
}

func TestIPALengthView_SkipsWithoutIPA(t *testing.T) {
	records := []heteronym.Record{
		{Language: "sv", Word: "banan", SenseID: "1"},
		{Language: "sv", Word: "banan", SenseID: "2"},
	}

	_, ok := ipaLengthView(testInput(records))
	assert.False(t, ok)
}

func TestIPALengthView_CountsRunes(t *testing.T) {
	fig, ok := ipaLengthView(testInput(sampleRecords()))
	require.True(t, ok)

	plot := fig.(chart.BoxPlot)
	require.Len(t, plot.Groups, 1)
	require.Len(t, plot.Groups[0].Samples, 2)
	// "baˈnɑːn" is 7 runes but more bytes.
	assert.Equal(t, 7.0, plot.Groups[0].Samples[0].Value)
}

func TestCardsView(t *testing.T) {
	fig, ok := cardsView(testInput(sampleRecords()))
	require.True(t, ok)

	cards := fig.(chart.CardFigure).Cards
	require.Len(t, cards, 1)
	assert.Equal(t, "[sv] banan", cards[0].Heading)
	assert.Equal(t, "baˈnɑːn / ˈbɑːnan", cards[0].Summary)
	assert.Equal(t, []string{
		"baˈnɑːn: frukt",
		"ˈbɑːnan: bestämd form av bana",
	}, cards[0].Lines)
}

func TestDistributionView(t *testing.T) {
	fig, ok := distributionView(testInput(sampleRecords()))
	require.True(t, ok)

	bars := fig.(chart.BarFigure).Panels[0].Bars
	assert.Equal(t, []chart.Bar{{Label: "2", Value: 1}}, bars)
}
