package figure

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/homograf/internal/chart"
	"github.com/f3rmion/homograf/internal/heteronym"
)

// renderer is implemented by every chart figure type.
type renderer interface {
	Render(dpi float64) *chart.Canvas
}

// input is what every view is built from: records and groups after the
// single-sense policy has been applied.
type input struct {
	records  []heteronym.Record
	groups   []heteronym.WordGroup
	topWords int
	maxCards int
}

// View is one figure of the output set. Name is the file name without
// extension and never depends on the data.
type View struct {
	Name  string
	build func(in input) (renderer, bool)
}

// Views lists the figures in the order they are written.
var Views = []View{
	{Name: "variant_counts_by_word", build: wordCountsView},
	{Name: "words_by_language", build: languageView},
	{Name: "sense_count_distribution", build: distributionView},
	{Name: "ipa_length_distribution", build: ipaLengthView},
	{Name: "word_cards", build: cardsView},
}

// FileName returns the file the view is written to.
func (v View) FileName() string {
	return v.Name + ".png"
}

func wordCountsView(in input) (renderer, bool) {
	var panels []chart.BarPanel
	for _, lang := range heteronym.Languages(in.groups) {
		groups := heteronym.ByLanguage(in.groups, lang)
		if in.topWords > 0 && len(groups) > in.topWords {
			groups = groups[:in.topWords]
		}

		p := chart.BarPanel{
			Title:  lang,
			XLabel: "# betydelser (sense_id)",
			YLabel: "ord",
		}
		for _, g := range groups {
			p.Bars = append(p.Bars, chart.Bar{
				Label: g.Word,
				Value: float64(g.Senses),
				Note:  fmt.Sprintf("%d uttal", g.Variants),
			})
		}
		panels = append(panels, p)
	}

	if len(panels) == 0 {
		return nil, false
	}

	return chart.BarFigure{
		Title:          "Betydelser och uttal per ord",
		Panels:         panels,
		Columns:        2,
		PanelWidth:     5,
		MinPanelHeight: 5,
	}, true
}

func languageView(in input) (renderer, bool) {
	totals := heteronym.LanguageTotals(in.groups)
	if len(totals) == 0 {
		return nil, false
	}

	p := chart.BarPanel{
		Title:  "Ord per språk",
		XLabel: "# ord",
		YLabel: "språk",
	}
	for _, t := range totals {
		p.Bars = append(p.Bars, chart.Bar{
			Label: t.Language,
			Value: float64(t.Words),
			Note:  fmt.Sprintf("%d betydelser", t.Senses),
		})
	}

	return chart.BarFigure{
		Panels:         []chart.BarPanel{p},
		Columns:        1,
		PanelWidth:     8,
		MinPanelHeight: 3,
	}, true
}

func distributionView(in input) (renderer, bool) {
	buckets := heteronym.SenseDistribution(in.groups)
	if len(buckets) == 0 {
		return nil, false
	}

	p := chart.BarPanel{
		Title:  "Fördelning av antal betydelser per ord",
		XLabel: "# ord",
		YLabel: "betydelser",
	}
	for _, b := range buckets {
		p.Bars = append(p.Bars, chart.Bar{
			Label: fmt.Sprintf("%d", b.Senses),
			Value: float64(b.Words),
		})
	}

	return chart.BarFigure{
		Panels:         []chart.BarPanel{p},
		Columns:        1,
		PanelWidth:     8,
		MinPanelHeight: 3,
	}, true
}

func ipaLengthView(in input) (renderer, bool) {
	byLang := make(map[string][]chart.Sample)
	for _, r := range in.records {
		if r.IPA == "" {
			continue
		}
		byLang[r.Language] = append(byLang[r.Language], chart.Sample{
			Key:   r.Language + "/" + r.Word + "/" + r.SenseID,
			Value: float64(utf8.RuneCountInString(r.IPA)),
		})
	}
	if len(byLang) == 0 {
		return nil, false
	}

	plot := chart.BoxPlot{
		Title:  "Längd på IPA-strängen per språk (grovt proxy-mått)",
		XLabel: "språk",
		YLabel: "IPA-längd (tecken)",
		Width:  9,
		Height: 5,
	}
	for _, lang := range heteronym.Languages(in.groups) {
		if samples, ok := byLang[lang]; ok {
			plot.Groups = append(plot.Groups, chart.Distribution{Label: lang, Samples: samples})
		}
	}

	return plot, true
}

func cardsView(in input) (renderer, bool) {
	groups := heteronym.TopCards(in.groups, in.maxCards)
	if len(groups) == 0 {
		return nil, false
	}

	fig := chart.CardFigure{
		Title: "Exempelord och uttalsvarianter",
		Width: 11,
	}
	for _, g := range groups {
		summary := strings.Join(g.IPAs, " / ")
		if summary == "" {
			summary = "(ingen IPA)"
		}

		card := chart.Card{
			Heading: fmt.Sprintf("[%s] %s", g.Language, g.Word),
			Summary: summary,
		}
		for _, rd := range g.Readings {
			card.Lines = append(card.Lines, fmt.Sprintf("%s: %s", rd.IPA, rd.Meaning))
		}
		fig.Cards = append(fig.Cards, card)
	}

	return fig, true
}
