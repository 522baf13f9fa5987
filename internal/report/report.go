// Package report prints run summaries to the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/homograf/internal/heteronym"
	"github.com/mattn/go-runewidth"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("#FF6B6B") // Red - titles
	ColorAccent  = lipgloss.Color("#ffe66d") // Yellow - words
	ColorMuted   = lipgloss.Color("#666666") // Gray - IPA, paths
	ColorSuccess = lipgloss.Color("#a8e6cf") // Green - counts
)

var (
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	WordStyle   = lipgloss.NewStyle().Foreground(ColorAccent)
	CountStyle  = lipgloss.NewStyle().Foreground(ColorSuccess)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Groups prints one line per word group with aligned columns.
func Groups(w io.Writer, groups []heteronym.WordGroup) {
	headers := []string{"språk", "ord", "betydelser", "uttal", "IPA"}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.Language,
			g.Word,
			strconv.Itoa(g.Senses),
			strconv.Itoa(g.Variants),
			strings.Join(g.IPAs, " / "),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	styles := []lipgloss.Style{lipgloss.NewStyle(), WordStyle, CountStyle, CountStyle, MutedStyle}

	var header []string
	for i, h := range headers {
		header = append(header, HeaderStyle.Render(runewidth.FillRight(h, widths[i])))
	}
	fmt.Fprintln(w, strings.Join(header, "  "))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			// Pad before styling; escape codes have no display width.
			if i == len(row)-1 {
				cells[i] = styles[i].Render(cell)
			} else {
				cells[i] = styles[i].Render(runewidth.FillRight(cell, widths[i]))
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, MutedStyle.Render(fmt.Sprintf("%d ord", len(groups))))
}

// Written prints the list of figure files produced by a run.
func Written(w io.Writer, paths []string) {
	fmt.Fprintln(w, TitleStyle.Render("Wrote:"))
	for _, p := range paths {
		fmt.Fprintf(w, "- %s\n", p)
	}
}

// Summary prints a short dataset summary.
func Summary(w io.Writer, records int, groups []heteronym.WordGroup) {
	heteronyms := 0
	for _, g := range groups {
		if g.IsHeteronym() {
			heteronyms++
		}
	}

	fmt.Fprintf(w, "%s %s rader, %s ord, %s heteronymer\n",
		TitleStyle.Render("Dataset:"),
		CountStyle.Render(strconv.Itoa(records)),
		CountStyle.Render(strconv.Itoa(len(groups))),
		CountStyle.Render(strconv.Itoa(heteronyms)))

	for _, t := range heteronym.LanguageTotals(groups) {
		fmt.Fprintf(w, "  %s: %d ord, %d betydelser\n", WordStyle.Render(t.Language), t.Words, t.Senses)
	}
}
