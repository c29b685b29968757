/*
* Console report module
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Minimum column widths; columns grow to fit the longest cell.
const (
	metricWidth = 30
	valueWidth  = 34
)

var numberPrinter = message.NewPrinter(language.English)

// formatCount groups digits in thousands, e.g. 1234567 -> "1,234,567".
func formatCount(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

func formatEntropy(entropy float64) string {
	return fmt.Sprintf("%.4f bits per character", entropy)
}

// Printer renders analysis results as console tables.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

type row struct {
	metric string
	value  string
}

// columnWidth returns the widest cell in runes, at least minWidth.
func columnWidth(minWidth int, cells ...string) int {
	width := minWidth
	for _, cell := range cells {
		width = max(width, utf8.RuneCountInString(cell))
	}
	return width
}

//nolint:errcheck // console output
func (p *Printer) printTable(title string, header row, rows []row) {
	metrics := []string{header.metric}
	values := []string{header.value}
	for _, r := range rows {
		metrics = append(metrics, r.metric)
		values = append(values, r.value)
	}
	mw := columnWidth(metricWidth, metrics...)
	vw := columnWidth(valueWidth, values...)

	border := func(left, mid, right string) {
		fmt.Fprintf(p.out, "%s%s%s%s%s\n", left, strings.Repeat("─", mw+2), mid, strings.Repeat("─", vw+2), right)
	}
	fmt.Fprintf(p.out, "%s\n", title)
	border("┌", "┬", "┐")
	fmt.Fprintf(p.out, "│ %-*s │ %-*s │\n", mw, header.metric, vw, header.value)
	border("├", "┼", "┤")
	for _, r := range rows {
		fmt.Fprintf(p.out, "│ %-*s │ %-*s │\n", mw, r.metric, vw, r.value)
	}
	border("└", "┴", "┘")
}

// PrintSummary prints the four-row results table.
func (p *Printer) PrintSummary(s CorpusStats) {
	p.printTable("Analysis Results", row{"Metric", "Value"}, []row{
		{"Analyzed File", s.Filename},
		{"Total Characters Analyzed", formatCount(s.TotalChars)},
		{"Unique Characters Found", fmt.Sprintf("%d", s.UniqueChars)},
		{"Final Shannon Entropy", formatEntropy(s.Entropy)},
	})
}

// PrintDetails prints the distribution statistics, class breakdown and top characters.
func (p *Printer) PrintDetails(a *Analysis) {
	if a == nil {
		return
	}
	d := a.Distribution
	p.printTable("Distribution", row{"Metric", "Value"}, []row{
		{"Maximum Entropy", formatEntropy(d.MaxEntropy)},
		{"Entropy Efficiency", fmt.Sprintf("%.2f%%", d.Efficiency*100)},
		{"Chi-square (uniform)", fmt.Sprintf("%.2f", d.ChiSquare)},
		{"KS Statistic", fmt.Sprintf("%.4f at %s", d.KS.Statistic, CharCount{Char: d.KS.MaxDiffChar}.Label())},
		{"KS Critical Value (0.05)", fmt.Sprintf("%.6f", d.KS.CriticalValue005)},
		{"Mean Count", fmt.Sprintf("%.2f", d.Counts.Mean)},
		{"Median Count", fmt.Sprintf("%.2f", d.Counts.Median)},
		{"Count Std. Deviation", fmt.Sprintf("%.2f", d.Counts.StdDev)},
		{"Count Range", fmt.Sprintf("%.0f - %.0f", d.Counts.Min, d.Counts.Max)},
		{"Count 90th Percentile", fmt.Sprintf("%.2f", d.Counts.P90)},
	})

	classRows := make([]row, 0, len(a.Classes))
	for _, c := range a.Classes {
		classRows = append(classRows, row{c.Class, fmt.Sprintf("%s (%d distinct)", formatCount(c.Occurrences), c.Distinct)})
	}
	p.printTable("Character Classes", row{"Class", "Occurrences"}, classRows)

	topRows := make([]row, 0, len(a.Top))
	for _, c := range a.Top {
		share := 0.0
		if a.Stats.TotalChars > 0 {
			share = float64(c.Count) / float64(a.Stats.TotalChars) * 100
		}
		topRows = append(topRows, row{c.Label(), fmt.Sprintf("%s (%.2f%%)", formatCount(c.Count), share)})
	}
	p.printTable("Most Frequent Characters", row{"Character", "Count"}, topRows)
}
