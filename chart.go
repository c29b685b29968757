/*
* Character distribution chart module
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
	"cmp"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"slices"
	"strconv"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	chartWidth  = 1500
	chartHeight = 700

	marginLeft   = 90
	marginRight  = 30
	marginTop    = 50
	marginBottom = 80

	yTicks = 5
)

var (
	colorChartBG = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorAxis    = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	colorGrid    = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	colorBar     = color.RGBA{R: 0x00, G: 0xbf, B: 0xff, A: 0xff} // deepskyblue
	colorText    = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
)

// CharCount is one bar of the distribution chart.
type CharCount struct {
	Char  byte `json:"char"`
	Count int  `json:"count"`
}

// Label renders the character for humans. Invisible or non-ASCII
// characters are shown as hex.
func (c CharCount) Label() string {
	if c.Char > ' ' && c.Char < 0x7f {
		return string(rune(c.Char))
	}
	return fmt.Sprintf("0x%02X", c.Char)
}

// TopCharacters returns the n most frequent characters, descending by
// count. Equal counts keep byte order.
func TopCharacters(totalCounter map[byte]int, n int) []CharCount {
	all := make([]CharCount, 0, len(totalCounter))
	for i := 0; i < 256; i++ {
		if count, ok := totalCounter[byte(i)]; ok {
			all = append(all, CharCount{Char: byte(i), Count: count})
		}
	}
	slices.SortStableFunc(all, func(a, b CharCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if n >= 0 && n < len(all) {
		all = all[:n]
	}
	return all
}

// imageDisplay lets tinyfont draw onto an in-memory image.
type imageDisplay struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*imageDisplay)(nil)

func (d *imageDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imageDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

func (d *imageDisplay) Display() error { return nil }

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func textWidth(font tinyfont.Fonter, s string) int {
	_, outboxWidth := tinyfont.LineWidth(font, s)
	return int(outboxWidth)
}

func writeCentered(d *imageDisplay, font tinyfont.Fonter, cx, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(d, font, int16(cx-textWidth(font, s)/2), int16(y), s, c)
}

func chartTitle(topN int) string {
	return fmt.Sprintf("Top %d Most Frequent Characters in Password File", topN)
}

// drawDistributionChart lays out the bar chart. top must not be empty.
func drawDistributionChart(top []CharCount, topN int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, chartWidth, chartHeight))
	fillRect(img, 0, 0, chartWidth, chartHeight, colorChartBG)
	d := &imageDisplay{img: img}
	font := &proggy.TinySZ8pt7b

	plotLeft, plotRight := marginLeft, chartWidth-marginRight
	plotTop, plotBottom := marginTop, chartHeight-marginBottom
	plotHeight := plotBottom - plotTop

	maxCount := top[0].Count
	for _, cc := range top {
		maxCount = max(maxCount, cc.Count)
	}
	if maxCount == 0 {
		maxCount = 1
	}

	// Grid and y tick labels
	for i := 0; i <= yTicks; i++ {
		y := plotBottom - plotHeight*i/yTicks
		fillRect(img, plotLeft, y, plotRight, y+1, colorGrid)
		label := strconv.Itoa(maxCount * i / yTicks)
		tinyfont.WriteLine(d, font, int16(plotLeft-8-textWidth(font, label)), int16(y+4), label, colorText)
	}

	slot := (plotRight - plotLeft) / len(top)
	barWidth := max(slot*7/10, 1)
	for i, cc := range top {
		x0 := plotLeft + i*slot + (slot-barWidth)/2
		barHeight := plotHeight * cc.Count / maxCount
		fillRect(img, x0, plotBottom-barHeight, x0+barWidth, plotBottom, colorBar)
		writeCentered(d, font, x0+barWidth/2, plotBottom+16, cc.Label(), colorText)
	}

	// Axes
	fillRect(img, plotLeft, plotTop, plotLeft+1, plotBottom+1, colorAxis)
	fillRect(img, plotLeft, plotBottom, plotRight, plotBottom+1, colorAxis)

	writeCentered(d, font, chartWidth/2, marginTop/2+4, chartTitle(topN), colorText)
	writeCentered(d, font, (plotLeft+plotRight)/2, chartHeight-20, "Character", colorText)
	yLabel := "Frequency (Count)"
	tinyfont.WriteLineRotated(d, font, 20, int16(plotTop+plotHeight/2+textWidth(font, yLabel)/2), yLabel, colorText, tinyfont.ROTATION_270)

	return img
}

// RenderDistributionChart writes a PNG bar chart of the given characters.
func RenderDistributionChart(filename string, top []CharCount, topN int) (err error) {
	if len(top) == 0 {
		return ErrEmptyDistribution
	}

	img := drawDistributionChart(top, topN)

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func(file *os.File) {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close chart file: %w", closeErr)
		}
	}(file)

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	return nil
}
