// Package plot draws offspring distributions as bar charts, with genotypes
// along the x axis and counts on the y axis.
package plot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/mendelcross/cross"
	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

var ErrUnknownFormat = errors.New("chart format must be png or svg")

// Colors cycle across bars in genotype order.
var Colors = []drawing.Color{chart.ColorBlue, chart.ColorOrange, chart.ColorGreen}

const DefaultTitle = "Offspring Genotype Distribution"

// BarChart builds the chart for d. The y axis always starts at zero, which
// also lets a single-genotype distribution render.
func BarChart(d cross.Distribution, title string) chart.BarChart {
	entries := d.Entries()

	bars := make([]chart.Value, 0, len(entries))
	max := 0.0
	for i, e := range entries {
		color := Colors[i%len(Colors)]
		bars = append(bars, chart.Value{
			Label: e.Genotype.String(),
			Value: float64(e.Count),
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		})
		if float64(e.Count) > max {
			max = float64(e.Count)
		}
	}

	if max == 0 {
		max = 1
	}

	return chart.BarChart{
		Title:  title,
		Width:  512,
		Height: 384,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 60,
		XAxis:    chart.Shown(),
		YAxis: chart.YAxis{
			Name:  "Frequency",
			Style: chart.Shown(),
			Range: &chart.ContinuousRange{Min: 0, Max: max},
		},
		Bars: bars,
	}
}

// Render writes the chart for d to w.
func Render(w io.Writer, d cross.Distribution, title string, format Format) error {
	var rp chart.RendererProvider
	switch format {
	case PNG:
		rp = chart.PNG
	case SVG:
		rp = chart.SVG
	default:
		return pfx.Err(fmt.Errorf("%q: %w", format, ErrUnknownFormat))
	}

	return pfx.Err(BarChart(d, title).Render(rp, w))
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))); f {
	case PNG, SVG:
		return f, nil
	default:
		return "", pfx.Err(fmt.Errorf("%s: %w", path, ErrUnknownFormat))
	}
}

// WriteFile renders the chart into path. The file is only created once
// rendering has succeeded.
func WriteFile(path string, d cross.Distribution, title string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := Render(buffer, d, title, format); err != nil {
		return err
	}

	outFile, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return pfx.Err(err)
	}

	return pfx.Err(outFile.Close())
}
