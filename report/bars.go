package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/mendelcross/cross"
)

// DefaultBarWidth is the length, in characters, of the longest bar.
const DefaultBarWidth = 40

// WriteBars draws a horizontal bar per genotype. Bars are scaled linearly
// from zero, so the most common genotype spans width characters.
func WriteBars(w io.Writer, d cross.Distribution, width int) error {
	if width < 1 {
		width = DefaultBarWidth
	}

	entries := d.Entries()
	max := 0
	for _, e := range entries {
		if e.Count > max {
			max = e.Count
		}
	}

	scale := histogram.Linear(width)

	tabw := tabwriter.NewWriter(w, 2, 2, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tabw, "%s\t%.2f%%\t%s %d\n", e.Genotype, e.Percent, bar(scale(0, max, e.Count)), e.Count)
	}

	return tabw.Flush()
}

func bar(length float64) string {
	n := int(length + 0.5)
	if n < 1 {
		// Any observed genotype gets a visible bar.
		n = 1
	}

	return strings.Repeat("█", n)
}
