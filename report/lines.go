// Package report renders offspring distributions as text: the per-genotype
// summary lines, delimited tables, and terminal bar charts.
package report

import (
	"fmt"
	"io"

	"github.com/carbocation/mendelcross/cross"
)

// Line formats one genotype as "<genotype>: <count> (<percent>%)", the percent
// being 100*count/total to two decimal places.
func Line(e cross.Entry) string {
	return fmt.Sprintf("%s: %d (%.2f%%)", e.Genotype, e.Count, e.Percent)
}

// Lines formats every observed genotype, in genotype order.
func Lines(d cross.Distribution) []string {
	entries := d.Entries()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, Line(e))
	}

	return out
}

func WriteLines(w io.Writer, d cross.Distribution) error {
	for _, line := range Lines(d) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
