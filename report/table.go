package report

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/carbocation/mendelcross/cross"
	"github.com/carbocation/mendelcross/genotype"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// Row is one genotype of a distribution in tabular form.
type Row struct {
	Genotype        string `csv:"genotype"`
	Zygosity        string `csv:"zygosity"`
	Count           int    `csv:"count"`
	Percent         string `csv:"percent"`
	ExpectedPercent string `csv:"expected_percent"`
}

// Rows converts a distribution into table rows. When expected is non-nil,
// genotypes the cross can produce but that were never observed are included
// with a zero count, and every row carries its expected percentage.
func Rows(d cross.Distribution, expected *cross.Expectation) []*Row {
	out := make([]*Row, 0, d.Len())
	for _, e := range d.Entries() {
		out = append(out, &Row{
			Genotype: e.Genotype.String(),
			Zygosity: e.Genotype.Zygosity().String(),
			Count:    e.Count,
			Percent:  FormatPercent(e.Percent),
		})
	}

	if expected == nil {
		return out
	}

	for _, g := range expected.Genotypes() {
		if d.Count(g) > 0 {
			continue
		}
		out = append(out, &Row{
			Genotype: g.String(),
			Zygosity: g.Zygosity().String(),
			Percent:  FormatPercent(0),
		})
	}

	for _, r := range out {
		r.ExpectedPercent = FormatPercent(100 * expected.Probability(genotype.Genotype(r.Genotype)))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Genotype < out[j].Genotype })

	return out
}

// WriteTable writes Rows(d, expected) with a header, separated by delim.
func WriteTable(w io.Writer, d cross.Distribution, expected *cross.Expectation, delim rune) error {
	return MarshalDelimited(w, Rows(d, expected), delim)
}

// MarshalDelimited writes any gocsv-tagged slice with a header row.
func MarshalDelimited(w io.Writer, rows interface{}, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	return pfx.Err(gocsv.MarshalCSV(rows, cw))
}

// FormatPercent renders a percentage to two decimal places.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}
