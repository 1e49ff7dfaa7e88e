package main

import (
	"context"
	"io"
	"log"

	"github.com/carbocation/mendelcross/cross"
	"github.com/carbocation/mendelcross/crossfile"
	"github.com/carbocation/mendelcross/genotype"
	"github.com/carbocation/mendelcross/report"
)

// BatchResult is one genotype of one simulated cross.
type BatchResult struct {
	Parent1   string `csv:"parent1"`
	Parent2   string `csv:"parent2"`
	Offspring int    `csv:"offspring"`
	Seed      int64  `csv:"seed"`
	Genotype  string `csv:"genotype"`
	Count     int    `csv:"count"`
	Percent   string `csv:"percent"`
}

// runBatch simulates every cross in opts.Batch. Rows that fail validation are
// logged and skipped; the rest are written to w as one table.
func runBatch(ctx context.Context, opts Options, w io.Writer) error {
	crosses, err := crossfile.ReadFile(opts.Batch)
	if err != nil {
		return err
	}

	results, err := simulateBatch(ctx, opts, crosses)
	if err != nil {
		return err
	}

	return report.MarshalDelimited(w, results, '\t')
}

// simulateBatch runs each cross in order. A zero offspring count falls back to
// opts.Offspring and a zero seed becomes opts.Seed plus the row's index.
func simulateBatch(ctx context.Context, opts Options, crosses []*crossfile.Cross) ([]*BatchResult, error) {
	results := make([]*BatchResult, 0, 3*len(crosses))
	for i, c := range crosses {
		n := c.Offspring
		if n == 0 {
			n = opts.Offspring
		}
		seed := c.Seed
		if seed == 0 {
			seed = opts.Seed + int64(i)
		}

		p1, p2, err := genotype.ParseParents(c.Parent1, c.Parent2)
		if err != nil {
			log.Printf("Skipping row %d (%q x %q): %s\n", i+1, c.Parent1, c.Parent2, genotype.InvalidGenotypesMessage)
			continue
		}
		if err := validOffspring(n); err != nil {
			log.Printf("Skipping row %d (%s x %s): %v\n", i+1, c.Parent1, c.Parent2, err)
			continue
		}

		d, err := cross.SampleParallel(ctx, seed, p1, p2, n, opts.Workers)
		if err != nil {
			return nil, err
		}

		for _, e := range d.Entries() {
			results = append(results, &BatchResult{
				Parent1:   c.Parent1,
				Parent2:   c.Parent2,
				Offspring: n,
				Seed:      seed,
				Genotype:  e.Genotype.String(),
				Count:     e.Count,
				Percent:   report.FormatPercent(e.Percent),
			})
		}
	}

	return results, nil
}
