package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/mendelcross/cross"
	"github.com/carbocation/mendelcross/fit"
	"github.com/carbocation/mendelcross/genotype"
	"github.com/carbocation/mendelcross/hwe"
	"github.com/carbocation/mendelcross/plot"
	"github.com/carbocation/mendelcross/report"
	"github.com/carbocation/pfx"
)

const exactHWELimit = 1000

func validOffspring(n int) error {
	if n < MinOffspring || n > MaxOffspring {
		return fmt.Errorf("%d: %w", n, ErrOffspringOutOfRange)
	}

	return nil
}

// run simulates a single cross and writes everything requested in opts.
// Nothing is sampled unless both parents and the offspring count are valid.
func run(ctx context.Context, opts Options, w io.Writer) error {
	p1, p2, err := genotype.ParseParents(opts.Parent1, opts.Parent2)
	if err != nil {
		return err
	}
	if err := validOffspring(opts.Offspring); err != nil {
		return err
	}

	d, err := cross.SampleParallel(ctx, opts.Seed, p1, p2, opts.Offspring, opts.Workers)
	if err != nil {
		return err
	}
	expected := cross.Expected(p1, p2)

	fmt.Fprintf(w, "Genotype distribution for %s x %s (%d offspring):\n", p1, p2, d.Total())
	if err := report.WriteLines(w, d); err != nil {
		return pfx.Err(err)
	}

	if opts.Bars {
		fmt.Fprintln(w)
		if err := report.WriteBars(w, d, opts.BarWidth); err != nil {
			return pfx.Err(err)
		}
	}

	if opts.Stats {
		fmt.Fprintln(w)
		if err := writeStats(w, d, expected); err != nil {
			return err
		}
	}

	if opts.Replicates > 1 {
		fmt.Fprintln(w)
		if err := writeReplicates(ctx, w, opts, p1, p2); err != nil {
			return err
		}
	}

	if opts.Table != "" {
		if err := writeTable(opts.Table, w, d, expected); err != nil {
			return err
		}
	}

	if opts.Chart != "" {
		title := fmt.Sprintf("%s (%s x %s)", plot.DefaultTitle, p1, p2)
		if err := plot.WriteFile(opts.Chart, d, title); err != nil {
			return err
		}
		log.Println("Wrote chart to", opts.Chart)
	}

	return nil
}

func writeStats(w io.Writer, d cross.Distribution, expected cross.Expectation) error {
	names := make([]string, 0)
	for _, g := range expected.Genotypes() {
		names = append(names, g.String())
	}
	ratio := make([]string, 0)
	for _, r := range expected.Ratio() {
		ratio = append(ratio, strconv.Itoa(r))
	}
	fmt.Fprintf(w, "Expected ratio (%s): %s\n", strings.Join(names, ":"), strings.Join(ratio, ":"))

	gof, err := fit.ChiSquare(d, expected)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Goodness of fit: %s\n", gof)

	counts, err := hwe.FromDistribution(d)
	if errors.Is(err, hwe.ErrNotBiallelic) {
		fmt.Fprintln(w, "Hardy-Weinberg: not applicable, more than two alleles")
		return nil
	} else if err != nil {
		return err
	}
	// The exact test walks every heterozygote count with big.Int factorials
	// and gets slow for large populations.
	if d.Total() <= exactHWELimit {
		fmt.Fprintf(w, "Hardy-Weinberg exact P: %.4g (%s)\n", counts.Exact(), counts)
	} else {
		fmt.Fprintf(w, "Hardy-Weinberg chi-square P: %.4g (%s)\n", counts.Approximate(), counts)
	}

	return nil
}

type replicateRow struct {
	Genotype string  `csv:"genotype"`
	Mean     float64 `csv:"mean_percent"`
	SD       float64 `csv:"sd_percent"`
	Min      float64 `csv:"min_percent"`
	Max      float64 `csv:"max_percent"`
	Observed int     `csv:"replicates_observed"`
}

func writeReplicates(ctx context.Context, w io.Writer, opts Options, p1, p2 genotype.Parent) error {
	summaries, err := cross.Replicate(ctx, opts.Seed, p1, p2, opts.Offspring, opts.Replicates)
	if err != nil {
		return err
	}

	rows := make([]*replicateRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, &replicateRow{
			Genotype: s.Genotype.String(),
			Mean:     round2(s.Mean),
			SD:       round2(s.SD),
			Min:      round2(s.Min),
			Max:      round2(s.Max),
			Observed: s.Observed,
		})
	}

	fmt.Fprintf(w, "Across %d replicates:\n", opts.Replicates)

	return report.MarshalDelimited(w, rows, '\t')
}

func writeTable(path string, stdout io.Writer, d cross.Distribution, expected cross.Expectation) error {
	if path == "-" {
		fmt.Fprintln(stdout)
		return report.WriteTable(stdout, d, &expected, '\t')
	}

	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := report.WriteTable(f, d, &expected, '\t'); err != nil {
		return err
	}
	log.Println("Wrote table to", path)

	return pfx.Err(f.Close())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
