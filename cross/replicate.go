package cross

import (
	"context"
	"errors"

	"github.com/carbocation/mendelcross/genotype"
	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
)

var ErrNoReplicates = errors.New("at least one replicate is required")

// ReplicateSummary describes how one genotype's percentage varied across
// replicate simulations.
type ReplicateSummary struct {
	Genotype genotype.Genotype
	Mean     float64
	SD       float64
	Min      float64
	Max      float64
	// Observed is how many replicates produced the genotype at all.
	Observed int
}

// Replicate repeats the cross with seeds seed, seed+1, ... and summarizes the
// percentage of each genotype seen in any replicate. A replicate lacking a
// genotype counts as 0% for it. SD is the sample standard deviation, and 0
// for a single replicate.
func Replicate(ctx context.Context, seed int64, p1, p2 genotype.Parent, n, replicates int) ([]ReplicateSummary, error) {
	if replicates < 1 {
		return nil, ErrNoReplicates
	}

	runs := make([]Distribution, 0, replicates)
	seen := make(map[genotype.Genotype]struct{})
	for r := 0; r < replicates; r++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		d := Sample(NewRand(seed+int64(r)), p1, p2, n)
		for _, g := range d.Genotypes() {
			seen[g] = struct{}{}
		}
		runs = append(runs, d)
	}

	genotypes := make([]genotype.Genotype, 0, len(seen))
	for g := range seen {
		genotypes = append(genotypes, g)
	}

	out := make([]ReplicateSummary, 0, len(seen))
	for _, g := range sortGenotypes(genotypes) {
		pcts := make(stats.Float64Data, 0, len(runs))
		summary := ReplicateSummary{Genotype: g}
		for _, d := range runs {
			if d.Count(g) > 0 {
				summary.Observed++
			}
			pcts = append(pcts, d.Percent(g))
		}

		var err error
		if summary.Mean, err = stats.Mean(pcts); err != nil {
			return nil, pfx.Err(err)
		}
		if summary.Min, err = stats.Min(pcts); err != nil {
			return nil, pfx.Err(err)
		}
		if summary.Max, err = stats.Max(pcts); err != nil {
			return nil, pfx.Err(err)
		}
		if len(pcts) > 1 {
			if summary.SD, err = stats.StandardDeviationSample(pcts); err != nil {
				return nil, pfx.Err(err)
			}
		}

		out = append(out, summary)
	}

	return out, nil
}
