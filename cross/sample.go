// Package cross simulates monohybrid crosses: each offspring receives one
// allele drawn uniformly from each parent, and the resulting genotypes are
// tallied into a Distribution.
package cross

import (
	"math/rand"

	"github.com/carbocation/mendelcross/genotype"
)

// Source is the randomness the sampler consumes. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewRand returns a generator that replays the same draws for the same seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Sample simulates n offspring of p1 and p2. For each offspring one allele is
// drawn from each parent with equal probability, independently, and the pair
// is recorded in canonical order. Sample does not validate its inputs; parents
// come from genotype.ParseParent and n is bounded by the caller. n <= 0 gives
// an empty Distribution.
func Sample(rng Source, p1, p2 genotype.Parent, n int) Distribution {
	d := Distribution{counts: make(map[genotype.Genotype]int, 3)}
	if n <= 0 {
		return d
	}

	for i := 0; i < n; i++ {
		g := genotype.Of(p1.Allele(rng.Intn(2)), p2.Allele(rng.Intn(2)))
		d.counts[g]++
	}
	d.total = n

	return d
}
