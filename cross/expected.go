package cross

import (
	"math"

	"github.com/carbocation/mendelcross/genotype"
)

// Expectation is the exact Punnett square for a cross: the probability of
// each offspring genotype.
type Expectation struct {
	probs map[genotype.Genotype]float64
}

// Expected enumerates the four equally likely allele pairings of p1 and p2.
func Expected(p1, p2 genotype.Parent) Expectation {
	e := Expectation{probs: make(map[genotype.Genotype]float64, 3)}
	for _, a := range p1 {
		for _, b := range p2 {
			e.probs[genotype.Of(a, b)] += 0.25
		}
	}

	return e
}

func (e Expectation) Probability(g genotype.Genotype) float64 {
	return e.probs[g]
}

// Genotypes lists the genotypes with non-zero probability, sorted.
func (e Expectation) Genotypes() []genotype.Genotype {
	out := make([]genotype.Genotype, 0, len(e.probs))
	for g := range e.probs {
		out = append(out, g)
	}

	return sortGenotypes(out)
}

// Counts is the expected number of each genotype among n offspring. These are
// not rounded.
func (e Expectation) Counts(n int) map[genotype.Genotype]float64 {
	out := make(map[genotype.Genotype]float64, len(e.probs))
	for g, p := range e.probs {
		out[g] = p * float64(n)
	}

	return out
}

// Ratio expresses the expectation in smallest whole numbers, in Genotypes
// order. 1:2:1 for Aa x Aa, 1:1 for Aa x aa.
func (e Expectation) Ratio() []int {
	out := make([]int, 0, len(e.probs))
	for _, g := range e.Genotypes() {
		// Every probability is a multiple of 1/4.
		out = append(out, int(math.Round(e.probs[g]*4)))
	}

	div := 0
	for _, v := range out {
		div = gcd(div, v)
	}
	if div > 1 {
		for i := range out {
			out[i] /= div
		}
	}

	return out
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
