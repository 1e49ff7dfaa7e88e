package cross

import (
	"sort"

	"github.com/carbocation/mendelcross/genotype"
)

// Distribution tallies how often each offspring genotype was observed. Only
// observed genotypes have entries, and the counts always sum to Total. A
// Distribution is never modified once it has been returned.
type Distribution struct {
	counts map[genotype.Genotype]int
	total  int
}

// Entry is one row of a Distribution.
type Entry struct {
	Genotype genotype.Genotype
	Count    int
	Percent  float64
}

// NewDistribution builds a Distribution from precomputed counts. Zero and
// negative counts are dropped; the total is the sum of what remains.
func NewDistribution(counts map[genotype.Genotype]int) Distribution {
	d := Distribution{counts: make(map[genotype.Genotype]int, len(counts))}
	for g, c := range counts {
		if c <= 0 {
			continue
		}
		d.counts[g] = c
		d.total += c
	}

	return d
}

func (d Distribution) Count(g genotype.Genotype) int {
	return d.counts[g]
}

// Total is the number of offspring simulated.
func (d Distribution) Total() int {
	return d.total
}

// Len is the number of distinct genotypes observed.
func (d Distribution) Len() int {
	return len(d.counts)
}

// Percent is 100*count/total, or 0 for an empty Distribution.
func (d Distribution) Percent(g genotype.Genotype) float64 {
	if d.total == 0 {
		return 0
	}

	return 100 * float64(d.counts[g]) / float64(d.total)
}

// Genotypes lists the observed genotypes in sorted order.
func (d Distribution) Genotypes() []genotype.Genotype {
	out := make([]genotype.Genotype, 0, len(d.counts))
	for g := range d.counts {
		out = append(out, g)
	}

	return sortGenotypes(out)
}

func sortGenotypes(g []genotype.Genotype) []genotype.Genotype {
	sort.Slice(g, func(i, j int) bool { return g[i] < g[j] })
	return g
}

func (d Distribution) Entries() []Entry {
	out := make([]Entry, 0, len(d.counts))
	for _, g := range d.Genotypes() {
		out = append(out, Entry{Genotype: g, Count: d.counts[g], Percent: d.Percent(g)})
	}

	return out
}

// Map returns a copy of the counts.
func (d Distribution) Map() map[genotype.Genotype]int {
	out := make(map[genotype.Genotype]int, len(d.counts))
	for g, c := range d.counts {
		out[g] = c
	}

	return out
}

// merge sums distributions produced by independent workers.
func merge(parts ...Distribution) Distribution {
	counts := make(map[genotype.Genotype]int)
	for _, p := range parts {
		for g, c := range p.counts {
			counts[g] += c
		}
	}

	return NewDistribution(counts)
}
