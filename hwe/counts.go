// Package hwe tests whether the genotype counts of a simulated offspring
// population are consistent with Hardy-Weinberg equilibrium. Offspring of a
// heterozygous x heterozygous cross are expected to be; most other crosses
// are not.
package hwe

import (
	"errors"
	"fmt"

	"github.com/carbocation/mendelcross/cross"
	"github.com/carbocation/mendelcross/genotype"
	"github.com/carbocation/pfx"
)

// ErrNotBiallelic is returned when a distribution carries more than two
// distinct alleles.
var ErrNotBiallelic = errors.New("HWE tests require at most two alleles")

// Counts holds genotype counts at one biallelic locus. HomMajor is always the
// more common homozygote.
type Counts struct {
	Major, Minor genotype.Allele

	HomMajor int64
	Het      int64
	HomMinor int64
}

func (c Counts) String() string {
	return fmt.Sprintf("%c%c=%d %c%c=%d %c%c=%d",
		c.Major, c.Major, c.HomMajor,
		c.Major, c.Minor, c.Het,
		c.Minor, c.Minor, c.HomMinor)
}

// FromDistribution collapses an offspring distribution into biallelic
// counts. A distribution with only one allele has Major == Minor and all
// individuals counted as HomMajor.
func FromDistribution(d cross.Distribution) (Counts, error) {
	var alleles []genotype.Allele
	seen := make(map[genotype.Allele]int64)
	for _, g := range d.Genotypes() {
		a, b := g.Alleles()
		for _, x := range []genotype.Allele{a, b} {
			if _, exists := seen[x]; !exists {
				alleles = append(alleles, x)
			}
			seen[x] += int64(d.Count(g))
		}
	}

	switch len(alleles) {
	case 0:
		return Counts{}, pfx.Err(fmt.Errorf("empty distribution"))
	case 1:
		return Counts{Major: alleles[0], Minor: alleles[0], HomMajor: int64(d.Total())}, nil
	case 2:
	default:
		return Counts{}, pfx.Err(fmt.Errorf("saw %d alleles: %w", len(alleles), ErrNotBiallelic))
	}

	out := Counts{Major: alleles[0], Minor: alleles[1]}
	if seen[out.Minor] > seen[out.Major] || (seen[out.Minor] == seen[out.Major] && out.Minor < out.Major) {
		out.Major, out.Minor = out.Minor, out.Major
	}

	out.HomMajor = int64(d.Count(genotype.Of(out.Major, out.Major)))
	out.Het = int64(d.Count(genotype.Of(out.Major, out.Minor)))
	out.HomMinor = int64(d.Count(genotype.Of(out.Minor, out.Minor)))

	return out, nil
}
