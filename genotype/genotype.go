// Package genotype holds the value types for a single biallelic locus: the
// two alleles carried by a parent, and the canonical genotype of an
// offspring.
package genotype

import "unicode/utf8"

// Allele is a single allele symbol. Any character is accepted; case carries
// no special meaning beyond its code point ordering.
type Allele = rune

// Genotype is a canonical pair of alleles. The first allele never sorts after
// the second, so "aA" and "Aa" are the same Genotype.
type Genotype string

// Of builds the canonical Genotype for two alleles, regardless of which parent
// contributed which.
func Of(a, b Allele) Genotype {
	if b < a {
		a, b = b, a
	}

	return Genotype(string([]rune{a, b}))
}

// Normalize canonicalizes a two-character string. It returns
// ErrInvalidGenotypeLength for anything else.
func Normalize(s string) (Genotype, error) {
	p, err := ParseParent(s)
	if err != nil {
		return "", err
	}

	return p.Genotype(), nil
}

// Alleles returns the two alleles in canonical order.
func (g Genotype) Alleles() (Allele, Allele) {
	r := []rune(string(g))
	if len(r) != 2 {
		return utf8.RuneError, utf8.RuneError
	}

	return r[0], r[1]
}

func (g Genotype) Zygosity() Zygosity {
	if utf8.RuneCountInString(string(g)) != 2 {
		return Unknown
	}

	a, b := g.Alleles()
	if a == b {
		return Homozygous
	}

	return Heterozygous
}

func (g Genotype) String() string {
	return string(g)
}

// Parent is the pair of alleles held by one parent, in the order entered.
type Parent [2]Allele

// ParseParent validates a parent genotype as typed by a user. Length is
// counted in characters, not bytes.
func ParseParent(s string) (Parent, error) {
	r := []rune(s)
	if len(r) != 2 {
		return Parent{}, &InvalidGenotypeLengthError{Input: s, Length: len(r)}
	}

	return Parent{r[0], r[1]}, nil
}

// ParseParents validates both parents. Neither is usable unless both are
// valid.
func ParseParents(parent1, parent2 string) (Parent, Parent, error) {
	p1, err := ParseParent(parent1)
	if err != nil {
		err.(*InvalidGenotypeLengthError).Parent = 1
		return Parent{}, Parent{}, err
	}

	p2, err := ParseParent(parent2)
	if err != nil {
		err.(*InvalidGenotypeLengthError).Parent = 2
		return Parent{}, Parent{}, err
	}

	return p1, p2, nil
}

// Allele returns the allele at position i (0 or 1).
func (p Parent) Allele(i int) Allele {
	return p[i]
}

// Genotype is the parent's own genotype in canonical form.
func (p Parent) Genotype() Genotype {
	return Of(p[0], p[1])
}

func (p Parent) String() string {
	return string(p[:])
}
