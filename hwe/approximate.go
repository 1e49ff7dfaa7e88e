package hwe

import (
	"math"

	"github.com/tokenme/probab/dst"
)

// Approximate is the 1 df chi-square HWE P value. It is fast but unreliable
// when a genotype class is small; prefer Exact or Fast there.
func (c Counts) Approximate() float64 {
	return memoizedApproximate.(func(int64, int64, int64) float64)(c.HomMajor, c.Het, c.HomMinor)
}

func approximate(AA, Aa, aa int64) (p float64) {
	// The CDF panics on some degenerate inputs; those report p = 0.
	defer func() { recover() }()

	return 1.0 - dst.ChiSquareCDF(1)(chiSquare(float64(AA), float64(Aa), float64(aa)))
}

// chiSquare compares observed genotype counts with those expected from the
// observed allele frequencies.
func chiSquare(AA, Aa, aa float64) float64 {
	A := AA*2 + Aa
	a := aa*2 + Aa

	// Monomorphic: nothing to test, and the expectations below would divide
	// by zero.
	if A == 0 || a == 0 {
		return 0.0
	}

	N := AA + Aa + aa
	p := A / (A + a)
	q := a / (A + a)

	eAA := p * p * N
	eAa := 2.0 * p * q * N
	eaa := q * q * N

	return math.Pow(eAA-AA, 2)/eAA +
		math.Pow(eAa-Aa, 2)/eAa +
		math.Pow(eaa-aa, 2)/eaa
}
