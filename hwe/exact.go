package hwe

import (
	"math"
	"math/big"

	"github.com/BenLubar/memoize"
)

var (
	memoizedExact       = memoize.Memoize(exact)
	memoizedExactFor    = memoize.Memoize(exactFor)
	memoizedFactorial   = memoize.Memoize(factorial)
	memoizedApproximate = memoize.Memoize(approximate)
)

// Exact is the exact HWE P value (Wigginton, Cutler & Abecasis 2005): the
// total probability of every heterozygote count, given the allele counts,
// that is no more likely than the one observed. Safe for concurrent use.
func (c Counts) Exact() float64 {
	return memoizedExact.(func(int64, int64, int64) float64)(c.HomMajor, c.Het, c.HomMinor)
}

// Fast computes the chi-square approximation and only pays for the exact
// test when the approximation falls below cutoff.
func (c Counts) Fast(cutoff float64) float64 {
	if p := c.Approximate(); p >= cutoff {
		return p
	}

	return c.Exact()
}

func exact(AA, Aa, aa int64) float64 {
	if aa > AA {
		AA, aa = aa, AA
	}

	probFor := memoizedExactFor.(func(int64, int64, int64) float64)
	observed := probFor(AA, Aa, aa)
	sum := observed

	// Each step trades one of each homozygote for two heterozygotes. Walk
	// toward more heterozygotes, then toward fewer, summing configurations
	// no more likely than the observed one. Probabilities fall off
	// monotonically past the mode, so stop once they underflow.
	for hom, het, rare := AA-1, Aa+2, aa-1; rare >= 0; hom, het, rare = hom-1, het+2, rare-1 {
		p := probFor(hom, het, rare)
		if p > observed {
			continue
		}
		if p <= math.SmallestNonzeroFloat64 {
			break
		}
		sum += p
	}

	for hom, het, rare := AA+1, Aa-2, aa+1; het >= 0; hom, het, rare = hom+1, het-2, rare+1 {
		p := probFor(hom, het, rare)
		if p > observed {
			continue
		}
		if p <= math.SmallestNonzeroFloat64 {
			break
		}
		sum += p
	}

	return sum
}

// exactFor is the probability of exactly Aa heterozygotes among AA+Aa+aa
// individuals carrying 2*AA+Aa major and 2*aa+Aa minor alleles:
//
//	2^Aa * A! * a! / ((2N)!/N! * AA! * Aa! * aa!)
func exactFor(AA, Aa, aa int64) float64 {
	A := AA*2 + Aa
	a := aa*2 + Aa
	N := AA + Aa + aa

	fact := memoizedFactorial.(func(int64, int64) *big.Int)

	var num, denom big.Int
	num.Exp(big.NewInt(2), big.NewInt(Aa), nil)
	num.Mul(&num, fact(1, A))
	num.Mul(&num, fact(1, a))

	denom.Set(fact(N+1, 2*N))
	denom.Mul(&denom, fact(1, AA))
	denom.Mul(&denom, fact(1, Aa))
	denom.Mul(&denom, fact(1, aa))

	p, _ := new(big.Rat).SetFrac(&num, &denom).Float64()

	return p
}

// factorial returns a*(a+1)*...*b, or 1 when a > b.
func factorial(a, b int64) *big.Int {
	return big.NewInt(1).MulRange(a, b)
}
