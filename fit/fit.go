// Package fit compares a simulated offspring distribution with the ratios a
// Punnett square predicts.
package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/carbocation/mendelcross/cross"
	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrImpossibleGenotype is returned when a genotype was observed that the
// cross cannot produce.
var ErrImpossibleGenotype = errors.New("observed genotype has zero expected frequency")

var ErrEmpty = errors.New("no offspring to test")

// Result of a Pearson chi-square goodness-of-fit test.
type Result struct {
	ChiSquare float64
	DF        int
	P         float64
}

func (r Result) String() string {
	return fmt.Sprintf("chi-square %.4f, df %d, P %.4g", r.ChiSquare, r.DF, r.P)
}

// ChiSquare tests observed counts against the expected counts for the same
// number of offspring. Categories are the genotypes the cross can produce;
// degrees of freedom are one fewer than that. A cross with a single possible
// outcome has zero degrees of freedom and P = 1.
func ChiSquare(observed cross.Distribution, expected cross.Expectation) (Result, error) {
	if observed.Total() == 0 {
		return Result{}, ErrEmpty
	}

	for _, g := range observed.Genotypes() {
		if expected.Probability(g) == 0 {
			return Result{}, pfx.Err(fmt.Errorf("%s: %w", g, ErrImpossibleGenotype))
		}
	}

	genotypes := expected.Genotypes()
	expCounts := expected.Counts(observed.Total())

	obs := make([]float64, 0, len(genotypes))
	exp := make([]float64, 0, len(genotypes))
	for _, g := range genotypes {
		obs = append(obs, float64(observed.Count(g)))
		exp = append(exp, expCounts[g])
	}

	out := Result{
		ChiSquare: stat.ChiSquare(obs, exp),
		DF:        len(genotypes) - 1,
		P:         1,
	}

	if out.DF > 0 {
		out.P = 1 - distuv.ChiSquared{K: float64(out.DF)}.CDF(out.ChiSquare)
	}

	return out, nil
}

// WithinTolerance reports whether every genotype the cross can produce was
// observed within +/- points percentage points of its expected share, and
// no impossible genotype was observed at all.
func WithinTolerance(observed cross.Distribution, expected cross.Expectation, points float64) bool {
	if observed.Total() == 0 {
		return false
	}

	for _, g := range observed.Genotypes() {
		if expected.Probability(g) == 0 {
			return false
		}
	}

	for _, g := range expected.Genotypes() {
		if math.Abs(observed.Percent(g)-100*expected.Probability(g)) > points {
			return false
		}
	}

	return true
}
