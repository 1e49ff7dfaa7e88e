package fit

import (
	"errors"
	"math"
	"testing"

	"github.com/carbocation/mendelcross/cross"
	"github.com/carbocation/mendelcross/genotype"
)

func parents(t *testing.T, p1, p2 string) (genotype.Parent, genotype.Parent) {
	t.Helper()

	a, b, err := genotype.ParseParents(p1, p2)
	if err != nil {
		t.Fatal(err)
	}

	return a, b
}

func TestChiSquarePerfectFit(t *testing.T) {
	p1, p2 := parents(t, "Aa", "Aa")
	observed := cross.NewDistribution(map[genotype.Genotype]int{"AA": 250, "Aa": 500, "aa": 250})

	r, err := ChiSquare(observed, cross.Expected(p1, p2))
	if err != nil {
		t.Fatal(err)
	}
	if r.ChiSquare != 0 || r.DF != 2 || math.Abs(r.P-1) > 1e-12 {
		t.Fatalf("perfect 1:2:1 gave %s", r)
	}
}

// Truth values computed by hand: (30^2/250)*2 + (60^2/500) = 14.4, and the
// upper tail of chi-square(2) at 14.4 is exp(-7.2).
func TestChiSquareKnownValue(t *testing.T) {
	p1, p2 := parents(t, "Aa", "Aa")
	observed := cross.NewDistribution(map[genotype.Genotype]int{"AA": 280, "Aa": 440, "aa": 280})

	r, err := ChiSquare(observed, cross.Expected(p1, p2))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.ChiSquare-14.4) > 1e-9 {
		t.Errorf("chi-square %f, expected 14.4", r.ChiSquare)
	}
	if expected := math.Exp(-7.2); math.Abs(r.P-expected) > 1e-9 {
		t.Errorf("P %.12f, expected %.12f", r.P, expected)
	}
}

func TestChiSquareSingleOutcome(t *testing.T) {
	p1, p2 := parents(t, "AA", "aa")

	r, err := ChiSquare(cross.Sample(cross.NewRand(1), p1, p2, 1000), cross.Expected(p1, p2))
	if err != nil {
		t.Fatal(err)
	}
	if r.DF != 0 || r.ChiSquare != 0 || r.P != 1 {
		t.Fatalf("AA x aa gave %s", r)
	}
}

func TestChiSquareImpossibleGenotype(t *testing.T) {
	p1, p2 := parents(t, "AA", "aa")
	observed := cross.NewDistribution(map[genotype.Genotype]int{"Aa": 9, "aa": 1})

	if _, err := ChiSquare(observed, cross.Expected(p1, p2)); !errors.Is(err, ErrImpossibleGenotype) {
		t.Fatalf("expected ErrImpossibleGenotype, got %v", err)
	}
}

func TestChiSquareEmpty(t *testing.T) {
	p1, p2 := parents(t, "Aa", "Aa")

	if _, err := ChiSquare(cross.Distribution{}, cross.Expected(p1, p2)); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestWithinTolerance(t *testing.T) {
	p1, p2 := parents(t, "Aa", "Aa")
	e := cross.Expected(p1, p2)

	if !WithinTolerance(cross.Sample(cross.NewRand(77), p1, p2, 10000), e, 5) {
		t.Errorf("simulated Aa x Aa outside +/- 5 points of 1:2:1")
	}

	skewed := cross.NewDistribution(map[genotype.Genotype]int{"AA": 400, "Aa": 400, "aa": 200})
	if WithinTolerance(skewed, e, 5) {
		t.Errorf("40:40:20 accepted as 1:2:1 within 5 points")
	}

	missing := cross.NewDistribution(map[genotype.Genotype]int{"Aa": 1000})
	if WithinTolerance(missing, e, 5) {
		t.Errorf("distribution lacking homozygotes accepted")
	}
}
