package cross

import (
	"math"
	"reflect"
	"testing"

	"github.com/carbocation/mendelcross/genotype"
)

func TestExpected(t *testing.T) {
	for _, v := range []struct {
		p1, p2 string
		probs  map[genotype.Genotype]float64
		ratio  []int
	}{
		{"Aa", "Aa", map[genotype.Genotype]float64{"AA": 0.25, "Aa": 0.5, "aa": 0.25}, []int{1, 2, 1}},
		{"AA", "aa", map[genotype.Genotype]float64{"Aa": 1}, []int{1}},
		{"Aa", "aa", map[genotype.Genotype]float64{"Aa": 0.5, "aa": 0.5}, []int{1, 1}},
		{"AA", "Aa", map[genotype.Genotype]float64{"AA": 0.5, "Aa": 0.5}, []int{1, 1}},
		{"Ab", "Cd", map[genotype.Genotype]float64{"AC": 0.25, "Ad": 0.25, "Cb": 0.25, "bd": 0.25}, []int{1, 1, 1, 1}},
	} {
		p1, p2 := mustParents(t, v.p1, v.p2)
		e := Expected(p1, p2)

		if len(e.Genotypes()) != len(v.probs) {
			t.Fatalf("%s x %s: genotypes %v, expected %v", v.p1, v.p2, e.Genotypes(), v.probs)
		}
		for g, p := range v.probs {
			if math.Abs(e.Probability(g)-p) > 1e-12 {
				t.Errorf("%s x %s: P(%s) = %f, expected %f", v.p1, v.p2, g, e.Probability(g), p)
			}
		}
		if r := e.Ratio(); !reflect.DeepEqual(r, v.ratio) {
			t.Errorf("%s x %s: ratio %v, expected %v", v.p1, v.p2, r, v.ratio)
		}
	}
}

func TestExpectedCounts(t *testing.T) {
	p1, p2 := mustParents(t, "Aa", "Aa")

	counts := Expected(p1, p2).Counts(1000)
	if counts["AA"] != 250 || counts["Aa"] != 500 || counts["aa"] != 250 {
		t.Fatalf("got %v", counts)
	}
}
