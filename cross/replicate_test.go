package cross

import (
	"context"
	"math"
	"testing"
)

func TestReplicateRequiresAReplicate(t *testing.T) {
	p1, p2 := mustParents(t, "Aa", "Aa")

	if _, err := Replicate(context.Background(), 1, p1, p2, 100, 0); err != ErrNoReplicates {
		t.Fatalf("expected ErrNoReplicates, got %v", err)
	}
}

func TestReplicateFixedOutcome(t *testing.T) {
	p1, p2 := mustParents(t, "AA", "aa")

	out, err := Replicate(context.Background(), 1, p1, p2, 500, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one genotype, got %+v", out)
	}

	s := out[0]
	if s.Genotype != "Aa" || s.Mean != 100 || s.SD != 0 || s.Min != 100 || s.Max != 100 || s.Observed != 4 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestReplicateSingleRunHasZeroSD(t *testing.T) {
	p1, p2 := mustParents(t, "Aa", "Aa")

	out, err := Replicate(context.Background(), 3, p1, p2, 1000, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range out {
		if s.SD != 0 || s.Min != s.Max || s.Mean != s.Min {
			t.Errorf("single replicate summary %+v", s)
		}
	}
}

func TestReplicateHeterozygousCross(t *testing.T) {
	p1, p2 := mustParents(t, "Aa", "Aa")

	out, err := Replicate(context.Background(), 10, p1, p2, 2000, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("expected AA, Aa and aa, got %+v", out)
	}

	expected := []float64{25, 50, 25}
	total := 0.0
	for i, s := range out {
		if math.Abs(s.Mean-expected[i]) > 3 {
			t.Errorf("%s mean %.2f, expected about %.0f", s.Genotype, s.Mean, expected[i])
		}
		if s.SD <= 0 || s.Min > s.Mean || s.Max < s.Mean {
			t.Errorf("%s: implausible spread %+v", s.Genotype, s)
		}
		total += s.Mean
	}
	if math.Abs(total-100) > 1e-9 {
		t.Errorf("means sum to %f", total)
	}
}
