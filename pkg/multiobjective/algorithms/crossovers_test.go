package algorithms_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/algorithms"
)

func bits(s string) []bool {
	b := make([]bool, len(s))
	for i, c := range s {
		b[i] = c == '1'
	}
	return b
}

func TestOnePointCrossoverAt(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2         string
		point          int
		child1, child2 string
	}{
		{"cut at start swaps everything", "11111111", "00000000", 0, "00000000", "11111111"},
		{"cut in the middle", "11111111", "00000000", 4, "11110000", "00001111"},
		{"cut at end swaps nothing", "11111111", "00000000", 8, "11111111", "00000000"},
		{"mixed parents", "01001110", "10101011", 5, "01001011", "10101110"},
		{"unequal lengths", "111111", "000", 2, "110", "001111"},
		{"point beyond shorter parent", "111111", "000", 5, "111", "000111"},
		{"negative point", "1111", "0000", -3, "0000", "1111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c1, c2 := algorithms.OnePointCrossoverAt(bits(tt.p1), bits(tt.p2), tt.point)
			if diff := cmp.Diff(bits(tt.child1), c1); diff != "" {
				t.Errorf("Unexpected first child (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(bits(tt.child2), c2); diff != "" {
				t.Errorf("Unexpected second child (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCrossoversDoNotAliasParents(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, name := range []string{algorithms.OnePoint, algorithms.TwoPoint, algorithms.Uniform} {
		crossover := algorithms.CrossoverByName(name)
		if crossover == nil {
			t.Fatalf("No crossover registered under %q", name)
		}
		p1, p2 := bits("1111111111"), bits("0000000000")
		c1, c2 := crossover(rng, p1, p2)
		c1[0], c2[0] = !c1[0], !c2[0]

		if diff := cmp.Diff(bits("1111111111"), p1); diff != "" {
			t.Errorf("%s: first parent modified (-want +got):\n%s", name, diff)
		}
		if diff := cmp.Diff(bits("0000000000"), p2); diff != "" {
			t.Errorf("%s: second parent modified (-want +got):\n%s", name, diff)
		}
	}
	if algorithms.CrossoverByName("sbx") != nil {
		t.Error("Expected no crossover for an unknown name")
	}
}

func TestKPointCrossover(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	p1, p2 := bits("000000000000"), bits("111111111111")

	for _, k := range []int{1, 2, 3, 11, 50} {
		for trial := 0; trial < 20; trial++ {
			c1, c2 := algorithms.KPointCrossover(rng, p1, p2, k)
			switches := 0
			for i := range c1 {
				if c1[i] == c2[i] {
					t.Fatalf("k=%d: children share bit %d", k, i)
				}
				if i > 0 && c1[i] != c1[i-1] {
					switches++
				}
			}
			if want := min(k, len(p1)-1); switches != want {
				t.Fatalf("k=%d: expected %d parent switches, got %d (%v)", k, want, switches, c1)
			}
			if c1[0] != p1[0] {
				t.Fatalf("k=%d: first segment should come from the first parent", k)
			}
		}
	}

	// Too short to cut: children are copies.
	c1, c2 := algorithms.KPointCrossover(rng, bits("1"), bits("0"), 2)
	if !c1[0] || c2[0] {
		t.Errorf("Expected copies of single-bit parents, got %v and %v", c1, c2)
	}
}

func TestUniformCrossoverKeepsBitsAligned(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	p1, p2 := bits("10101010"), bits("01010101")
	for trial := 0; trial < 50; trial++ {
		c1, c2 := algorithms.UniformCrossover(rng, p1, p2)
		for i := range c1 {
			if !((c1[i] == p1[i] && c2[i] == p2[i]) || (c1[i] == p2[i] && c2[i] == p1[i])) {
				t.Fatalf("Bit %d is not inherited position-wise", i)
			}
		}
	}
}
