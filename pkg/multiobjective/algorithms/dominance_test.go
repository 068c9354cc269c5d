package algorithms_test

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		a, b framework.ObjectiveSpacePoint
		want bool
	}{
		{"better everywhere", framework.ObjectiveSpacePoint{1, 1}, framework.ObjectiveSpacePoint{2, 2}, true},
		{"better on one, equal on other", framework.ObjectiveSpacePoint{1, 2}, framework.ObjectiveSpacePoint{2, 2}, true},
		{"equal", framework.ObjectiveSpacePoint{2, 2}, framework.ObjectiveSpacePoint{2, 2}, false},
		{"trade-off", framework.ObjectiveSpacePoint{1, 3}, framework.ObjectiveSpacePoint{3, 1}, false},
		{"worse", framework.ObjectiveSpacePoint{3, 3, 3}, framework.ObjectiveSpacePoint{2, 2, 2}, false},
		{"negative values", framework.ObjectiveSpacePoint{-5, -1}, framework.ObjectiveSpacePoint{-4, -1}, true},
		{"single objective", framework.ObjectiveSpacePoint{0}, framework.ObjectiveSpacePoint{1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := algorithms.Dominates(tt.a, tt.b); got != tt.want {
				t.Errorf("Dominates(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := algorithms.IsDominatedBy(tt.b, tt.a); got != tt.want {
				t.Errorf("IsDominatedBy(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestDominanceIsAsymmetricAndIrreflexive(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	points := randomValues(rng, 200, 3, 4)

	for i, a := range points {
		if algorithms.Dominates(a, a) {
			t.Fatalf("Point %v dominates itself", a)
		}
		for _, b := range points[i+1:] {
			if algorithms.Dominates(a, b) && algorithms.Dominates(b, a) {
				t.Fatalf("Points %v and %v dominate each other", a, b)
			}
		}
	}
}

func TestDominanceIsTransitive(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	points := randomValues(rng, 60, 2, 5)

	for _, a := range points {
		for _, b := range points {
			if !algorithms.Dominates(a, b) {
				continue
			}
			for _, c := range points {
				if algorithms.Dominates(b, c) && !algorithms.Dominates(a, c) {
					t.Fatalf("%v dominates %v and %v dominates %v, but %v does not dominate %v", a, b, b, c, a, c)
				}
			}
		}
	}
}

func TestCountDominators(t *testing.T) {
	pop := framework.NewPopulationFromValues([]framework.ObjectiveSpacePoint{
		{2, 2},
		{2, 2}, // equal peer
		{1, 1},
		{1, 3},
		{3, 3},
	})
	all := []int{0, 1, 2, 3, 4}

	if got := algorithms.CountDominators(pop, 0, all); got != 1 {
		t.Errorf("Expected only [1 1] to dominate [2 2], got %d dominators", got)
	}
	if got := algorithms.CountDominators(pop, 4, all); got != 4 {
		t.Errorf("Expected 4 dominators of [3 3], got %d", got)
	}
	if got := algorithms.CountDominators(pop, 2, all); got != 0 {
		t.Errorf("Expected no dominators of [1 1], got %d", got)
	}
	got, err := algorithms.CountDominatorsOf(framework.ObjectiveSpacePoint{2, 2}, pop.Values())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("Expected equal points not to count, got %d dominators", got)
	}
}

func TestCountDominatorsOfLengthMismatch(t *testing.T) {
	tests := []struct {
		name       string
		point      framework.ObjectiveSpacePoint
		population []framework.ObjectiveSpacePoint
	}{
		{"shorter peer", framework.ObjectiveSpacePoint{2, 2}, []framework.ObjectiveSpacePoint{{1}}},
		{"longer peer", framework.ObjectiveSpacePoint{2}, []framework.ObjectiveSpacePoint{{1, 99}}},
		{"one bad peer among good ones", framework.ObjectiveSpacePoint{2, 2}, []framework.ObjectiveSpacePoint{{1, 1}, {3, 3, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := algorithms.CountDominatorsOf(tt.point, tt.population)
			if !errors.Is(err, framework.ErrInvalidInput) {
				t.Fatalf("Expected ErrInvalidInput, got count %d and error %v", got, err)
			}
		})
	}
}

func TestIndividualDominates(t *testing.T) {
	a := framework.NewIndividual(nil, framework.ObjectiveSpacePoint{0, 0})
	b := framework.NewIndividual(nil, framework.ObjectiveSpacePoint{0, 1})
	if !algorithms.IndividualDominates(a, b) || algorithms.IndividualDominates(b, a) {
		t.Error("Expected [0 0] to dominate [0 1] and not the other way around")
	}
}

// randomValues draws integer-valued vectors in [0, levels) so that ties and
// duplicates are frequent.
func randomValues(rng *rand.Rand, n, numObjectives, levels int) []framework.ObjectiveSpacePoint {
	values := make([]framework.ObjectiveSpacePoint, n)
	for i := range values {
		values[i] = make(framework.ObjectiveSpacePoint, numObjectives)
		for m := range values[i] {
			values[i][m] = float64(rng.Intn(levels))
		}
	}
	return values
}
