package warmstart_test

import (
	"context"
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/problems/mkp"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/warmstart"
)

func newInstance(t *testing.T, numObjectives, numItems int, seed uint64) *mkp.MKP {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	profit := make([][]uint64, numObjectives)
	for k := range profit {
		profit[k] = make([]uint64, numItems)
		for i := range profit[k] {
			profit[k][i] = 1 + rng.Uint64()%100
		}
	}
	weight := make([]uint64, numItems)
	var total uint64
	for i := range weight {
		weight[i] = 1 + rng.Uint64()%50
		total += weight[i]
	}
	p, err := mkp.New("", total/2, profit, weight)
	if err != nil {
		t.Fatalf("Failed to build instance: %v", err)
	}
	return p
}

func TestGenerateWeightVectors(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		numObjectives int
		first, last   warmstart.ObjectiveWeights
	}{
		{"two objectives", 5, 2, warmstart.ObjectiveWeights{1, 0}, warmstart.ObjectiveWeights{0, 1}},
		{"three objectives", 7, 3, warmstart.ObjectiveWeights{1, 0, 0}, warmstart.ObjectiveWeights{0, 0, 1}},
		{"single vector", 1, 4, warmstart.ObjectiveWeights{0.25, 0.25, 0.25, 0.25}, warmstart.ObjectiveWeights{0.25, 0.25, 0.25, 0.25}},
		{"single objective", 3, 1, warmstart.ObjectiveWeights{1}, warmstart.ObjectiveWeights{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights := warmstart.GenerateWeightVectors(tt.count, tt.numObjectives)
			if len(weights) != tt.count {
				t.Fatalf("Expected %d vectors, got %d", tt.count, len(weights))
			}
			for i, w := range weights {
				sum := 0.0
				for _, v := range w {
					if v < 0 {
						t.Errorf("Vector %d has negative weight %v", i, v)
					}
					sum += v
				}
				if math.Abs(sum-1) > 1e-9 {
					t.Errorf("Vector %d sums to %v", i, sum)
				}
			}
			assertWeights(t, tt.first, weights[0])
			assertWeights(t, tt.last, weights[len(weights)-1])
		})
	}
}

func assertWeights(t *testing.T, want, got warmstart.ObjectiveWeights) {
	t.Helper()
	for j := range want {
		if math.Abs(want[j]-got[j]) > 1e-9 {
			t.Errorf("Expected weights %v, got %v", want, got)
			return
		}
	}
}

func TestGCSHInitialization(t *testing.T) {
	tests := []struct {
		name          string
		numObjectives int
		numItems      int
		popSize       int
		includeEmpty  bool
	}{
		{name: "Two objectives", numObjectives: 2, numItems: 20, popSize: 20},
		{name: "Three objectives with baseline", numObjectives: 3, numItems: 40, popSize: 15, includeEmpty: true},
		{name: "Single solution", numObjectives: 2, numItems: 10, popSize: 1, includeEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instance := newInstance(t, tt.numObjectives, tt.numItems, 3)
			gcsh := warmstart.NewGCSH(warmstart.GCSHConfig{
				Instance:             instance,
				IncludeEmptyKnapsack: tt.includeEmpty,
			})

			solutions := gcsh.GenerateInitialPopulation(rand.New(rand.NewSource(1)), tt.popSize)
			if len(solutions) != tt.popSize {
				t.Fatalf("Expected %d solutions, got %d", tt.popSize, len(solutions))
			}
			for i, sol := range solutions {
				if !instance.Feasible(sol) {
					t.Errorf("Solution %d (%s) exceeds the capacity", i, sol)
				}
				if i == 0 && tt.includeEmpty && tt.popSize > 1 {
					if sol.Ones() != 0 {
						t.Errorf("Expected the empty knapsack first, got %s", sol)
					}
					continue
				}
				if sol.Ones() == 0 {
					t.Errorf("Greedy solution %d selected nothing", i)
				}
			}
		})
	}
}

func TestGCSHExtremesFavorTheirObjective(t *testing.T) {
	instance := newInstance(t, 2, 30, 9)
	gcsh := warmstart.NewGCSH(warmstart.GCSHConfig{Instance: instance})

	solutions := gcsh.GenerateInitialPopulation(rand.New(rand.NewSource(4)), 10)
	first := instance.Profits(solutions[0])
	last := instance.Profits(solutions[len(solutions)-1])

	if first[0] <= last[0] {
		t.Errorf("Expected the first solution to favor objective 0: %v vs %v", first, last)
	}
	if last[1] <= first[1] {
		t.Errorf("Expected the last solution to favor objective 1: %v vs %v", first, last)
	}
}

func TestGCSHSeedsNSGAII(t *testing.T) {
	instance := newInstance(t, 2, 25, 5)
	rng := rand.New(rand.NewSource(2))
	seeds := warmstart.NewGCSH(warmstart.GCSHConfig{Instance: instance, IncludeEmptyKnapsack: true}).
		GenerateInitialPopulation(rng, 20)

	config := algorithms.NSGA2Config{
		PopulationSize:       20,
		MaxGenerations:       0,
		CrossoverProbability: 0.9,
		InitialPopulation:    seeds,
	}
	pop, err := algorithms.NewNSGAII(config, instance).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for i, ind := range pop {
		for _, v := range ind.Value {
			if v > 0 {
				t.Errorf("Individual %d is infeasible: %v", i, ind.Value)
			}
		}
	}
}
