package algorithms

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// Sort returns the fronts of population as individuals, best first.
func Sort(population framework.Population) ([]framework.Population, error) {
	fronts, err := NonDominatedSort(population)
	if err != nil {
		return nil, err
	}
	return resolve(population, fronts), nil
}

// SortBounded returns at most n fronts of population as individuals.
func SortBounded(n int, population framework.Population) ([]framework.Population, error) {
	fronts, err := NonDominatedSortN(n, population)
	if err != nil {
		return nil, err
	}
	return resolve(population, fronts), nil
}

// Rank stamps every individual of population in place and returns it.
func Rank(population framework.Population) (framework.Population, error) {
	if _, err := AssignRanks(population); err != nil {
		return nil, err
	}
	return population, nil
}

// Select runs n binary tournaments over a ranked population.
func Select(rng *rand.Rand, population framework.Population, n int) (framework.Population, error) {
	return BinaryTournament(rng, population, n)
}

func resolve(population framework.Population, fronts []Front) []framework.Population {
	out := make([]framework.Population, len(fronts))
	for k, front := range fronts {
		out[k] = FrontMembers(population, front)
	}
	return out
}
