package algorithms

import (
	"fmt"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// RankedIndex pairs a population slot with its 1-based front number.
type RankedIndex struct {
	Index int
	Rank  int
}

// NonDominatedSort performs non-dominated sorting on the population by
// repeatedly peeling the first front off the remaining individuals until
// none are left. Fronts are returned best first and partition the population.
func NonDominatedSort(population framework.Population) ([]Front, error) {
	if _, err := population.NumObjectives(); err != nil {
		return nil, err
	}
	return peelFronts(population, -1), nil
}

// NonDominatedSortN is NonDominatedSort stopping after n fronts. The fronts
// it returns are identical to the first min(n, total) fronts of the full sort.
func NonDominatedSortN(n int, population framework.Population) ([]Front, error) {
	if n < 0 {
		return nil, fmt.Errorf("number of fronts must not be negative, got %d: %w", n, framework.ErrInvalidArgument)
	}
	if _, err := population.NumObjectives(); err != nil {
		return nil, err
	}
	return peelFronts(population, n), nil
}

// AssignFrontRanks flattens the sorted fronts, labeling every member of the
// k-th front (0-indexed) with rank k+1.
func AssignFrontRanks(population framework.Population) ([]RankedIndex, error) {
	fronts, err := NonDominatedSort(population)
	if err != nil {
		return nil, err
	}
	ranked := make([]RankedIndex, 0, len(population))
	for k, front := range fronts {
		for _, idx := range front {
			ranked = append(ranked, RankedIndex{Index: idx, Rank: k + 1})
		}
	}
	return ranked, nil
}

// peelFronts extracts fronts from a shrinking working set of slot indices.
// A negative limit means no limit. Each round removes a non-empty front, so
// the loop runs at most len(population) times.
func peelFronts(population framework.Population, limit int) []Front {
	remaining := make([]int, len(population))
	for i := range remaining {
		remaining[i] = i
	}

	var fronts []Front
	for len(remaining) > 0 && (limit < 0 || len(fronts) < limit) {
		front := FindFirstFront(population, remaining)
		fronts = append(fronts, front)
		remaining = RemoveIndividuals(remaining, front)
	}
	return fronts
}

// FrontMembers resolves the slots of a front to individuals.
func FrontMembers(population framework.Population, front Front) framework.Population {
	members := make(framework.Population, len(front))
	for i, idx := range front {
		members[i] = population[idx]
	}
	return members
}
