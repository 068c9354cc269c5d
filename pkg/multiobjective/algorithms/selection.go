package algorithms

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// CrowdedBetter is the crowded-comparison operator: a lower front wins and,
// inside the same front, a larger crowding distance wins.
func CrowdedBetter(a, b *framework.Individual) bool {
	if a.Rank.Front != b.Rank.Front {
		return a.Rank.Front < b.Rank.Front
	}
	return a.Rank.Distance > b.Rank.Distance
}

// BinaryTournament selects n individuals. Every tournament draws two
// distinct slots uniformly at random and keeps the crowded-comparison
// winner; the first drawn contestant wins exact ties. Slots are drawn with
// replacement across tournaments. The population must be ranked and hold
// at least two individuals. Nothing is mutated.
func BinaryTournament(rng *rand.Rand, population framework.Population, n int) (framework.Population, error) {
	if len(population) < 2 {
		return nil, fmt.Errorf("binary tournament needs at least 2 individuals, got %d: %w",
			len(population), framework.ErrInvalidArgument)
	}
	if n < 1 {
		return nil, fmt.Errorf("number of tournaments must be at least 1, got %d: %w",
			n, framework.ErrInvalidArgument)
	}
	for i, ind := range population {
		if ind == nil || !ind.Rank.IsRanked() {
			return nil, fmt.Errorf("individual %d has not been ranked: %w", i, framework.ErrPreconditionViolation)
		}
	}

	selected := make(framework.Population, n)
	for t := 0; t < n; t++ {
		i, j := distinctPair(rng, len(population))
		winner := population[i]
		if CrowdedBetter(population[j], winner) {
			winner = population[j]
		}
		selected[t] = winner
	}
	return selected, nil
}

// distinctPair draws two different indices in [0, size) uniformly.
func distinctPair(rng *rand.Rand, size int) (int, int) {
	i := rng.Intn(size)
	j := rng.Intn(size - 1)
	if j >= i {
		j++
	}
	return i, j
}

// SelectSurvivors keeps size individuals of a ranked population: whole
// fronts are taken while they fit, the first front that does not fit is
// truncated by descending crowding distance (ties by slot).
func SelectSurvivors(population framework.Population, fronts []Front, size int) framework.Population {
	survivors := make(framework.Population, 0, size)
	for _, front := range fronts {
		if len(survivors) == size {
			break
		}
		if len(survivors)+len(front) <= size {
			survivors = append(survivors, FrontMembers(population, front)...)
			continue
		}

		sorted := make(Front, len(front))
		copy(sorted, front)
		sort.SliceStable(sorted, func(i, j int) bool {
			return population[sorted[i]].Rank.Distance > population[sorted[j]].Rank.Distance
		})
		survivors = append(survivors, FrontMembers(population, sorted[:size-len(survivors)])...)
	}
	return survivors
}
