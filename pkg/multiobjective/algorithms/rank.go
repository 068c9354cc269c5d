package algorithms

import (
	"context"
	"runtime"

	"k8s.io/client-go/util/workqueue"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// AssignRanks sorts the whole population into fronts, computes the crowding
// distance inside every front and writes both into each individual's Rank.
// Previous ranks are discarded first, so the result never depends on a
// stale annotation. The fronts are returned for callers that need them.
func AssignRanks(population framework.Population) ([]Front, error) {
	if _, err := population.NumObjectives(); err != nil {
		return nil, err
	}
	population.ResetRanks()

	fronts := peelFronts(population, -1)

	// Fronts are disjoint, so their distances can be computed independently.
	distances := make([][]float64, len(fronts))
	workqueue.ParallelizeUntil(context.TODO(), runtime.NumCPU(), len(fronts), func(k int) {
		distances[k] = CrowdingDistance(population, fronts[k])
	})

	for k, front := range fronts {
		for i, idx := range front {
			population[idx].Rank = framework.Rank{
				Front:    k + 1,
				Distance: distances[k][i],
			}
		}
	}
	return fronts, nil
}
