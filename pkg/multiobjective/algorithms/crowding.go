package algorithms

import (
	"math"
	"sort"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// CrowdingDistance calculates the crowding distance of every member of a
// front. The result is aligned with front: distances[i] belongs to front[i].
//
// Per objective the front is sorted ascending (ties broken by slot), the two
// extremes get +Inf and interior members add the normalized gap between
// their neighbours. Objectives on which the whole front ties contribute
// nothing. Fronts of one or two members are all +Inf.
func CrowdingDistance(population framework.Population, front Front) []float64 {
	distances := make([]float64, len(front))
	if len(front) <= 2 {
		for i := range distances {
			distances[i] = math.Inf(1)
		}
		return distances
	}

	numObjectives := len(population[front[0]].Value)
	order := make([]int, len(front))
	last := len(front) - 1

	for m := 0; m < numObjectives; m++ {
		value := func(pos int) float64 {
			return population[front[pos]].Value[m]
		}

		// Sort by each objective
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			vi, vj := value(order[i]), value(order[j])
			if vi != vj {
				return vi < vj
			}
			return front[order[i]] < front[order[j]]
		})

		lo, hi := value(order[0]), value(order[last])
		if lo == hi {
			continue
		}
		// Values are rescaled before subtracting so that gaps between
		// extreme finite values cannot overflow.
		scale := math.Max(math.Abs(lo), math.Abs(hi))
		objectiveRange := hi/scale - lo/scale

		// Set boundary points to infinity
		distances[order[0]] = math.Inf(1)
		distances[order[last]] = math.Inf(1)

		// Calculate distance for intermediate points
		for i := 1; i < last; i++ {
			distances[order[i]] += (value(order[i+1])/scale - value(order[i-1])/scale) / objectiveRange
		}
	}
	return distances
}
