package algorithms

import (
	"fmt"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// Dominates checks if point a dominates point b: a is no worse than b on
// every objective and strictly better on at least one. Equal points never
// dominate each other.
func Dominates(a, b framework.ObjectiveSpacePoint) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// IsDominatedBy reports whether a is dominated by b.
func IsDominatedBy(a, b framework.ObjectiveSpacePoint) bool {
	return Dominates(b, a)
}

// IndividualDominates is Dominates applied to the objective vectors of two individuals.
func IndividualDominates(a, b *framework.Individual) bool {
	return Dominates(a.Value, b.Value)
}

// CountDominators returns how many of the given members of population
// dominate the individual in slot idx. The individual itself never counts
// since a point does not dominate itself.
func CountDominators(population framework.Population, idx int, members []int) int {
	count := 0
	for _, j := range members {
		if IsDominatedBy(population[idx].Value, population[j].Value) {
			count++
		}
	}
	return count
}

// CountDominatorsOf returns how many points of population dominate point.
// Every point must have as many objectives as point.
func CountDominatorsOf(point framework.ObjectiveSpacePoint, population []framework.ObjectiveSpacePoint) (int, error) {
	for i, other := range population {
		if len(other) != len(point) {
			return 0, fmt.Errorf("point %d has %d objectives, expected %d: %w", i, len(other), len(point), framework.ErrInvalidInput)
		}
	}
	count := 0
	for _, other := range population {
		if IsDominatedBy(point, other) {
			count++
		}
	}
	return count, nil
}

// hasDominator is CountDominators(...) > 0 with an early exit.
func hasDominator(population framework.Population, idx int, members []int) bool {
	for _, j := range members {
		if IsDominatedBy(population[idx].Value, population[j].Value) {
			return true
		}
	}
	return false
}
