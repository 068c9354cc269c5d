package algorithms

import (
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// GetParetoFront extracts the Pareto front (first non-dominated front) from a population
func GetParetoFront(population framework.Population) ([]framework.ObjectiveSpacePoint, error) {
	fronts, err := NonDominatedSortN(1, population)
	if err != nil || len(fronts) == 0 {
		return nil, err
	}

	paretoFront := make([]framework.ObjectiveSpacePoint, len(fronts[0]))
	for i, idx := range fronts[0] {
		paretoFront[i] = population[idx].Value
	}
	return paretoFront, nil
}

// FrontValues returns the objective vectors of every front, best first.
func FrontValues(population framework.Population, fronts []Front) [][]framework.ObjectiveSpacePoint {
	values := make([][]framework.ObjectiveSpacePoint, len(fronts))
	for k, front := range fronts {
		values[k] = make([]framework.ObjectiveSpacePoint, len(front))
		for i, idx := range front {
			values[k][i] = population[idx].Value
		}
	}
	return values
}

// NewPopulation wraps solutions into unranked individuals and evaluates them.
func NewPopulation(problem framework.Problem, solutions []*framework.BinarySolution) framework.Population {
	population := make(framework.Population, len(solutions))
	for i, sol := range solutions {
		population[i] = framework.NewIndividual(sol, problem.Evaluate(sol))
	}
	return population
}
