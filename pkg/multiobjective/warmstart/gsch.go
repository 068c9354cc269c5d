// Package warmstart provides a Greedy Constructive State Heuristic (GCSH) for
// generating high-quality initial populations for the multi-objective knapsack.
//
// Every solution is built greedily from a different weight vector over the
// objectives, sweeping from one extreme objective to the other. This gives
// NSGA-II a spread-out, feasible approximation of the Pareto front instead
// of purely random selections.
package warmstart

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/constraints"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/problems/mkp"
)

// ObjectiveWeights defines the weights for objectives
type ObjectiveWeights []float64

// GCSHConfig contains configuration for the Greedy Constructive State Heuristic
type GCSHConfig struct {
	Instance *mkp.MKP
	// IncludeEmptyKnapsack adds the empty selection as a baseline. It is
	// always feasible and dominates every overloaded selection.
	IncludeEmptyKnapsack bool
}

// GenerateWeightVectors creates count weight vectors spread evenly along the
// edges of the weight simplex, walking from objective 0 to objective
// numObjectives-1. With two objectives this is plain linear interpolation.
func GenerateWeightVectors(count int, numObjectives int) []ObjectiveWeights {
	weights := make([]ObjectiveWeights, count)

	for i := 0; i < count; i++ {
		weights[i] = make(ObjectiveWeights, numObjectives)

		switch {
		case count == 1 || numObjectives == 1:
			// Single weight - equal distribution
			for j := 0; j < numObjectives; j++ {
				weights[i][j] = 1.0 / float64(numObjectives)
			}
		default:
			pos := float64(i) / float64(count-1) * float64(numObjectives-1)
			seg := min(int(pos), numObjectives-2)
			frac := pos - float64(seg)
			weights[i][seg] = 1.0 - frac
			weights[i][seg+1] += frac
		}
	}

	return weights
}

// GCSH implements the Greedy Constructive State Heuristic
type GCSH struct {
	config GCSHConfig
	// profitShare[k][i] is profit[k][i] over the total profit of objective k,
	// so that weights compare objectives of different scales.
	profitShare [][]float64
}

// NewGCSH creates a new GCSH instance
func NewGCSH(config GCSHConfig) *GCSH {
	p := config.Instance
	share := make([][]float64, p.NumberOfObjectives)
	for k, row := range p.Profit {
		total := 0.0
		for _, v := range row {
			total += float64(v)
		}
		share[k] = make([]float64, len(row))
		for i, v := range row {
			if total > 0 {
				share[k][i] = float64(v) / total
			}
		}
	}
	return &GCSH{config: config, profitShare: share}
}

// GenerateInitialPopulation creates a diverse initial population using GCSH.
// Every solution it returns is feasible.
func (g *GCSH) GenerateInitialPopulation(rng *rand.Rand, popSize int) []*framework.BinarySolution {
	if popSize <= 0 {
		return nil
	}

	numWeights := popSize
	startIdx := 0
	if g.config.IncludeEmptyKnapsack && popSize > 1 {
		numWeights = popSize - 1
		startIdx = 1
	}

	weightVectors := GenerateWeightVectors(numWeights, g.config.Instance.NumberOfObjectives)
	solutions := make([]*framework.BinarySolution, popSize)

	if startIdx == 1 {
		solutions[0] = framework.NewBinarySolution(make([]bool, g.config.Instance.NumberOfItems))
		klog.V(4).InfoS("GCSH added the empty knapsack as baseline")
	}

	for i := 0; i < numWeights; i++ {
		solutions[startIdx+i] = g.constructSolution(rng, weightVectors[i])
	}

	unique := sets.New[string]()
	for _, sol := range solutions {
		unique.Insert(sol.String())
	}
	klog.V(2).InfoS("GCSH generated initial solutions", "instance", g.config.Instance.Name(),
		"solutions", len(solutions), "unique", unique.Len())
	return solutions
}

// constructSolution fills the knapsack greedily by weighted profit per unit
// of weight. Items that no longer fit are skipped, lighter ones may follow.
func (g *GCSH) constructSolution(rng *rand.Rand, weights ObjectiveWeights) *framework.BinarySolution {
	p := g.config.Instance
	sol := framework.NewBinarySolution(make([]bool, p.NumberOfItems))
	fits := constraints.CapacityConstraint(p.Weight, p.Capacity)

	type itemWithIndex struct {
		index    int
		priority float64
	}
	items := make([]itemWithIndex, p.NumberOfItems)
	for i := range items {
		items[i] = itemWithIndex{index: i, priority: g.calculateGreedyScore(i, weights)}
	}

	// Add randomness to item ordering for diversity: up to 20% either way
	// so that items of similar value swap places between solutions.
	for i := range items {
		items[i].priority *= 0.8 + rng.Float64()*0.4
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].priority > items[j].priority
	})

	for _, item := range items {
		sol.Bits[item.index] = true
		if !fits(sol) {
			sol.Bits[item.index] = false
		}
	}
	return sol
}

// calculateGreedyScore is the weighted profit share of an item per unit of
// weight. Weightless items with any profit are always worth taking.
func (g *GCSH) calculateGreedyScore(item int, weights ObjectiveWeights) float64 {
	score := 0.0
	for k, w := range weights {
		score += w * g.profitShare[k][item]
	}

	weight := g.config.Instance.Weight[item]
	if weight == 0 {
		if score > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return score / float64(weight)
}
