// Package mkp implements the multi-objective 0/1 knapsack problem: every
// item has one profit per objective and a single weight, and a selection
// must fit into one capacity.
package mkp

import (
	"fmt"

	"golang.org/x/exp/rand"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/constraints"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// MKP is a loaded knapsack instance.
type MKP struct {
	name string

	NumberOfObjectives int
	NumberOfItems      int
	Capacity           uint64

	// Profit[k][i] is the profit of item i for objective k.
	Profit [][]uint64
	// Weight[i] is the weight of item i.
	Weight []uint64
}

var _ framework.Problem = &MKP{}

// New builds an instance from its tables and validates their shapes.
func New(name string, capacity uint64, profit [][]uint64, weight []uint64) (*MKP, error) {
	p := &MKP{
		name:               name,
		NumberOfObjectives: len(profit),
		NumberOfItems:      len(weight),
		Capacity:           capacity,
		Profit:             profit,
		Weight:             weight,
	}
	if errs := p.validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid knapsack instance %q: %w", name, errs.ToAggregate())
	}
	return p, nil
}

func (p *MKP) validate() field.ErrorList {
	var errs field.ErrorList
	if p.NumberOfObjectives < 1 {
		errs = append(errs, field.Invalid(field.NewPath("number_of_obj"), p.NumberOfObjectives, "must be at least 1"))
	}
	if p.NumberOfItems < 1 {
		errs = append(errs, field.Invalid(field.NewPath("number_of_items"), p.NumberOfItems, "must be at least 1"))
	}
	if len(p.Profit) != p.NumberOfObjectives {
		errs = append(errs, field.Invalid(field.NewPath("profit"), len(p.Profit),
			fmt.Sprintf("must have one row per objective (%d)", p.NumberOfObjectives)))
	}
	for k, row := range p.Profit {
		if len(row) != p.NumberOfItems {
			errs = append(errs, field.Invalid(field.NewPath("profit").Index(k), len(row),
				fmt.Sprintf("must have one profit per item (%d)", p.NumberOfItems)))
		}
	}
	if len(p.Weight) != p.NumberOfItems {
		errs = append(errs, field.Invalid(field.NewPath("weight"), len(p.Weight),
			fmt.Sprintf("must have one weight per item (%d)", p.NumberOfItems)))
	}
	return errs
}

func (p *MKP) Name() string {
	if p.name != "" {
		return p.name
	}
	return fmt.Sprintf("MKP_p-%d_n-%d", p.NumberOfObjectives, p.NumberOfItems)
}

func (p *MKP) NumObjectives() int {
	return p.NumberOfObjectives
}

func (p *MKP) NumVariables() int {
	return p.NumberOfItems
}

// ObjectiveFuncs returns one function per objective. Profits are maximized,
// so each function returns the negated profit of the selection.
func (p *MKP) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.NumberOfObjectives)
	for k := range funcs {
		row := p.Profit[k]
		funcs[k] = func(sol *framework.BinarySolution) float64 {
			return -profitOf(row, sol)
		}
	}
	return funcs
}

func (p *MKP) Constraints() []framework.Constraint {
	return []framework.Constraint{constraints.CapacityConstraint(p.Weight, p.Capacity)}
}

// Evaluate returns the negated profits of a feasible selection. A selection
// exceeding the capacity gets the excess weight on every objective, which is
// dominated by the empty knapsack and by any lighter overload.
func (p *MKP) Evaluate(sol *framework.BinarySolution) framework.ObjectiveSpacePoint {
	res := make(framework.ObjectiveSpacePoint, p.NumberOfObjectives)
	if excess := constraints.ExcessWeight(p.Weight, p.Capacity, sol); excess > 0 {
		for k := range res {
			res[k] = float64(excess)
		}
		return res
	}
	for k, objFunc := range p.ObjectiveFuncs() {
		res[k] = objFunc(sol)
	}
	return res
}

// Profits returns the raw (positive) profits of a selection, ignoring capacity.
func (p *MKP) Profits(sol *framework.BinarySolution) []float64 {
	profits := make([]float64, p.NumberOfObjectives)
	for k, row := range p.Profit {
		profits[k] = profitOf(row, sol)
	}
	return profits
}

// Feasible reports whether the selection fits into the knapsack.
func (p *MKP) Feasible(sol *framework.BinarySolution) bool {
	return constraints.Satisfied(sol, p.Constraints())
}

// Initialize draws random selections whose expected weight matches the capacity.
func (p *MKP) Initialize(rng *rand.Rand, popSize int) []*framework.BinarySolution {
	var totalWeight uint64
	for _, w := range p.Weight {
		totalWeight += w
	}
	fill := 1.0
	if totalWeight > p.Capacity {
		fill = float64(p.Capacity) / float64(totalWeight)
	}

	population := make([]*framework.BinarySolution, popSize)
	for i := range population {
		population[i] = framework.RandomBinarySolution(rng, p.NumberOfItems, fill)
	}
	return population
}

// TrueParetoFront is unknown for knapsack instances.
func (p *MKP) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}

func profitOf(row []uint64, sol *framework.BinarySolution) float64 {
	total := 0.0
	for i, selected := range sol.Bits {
		if selected && i < len(row) {
			total += float64(row[i])
		}
	}
	return total
}
