package constraints

import (
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// TotalWeight returns the summed weight of the selected items. Bits beyond
// len(weights) are ignored.
func TotalWeight(weights []uint64, sol *framework.BinarySolution) uint64 {
	var total uint64
	for i, selected := range sol.Bits {
		if selected && i < len(weights) {
			total += weights[i]
		}
	}
	return total
}

// ExcessWeight returns by how much the selected items overflow capacity, or 0.
func ExcessWeight(weights []uint64, capacity uint64, sol *framework.BinarySolution) uint64 {
	total := TotalWeight(weights, sol)
	if total <= capacity {
		return 0
	}
	return total - capacity
}

// CapacityConstraint creates a constraint function that checks the knapsack capacity
func CapacityConstraint(weights []uint64, capacity uint64) framework.Constraint {
	return func(sol *framework.BinarySolution) bool {
		return TotalWeight(weights, sol) <= capacity
	}
}

// CardinalityConstraint creates a constraint function that limits the number of selected items
func CardinalityConstraint(maxItems int) framework.Constraint {
	return func(sol *framework.BinarySolution) bool {
		return sol.Ones() <= maxItems
	}
}

// CombineConstraints combines multiple constraints into one
func CombineConstraints(constraints ...framework.Constraint) framework.Constraint {
	return func(sol *framework.BinarySolution) bool {
		for _, constraint := range constraints {
			if !constraint(sol) {
				return false
			}
		}
		return true
	}
}

// Satisfied reports whether sol satisfies every constraint.
func Satisfied(sol *framework.BinarySolution, constraints []framework.Constraint) bool {
	return CombineConstraints(constraints...)(sol)
}
