package benchmarks

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// LOTZ (Leading Ones, Trailing Zeros) maximizes the length of the run of
// ones at the start of the string and the run of zeros at its end. Both
// counts are negated so that lower is better. Every split 1^i 0^(n-i) is
// Pareto optimal.
type LOTZ struct {
	numVars int
}

func NewLOTZ(numVars int) *LOTZ {
	return &LOTZ{numVars: numVars}
}

func (p *LOTZ) Name() string {
	return "LOTZ"
}

func (p *LOTZ) NumObjectives() int {
	return 2
}

func (p *LOTZ) NumVariables() int {
	return p.numVars
}

func (p *LOTZ) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.leadingOnes, p.trailingZeros}
}

func (p *LOTZ) leadingOnes(x *framework.BinarySolution) float64 {
	n := 0
	for _, b := range x.Bits {
		if !b {
			break
		}
		n++
	}
	return -float64(n)
}

func (p *LOTZ) trailingZeros(x *framework.BinarySolution) float64 {
	n := 0
	for i := len(x.Bits) - 1; i >= 0 && !x.Bits[i]; i-- {
		n++
	}
	return -float64(n)
}

func (p *LOTZ) Constraints() []framework.Constraint {
	return nil
}

func (p *LOTZ) Evaluate(x *framework.BinarySolution) framework.ObjectiveSpacePoint {
	return framework.ObjectiveSpacePoint{p.leadingOnes(x), p.trailingZeros(x)}
}

func (p *LOTZ) Initialize(rng *rand.Rand, popSize int) []*framework.BinarySolution {
	population := make([]*framework.BinarySolution, popSize)
	for i := range population {
		population[i] = framework.RandomBinarySolution(rng, p.numVars, 0.5)
	}
	return population
}

// TrueParetoFront returns the n+1 optimal points; numPoints is ignored.
func (p *LOTZ) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, 0, p.numVars+1)
	for i := 0; i <= p.numVars; i++ {
		points = append(points, framework.ObjectiveSpacePoint{-float64(i), -float64(p.numVars - i)})
	}
	return points
}
