package benchmarks

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

const (
	zdt5HeadBits  = 30
	zdt5GroupBits = 5
)

// ZDT5 is the binary (deceptive) member of the ZDT family. The genome is a
// 30-bit head followed by numGroups 5-bit groups; every part is scored by
// its number of ones.
type ZDT5 struct {
	numGroups int
}

// NewZDT5 creates a ZDT5 instance; the standard setup uses 10 groups.
func NewZDT5(numGroups int) *ZDT5 {
	return &ZDT5{numGroups: numGroups}
}

func (p *ZDT5) Name() string {
	return "ZDT5"
}

func (p *ZDT5) NumObjectives() int {
	return 2
}

func (p *ZDT5) NumVariables() int {
	return zdt5HeadBits + p.numGroups*zdt5GroupBits
}

func (p *ZDT5) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT5) f1(x *framework.BinarySolution) float64 {
	return 1 + float64(ones(x.Bits[:zdt5HeadBits]))
}

func (p *ZDT5) f2(x *framework.BinarySolution) float64 {
	g := 0.0
	for i := 0; i < p.numGroups; i++ {
		start := zdt5HeadBits + i*zdt5GroupBits
		u := ones(x.Bits[start : start+zdt5GroupBits])
		// A group of all ones scores 1; anything else is deceptive.
		if u < zdt5GroupBits {
			g += float64(2 + u)
		} else {
			g += 1
		}
	}
	return g / p.f1(x)
}

func (p *ZDT5) Constraints() []framework.Constraint {
	return nil
}

func (p *ZDT5) Evaluate(x *framework.BinarySolution) framework.ObjectiveSpacePoint {
	return framework.ObjectiveSpacePoint{p.f1(x), p.f2(x)}
}

func (p *ZDT5) Initialize(rng *rand.Rand, popSize int) []*framework.BinarySolution {
	population := make([]*framework.BinarySolution, popSize)
	for i := range population {
		population[i] = framework.RandomBinarySolution(rng, p.NumVariables(), 0.5)
	}
	return population
}

// TrueParetoFront returns all 31 optimal points (g at its minimum). The
// front is discrete, so numPoints is ignored.
func (p *ZDT5) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, 0, zdt5HeadBits+1)
	for u := 0; u <= zdt5HeadBits; u++ {
		f1 := 1 + float64(u)
		points = append(points, framework.ObjectiveSpacePoint{f1, float64(p.numGroups) / f1})
	}
	return points
}

func ones(bits []bool) int {
	n := 0
	for _, b := range bits {
		if b {
			n++
		}
	}
	return n
}
