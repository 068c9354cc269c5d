package algorithms

import (
	"sort"

	"golang.org/x/exp/rand"
)

// CrossoverFunc represents a crossover operation on binary chromosomes
type CrossoverFunc func(rng *rand.Rand, parent1, parent2 []bool) (child1, child2 []bool)

// Crossover names accepted by CrossoverByName.
const (
	OnePoint = "onePoint"
	TwoPoint = "twoPoint"
	Uniform  = "uniform"
)

// CrossoverByName returns the operator registered under name, or nil.
func CrossoverByName(name string) CrossoverFunc {
	switch name {
	case OnePoint:
		return OnePointCrossover
	case TwoPoint:
		return TwoPointCrossover
	case Uniform:
		return UniformCrossover
	}
	return nil
}

// OnePointCrossoverAt swaps the tails of two parents after point:
//
//	p1: 01001|11010  =>  01001 01011
//	p2: 10101|01011  =>  10101 11010
//
// Parents may differ in length; point is clamped to the shorter one. A
// point of 0 swaps the parents entirely, a point at the end swaps nothing.
func OnePointCrossoverAt(p1, p2 []bool, point int) ([]bool, []bool) {
	point = max(0, min(point, len(p1), len(p2)))

	child1 := make([]bool, 0, len(p2))
	child1 = append(child1, p1[:point]...)
	child1 = append(child1, p2[point:]...)

	child2 := make([]bool, 0, len(p1))
	child2 = append(child2, p2[:point]...)
	child2 = append(child2, p1[point:]...)

	return child1, child2
}

// OnePointCrossover creates offspring by selecting a random cut point
func OnePointCrossover(rng *rand.Rand, p1, p2 []bool) ([]bool, []bool) {
	n := min(len(p1), len(p2))
	point := 0
	if n > 0 {
		point = rng.Intn(n)
	}
	return OnePointCrossoverAt(p1, p2, point)
}

// TwoPointCrossover creates offspring using two random cut points
func TwoPointCrossover(rng *rand.Rand, p1, p2 []bool) ([]bool, []bool) {
	return KPointCrossover(rng, p1, p2, 2)
}

// UniformCrossover creates offspring by randomly selecting from each parent
func UniformCrossover(rng *rand.Rand, p1, p2 []bool) ([]bool, []bool) {
	child1 := make([]bool, len(p1))
	child2 := make([]bool, len(p2))
	copy(child1, p1)
	copy(child2, p2)

	for i := 0; i < min(len(p1), len(p2)); i++ {
		if rng.Float64() < 0.5 {
			child1[i], child2[i] = p2[i], p1[i]
		}
	}

	return child1, child2
}

// KPointCrossover implements k-point crossover: segments between
// consecutive cut points alternate between the parents.
func KPointCrossover(rng *rand.Rand, p1, p2 []bool, k int) ([]bool, []bool) {
	child1 := make([]bool, len(p1))
	child2 := make([]bool, len(p2))
	copy(child1, p1)
	copy(child2, p2)

	n := min(len(p1), len(p2))
	if n < 2 || k < 1 {
		return child1, child2
	}
	k = min(k, n-1)

	// Generate k unique random points in [1, n)
	used := make(map[int]bool, k)
	points := make([]int, 0, k+1)
	for len(points) < k {
		point := 1 + rng.Intn(n-1)
		if !used[point] {
			used[point] = true
			points = append(points, point)
		}
	}
	sort.Ints(points)
	points = append(points, n)

	swap := false
	start := 0
	for _, end := range points {
		if swap {
			for j := start; j < end; j++ {
				child1[j], child2[j] = p2[j], p1[j]
			}
		}
		swap = !swap
		start = end
	}

	return child1, child2
}
