package framework

import (
	"golang.org/x/exp/rand"
)

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	NumObjectives() int
	NumVariables() int

	ObjectiveFuncs() []ObjectiveFunc
	Constraints() []Constraint

	// Evaluate maps a genome to its objective vector. Constraint handling
	// (penalties) is the responsibility of the problem.
	Evaluate(*BinarySolution) ObjectiveSpacePoint

	Initialize(rng *rand.Rand, popSize int) []*BinarySolution

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// Algorithm describes the contract that a MOO algorithm needs to implement.
type Algorithm interface {
	Name() string
}

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func(*BinarySolution) float64

// Constraint returns true if the constraint is satisfied and false otherwise.
type Constraint func(*BinarySolution) bool

// BinarySolution uses a binary encoding scheme, where each bit
// or group of bits can have a meaning in the context of the problem.
type BinarySolution struct {
	Bits []bool
}

func NewBinarySolution(bits []bool) *BinarySolution {
	return &BinarySolution{
		Bits: bits,
	}
}

// RandomBinarySolution draws every bit independently with probability p of being set.
func RandomBinarySolution(rng *rand.Rand, numBits int, p float64) *BinarySolution {
	bits := make([]bool, numBits)
	for i := range bits {
		bits[i] = rng.Float64() < p
	}
	return NewBinarySolution(bits)
}

func (sol *BinarySolution) Clone() *BinarySolution {
	newBits := make([]bool, len(sol.Bits))
	copy(newBits, sol.Bits)
	return &BinarySolution{
		Bits: newBits,
	}
}

// Mutate applies bit-flip mutation: every bit is flipped independently
// with the given probability.
func (sol *BinarySolution) Mutate(rng *rand.Rand, mutationRate float64) {
	for i := range sol.Bits {
		if rng.Float64() < mutationRate {
			sol.Bits[i] = !sol.Bits[i]
		}
	}
}

// Ones returns the number of set bits.
func (sol *BinarySolution) Ones() int {
	n := 0
	for _, b := range sol.Bits {
		if b {
			n++
		}
	}
	return n
}

func (sol *BinarySolution) String() string {
	buf := make([]byte, len(sol.Bits))
	for i, b := range sol.Bits {
		if b {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
