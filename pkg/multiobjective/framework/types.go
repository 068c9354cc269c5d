package framework

import (
	"fmt"
	"math"
)

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
// Lower values are better on every axis.
type ObjectiveSpacePoint []float64

// UnrankedFront marks an individual whose rank has not been computed yet.
const UnrankedFront = -1

// Rank is the annotation written by rank assignment. Front is 1-based
// (front 1 is the best layer). Distance is only comparable between
// individuals sharing the same Front.
type Rank struct {
	Front    int
	Distance float64
}

// Unranked returns the sentinel rank carried by freshly created individuals.
func Unranked() Rank {
	return Rank{Front: UnrankedFront}
}

// IsRanked reports whether rank assignment has stamped this rank.
func (r Rank) IsRanked() bool {
	return r.Front >= 1
}

func (r Rank) String() string {
	if !r.IsRanked() {
		return "unranked"
	}
	return fmt.Sprintf("front=%d distance=%g", r.Front, r.Distance)
}

// Individual wraps a solution in the population together with its value in
// the objective space and the rank annotation. Individuals are compared by
// identity (pointer), never by value: two individuals may carry equal
// genomes and equal objective vectors.
type Individual struct {
	Solution *BinarySolution
	Value    ObjectiveSpacePoint

	Rank Rank
}

// NewIndividual creates an unranked individual.
func NewIndividual(sol *BinarySolution, val ObjectiveSpacePoint) *Individual {
	return &Individual{
		Solution: sol,
		Value:    val,
		Rank:     Unranked(),
	}
}

// Population is an ordered collection of individuals. The order carries no
// meaning for ranking; slot indices are used as handles by the sorting code.
type Population []*Individual

// NewPopulationFromValues builds an unranked population without genomes.
// It is mostly useful to rank plain objective vectors.
func NewPopulationFromValues(values []ObjectiveSpacePoint) Population {
	pop := make(Population, len(values))
	for i, v := range values {
		pop[i] = NewIndividual(nil, v)
	}
	return pop
}

// NumObjectives validates that every individual carries an objective vector
// of the same length made of finite numbers and returns that length.
// An empty population has zero objectives.
func (p Population) NumObjectives() (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	numObjectives := -1
	for i, ind := range p {
		if ind == nil {
			return 0, fmt.Errorf("individual %d is nil: %w", i, ErrInvalidInput)
		}
		if numObjectives == -1 {
			numObjectives = len(ind.Value)
		}
		if len(ind.Value) != numObjectives {
			return 0, fmt.Errorf("individual %d has %d objectives, expected %d: %w",
				i, len(ind.Value), numObjectives, ErrInvalidInput)
		}
		for m, v := range ind.Value {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("individual %d objective %d is %v: %w", i, m, v, ErrInvalidInput)
			}
		}
	}
	return numObjectives, nil
}

// Values returns the objective vectors of the population, in slot order.
func (p Population) Values() []ObjectiveSpacePoint {
	values := make([]ObjectiveSpacePoint, len(p))
	for i, ind := range p {
		values[i] = ind.Value
	}
	return values
}

// ResetRanks puts every individual back to the unranked sentinel.
func (p Population) ResetRanks() {
	for _, ind := range p {
		ind.Rank = Unranked()
	}
}

// Ranked reports whether every individual has been stamped by rank assignment.
func (p Population) Ranked() bool {
	for _, ind := range p {
		if ind == nil || !ind.Rank.IsRanked() {
			return false
		}
	}
	return true
}
