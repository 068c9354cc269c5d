package algorithms

import (
	"context"
	"runtime"

	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/client-go/util/workqueue"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// parallelThreshold is the size of the remaining set from which dominance
// checks are spread over several workers.
const parallelThreshold = 256

// Front is a layer of mutually non-dominated individuals, given as slot
// indices into the population it was extracted from.
type Front []int

// FindFirstFront returns the members of remaining that are not dominated by
// any other member of remaining. The result keeps the order of remaining and
// is never empty when remaining is not empty.
func FindFirstFront(population framework.Population, remaining []int) Front {
	dominated := make([]bool, len(remaining))
	check := func(k int) {
		dominated[k] = hasDominator(population, remaining[k], remaining)
	}

	if len(remaining) >= parallelThreshold {
		// Workers only read population and remaining, and write disjoint
		// entries of dominated.
		workqueue.ParallelizeUntil(context.TODO(), runtime.NumCPU(), len(remaining), check)
	} else {
		for k := range remaining {
			check(k)
		}
	}

	front := make(Front, 0, len(remaining))
	for k, slot := range remaining {
		if !dominated[k] {
			front = append(front, slot)
		}
	}
	return front
}

// RemoveIndividuals returns remaining without the slots of front, keeping
// the order of remaining. Slots are identities, so individuals with equal
// objective vectors are removed only if their own slot is in front.
func RemoveIndividuals(remaining []int, front Front) []int {
	inFront := sets.New[int](front...)
	rest := make([]int, 0, len(remaining))
	for _, slot := range remaining {
		if !inFront.Has(slot) {
			rest = append(rest, slot)
		}
	}
	return rest
}
