// Package indicators measures the quality of an approximated Pareto front.
package indicators

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// IGD returns the Inverted Generational Distance: the mean Euclidean
// distance from every reference point to its closest obtained point.
func IGD(obtained, reference []framework.ObjectiveSpacePoint) (float64, error) {
	return meanNearestDistance(reference, obtained)
}

// GD returns the Generational Distance: the mean Euclidean distance from
// every obtained point to its closest reference point.
func GD(obtained, reference []framework.ObjectiveSpacePoint) (float64, error) {
	return meanNearestDistance(obtained, reference)
}

func meanNearestDistance(from, to []framework.ObjectiveSpacePoint) (float64, error) {
	if len(from) == 0 || len(to) == 0 {
		return 0, fmt.Errorf("distance between empty point sets: %w", framework.ErrInvalidArgument)
	}
	dim := len(from[0])
	if err := checkDimension(dim, from, to); err != nil {
		return 0, err
	}

	nearest := make([]float64, len(from))
	for i, p := range from {
		best := math.Inf(1)
		for _, q := range to {
			best = math.Min(best, floats.Distance(p, q, 2))
		}
		nearest[i] = best
	}
	return stat.Mean(nearest, nil), nil
}

// Hypervolume2D returns the area dominated by the front and bounded by the
// reference point. Points not strictly better than ref on both axes add
// nothing.
func Hypervolume2D(front []framework.ObjectiveSpacePoint, ref framework.ObjectiveSpacePoint) (float64, error) {
	if len(ref) != 2 {
		return 0, fmt.Errorf("hypervolume needs a 2-D reference point, got %d objectives: %w", len(ref), framework.ErrInvalidArgument)
	}
	if err := checkDimension(2, front); err != nil {
		return 0, err
	}

	points := make([]framework.ObjectiveSpacePoint, 0, len(front))
	for _, p := range front {
		if p[0] < ref[0] && p[1] < ref[1] {
			points = append(points, p)
		}
	}
	slices.SortFunc(points, func(a, b framework.ObjectiveSpacePoint) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})

	// Sweep along f1; dominated points never lower the running f2 bound.
	volume := 0.0
	bound := ref[1]
	for _, p := range points {
		if p[1] < bound {
			volume += (ref[0] - p[0]) * (bound - p[1])
			bound = p[1]
		}
	}
	return volume, nil
}

// ReferencePoint returns the component-wise worst value over points, shifted
// by offset on every axis.
func ReferencePoint(points []framework.ObjectiveSpacePoint, offset float64) framework.ObjectiveSpacePoint {
	if len(points) == 0 {
		return nil
	}
	ref := make(framework.ObjectiveSpacePoint, len(points[0]))
	for m := range ref {
		column := make([]float64, len(points))
		for i, p := range points {
			column[i] = p[m]
		}
		ref[m] = floats.Max(column) + offset
	}
	return ref
}

func checkDimension(dim int, sets ...[]framework.ObjectiveSpacePoint) error {
	for _, set := range sets {
		for _, p := range set {
			if len(p) != dim {
				return fmt.Errorf("expected %d objectives, got %d: %w", dim, len(p), framework.ErrInvalidInput)
			}
		}
	}
	return nil
}
