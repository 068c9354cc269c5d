/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package app

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/paretorank/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/framework"
)

// allFronts is the --fronts value that ranks every vector.
const allFronts = -1

type rankOptions struct {
	fronts int
	output string
}

func (o *rankOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.fronts, "fronts", o.fronts, "Stop after this many fronts. -1 ranks every vector.")
	fs.StringVarP(&o.output, "output", "o", o.output, "Output format: json or yaml.")
}

func (o *rankOptions) Validate() error {
	if o.fronts < allFronts {
		return fmt.Errorf("--fronts must be -1 or more, got %d", o.fronts)
	}
	return validateOutputFormat(o.output)
}

// rankedPoint is one ranked vector. Boundary members of a front have an
// infinite crowding distance, reported as boundary without a distance.
type rankedPoint struct {
	Index            int       `json:"index"`
	Value            []float64 `json:"value"`
	Front            int       `json:"front"`
	CrowdingDistance *float64  `json:"crowdingDistance,omitempty"`
	Boundary         bool      `json:"boundary,omitempty"`
}

func newRankCommand() *cobra.Command {
	o := &rankOptions{fronts: allFronts, output: "json"}
	cmd := &cobra.Command{
		Use:   "rank [FILE]",
		Short: "Sort objective vectors into non-dominated fronts",
		Long: `rank reads a JSON or YAML list of objective vectors (lower is better on
every axis) from FILE, or from standard input when FILE is "-" or missing,
and prints every vector with its front and crowding distance, best front
first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			values, err := readVectors(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			points, err := o.rank(values)
			if err != nil {
				return err
			}
			return printObject(cmd.OutOrStdout(), o.output, points)
		},
	}
	o.AddFlags(cmd.Flags())
	return cmd
}

func readVectors(stdin io.Reader, path string) ([]framework.ObjectiveSpacePoint, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading objective vectors: %w", err)
	}

	var values []framework.ObjectiveSpacePoint
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decoding objective vectors: %w", err)
	}
	return values, nil
}

func (o *rankOptions) rank(values []framework.ObjectiveSpacePoint) ([]rankedPoint, error) {
	population := framework.NewPopulationFromValues(values)

	var (
		fronts    []algorithms.Front
		distances [][]float64
		err       error
	)
	if o.fronts == allFronts {
		if fronts, err = algorithms.AssignRanks(population); err != nil {
			return nil, err
		}
		for _, front := range fronts {
			d := make([]float64, len(front))
			for i, idx := range front {
				d[i] = population[idx].Rank.Distance
			}
			distances = append(distances, d)
		}
	} else {
		if fronts, err = algorithms.NonDominatedSortN(o.fronts, population); err != nil {
			return nil, err
		}
		for _, front := range fronts {
			distances = append(distances, algorithms.CrowdingDistance(population, front))
		}
	}

	points := []rankedPoint{}
	for k, front := range fronts {
		for i, idx := range front {
			p := rankedPoint{Index: idx, Value: values[idx], Front: k + 1}
			if d := distances[k][i]; math.IsInf(d, 1) {
				p.Boundary = true
			} else {
				p.CrowdingDistance = &d
			}
			points = append(points, p)
		}
	}
	return points, nil
}
