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

	"golang.org/x/exp/rand"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/paretorank/pkg/api/v1alpha1"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/problems/mkp"
	"github.com/mihai-snyk/paretorank/pkg/multiobjective/warmstart"
)

// loadArgs reads the arguments from path, or returns the defaults when
// path is empty.
func loadArgs(path string) (*v1alpha1.NSGA2Args, error) {
	if path == "" {
		return v1alpha1.New(), nil
	}
	return v1alpha1.LoadFile(path)
}

// nsga2Config resolves validated arguments into a driver configuration. A
// warm start is generated for knapsack problems only.
func nsga2Config(args *v1alpha1.NSGA2Args, instance *mkp.MKP) (algorithms.NSGA2Config, error) {
	crossover := algorithms.CrossoverByName(args.Crossover)
	if crossover == nil {
		return algorithms.NSGA2Config{}, fmt.Errorf("unknown crossover %q", args.Crossover)
	}

	config := algorithms.NSGA2Config{
		PopulationSize:       int(args.PopulationSize),
		MaxGenerations:       int(ptr.Deref(args.Generations, v1alpha1.DefaultGenerations)),
		CrossoverProbability: ptr.Deref(args.CrossoverProbability, v1alpha1.DefaultCrossoverProbability),
		MutationProbability:  ptr.Deref(args.MutationProbability, 0),
		Crossover:            crossover,
		ParallelExecution:    args.ParallelExecution,
		Seed:                 ptr.Deref(args.Seed, v1alpha1.DefaultSeed),
	}

	if ws := args.WarmStart; ws != nil && instance != nil {
		gcsh := warmstart.NewGCSH(warmstart.GCSHConfig{
			Instance:             instance,
			IncludeEmptyKnapsack: ws.IncludeEmptyKnapsack,
		})
		size := int(ptr.Deref(ws.Size, args.PopulationSize))
		config.InitialPopulation = gcsh.GenerateInitialPopulation(rand.New(rand.NewSource(config.Seed)), size)
	}
	return config, nil
}
