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

package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"
)

const (
	DefaultPopulationSize       = 100
	DefaultGenerations          = 250
	DefaultCrossoverProbability = 0.9
	DefaultTournamentSize       = 2
	DefaultCrossover            = "onePoint"
	DefaultSeed                 = 1
)

func addDefaultingFuncs(scheme *runtime.Scheme) error {
	return RegisterDefaults(scheme)
}

func RegisterDefaults(scheme *runtime.Scheme) error {
	klog.V(5).InfoS("Registering defaults", "kind", "NSGA2Args")
	scheme.AddTypeDefaultingFunc(&NSGA2Args{}, func(obj interface{}) {
		SetDefaults_NSGA2Args(obj.(*NSGA2Args))
	})
	return nil
}

// SetDefaults_NSGA2Args fills the unset fields. MutationProbability stays
// unset: its default depends on the problem size.
func SetDefaults_NSGA2Args(obj runtime.Object) {
	args := obj.(*NSGA2Args)

	if args.PopulationSize == 0 {
		args.PopulationSize = DefaultPopulationSize
	}
	if args.Generations == nil {
		args.Generations = ptr.To[int32](DefaultGenerations)
	}
	if args.CrossoverProbability == nil {
		args.CrossoverProbability = ptr.To(DefaultCrossoverProbability)
	}
	if args.TournamentSize == nil {
		args.TournamentSize = ptr.To[int32](DefaultTournamentSize)
	}
	if args.Crossover == "" {
		args.Crossover = DefaultCrossover
	}
	if args.Seed == nil {
		args.Seed = ptr.To[uint64](DefaultSeed)
	}
	if args.WarmStart != nil && args.WarmStart.Size == nil {
		args.WarmStart.Size = ptr.To(args.PopulationSize)
	}
}
