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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// NSGA2Args holds the arguments of an NSGA-II run.
type NSGA2Args struct {
	metav1.TypeMeta `json:",inline"`

	// PopulationSize is the number of individuals kept between generations.
	PopulationSize int32 `json:"populationSize,omitempty"`

	// Generations is the number of generations to evolve. Zero returns the
	// ranked initial population.
	Generations *int32 `json:"generations,omitempty"`

	// CrossoverProbability is the chance that a pair of parents is recombined
	// instead of copied.
	CrossoverProbability *float64 `json:"crossoverProbability,omitempty"`

	// MutationProbability is the per-bit flip probability. When unset it is
	// 1/numberOfItems of the problem being solved.
	MutationProbability *float64 `json:"mutationProbability,omitempty"`

	// TournamentSize is the number of contestants per selection tournament.
	// Only binary tournaments are supported.
	TournamentSize *int32 `json:"tournamentSize,omitempty"`

	// Crossover names the recombination operator: onePoint, twoPoint or uniform.
	Crossover string `json:"crossover,omitempty"`

	// Seed makes a run reproducible.
	Seed *uint64 `json:"seed,omitempty"`

	// ParallelExecution evaluates offspring on all CPUs.
	ParallelExecution bool `json:"parallelExecution,omitempty"`

	// WarmStart seeds part of the first generation greedily.
	WarmStart *WarmStart `json:"warmStart,omitempty"`
}

// WarmStart configures the greedy constructive initial population.
type WarmStart struct {
	// Size is the number of greedy solutions; the rest of the population is
	// random. Defaults to the whole population.
	Size *int32 `json:"size,omitempty"`

	// IncludeEmptyKnapsack adds the empty selection as a baseline.
	IncludeEmptyKnapsack bool `json:"includeEmptyKnapsack,omitempty"`
}
