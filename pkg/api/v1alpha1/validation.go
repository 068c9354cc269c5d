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
	"slices"

	"k8s.io/apimachinery/pkg/runtime"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

var crossovers = []string{"onePoint", "twoPoint", "uniform"}

// ValidateNSGA2Args validates the arguments of an NSGA-II run
func ValidateNSGA2Args(obj runtime.Object) error {
	args := obj.(*NSGA2Args)
	var allErrs field.ErrorList

	if args.PopulationSize < 2 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("populationSize"), args.PopulationSize, "must be at least 2"))
	}
	if args.Generations != nil && *args.Generations < 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("generations"), *args.Generations, "must not be negative"))
	}
	allErrs = append(allErrs, validateProbability(field.NewPath("crossoverProbability"), args.CrossoverProbability)...)
	allErrs = append(allErrs, validateProbability(field.NewPath("mutationProbability"), args.MutationProbability)...)

	if args.TournamentSize != nil && *args.TournamentSize != 2 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("tournamentSize"), *args.TournamentSize, "only binary tournaments (2) are supported"))
	}
	if args.Crossover != "" && !slices.Contains(crossovers, args.Crossover) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("crossover"), args.Crossover, crossovers))
	}

	if ws := args.WarmStart; ws != nil && ws.Size != nil {
		sizePath := field.NewPath("warmStart", "size")
		if *ws.Size < 0 {
			allErrs = append(allErrs, field.Invalid(sizePath, *ws.Size, "must not be negative"))
		} else if *ws.Size > args.PopulationSize {
			allErrs = append(allErrs, field.Invalid(sizePath, *ws.Size, "must not exceed populationSize"))
		}
	}

	errs := make([]error, 0, len(allErrs))
	for _, err := range allErrs {
		errs = append(errs, err)
	}
	return utilerrors.NewAggregate(errs)
}

func validateProbability(path *field.Path, p *float64) field.ErrorList {
	if p != nil && (*p < 0 || *p > 1) {
		return field.ErrorList{field.Invalid(path, *p, "must be between 0 and 1")}
	}
	return nil
}
