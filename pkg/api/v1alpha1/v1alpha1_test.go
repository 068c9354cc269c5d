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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/utils/ptr"
)

func TestSetDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   *NSGA2Args
		want *NSGA2Args
	}{
		{
			name: "empty",
			in:   &NSGA2Args{},
			want: &NSGA2Args{
				PopulationSize:       DefaultPopulationSize,
				Generations:          ptr.To[int32](DefaultGenerations),
				CrossoverProbability: ptr.To(DefaultCrossoverProbability),
				TournamentSize:       ptr.To[int32](DefaultTournamentSize),
				Crossover:            DefaultCrossover,
				Seed:                 ptr.To[uint64](DefaultSeed),
			},
		},
		{
			name: "zero generations is kept",
			in:   &NSGA2Args{Generations: ptr.To[int32](0)},
			want: &NSGA2Args{
				PopulationSize:       DefaultPopulationSize,
				Generations:          ptr.To[int32](0),
				CrossoverProbability: ptr.To(DefaultCrossoverProbability),
				TournamentSize:       ptr.To[int32](DefaultTournamentSize),
				Crossover:            DefaultCrossover,
				Seed:                 ptr.To[uint64](DefaultSeed),
			},
		},
		{
			name: "set fields are kept",
			in: &NSGA2Args{
				PopulationSize:       20,
				Generations:          ptr.To[int32](5),
				CrossoverProbability: ptr.To(0.0),
				MutationProbability:  ptr.To(0.1),
				Crossover:            "uniform",
				Seed:                 ptr.To[uint64](0),
				WarmStart:            &WarmStart{},
			},
			want: &NSGA2Args{
				PopulationSize:       20,
				Generations:          ptr.To[int32](5),
				CrossoverProbability: ptr.To(0.0),
				MutationProbability:  ptr.To(0.1),
				TournamentSize:       ptr.To[int32](DefaultTournamentSize),
				Crossover:            "uniform",
				Seed:                 ptr.To[uint64](0),
				WarmStart:            &WarmStart{Size: ptr.To[int32](20)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheme.Default(tt.in)
			if diff := cmp.Diff(tt.want, tt.in); diff != "" {
				t.Errorf("Unexpected defaults (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateNSGA2Args(t *testing.T) {
	valid := func() *NSGA2Args {
		args := &NSGA2Args{WarmStart: &WarmStart{}}
		SetDefaults_NSGA2Args(args)
		return args
	}

	tests := []struct {
		name     string
		mutate   func(*NSGA2Args)
		wantErrs int
		contains string
	}{
		{name: "defaults are valid", mutate: func(*NSGA2Args) {}},
		{name: "population too small", mutate: func(a *NSGA2Args) { a.PopulationSize = 1 }, wantErrs: 2, contains: "populationSize"},
		{name: "negative generations", mutate: func(a *NSGA2Args) { a.Generations = ptr.To[int32](-1) }, wantErrs: 1, contains: "generations"},
		{name: "crossover probability above one", mutate: func(a *NSGA2Args) { a.CrossoverProbability = ptr.To(1.5) }, wantErrs: 1, contains: "crossoverProbability"},
		{name: "negative mutation probability", mutate: func(a *NSGA2Args) { a.MutationProbability = ptr.To(-0.1) }, wantErrs: 1, contains: "mutationProbability"},
		{name: "tournament of three", mutate: func(a *NSGA2Args) { a.TournamentSize = ptr.To[int32](3) }, wantErrs: 1, contains: "tournamentSize"},
		{name: "unknown crossover", mutate: func(a *NSGA2Args) { a.Crossover = "sbx" }, wantErrs: 1, contains: "crossover"},
		{name: "negative warm start", mutate: func(a *NSGA2Args) { a.WarmStart.Size = ptr.To[int32](-1) }, wantErrs: 1, contains: "warmStart.size"},
		{
			name: "several errors",
			mutate: func(a *NSGA2Args) {
				a.Generations = ptr.To[int32](-3)
				a.Crossover = "sbx"
				a.MutationProbability = ptr.To(2.0)
			},
			wantErrs: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := valid()
			tt.mutate(args)
			err := ValidateNSGA2Args(args)
			if tt.wantErrs == 0 {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				return
			}
			var agg utilerrors.Aggregate
			if !errors.As(err, &agg) {
				t.Fatalf("Expected an aggregate error, got %v", err)
			}
			if len(agg.Errors()) != tt.wantErrs {
				t.Errorf("Expected %d errors, got %v", tt.wantErrs, agg.Errors())
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error to mention %q, got %v", tt.contains, err)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *NSGA2Args
		wantErr string
	}{
		{
			name: "full document",
			data: `
apiVersion: paretorank.mihai-snyk.io/v1alpha1
kind: NSGA2Args
populationSize: 40
generations: 10
crossover: twoPoint
mutationProbability: 0.05
seed: 7
parallelExecution: true
warmStart:
  size: 10
  includeEmptyKnapsack: true
`,
			want: &NSGA2Args{
				PopulationSize:       40,
				Generations:          ptr.To[int32](10),
				CrossoverProbability: ptr.To(DefaultCrossoverProbability),
				MutationProbability:  ptr.To(0.05),
				TournamentSize:       ptr.To[int32](DefaultTournamentSize),
				Crossover:            "twoPoint",
				Seed:                 ptr.To[uint64](7),
				ParallelExecution:    true,
				WarmStart:            &WarmStart{Size: ptr.To[int32](10), IncludeEmptyKnapsack: true},
			},
		},
		{
			name: "json without type meta",
			data: `{"populationSize": 8}`,
			want: &NSGA2Args{
				PopulationSize:       8,
				Generations:          ptr.To[int32](DefaultGenerations),
				CrossoverProbability: ptr.To(DefaultCrossoverProbability),
				TournamentSize:       ptr.To[int32](DefaultTournamentSize),
				Crossover:            DefaultCrossover,
				Seed:                 ptr.To[uint64](DefaultSeed),
			},
		},
		{
			name: "explicit zero generations",
			data: "generations: 0\npopulationSize: 10\n",
			want: &NSGA2Args{
				PopulationSize:       10,
				Generations:          ptr.To[int32](0),
				CrossoverProbability: ptr.To(DefaultCrossoverProbability),
				TournamentSize:       ptr.To[int32](DefaultTournamentSize),
				Crossover:            DefaultCrossover,
				Seed:                 ptr.To[uint64](DefaultSeed),
			},
		},
		{name: "unknown field", data: "populationSize: 8\nelitism: true\n", wantErr: "elitism"},
		{name: "wrong kind", data: "kind: MultiObjectiveArgs\n", wantErr: "expected kind"},
		{name: "wrong version", data: "apiVersion: paretorank.mihai-snyk.io/v2\n", wantErr: "unsupported apiVersion"},
		{name: "invalid values", data: "populationSize: 10\nwarmStart:\n  size: 11\n", wantErr: "warmStart.size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got.Kind != Kind || got.APIVersion != SchemeGroupVersion.String() {
				t.Errorf("Expected type meta to be set, got %v", got.TypeMeta)
			}
			tt.want.TypeMeta = got.TypeMeta
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Unexpected arguments (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nsga2.yaml")
	if err := os.WriteFile(path, []byte("populationSize: 12\ngenerations: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	args, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if args.PopulationSize != 12 || ptr.Deref(args.Generations, 0) != 3 {
		t.Errorf("Unexpected arguments %+v", args)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestNewAndDeepCopy(t *testing.T) {
	args := New()
	if args.PopulationSize != DefaultPopulationSize || args.Kind != Kind {
		t.Fatalf("Expected defaulted arguments, got %+v", args)
	}
	args.WarmStart = &WarmStart{Size: ptr.To[int32](3)}

	cp := args.DeepCopyObject().(*NSGA2Args)
	if diff := cmp.Diff(args, cp); diff != "" {
		t.Fatalf("Copy differs (-orig +copy):\n%s", diff)
	}
	*cp.Seed = 99
	*cp.Generations = 7
	*cp.WarmStart.Size = 9
	if *args.Seed == 99 || *args.Generations == 7 || *args.WarmStart.Size == 9 {
		t.Error("Expected the copy not to share pointers with the original")
	}
}

func TestGeneratedBuildConstraint(t *testing.T) {
	data, err := os.ReadFile("zz_generated.deepcopy.go")
	if err != nil {
		t.Fatal(err)
	}
	src := string(data)
	if !strings.Contains(src, "//go:build !ignore_autogenerated\n") {
		t.Error("Expected a //go:build constraint in the generated deep copy")
	}
	if strings.Contains(src, "// +build") {
		t.Error("Expected no legacy +build line in the generated deep copy")
	}
}
