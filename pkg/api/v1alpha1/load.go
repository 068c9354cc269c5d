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
	"fmt"
	"os"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"
)

const Kind = "NSGA2Args"

var scheme = runtime.NewScheme()

func init() {
	if err := AddToScheme(scheme); err != nil {
		panic(err)
	}
}

// New returns defaulted arguments.
func New() *NSGA2Args {
	args := &NSGA2Args{}
	scheme.Default(args)
	args.SetGroupVersionKind(SchemeGroupVersion.WithKind(Kind))
	return args
}

// Decode parses YAML or JSON arguments, rejecting unknown fields, then
// defaults and validates them. apiVersion and kind may be omitted.
func Decode(data []byte) (*NSGA2Args, error) {
	args := &NSGA2Args{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", Kind, err)
	}

	gvk := args.GroupVersionKind()
	if gvk.Kind != "" && gvk.Kind != Kind {
		return nil, fmt.Errorf("expected kind %s, got %s", Kind, gvk.Kind)
	}
	if args.APIVersion != "" && args.APIVersion != SchemeGroupVersion.String() {
		return nil, fmt.Errorf("unsupported apiVersion %q, expected %s", args.APIVersion, SchemeGroupVersion)
	}

	scheme.Default(args)
	if err := ValidateNSGA2Args(args); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", Kind, err)
	}
	args.SetGroupVersionKind(SchemeGroupVersion.WithKind(Kind))
	return args, nil
}

// LoadFile reads arguments from path.
func LoadFile(path string) (*NSGA2Args, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", Kind, err)
	}
	args, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	klog.V(4).InfoS("Loaded configuration", "path", path, "populationSize", args.PopulationSize, "generations", ptr.Deref(args.Generations, DefaultGenerations))
	return args, nil
}
